package w3cdtf

import (
	"fmt"
	"strings"
	"time"
)

// Format renders t in the W3C datetime profile:
// YYYY-MM-DDTHH:MM:SS[.fraction]{Z|±HH:MM}. The fraction appears only
// when the nanosecond component is nonzero, with trailing zeros trimmed,
// and the offset renders as "Z" exactly when the time's zone offset is
// zero. Formatting a value produced by Parse from a canonical string
// reproduces that string.
func Format(t time.Time) string {
	var b strings.Builder
	b.WriteString(t.Format("2006-01-02T15:04:05.999999999"))
	_, offset := t.Zone()
	if offset == 0 {
		b.WriteByte('Z')
	} else {
		sign := "+"
		if offset < 0 {
			sign = "-"
			offset = -offset
		}
		fmt.Fprintf(&b, "%s%02d:%02d", sign, offset/3600, offset%3600/60)
	}
	return b.String()
}
