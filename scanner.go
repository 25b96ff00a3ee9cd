package w3cdtf

import "strconv"

// scanner consumes fixed-width lexical tokens from a datetime string.
// All offsets and widths are measured in runes so that error spans line
// up with what the user typed, even when malformed input contains
// multi-byte characters. The cursor only moves forward, and only when a
// scan succeeds: a failed scan leaves it at the start of the attempted
// token, which is also where the reported span begins.
type scanner struct {
	src []rune
	pos int
}

func newScanner(input string) *scanner {
	return &scanner{src: []rune(input)}
}

// has reports whether at least n runes remain at the cursor.
func (s *scanner) has(n int) bool {
	return len(s.src)-s.pos >= n
}

// text returns the next width runes without advancing.
func (s *scanner) text(width int) string {
	return string(s.src[s.pos : s.pos+width])
}

// scanInt consumes exactly width runes as a signed decimal integer.
// A leading '-' within the width is accepted, so BCE years like "-044"
// scan as negative values.
func (s *scanner) scanInt(width int, kind Kind) (int, error) {
	if s.has(width) {
		if v, err := strconv.Atoi(s.text(width)); err == nil {
			s.pos += width
			return v, nil
		}
	}
	return 0, newError(kind, s.pos, width)
}

// scanUint consumes exactly width runes as an unsigned decimal integer.
// Sign characters fail with the field's own kind, matching the reading
// that a signed two-digit field is not that field at all.
func (s *scanner) scanUint(width int, kind Kind) (int, error) {
	if s.has(width) {
		if v, err := strconv.ParseUint(s.text(width), 10, 32); err == nil {
			s.pos += width
			return int(v), nil
		}
	}
	return 0, newError(kind, s.pos, width)
}

// scanBounded scans an unsigned field and range-checks it. Out-of-range
// values report ValueTooLow or ValueTooHigh over the same span the
// lexical scan would have reported.
func (s *scanner) scanBounded(width, min, max int, kind Kind) (int, error) {
	begin := s.pos
	v, err := s.scanUint(width, kind)
	if err != nil {
		return 0, err
	}
	if v < min {
		return 0, newError(ValueTooLow, begin, width)
	}
	if v > max {
		return 0, newError(ValueTooHigh, begin, width)
	}
	return v, nil
}

// scanFraction consumes a maximal run of one to nine decimal digits and
// returns its value scaled to nanoseconds: fewer digits denote coarser
// increments, so "5" is 500000000ns and "000000004" is 4ns. An empty run
// or a run longer than nine digits fails over exactly that run.
func (s *scanner) scanFraction() (int, error) {
	run := 0
	for s.pos+run < len(s.src) && isDigit(s.src[s.pos+run]) {
		run++
	}
	if run == 0 || run > 9 {
		return 0, newError(InvalidNanoseconds, s.pos, run)
	}
	v, err := strconv.Atoi(string(s.src[s.pos : s.pos+run]))
	if err != nil {
		return 0, newError(InvalidNanoseconds, s.pos, run)
	}
	s.pos += run
	for i := run; i < 9; i++ {
		v *= 10
	}
	return v, nil
}

// scanLiteral requires the literal token at the cursor.
func (s *scanner) scanLiteral(token string) error {
	n := len(token)
	if s.has(n) && s.text(n) == token {
		s.pos += n
		return nil
	}
	return newError(InvalidToken, s.pos, n)
}

// scanLiteralOrEnd distinguishes "input exhausted here" (ok, token
// absent) from "input present but different" (error). It decides whether
// the optional time-of-day section follows the date.
func (s *scanner) scanLiteralOrEnd(token string) (bool, error) {
	n := len(token)
	if !s.has(n) {
		return false, nil
	}
	if s.text(n) == token {
		s.pos += n
		return true, nil
	}
	return false, newError(InvalidToken, s.pos, n)
}

// scanOptionalLiteral probes for the literal token. Absence is not an
// error as long as enough input remains to decide; exhausted input is,
// because the grammar still requires a zone designator after this point.
func (s *scanner) scanOptionalLiteral(token string) (bool, error) {
	n := len(token)
	if !s.has(n) {
		return false, newError(InvalidToken, s.pos, n)
	}
	if s.text(n) == token {
		s.pos += n
		return true, nil
	}
	return false, nil
}

// scanZone consumes a zone designator: "Z" for UTC, or a '+' or '-' sign
// followed by HH:MM, returning the offset in seconds east of UTC.
func (s *scanner) scanZone() (int, error) {
	utc, err := s.scanOptionalLiteral("Z")
	if err != nil {
		return 0, err
	}
	if utc {
		return 0, nil
	}
	positive, err := s.scanOptionalLiteral("+")
	if err != nil {
		return 0, err
	}
	negative, err := s.scanOptionalLiteral("-")
	if err != nil {
		return 0, err
	}
	if !positive && !negative {
		return 0, newError(InvalidToken, s.pos, 1)
	}
	hour, err := s.scanBounded(2, 0, 12, InvalidHour)
	if err != nil {
		return 0, err
	}
	if err := s.scanLiteral(":"); err != nil {
		return 0, err
	}
	minute, err := s.scanBounded(2, 0, 59, InvalidMinute)
	if err != nil {
		return 0, err
	}
	offset := hour*3600 + minute*60
	if negative {
		offset = -offset
	}
	return offset, nil
}

// scanEnd succeeds only when the input is fully consumed. The error span
// is empty, positioned at the first leftover rune.
func (s *scanner) scanEnd() error {
	if s.pos == len(s.src) {
		return nil
	}
	return newError(StringNotEnded, s.pos, 0)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
