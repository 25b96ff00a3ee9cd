package w3cdtf

import (
	"time"
	"unicode/utf8"
)

// Parse parses a datetime string in the W3C profile of ISO 8601
// (https://www.w3.org/TR/NOTE-datetime) and returns the timestamp with
// its UTC offset preserved in the returned time's location.
//
// Accepted forms:
//
//	YYYY-MM-DD
//	YYYY-MM-DDThh:mmTZD
//	YYYY-MM-DDThh:mm:ssTZD
//	YYYY-MM-DDThh:mm:ss.sTZD
//
// where TZD is "Z" or a ±hh:mm offset. A bare date fills the time of day
// with zeros at UTC. Shorter prefixes such as YYYY or YYYY-MM are
// rejected, as is any trailing text after a complete datetime.
//
// On failure the returned error is a *ParseError naming the failing
// field and the rune span of the offending token.
func Parse(input string) (time.Time, error) {
	sc := newScanner(input)

	year, err := sc.scanInt(4, InvalidYear)
	if err != nil {
		return time.Time{}, err
	}
	if err := sc.scanLiteral("-"); err != nil {
		return time.Time{}, err
	}
	month, err := sc.scanBounded(2, 1, 12, InvalidMonth)
	if err != nil {
		return time.Time{}, err
	}
	if err := sc.scanLiteral("-"); err != nil {
		return time.Time{}, err
	}
	day, err := sc.scanBounded(2, 1, 31, InvalidDay)
	if err != nil {
		return time.Time{}, err
	}

	var hour, minute, seconds, nanos, offset int
	hasTime, err := sc.scanLiteralOrEnd("T")
	if err != nil {
		return time.Time{}, err
	}
	if hasTime {
		hour, err = sc.scanBounded(2, 0, 23, InvalidHour)
		if err != nil {
			return time.Time{}, err
		}
		if err := sc.scanLiteral(":"); err != nil {
			return time.Time{}, err
		}
		minute, err = sc.scanBounded(2, 0, 59, InvalidMinute)
		if err != nil {
			return time.Time{}, err
		}

		hasSeconds, err := sc.scanOptionalLiteral(":")
		if err != nil {
			return time.Time{}, err
		}
		if hasSeconds {
			seconds, err = sc.scanBounded(2, 0, 59, InvalidSeconds)
			if err != nil {
				return time.Time{}, err
			}
			hasFraction, err := sc.scanOptionalLiteral(".")
			if err != nil {
				return time.Time{}, err
			}
			if hasFraction {
				nanos, err = sc.scanFraction()
				if err != nil {
					return time.Time{}, err
				}
			}
		}

		offset, err = sc.scanZone()
		if err != nil {
			return time.Time{}, err
		}
	}

	if err := sc.scanEnd(); err != nil {
		return time.Time{}, err
	}
	return resolve(input, year, month, day, hour, minute, seconds, nanos, offset)
}

// resolve hands the scanned fields to the calendar: time.Date interprets
// the wall clock reading in a fixed-offset location, which subtracts the
// offset to reach the stored UTC instant while keeping the offset around
// for display. time.Date normalizes impossible dates like February 30
// instead of failing, so calendar validity is checked by reading the
// date back. Calendar-level failures have no sub-span, so they report
// InvalidFormat over the entire input.
func resolve(input string, year, month, day, hour, minute, seconds, nanos, offset int) (time.Time, error) {
	loc := time.UTC
	if offset != 0 {
		loc = time.FixedZone("", offset)
	}
	t := time.Date(year, time.Month(month), day, hour, minute, seconds, nanos, loc)
	if y, m, d := t.Date(); y != year || m != time.Month(month) || d != day {
		return time.Time{}, newError(InvalidFormat, 0, utf8.RuneCountInString(input))
	}
	return t, nil
}
