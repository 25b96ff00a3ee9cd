package w3cdtf

import "fmt"

// Kind identifies which field or condition caused a parse failure.
type Kind int

const (
	// InvalidYear means the year could not be read as four digits.
	InvalidYear Kind = iota
	// InvalidMonth means the month could not be read as two digits.
	InvalidMonth
	// InvalidDay means the day could not be read as two digits.
	InvalidDay
	// InvalidHour means the hour could not be read as two digits.
	InvalidHour
	// InvalidMinute means the minute could not be read as two digits.
	InvalidMinute
	// InvalidSeconds means the seconds could not be read as two digits.
	InvalidSeconds
	// InvalidNanoseconds means the fractional-second digit run was
	// empty or longer than nine digits.
	InvalidNanoseconds
	// InvalidFormat means the fields scanned cleanly but do not form a
	// representable timestamp (e.g. February 30).
	InvalidFormat
	// InvalidToken means a required literal or zone sign was missing or
	// different from what the grammar expects.
	InvalidToken
	// ValueTooLow means a field scanned cleanly but is below its range.
	ValueTooLow
	// ValueTooHigh means a field scanned cleanly but is above its range.
	ValueTooHigh
	// InvalidDate means the date components name no calendar date.
	InvalidDate
	// InvalidTime means the time components name no time of day.
	InvalidTime
	// StringNotEnded means input remained after a complete datetime.
	StringNotEnded
)

// String returns a short human-readable description of the kind.
func (k Kind) String() string {
	switch k {
	case InvalidYear:
		return "cannot parse year"
	case InvalidMonth:
		return "cannot parse month"
	case InvalidDay:
		return "cannot parse day"
	case InvalidHour:
		return "cannot parse hour"
	case InvalidMinute:
		return "cannot parse minute"
	case InvalidSeconds:
		return "cannot parse seconds"
	case InvalidNanoseconds:
		return "cannot parse fractional seconds"
	case InvalidFormat:
		return "invalid datetime"
	case InvalidToken:
		return "unexpected token"
	case ValueTooLow:
		return "value below allowed range"
	case ValueTooHigh:
		return "value above allowed range"
	case InvalidDate:
		return "no such calendar date"
	case InvalidTime:
		return "no such time of day"
	case StringNotEnded:
		return "trailing characters after datetime"
	default:
		return fmt.Sprintf("unknown parse error kind %d", int(k))
	}
}

// ParseError reports the first token that failed to scan or validate.
// Begin and End bound the offending token in rune offsets into the input,
// End exclusive. End == Begin is valid and marks a position rather than a
// range (StringNotEnded points at the first unconsumed character).
type ParseError struct {
	Kind  Kind
	Begin int
	End   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d..%d", e.Kind, e.Begin, e.End)
}

func newError(kind Kind, begin, length int) *ParseError {
	return &ParseError{Kind: kind, Begin: begin, End: begin + length}
}
