// Package w3cdtf parses and formats datetime strings in the W3C profile
// of ISO 8601 (https://www.w3.org/TR/NOTE-datetime).
//
// Parse is a single forward pass over the input with no backtracking.
// Malformed input fails at the first bad token with a *ParseError that
// carries both the failure kind and the exact rune span of the token, so
// callers can point at what went wrong. Format is the inverse for
// canonical inputs.
package w3cdtf
