package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Line is one parsed non-blank entry from the hierarchy text, before it is
// placed in the tree.
type Line struct {
	// Depth is the number of leading tab characters.
	Depth int
	// Token is the identifier as written, e.g. "00", "10-19", "X01".
	Token string
	// Number is the numeric part of the token (range start for ranges).
	Number int
	// RangeEnd is the range end, or -1 when the token is not a range.
	RangeEnd int
	// Width is the digit width of the numeric part.
	Width int
	// IsRange marks an area-style "NN-MM" token.
	IsRange bool
	// IsExtended marks an "X"-prefixed token.
	IsExtended bool
	// Kind is derived from the label's leading glyph.
	Kind Kind
	// Topic is the label with the glyph stripped.
	Topic string
	// Number of the source line, 1-based.
	Line int
}

// ParseLine parses one non-blank line of hierarchy text. Indentation must be
// tab characters; the token and the label are separated by a single space.
func ParseLine(lineNo int, raw string) (Line, error) {
	depth := 0
	for depth < len(raw) && raw[depth] == '\t' {
		depth++
	}

	rest := strings.TrimRight(raw[depth:], " \t\r")
	token, label, found := strings.Cut(rest, " ")
	if !found || strings.TrimSpace(label) == "" {
		return Line{}, &MalformedHierarchyError{Line: lineNo, Reason: fmt.Sprintf("entry %q has no label", rest)}
	}

	entry := Line{
		Depth:    depth,
		Token:    token,
		RangeEnd: -1,
		Line:     lineNo,
	}

	switch {
	case strings.Contains(token, "-"):
		start, end, _ := strings.Cut(token, "-")
		if !allDigits(start) || !allDigits(end) {
			return Line{}, badToken(lineNo, token)
		}
		entry.Number, _ = strconv.Atoi(start)
		entry.RangeEnd, _ = strconv.Atoi(end)
		entry.Width = len(start)
		entry.IsRange = true

	case strings.HasPrefix(token, "X"):
		digits := token[1:]
		if !allDigits(digits) {
			return Line{}, badToken(lineNo, token)
		}
		entry.Number, _ = strconv.Atoi(digits)
		entry.Width = len(digits)
		entry.IsExtended = true

	case allDigits(token):
		entry.Number, _ = strconv.Atoi(token)
		entry.Width = len(token)

	default:
		return Line{}, badToken(lineNo, token)
	}

	if g := label[0]; g == '!' || g == '-' || g == '+' {
		entry.Kind = KindFromGlyph(g)
		label = label[1:]
	}
	if strings.TrimSpace(label) == "" {
		return Line{}, &MalformedHierarchyError{Line: lineNo, Reason: "empty label"}
	}
	entry.Topic = label

	return entry, nil
}

func badToken(lineNo int, token string) error {
	return &MalformedHierarchyError{Line: lineNo, Reason: fmt.Sprintf("unparsable token %q", token)}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
