package domain

import "fmt"

// MalformedHierarchyError reports an unusable hierarchy text: a bad
// indentation jump, an unparsable token, or an empty label. The whole run
// fails; no partial tree is used.
type MalformedHierarchyError struct {
	Line   int
	Reason string
}

func (e *MalformedHierarchyError) Error() string {
	return fmt.Sprintf("malformed hierarchy at line %d: %s", e.Line, e.Reason)
}

// DuplicateIdentifierError reports two siblings sharing a canonical token.
type DuplicateIdentifierError struct {
	Parent string
	Token  string
	Line   int
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate identifier %q under %q (line %d)", e.Token, e.Parent, e.Line)
}
