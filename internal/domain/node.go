package domain

import (
	"fmt"
	"strings"
)

// Level is the tier of a node in the five-level Johnny Decimal hierarchy.
// It is fixed by indentation depth in the source text.
type Level int

const (
	LevelSystem Level = iota
	LevelArea
	LevelCategory
	LevelFolder
	LevelXFolder
)

// MaxLevel is the deepest tier a hierarchy may use.
const MaxLevel = LevelXFolder

func (l Level) String() string {
	switch l {
	case LevelSystem:
		return "System"
	case LevelArea:
		return "Area"
	case LevelCategory:
		return "Category"
	case LevelFolder:
		return "Folder"
	case LevelXFolder:
		return "XFolder"
	default:
		return "Unknown"
	}
}

// Kind determines what an entry materializes to on disk. It is derived from
// the leading glyph on the entry's label: `-` note, `+` folder and note,
// `!` the system index (JDex), no glyph a plain folder.
type Kind int

const (
	KindFolder Kind = iota
	KindNote
	KindFolderAndNote
	KindIndex
)

func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "Folder"
	case KindNote:
		return "Note"
	case KindFolderAndNote:
		return "FolderAndNote"
	case KindIndex:
		return "Index"
	default:
		return "Unknown"
	}
}

// KindFromGlyph maps a label's leading glyph to its Kind.
func KindFromGlyph(g byte) Kind {
	switch g {
	case '-':
		return KindNote
	case '+':
		return KindFolderAndNote
	case '!':
		return KindIndex
	default:
		return KindFolder
	}
}

// HasChildren reports whether entries of this kind may nest children.
// Notes and the index are leaves by construction.
func (k Kind) HasChildren() bool {
	return k == KindFolder || k == KindFolderAndNote
}

// ID is the ancestor-qualified identifier of a node: the ordered tokens from
// the area level down to the node itself, root first. The system's own token
// names only the system directory, so it never appears in descendant IDs.
type ID struct {
	Tokens []string
}

// Join renders the ID with the given separator between tokens.
func (id ID) Join(sep string) string {
	return strings.Join(id.Tokens, sep)
}

func (id ID) String() string {
	return id.Join(".")
}

// Child returns a copy of the ID extended with one more token.
func (id ID) Child(token string) ID {
	tokens := make([]string, 0, len(id.Tokens)+1)
	tokens = append(tokens, id.Tokens...)
	tokens = append(tokens, token)
	return ID{Tokens: tokens}
}

// Node is a single entry in the hierarchy. The tree is built once per run by
// ParseHierarchy, annotated by Resolve, and read-only afterwards.
type Node struct {
	Level Level
	Kind  Kind

	// Token is the identifier exactly as written: "00", "10-19", "X01".
	Token string
	// Number is the numeric part of the token (the range start for areas).
	Number int
	// RangeEnd is the end of an area's range; -1 for every other level.
	RangeEnd int
	// Width preserves the zero-padded digit width of the source token.
	Width int

	// Topic is the label with any kind glyph stripped. For systems it is the
	// display name.
	Topic string

	// Line is the 1-based source line the entry came from.
	Line int

	Children []*Node

	// ID is attached by Resolve.
	ID ID
}

// IsIndex reports whether this node carries the `!` glyph and therefore
// materializes the full-system JDex listing.
func (n *Node) IsIndex() bool {
	return n.Kind == KindIndex
}

// DisplayName is the canonical directory/file stem for the node:
// the joined full ID followed by the topic.
func (n *Node) DisplayName(sep string) string {
	return fmt.Sprintf("%s %s", n.ID.Join(sep), n.Topic)
}

// ChildToken is the token this node contributes to its descendants' IDs.
// Areas contribute the start of their range, every other level its literal
// token. Resolve never asks the system for one, so the system token stays
// out of descendant IDs.
func (n *Node) ChildToken() string {
	if n.Level == LevelArea {
		return fmt.Sprintf("%0*d", n.Width, n.Number)
	}
	return n.Token
}

// Walk visits the node and its subtree depth-first in source order.
// The visitor returns false to stop descending into a node's children.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visit)
	}
}
