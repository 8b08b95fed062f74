package domain

import (
	"fmt"
	"strings"
)

// ActionType classifies one planned filesystem action.
type ActionType int

const (
	ActionCreateDir ActionType = iota
	ActionWriteFile
	ActionSkip
)

func (t ActionType) String() string {
	switch t {
	case ActionCreateDir:
		return "CreateDir"
	case ActionWriteFile:
		return "WriteFile"
	case ActionSkip:
		return "Skip"
	default:
		return "Unknown"
	}
}

// Content says what a WriteFile action renders.
type Content int

const (
	ContentNone Content = iota
	// ContentNote renders the markdown front-matter template for the node.
	ContentNote
	// ContentIndex renders the full-system JDex listing.
	ContentIndex
)

// Action is one entry of a Plan. Skip entries are retained so that a dry run
// can explain exactly what would and wouldn't happen.
type Action struct {
	Type   ActionType
	Path   string
	Reason string

	// Node the action belongs to; nil for the root folder itself.
	Node *Node
	// Content selects what a WriteFile renders.
	Content Content
	// System is the root rendered by a ContentIndex write.
	System *Node
}

func (a Action) String() string {
	if a.Reason != "" {
		return fmt.Sprintf("%s %s (%s)", a.Type, a.Path, a.Reason)
	}
	return fmt.Sprintf("%s %s", a.Type, a.Path)
}

// Plan is the ordered action list computed by one tree walk. Dry runs print
// it; real runs execute it in the same order, so both modes share the exact
// same action set.
type Plan []Action

func (p Plan) String() string {
	var b strings.Builder
	for _, action := range p {
		b.WriteString(action.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Mutations counts the actions that would touch the filesystem.
func (p Plan) Mutations() int {
	count := 0
	for _, action := range p {
		if action.Type != ActionSkip {
			count++
		}
	}
	return count
}
