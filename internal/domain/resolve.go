package domain

import "fmt"

// Resolve threads ancestor tokens down the tree, attaching each node's full
// ID, and validates that sibling tokens are unique. It is additive: topics,
// kinds and tree shape are never touched. Resolution is pure over the built
// tree, so parsing the same text twice yields identical IDs.
//
// Siblings are compared by their canonical token string, X prefix included,
// so an extended "X20" never collides with a plain "20" at the same level.
//
// The returned warnings flag validation concerns that do not fail the run,
// currently only a system carrying more than one `!` index entry.
func Resolve(systems []*Node) ([]string, error) {
	var warnings []string

	seen := make(map[string]bool, len(systems))
	for _, system := range systems {
		if seen[system.Token] {
			return nil, &DuplicateIdentifierError{Parent: "the configuration", Token: system.Token, Line: system.Line}
		}
		seen[system.Token] = true

		system.ID = ID{Tokens: []string{system.Token}}
		if err := resolveChildren(system, nil); err != nil {
			return nil, err
		}

		if extra := indexCount(system) - 1; extra > 0 {
			warnings = append(warnings,
				fmt.Sprintf("system %q declares %d extra index entries; each regenerates a full listing", system.Topic, extra))
		}
	}

	return warnings, nil
}

func resolveChildren(parent *Node, base []string) error {
	seen := make(map[string]bool, len(parent.Children))
	for _, child := range parent.Children {
		if seen[child.Token] {
			return &DuplicateIdentifierError{
				Parent: fmt.Sprintf("%s %s", parent.Token, parent.Topic),
				Token:  child.Token,
				Line:   child.Line,
			}
		}
		seen[child.Token] = true

		tokens := make([]string, 0, len(base)+1)
		tokens = append(tokens, base...)
		tokens = append(tokens, child.Token)
		child.ID = ID{Tokens: tokens}

		if len(child.Children) > 0 {
			childBase := make([]string, 0, len(base)+1)
			childBase = append(childBase, base...)
			childBase = append(childBase, child.ChildToken())
			if err := resolveChildren(child, childBase); err != nil {
				return err
			}
		}
	}
	return nil
}

func indexCount(system *Node) int {
	count := 0
	system.Walk(func(n *Node) bool {
		if n.IsIndex() {
			count++
		}
		return true
	})
	return count
}
