package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHierarchy converts the raw tab-indented hierarchy text into the root
// set of system nodes. Indentation depth maps onto the five tiers; a line
// indented more than one level deeper than its predecessor fails the run.
//
// The original single-system format starts directly with area range entries.
// When the first entry carries a range token, a system node is synthesized
// from systemID and systemName and every entry shifts down one tier.
func ParseHierarchy(text, systemID, systemName string) ([]*Node, error) {
	var (
		roots   []*Node
		lineage [int(MaxLevel) + 1]*Node
		shift   = -1 // undecided until the first entry
		prev    = -1
	)

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		if strings.TrimSpace(raw) == "" {
			continue
		}

		entry, err := ParseLine(lineNo, raw)
		if err != nil {
			return nil, err
		}

		if shift == -1 {
			if entry.Depth == 0 && entry.IsRange {
				system := &Node{
					Level:    LevelSystem,
					Token:    systemID,
					RangeEnd: -1,
					Width:    len(systemID),
					Topic:    systemName,
				}
				if allDigits(systemID) {
					system.Number, _ = strconv.Atoi(systemID)
				}
				roots = append(roots, system)
				lineage[0] = system
				shift = 1
				prev = 0
			} else {
				shift = 0
			}
		}

		level := entry.Depth + shift
		if level > int(MaxLevel) {
			return nil, &MalformedHierarchyError{
				Line:   lineNo,
				Reason: fmt.Sprintf("entry is nested below the %s tier", MaxLevel),
			}
		}
		if level > prev+1 {
			return nil, &MalformedHierarchyError{
				Line:   lineNo,
				Reason: fmt.Sprintf("indentation jumps from depth %d to %d", prev, level),
			}
		}
		if err := checkTokenLevel(entry, Level(level)); err != nil {
			return nil, err
		}

		node := &Node{
			Level:    Level(level),
			Kind:     entry.Kind,
			Token:    entry.Token,
			Number:   entry.Number,
			RangeEnd: entry.RangeEnd,
			Width:    entry.Width,
			Topic:    entry.Topic,
			Line:     lineNo,
		}

		if level == 0 {
			roots = append(roots, node)
		} else {
			parent := lineage[level-1]
			if !parent.Kind.HasChildren() {
				return nil, &MalformedHierarchyError{
					Line:   lineNo,
					Reason: fmt.Sprintf("%s entry %q cannot nest children", strings.ToLower(parent.Kind.String()), parent.Topic),
				}
			}
			parent.Children = append(parent.Children, node)
		}
		lineage[level] = node
		prev = level
	}

	return roots, nil
}

func checkTokenLevel(entry Line, level Level) error {
	switch {
	case level == LevelArea && !entry.IsRange:
		return &MalformedHierarchyError{
			Line:   entry.Line,
			Reason: fmt.Sprintf("area entries take a range token (NN-MM), got %q", entry.Token),
		}
	case level != LevelArea && entry.IsRange:
		return &MalformedHierarchyError{
			Line:   entry.Line,
			Reason: fmt.Sprintf("range token %q is only valid for areas", entry.Token),
		}
	case level != LevelXFolder && entry.IsExtended:
		return &MalformedHierarchyError{
			Line:   entry.Line,
			Reason: fmt.Sprintf("extended token %q is only valid at the deepest tier", entry.Token),
		}
	}
	return nil
}
