package domain

import "fmt"

// TemplateContext assembles the payload handed to the template renderer for
// one node. Pure; one context per node per render. Keys:
//
//	id     the joined full ID ("10.10.10.X01")
//	topic  the entry's label
//	kind   "Folder", "Note", "FolderAndNote" or "Index"
//	name   the display name, system entries only
//	start  zero-padded range start, area entries only
//	end    zero-padded range end, area entries only
func TemplateContext(n *Node, sep string) map[string]interface{} {
	ctx := map[string]interface{}{
		"id":    n.ID.Join(sep),
		"topic": n.Topic,
		"kind":  n.Kind.String(),
	}
	if n.Level == LevelSystem {
		ctx["name"] = n.Topic
	}
	if n.Level == LevelArea {
		ctx["start"] = fmt.Sprintf("%0*d", n.Width, n.Number)
		ctx["end"] = fmt.Sprintf("%0*d", n.Width, n.RangeEnd)
	}
	return ctx
}
