package coursemap

import "strings"

// ComputePath walks parent links from node to the tree root and returns the
// breadcrumb joined with " / ". A record with an empty title contributes its
// handler identifier instead. Revisiting an id terminates the walk, so a
// cyclic parent chain yields a finite path rather than an infinite loop.
func ComputePath(node ContentRecord, byID map[string]ContentRecord) string {
	var names []string
	seen := map[string]bool{}

	cur, ok := node, true
	for ok && !seen[cur.ID] {
		seen[cur.ID] = true
		name := strings.TrimSpace(cur.Title)
		if name == "" {
			name = cur.HandlerID()
		}
		names = append(names, name)
		if cur.ParentID == "" {
			break
		}
		cur, ok = byID[cur.ParentID]
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, " / ")
}
