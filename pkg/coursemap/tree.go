package coursemap

import "sort"

// positionUnset sorts records without an integer position after every
// positioned sibling.
const positionUnset = 1 << 30

// TreeIndex holds the derived lookup structures for one course's records.
// It is built once per run and consumed read-only by every renderer.
type TreeIndex struct {
	// ByID maps record id to record. Records with an empty id are excluded
	// here but still appear in children lists.
	ByID map[string]ContentRecord
	// Children maps parent id to its ordered children. The empty string key
	// holds the roots.
	Children map[string][]ContentRecord
}

// Index builds the id and parent lookup maps from a flat, unordered record
// list. Within each parent, children are sorted by (position, title); a
// missing or unset position sorts last, and the title tie-break makes the
// order reproducible across runs.
func Index(records []ContentRecord) *TreeIndex {
	byID := make(map[string]ContentRecord, len(records))
	children := map[string][]ContentRecord{}

	for _, r := range records {
		if r.ID != "" {
			byID[r.ID] = r
		}
		children[r.ParentID] = append(children[r.ParentID], r)
	}

	for pid := range children {
		sortSiblings(children[pid])
	}

	return &TreeIndex{ByID: byID, Children: children}
}

func sortSiblings(list []ContentRecord) {
	sort.SliceStable(list, func(i, j int) bool {
		pi, pj := positionUnset, positionUnset
		if list[i].Position != nil {
			pi = *list[i].Position
		}
		if list[j].Position != nil {
			pj = *list[j].Position
		}
		if pi != pj {
			return pi < pj
		}
		return list[i].Title < list[j].Title
	})
}

// Roots returns the traversal roots: the parentless records in sibling
// order, followed by orphans whose parentId does not resolve to any record,
// each appended exactly once in input order.
func Roots(records []ContentRecord, idx *TreeIndex) []ContentRecord {
	roots := append([]ContentRecord(nil), idx.Children[""]...)

	seen := make(map[string]bool, len(roots))
	for _, r := range roots {
		seen[r.ID] = true
	}

	for _, r := range records {
		if r.ParentID == "" {
			continue
		}
		if _, ok := idx.ByID[r.ParentID]; ok {
			continue
		}
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		roots = append(roots, r)
	}

	return roots
}
