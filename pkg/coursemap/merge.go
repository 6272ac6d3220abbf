package coursemap

import "fmt"

// MergedNode is the single logical display entity folded from an Ultra Page
// wrapper record and its nested document-body child. It is computed lazily
// per render pass and never cached or mutated.
type MergedNode struct {
	Page ContentRecord
	Doc  ContentRecord
	// Title is the page's title, falling back to the document-body child's.
	Title string
	// Body is the document-body child's body; extractors read from here.
	Body string
	// Children is the page's remaining children followed by the
	// document-body child's children, in index order.
	Children []ContentRecord
}

// TryMerge folds an Ultra Page and its document-body child into one merged
// node. It returns nil when node is not an Ultra Page or has no child with a
// document handler. When showBodies is false, raw UltraBody leaves are
// dropped from the merged children.
func TryMerge(node ContentRecord, idx *TreeIndex, showBodies bool) *MergedNode {
	if !node.IsUltraPage() {
		return nil
	}

	var doc *ContentRecord
	for i, c := range idx.Children[node.ID] {
		if c.IsDocumentHandler() {
			doc = &idx.Children[node.ID][i]
			break
		}
	}
	if doc == nil {
		return nil
	}

	title := node.Title
	if title == "" {
		title = doc.Title
	}

	var children []ContentRecord
	for _, c := range idx.Children[node.ID] {
		if c.ID == doc.ID {
			continue
		}
		if showBodies || Classify(&c) != TypeUltraBody {
			children = append(children, c)
		}
	}
	for _, c := range idx.Children[doc.ID] {
		if showBodies || Classify(&c) != TypeUltraBody {
			children = append(children, c)
		}
	}

	return &MergedNode{
		Page:     node,
		Doc:      *doc,
		Title:    title,
		Body:     doc.Body,
		Children: children,
	}
}

// CompositeID is the CSV identifier representing both underlying records.
func (m *MergedNode) CompositeID() string {
	return fmt.Sprintf("[%s,%s]", m.Page.ID, m.Doc.ID)
}

// HandlerID is the handler identifier reported for the merged row.
func (m *MergedNode) HandlerID() string {
	return documentHandlerPrefix
}
