package export

import (
	"fmt"
	"strings"

	"github.com/campustools/coursemap/pkg/coursemap"
)

// RenderText renders the indented text tree for a course and returns it
// together with the CSV rows produced by the same traversal, so callers
// wanting both formats walk the tree once.
func RenderText(course Course, roots []coursemap.ContentRecord, idx *coursemap.TreeIndex, opts Options) (string, []Row) {
	tr := &textRenderer{
		course: course,
		idx:    idx,
		opts:   opts,
		lines:  []string{"Course " + course.Label, ""},
	}
	for i, r := range roots {
		tr.walk(r, "", i == len(roots)-1, 0)
	}
	return strings.Join(tr.lines, "\n") + "\n", tr.rows
}

type textRenderer struct {
	course Course
	idx    *coursemap.TreeIndex
	opts   Options
	lines  []string
	rows   []Row
}

func (tr *textRenderer) walk(node coursemap.ContentRecord, prefix string, isLast bool, depth int) {
	typ := coursemap.Classify(&node)
	if !tr.opts.ShowBodies && typ == coursemap.TypeUltraBody {
		return
	}

	if merged := coursemap.TryMerge(node, tr.idx, tr.opts.ShowBodies); merged != nil {
		tr.walkMerged(merged, prefix, isLast, depth)
		return
	}

	url := ""
	if node.IsExternalLink() {
		url = node.ExternalLinkURL()
	}
	suffix := ""
	if url != "" {
		suffix = fmt.Sprintf("  [URL: %s]", url)
	}
	tr.lines = append(tr.lines, fmt.Sprintf("%s%s[%s] %s  (id=%s, pos=%s, avail=%s)%s",
		prefix, branch(isLast), typ, node.Title, node.ID, node.PositionString(), node.Availability.Available, suffix))

	row := Row{
		CourseID:     tr.course.id(),
		ID:           node.ID,
		ParentID:     node.ParentID,
		Title:        node.Title,
		HandlerID:    node.HandlerID(),
		Type:         typ,
		Availability: node.Availability.Available,
		Position:     node.PositionString(),
		Depth:        depth,
		Path:         coursemap.ComputePath(node, tr.idx.ByID),
		WebURL:       url,
	}

	if typ == coursemap.TypeUltraDoc || typ == coursemap.TypeUltraBody {
		ex := extractAll(node.Body)
		tr.annotate(prefix, isLast, formatFilesLine(ex.files, tr.opts.FileLimit))
		tr.annotate(prefix, isLast, formatContentLinksLine(ex.links))
		ex.fill(&row)
	}
	tr.rows = append(tr.rows, row)

	children := tr.visibleChildren(tr.idx.Children[node.ID])
	for i, c := range children {
		tr.walk(c, childPrefix(prefix, isLast), i == len(children)-1, depth+1)
	}
}

// walkMerged renders an Ultra Page and its document-body child as a single
// node; the swallowed child never appears as a separate row.
func (tr *textRenderer) walkMerged(m *coursemap.MergedNode, prefix string, isLast bool, depth int) {
	tr.lines = append(tr.lines, fmt.Sprintf("%s%s[%s] %s  (id=%s, pos=%s, avail=%s)",
		prefix, branch(isLast), coursemap.TypeUltraDoc, m.Title, m.CompositeID(),
		m.Page.PositionString(), m.Page.Availability.Available))

	ex := extractAll(m.Body)
	tr.annotate(prefix, isLast, formatFilesLine(ex.files, tr.opts.FileLimit))
	tr.annotate(prefix, isLast, formatContentLinksLine(ex.links))

	row := Row{
		CourseID:     tr.course.id(),
		ID:           m.CompositeID(),
		ParentID:     m.Page.ParentID,
		Title:        m.Title,
		HandlerID:    m.HandlerID(),
		Type:         coursemap.TypeUltraDoc,
		Availability: m.Page.Availability.Available,
		Position:     m.Page.PositionString(),
		Depth:        depth,
		Path:         coursemap.ComputePath(m.Page, tr.idx.ByID),
	}
	ex.fill(&row)
	tr.rows = append(tr.rows, row)

	for i, c := range m.Children {
		tr.walk(c, childPrefix(prefix, isLast), i == len(m.Children)-1, depth+1)
	}
}

// annotate emits one indented bracketed line under the current node. Empty
// text emits nothing.
func (tr *textRenderer) annotate(prefix string, isLast bool, text string) {
	if text == "" {
		return
	}
	tr.lines = append(tr.lines, childPrefix(prefix, isLast)+"["+text+"]")
}

func (tr *textRenderer) visibleChildren(children []coursemap.ContentRecord) []coursemap.ContentRecord {
	if tr.opts.ShowBodies {
		return children
	}
	var out []coursemap.ContentRecord
	for _, c := range children {
		if coursemap.Classify(&c) != coursemap.TypeUltraBody {
			out = append(out, c)
		}
	}
	return out
}

func branch(isLast bool) string {
	if isLast {
		return "└─ "
	}
	return "├─ "
}

func childPrefix(prefix string, isLast bool) string {
	if isLast {
		return prefix + "   "
	}
	return prefix + "│  "
}
