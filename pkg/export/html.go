package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/campustools/coursemap/pkg/coursemap"
)

// RenderHTML renders the self-contained, searchable HTML tree document for
// a course. All interactive behavior (expand/collapse, live search with
// match counting) lives in the static template payload; this renderer only
// produces the node markup interpolated into it.
func RenderHTML(course Course, roots []coursemap.ContentRecord, idx *coursemap.TreeIndex, opts Options) string {
	hr := &htmlRenderer{idx: idx, opts: opts}

	var nodes strings.Builder
	for _, r := range roots {
		nodes.WriteString(hr.render(r))
	}

	head := strings.NewReplacer(
		"{{COURSE}}", html.EscapeString(course.Label),
		"{{GENERATED}}", time.Now().Format("2006-01-02 15:04:05"),
	).Replace(documentHead)

	return head + nodes.String() + documentTail
}

type htmlRenderer struct {
	idx  *coursemap.TreeIndex
	opts Options
}

func (hr *htmlRenderer) render(node coursemap.ContentRecord) string {
	typ := coursemap.Classify(&node)
	if !hr.opts.ShowBodies && typ == coursemap.TypeUltraBody {
		return ""
	}

	if merged := coursemap.TryMerge(node, hr.idx, hr.opts.ShowBodies); merged != nil {
		return hr.renderMerged(merged)
	}

	label := chip(typ) + html.EscapeString(strings.TrimSpace(node.Title))
	suffix := ""
	if node.IsExternalLink() {
		if href := node.ExternalLinkURL(); href != "" {
			suffix = fmt.Sprintf(`  [URL: <a href="%s" target="_blank" rel="noopener">%s</a>]`,
				html.EscapeString(href), html.EscapeString(href))
		}
	}

	extras := ""
	if typ == coursemap.TypeUltraDoc || node.IsUltraPage() {
		extras = hr.extrasMarkup(hr.bodySource(node))
	}

	children := hr.visibleChildren(hr.idx.Children[node.ID])
	switch {
	case len(children) > 0:
		var sb strings.Builder
		sb.WriteString("<li><details>")
		sb.WriteString("<summary>" + label + suffix + "</summary>")
		sb.WriteString(extras)
		sb.WriteString("<ul>")
		for _, c := range children {
			sb.WriteString(hr.render(c))
		}
		sb.WriteString("</ul></details></li>")
		return sb.String()
	case extras != "":
		return "<li><details open><summary>" + label + "</summary>" + extras + "</details></li>"
	default:
		return "<li>" + label + suffix + "</li>"
	}
}

func (hr *htmlRenderer) renderMerged(m *coursemap.MergedNode) string {
	var sb strings.Builder
	sb.WriteString("<li><details>")
	sb.WriteString("<summary>" + chip(coursemap.TypeUltraDoc) + html.EscapeString(m.Title) + "</summary>")
	sb.WriteString(hr.extrasMarkup(m.Body))
	if len(m.Children) > 0 {
		sb.WriteString("<ul>")
		for _, c := range m.Children {
			sb.WriteString(hr.render(c))
		}
		sb.WriteString("</ul>")
	}
	sb.WriteString("</details></li>")
	return sb.String()
}

// bodySource picks the HTML body the extractors should read for a node: its
// own body for document types, the document-body child's body for an Ultra
// Page that did not merge into its parent traversal.
func (hr *htmlRenderer) bodySource(node coursemap.ContentRecord) string {
	switch coursemap.Classify(&node) {
	case coursemap.TypeUltraDoc, coursemap.TypeUltraBody:
		return node.Body
	}
	if node.IsUltraPage() {
		for _, c := range hr.idx.Children[node.ID] {
			if c.IsDocumentHandler() {
				return c.Body
			}
		}
	}
	return ""
}

// extrasMarkup renders the file badges and content link annotations for a
// body. Knowledge-check links are noise in this view and are skipped; they
// still appear in CSV rows.
func (hr *htmlRenderer) extrasMarkup(body string) string {
	files := coursemap.ParseEmbeddedFiles(body)
	var links []coursemap.ContentLink
	for _, l := range coursemap.ParseContentLinks(body) {
		if strings.ToLower(l.Type) == "knowledgecheck" {
			continue
		}
		links = append(links, l)
	}

	out := filesBadges(files, hr.opts.FileLimit)
	if len(links) > 0 {
		parts := make([]string, len(links))
		for i, l := range links {
			parts[i] = fmt.Sprintf("%s (%s)", html.EscapeString(l.ID), html.EscapeString(l.Type))
		}
		out += `<div class="files">[Embedded content links: ` + strings.Join(parts, "; ") + `]</div>`
	}
	return out
}

func (hr *htmlRenderer) visibleChildren(children []coursemap.ContentRecord) []coursemap.ContentRecord {
	if hr.opts.ShowBodies {
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

// chipClasses maps node types to their color-coded CSS classes. File
// sub-kinds share the file chip.
var chipClasses = map[coursemap.NodeType]string{
	coursemap.TypeUltraDoc:       "chip-ultra-doc",
	coursemap.TypeUltraBody:      "chip-ultrabody",
	coursemap.TypeFolder:         "chip-folder",
	coursemap.TypeModule:         "chip-module",
	coursemap.TypeVideoStudio:    "chip-videostudio",
	coursemap.TypeLink:           "chip-link",
	coursemap.TypeCourseLink:     "chip-course-link",
	coursemap.TypeLti:            "chip-lti",
	coursemap.TypeScorm:          "chip-scorm",
	coursemap.TypeForm:           "chip-form",
	coursemap.TypeTestAssignment: "chip-test-assignment",
	coursemap.TypeFile:           "chip-file",
	coursemap.TypeImage:          "chip-file",
	coursemap.TypePDF:            "chip-file",
	coursemap.TypeVideo:          "chip-file",
	coursemap.TypeAudio:          "chip-file",
}

func chip(typ coursemap.NodeType) string {
	class, ok := chipClasses[typ]
	if !ok {
		class = "chip-unknown"
	}
	return fmt.Sprintf(`<span class="chip %s">%s</span>`, class, html.EscapeString(string(typ)))
}

// filesBadges renders the badge strip for embedded files, truncated like the
// text tree listing.
func filesBadges(files []coursemap.EmbeddedFile, limit int) string {
	if len(files) == 0 {
		return ""
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	names = truncateList(names, limit)

	var sb strings.Builder
	sb.WriteString(`<div class="files files-badges"><span class="files-label">Files</span> `)
	for _, name := range names {
		class := "file-badge"
		if ext := extClass(name); ext != "" {
			class += " " + ext
		}
		sb.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, html.EscapeString(name)))
	}
	sb.WriteString("</div>")
	return sb.String()
}

// extClass derives the file-extension CSS class used for badge coloring.
func extClass(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return "ext-" + name[i+1:]
	}
	return ""
}
