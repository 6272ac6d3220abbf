package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/campustools/coursemap/pkg/coursemap"
)

// Course identifies the course being rendered.
type Course struct {
	// Label is the display header, e.g. "CS101-200 — Intro to Programming".
	Label string
	// PK1 is the course's API primary key, used as the CSV course_id. The
	// label stands in when resolution failed.
	PK1 string
}

func (c Course) id() string {
	if c.PK1 != "" {
		return c.PK1
	}
	return c.Label
}

// Options control traversal and display for all renderers.
type Options struct {
	// ShowBodies includes raw UltraBody leaf nodes in the traversal. When
	// false they are omitted entirely, not just hidden.
	ShowBodies bool
	// FileLimit caps per-node file listings in human-readable output,
	// appending a "+N more" marker past the cap. Zero or negative means
	// unlimited. CSV rows are never truncated.
	FileLimit int
}

// CSVColumns is the fixed column order of the CSV map output. The two
// trailing columns are absent in files written by older releases; readers of
// the older format can ignore them.
var CSVColumns = []string{
	"course_id", "id", "parentId", "title", "handler_id", "type",
	"availability", "position", "depth", "path", "web_url",
	"embedded_file_count", "embedded_files", "embedded_content_links",
	"inline_urls", "inline_videostudio",
}

// Row is one CSV record. A merged Ultra Page emits exactly one Row with a
// composite id covering both underlying records. Optional fields default to
// "" rather than being omitted.
type Row struct {
	CourseID             string
	ID                   string
	ParentID             string
	Title                string
	HandlerID            string
	Type                 coursemap.NodeType
	Availability         string
	Position             string
	Depth                int
	Path                 string
	WebURL               string
	EmbeddedFileCount    string
	EmbeddedFiles        string
	EmbeddedContentLinks string
	InlineURLs           string
	InlineVideoStudio    string
}

func (r Row) record() []string {
	return []string{
		r.CourseID, r.ID, r.ParentID, r.Title, r.HandlerID, string(r.Type),
		r.Availability, r.Position, strconv.Itoa(r.Depth), r.Path, r.WebURL,
		r.EmbeddedFileCount, r.EmbeddedFiles, r.EmbeddedContentLinks,
		r.InlineURLs, r.InlineVideoStudio,
	}
}

// Multi-valued CSV cells are "; "-joined sub-records with "|"-separated
// parts, e.g. "Syllabus.pdf|application/pdf|inline; Notes.docx|...|...".

// FilesField encodes embedded files as name|mime|render sub-records.
func FilesField(files []coursemap.EmbeddedFile) string {
	parts := make([]string, len(files))
	for i, f := range files {
		parts[i] = fmt.Sprintf("%s|%s|%s", f.Name, f.Mime, f.Render)
	}
	return strings.Join(parts, "; ")
}

// ContentLinksField encodes content links as id|type sub-records.
func ContentLinksField(links []coursemap.ContentLink) string {
	parts := make([]string, len(links))
	for i, l := range links {
		parts[i] = fmt.Sprintf("%s|%s", l.ID, l.Type)
	}
	return strings.Join(parts, "; ")
}

// InlineURLsField encodes inline hyperlinks as label|url sub-records.
func InlineURLsField(urls []coursemap.InlineURL) string {
	parts := make([]string, len(urls))
	for i, u := range urls {
		parts[i] = fmt.Sprintf("%s|%s", u.Label, u.URL)
	}
	return strings.Join(parts, "; ")
}

// VideoStudioField encodes video-studio anchors as videoId|href sub-records.
func VideoStudioField(links []coursemap.VideoStudioLink) string {
	parts := make([]string, len(links))
	for i, l := range links {
		parts[i] = fmt.Sprintf("%s|%s", l.VideoID, l.Href)
	}
	return strings.Join(parts, "; ")
}

// extracts bundles the four embedded-markup extraction results for one body.
type extracts struct {
	files  []coursemap.EmbeddedFile
	links  []coursemap.ContentLink
	urls   []coursemap.InlineURL
	videos []coursemap.VideoStudioLink
}

func extractAll(body string) extracts {
	return extracts{
		files:  coursemap.ParseEmbeddedFiles(body),
		links:  coursemap.ParseContentLinks(body),
		urls:   coursemap.ParseInlineURLs(body),
		videos: coursemap.ParseVideoStudioLinks(body),
	}
}

func (e extracts) fill(row *Row) {
	row.EmbeddedFileCount = strconv.Itoa(len(e.files))
	row.EmbeddedFiles = FilesField(e.files)
	row.EmbeddedContentLinks = ContentLinksField(e.links)
	row.InlineURLs = InlineURLsField(e.urls)
	row.InlineVideoStudio = VideoStudioField(e.videos)
}

// formatFilesLine renders the bracketed file annotation shown under a tree
// node, truncated to limit entries when limit > 0. Empty when there are no
// files.
func formatFilesLine(files []coursemap.EmbeddedFile, limit int) string {
	if len(files) == 0 {
		return ""
	}
	parts := make([]string, len(files))
	for i, f := range files {
		render := strings.ToLower(f.Render)
		if render == "" {
			render = "inline"
		}
		parts[i] = fmt.Sprintf("%s (%s, %s)", f.Name, render, coursemap.MimeFamily(f.Mime))
	}
	return "Files: " + strings.Join(truncateList(parts, limit), "; ")
}

// formatContentLinksLine renders the content link annotation, with "link"
// standing in for an empty type. Empty when there are no links.
func formatContentLinksLine(links []coursemap.ContentLink) string {
	if len(links) == 0 {
		return ""
	}
	parts := make([]string, len(links))
	for i, l := range links {
		linkType := l.Type
		if linkType == "" {
			linkType = "link"
		}
		parts[i] = fmt.Sprintf("%s (%s)", l.ID, linkType)
	}
	return "Embedded content links: " + strings.Join(parts, "; ")
}

// truncateList caps a display list at limit entries, appending a marker for
// the remainder. Non-positive limits disable truncation.
func truncateList(parts []string, limit int) []string {
	if limit <= 0 || len(parts) <= limit {
		return parts
	}
	extra := len(parts) - limit
	return append(parts[:limit:limit], fmt.Sprintf("… (+%d more)", extra))
}
