package coursemap

import (
	"html"
	"regexp"
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/campustools/coursemap/pkg/htmlutil"
)

// Compiled once at startup; bodies can be large and are scanned per render.
var (
	bbFilePattern = regexp.MustCompile(`(?i)data-bbfile\s*=\s*"([^"]+)"`)

	// The two data attributes of a content link may appear in either order
	// on the same tag.
	contentLinkPairPattern = regexp.MustCompile(
		`(?i)data-content-link\s*=\s*"([^"]+)"[^>]*data-content-link-type\s*=\s*"([^"]+)"` +
			`|data-content-link-type\s*=\s*"([^"]+)"[^>]*data-content-link\s*=\s*"([^"]+)"`)

	// Anchors can span multiple lines and contain nested tags in their text.
	anchorPattern = regexp.MustCompile(`(?is)<a\b([^>]*)>(.*?)</a>`)

	absoluteHrefPattern = regexp.MustCompile(`(?i)href\s*=\s*"(https?://[^"]+)"`)
	anyHrefPattern      = regexp.MustCompile(`(?i)href\s*=\s*"([^"]+)"`)

	videoStudioAttrPattern = regexp.MustCompile(`(?i)data-bbtype\s*=\s*"video-studio"`)
)

// EmbeddedFile is a file reference carried as an escaped JSON blob in a
// data-bbfile attribute.
type EmbeddedFile struct {
	Name   string
	Mime   string
	Render string
}

// ContentLink is a reference to another content item in the same course,
// carried as a pair of data attributes.
type ContentLink struct {
	ID   string
	Type string
}

// InlineURL is a plain absolute hyperlink found in a body.
type InlineURL struct {
	Label string
	URL   string
}

// VideoStudioLink is an inline video-studio anchor. VideoID is "" when the
// companion JSON attribute is absent or undecodable; that is not an error.
type VideoStudioLink struct {
	VideoID string
	Href    string
}

// ParseEmbeddedFiles extracts embedded file references from an HTML body.
// Each match is HTML-unescaped and JSON-decoded; matches that fail to decode
// or resolve to an empty name are skipped.
func ParseEmbeddedFiles(body string) []EmbeddedFile {
	if body == "" {
		return nil
	}

	var out []EmbeddedFile
	for _, m := range bbFilePattern.FindAllStringSubmatch(body, -1) {
		var blob struct {
			LinkName        string `json:"linkName"`
			AlternativeText string `json:"alternativeText"`
			MimeType        string `json:"mimeType"`
			Render          string `json:"render"`
		}
		if err := json.Unmarshal([]byte(html.UnescapeString(m[1])), &blob); err != nil {
			continue
		}
		name := strings.TrimSpace(blob.LinkName)
		if name == "" {
			name = strings.TrimSpace(blob.AlternativeText)
		}
		if name == "" {
			continue
		}
		out = append(out, EmbeddedFile{
			Name:   name,
			Mime:   strings.TrimSpace(blob.MimeType),
			Render: strings.TrimSpace(blob.Render),
		})
	}
	return out
}

// ParseContentLinks extracts (id, type) content link pairs from an HTML
// body. Pairs with an empty id are skipped.
func ParseContentLinks(body string) []ContentLink {
	if body == "" {
		return nil
	}

	var out []ContentLink
	for _, m := range contentLinkPairPattern.FindAllStringSubmatch(body, -1) {
		id, linkType := m[1], m[2]
		if id == "" {
			linkType, id = m[3], m[4]
		}
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out = append(out, ContentLink{ID: id, Type: strings.TrimSpace(linkType)})
	}
	return out
}

// ParseInlineURLs extracts plain absolute http(s) hyperlinks from an HTML
// body. Anchors that also carry embedded-file or content-link attributes are
// excluded; those are reported by the dedicated extractors instead. The
// label is the anchor's inner text with markup stripped, falling back to the
// URL itself.
func ParseInlineURLs(body string) []InlineURL {
	if body == "" {
		return nil
	}

	var out []InlineURL
	for _, m := range anchorPattern.FindAllStringSubmatch(body, -1) {
		attrs, inner := m[1], m[2]
		lowerAttrs := strings.ToLower(attrs)
		if strings.Contains(lowerAttrs, "data-bbfile") || strings.Contains(lowerAttrs, "data-content-link") {
			continue
		}
		href := absoluteHrefPattern.FindStringSubmatch(attrs)
		if href == nil {
			continue
		}
		url := html.UnescapeString(href[1])
		label := htmlutil.InlineText(inner)
		if label == "" {
			label = url
		}
		out = append(out, InlineURL{Label: label, URL: url})
	}
	return out
}

// ParseVideoStudioLinks extracts inline video-studio anchors from an HTML
// body. The video id is pulled from the anchor's data-bbfile JSON blob when
// one decodes; a missing or broken blob yields an empty id, not an error.
func ParseVideoStudioLinks(body string) []VideoStudioLink {
	if body == "" {
		return nil
	}

	var out []VideoStudioLink
	for _, m := range anchorPattern.FindAllStringSubmatch(body, -1) {
		attrs := m[1]
		if !videoStudioAttrPattern.MatchString(attrs) {
			continue
		}
		href := ""
		if h := anyHrefPattern.FindStringSubmatch(attrs); h != nil {
			href = html.UnescapeString(h[1])
		}
		out = append(out, VideoStudioLink{VideoID: videoStudioID(attrs), Href: href})
	}
	return out
}

// videoStudioID decodes the data-bbfile blob on a video-studio anchor and
// returns its video id under either casing, or "" on any decode failure.
func videoStudioID(attrs string) string {
	m := bbFilePattern.FindStringSubmatch(attrs)
	if m == nil {
		return ""
	}
	var blob map[string]interface{}
	if err := json.Unmarshal([]byte(html.UnescapeString(m[1])), &blob); err != nil {
		return ""
	}
	for _, key := range []string{"videoId", "videoID"} {
		if id, ok := blob[key].(string); ok && id != "" {
			return id
		}
	}
	return ""
}
