package coursemap

import (
	"strconv"
	"strings"
)

// Handler identifiers the pipeline special-cases. Everything else is matched
// by the substring rules in Classify.
const (
	documentHandlerPrefix = "resource/x-bb-document"
	folderHandler         = "resource/x-bb-folder"
	externalLinkHandler   = "resource/x-bb-externallink"
)

// ContentRecord is a single content item as returned by the course contents
// API. Records are read-only once fetched; every derived structure (tree
// index, merged nodes, rows) is computed without mutating them.
type ContentRecord struct {
	ID             string         `json:"id"`
	ParentID       string         `json:"parentId"`
	Title          string         `json:"title"`
	Position       *int           `json:"position"`
	Body           string         `json:"body"`
	Availability   Availability   `json:"availability"`
	ContentHandler ContentHandler `json:"contentHandler"`
}

// Availability mirrors the API's availability object. Available carries the
// raw "Yes"/"No" string and is displayed as-is rather than coerced to a bool.
type Availability struct {
	Available string `json:"available"`
}

// ContentHandler is the open, handler-specific side table of a record. Known
// fields (id, url, launchUrl, isBbPage, nested file metadata) are read
// through typed accessors that supply defaults; anything else is carried but
// ignored.
type ContentHandler map[string]interface{}

// ID returns the lowercased handler identifier, or "" when absent.
func (h ContentHandler) ID() string {
	s, _ := h["id"].(string)
	return strings.ToLower(s)
}

// String returns the named field as a string, or "" when absent or not a
// string.
func (h ContentHandler) String(key string) string {
	s, _ := h[key].(string)
	return s
}

// Bool returns the named field as a bool, or false when absent or not a bool.
func (h ContentHandler) Bool(key string) bool {
	b, _ := h[key].(bool)
	return b
}

// FileMimeType returns the nested file.mimeType field, or "" when any level
// is missing. Some API versions omit file metadata entirely for file records.
func (h ContentHandler) FileMimeType() string {
	file, _ := h["file"].(map[string]interface{})
	if file == nil {
		return ""
	}
	s, _ := file["mimeType"].(string)
	return s
}

// HandlerID is shorthand for the record's lowercased handler identifier.
func (r *ContentRecord) HandlerID() string {
	return r.ContentHandler.ID()
}

// IsExternalLink reports whether the record is an external link item.
func (r *ContentRecord) IsExternalLink() bool {
	return r.HandlerID() == externalLinkHandler
}

// ExternalLinkURL returns the link target of an external link record,
// preferring url over launchUrl. Empty for other record kinds.
func (r *ContentRecord) ExternalLinkURL() string {
	if u := strings.TrimSpace(r.ContentHandler.String("url")); u != "" {
		return u
	}
	return strings.TrimSpace(r.ContentHandler.String("launchUrl"))
}

// IsUltraPage reports whether the record is an Ultra Page wrapper: a folder
// handler flagged as a page. Ultra Pages are merged with their document-body
// child by TryMerge.
func (r *ContentRecord) IsUltraPage() bool {
	return r.HandlerID() == folderHandler && r.ContentHandler.Bool("isBbPage")
}

// IsDocumentHandler reports whether the record's handler is in the document
// family (including the synthetic document-body child of an Ultra Page).
func (r *ContentRecord) IsDocumentHandler() bool {
	return strings.HasPrefix(r.HandlerID(), documentHandlerPrefix)
}

// PositionString renders the sibling position for display, "" when unset.
func (r *ContentRecord) PositionString() string {
	if r.Position == nil {
		return ""
	}
	return strconv.Itoa(*r.Position)
}
