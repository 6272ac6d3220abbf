package coursemap

import "strings"

// openXMLFamilies maps OpenXML office MIME types to their short families.
// The generic subtype split would otherwise yield the unwieldy full suffix.
var openXMLFamilies = map[string]string{
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "docx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
}

// legacyMSFamilies maps the pre-OpenXML office MIME types.
var legacyMSFamilies = map[string]string{
	"application/msword":            "doc",
	"application/vnd.ms-excel":      "xls",
	"application/vnd.ms-powerpoint": "ppt",
}

// MimeFamily derives the short family token from a full MIME type, e.g.
// "pdf" from "application/pdf". The office format tables are checked before
// the generic subtype split. Empty input yields "".
func MimeFamily(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if family, ok := openXMLFamilies[mime]; ok {
		return family
	}
	if family, ok := legacyMSFamilies[mime]; ok {
		return family
	}
	if i := strings.LastIndex(mime, "/"); i >= 0 {
		return mime[i+1:]
	}
	return mime
}
