package coursemap

import "strings"

// NodeType is the semantic display tag assigned to every content record. The
// string values are the labels shown in the text tree and CSV output.
type NodeType string

const (
	TypeUltraBody      NodeType = "UltraBody"
	TypeUltraDoc       NodeType = "ULTRA DOC"
	TypeModule         NodeType = "MODULE"
	TypeFolder         NodeType = "Folder"
	TypeLink           NodeType = "Link"
	TypeCourseLink     NodeType = "COURSE LINK"
	TypeFile           NodeType = "FILE"
	TypeImage          NodeType = "IMAGE"
	TypePDF            NodeType = "PDF"
	TypeVideo          NodeType = "VIDEO"
	TypeAudio          NodeType = "AUDIO"
	TypeForm           NodeType = "FORM"
	TypeTestAssignment NodeType = "TEST/ASSIGNMENT"
	TypeScorm          NodeType = "SCORM"
	TypeLti            NodeType = "LTI"
	TypeVideoStudio    NodeType = "VideoStudio"
	TypeUnknown        NodeType = "Unknown"
)

// videoStudioMarker is the inline attribute value that marks a video-studio
// embed inside a record body.
const videoStudioMarker = `data-bbtype="video-studio"`

// Classify maps a record to its display node type. It is total: unmatched
// records are tagged TypeUnknown. Rule order is significant; the first match
// wins, so a handler matching both the lesson and file patterns classifies
// as TypeModule.
func Classify(r *ContentRecord) NodeType {
	h := r.HandlerID()
	title := strings.ToLower(strings.TrimSpace(r.Title))

	switch {
	case strings.HasPrefix(h, documentHandlerPrefix):
		if title == "ultradocumentbody" || title == "documentbody" {
			return TypeUltraBody
		}
		return TypeUltraDoc
	case strings.Contains(h, "lesson"),
		strings.Contains(h, "learningmodule"),
		strings.Contains(h, "learning-module"),
		strings.Contains(h, "learning") && strings.Contains(h, "module"):
		return TypeModule
	case strings.Contains(h, "folder"):
		return TypeFolder
	case strings.Contains(h, "externallink"):
		return TypeLink
	case strings.Contains(h, "courselink"):
		return TypeCourseLink
	case strings.Contains(h, "file"):
		return fileSubKind(r.ContentHandler.FileMimeType())
	case strings.Contains(h, "asmt-survey-link"):
		return TypeForm
	case strings.Contains(h, "asmt-test-link"), strings.Contains(h, "assignment"):
		return TypeTestAssignment
	case strings.Contains(h, "plugin-scormengine"):
		return TypeScorm
	case strings.Contains(h, "x-bb-blti-link"), strings.Contains(h, "bltiplacement"):
		return TypeLti
	case strings.Contains(strings.ToLower(r.Body), videoStudioMarker):
		return TypeVideoStudio
	}

	return TypeUnknown
}

// fileSubKind maps a file record's MIME type to a display sub-kind. Records
// without usable file metadata fall back to the generic TypeFile.
func fileSubKind(mime string) NodeType {
	family := MimeFamily(mime)
	switch family {
	case "jpeg":
		family = "jpg"
	case "svg+xml":
		family = "svg"
	}

	switch family {
	case "jpg", "png", "gif", "webp", "svg":
		return TypeImage
	case "pdf":
		return TypePDF
	case "mp4", "quicktime", "webm":
		return TypeVideo
	case "mp3", "wav", "mpeg":
		return TypeAudio
	}
	return TypeFile
}
