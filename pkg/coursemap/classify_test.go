package coursemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		record   ContentRecord
		expected NodeType
	}{
		{
			name: "document handler",
			record: ContentRecord{
				Title:          "Week 1 Overview",
				ContentHandler: ContentHandler{"id": "resource/x-bb-document"},
			},
			expected: TypeUltraDoc,
		},
		{
			name: "document body leaf",
			record: ContentRecord{
				Title:          "UltraDocumentBody",
				ContentHandler: ContentHandler{"id": "resource/x-bb-document"},
			},
			expected: TypeUltraBody,
		},
		{
			name: "legacy document body title",
			record: ContentRecord{
				Title:          "documentBody",
				ContentHandler: ContentHandler{"id": "resource/x-bb-document-extended"},
			},
			expected: TypeUltraBody,
		},
		{
			name: "lesson handler",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-lesson"},
			},
			expected: TypeModule,
		},
		{
			name: "learning module handler",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-learningmodule"},
			},
			expected: TypeModule,
		},
		{
			name: "lesson wins over file",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-lesson-file"},
			},
			expected: TypeModule,
		},
		{
			name: "folder handler",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-folder"},
			},
			expected: TypeFolder,
		},
		{
			name: "external link handler",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-externallink"},
			},
			expected: TypeLink,
		},
		{
			name: "course link handler",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-courselink"},
			},
			expected: TypeCourseLink,
		},
		{
			name: "pdf file",
			record: ContentRecord{
				ContentHandler: ContentHandler{
					"id":   "resource/x-bb-file",
					"file": map[string]interface{}{"mimeType": "application/pdf"},
				},
			},
			expected: TypePDF,
		},
		{
			name: "jpeg image normalized",
			record: ContentRecord{
				ContentHandler: ContentHandler{
					"id":   "resource/x-bb-file",
					"file": map[string]interface{}{"mimeType": "image/jpeg"},
				},
			},
			expected: TypeImage,
		},
		{
			name: "svg image normalized",
			record: ContentRecord{
				ContentHandler: ContentHandler{
					"id":   "resource/x-bb-file",
					"file": map[string]interface{}{"mimeType": "image/svg+xml"},
				},
			},
			expected: TypeImage,
		},
		{
			name: "quicktime video",
			record: ContentRecord{
				ContentHandler: ContentHandler{
					"id":   "resource/x-bb-file",
					"file": map[string]interface{}{"mimeType": "video/quicktime"},
				},
			},
			expected: TypeVideo,
		},
		{
			name: "audio file",
			record: ContentRecord{
				ContentHandler: ContentHandler{
					"id":   "resource/x-bb-file",
					"file": map[string]interface{}{"mimeType": "audio/mpeg"},
				},
			},
			expected: TypeAudio,
		},
		{
			name: "file without mime metadata",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-file"},
			},
			expected: TypeFile,
		},
		{
			name: "word document file",
			record: ContentRecord{
				ContentHandler: ContentHandler{
					"id":   "resource/x-bb-file",
					"file": map[string]interface{}{"mimeType": "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
				},
			},
			expected: TypeFile,
		},
		{
			name: "survey link",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-asmt-survey-link"},
			},
			expected: TypeForm,
		},
		{
			name: "test link",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-asmt-test-link"},
			},
			expected: TypeTestAssignment,
		},
		{
			name: "assignment handler",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-assignment"},
			},
			expected: TypeTestAssignment,
		},
		{
			name: "scorm handler",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-plugin-scormengine"},
			},
			expected: TypeScorm,
		},
		{
			name: "lti link",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-blti-link"},
			},
			expected: TypeLti,
		},
		{
			name: "lti placement",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "resource/x-bb-bltiplacement-portal"},
			},
			expected: TypeLti,
		},
		{
			name: "video studio marker in body",
			record: ContentRecord{
				Body:           `<a data-bbtype="video-studio" href="/play/1">Watch</a>`,
				ContentHandler: ContentHandler{"id": "resource/x-bb-toollink"},
			},
			expected: TypeVideoStudio,
		},
		{
			name: "uppercase handler id lowercased",
			record: ContentRecord{
				ContentHandler: ContentHandler{"id": "RESOURCE/X-BB-FOLDER"},
			},
			expected: TypeFolder,
		},
		{
			name:     "no handler",
			record:   ContentRecord{Title: "Mystery"},
			expected: TypeUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Classify(&tt.record))
		})
	}
}

func TestMimeFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "pdf", input: "application/pdf", expected: "pdf"},
		{name: "uppercase input", input: "Application/PDF", expected: "pdf"},
		{name: "docx", input: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", expected: "docx"},
		{name: "xlsx", input: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", expected: "xlsx"},
		{name: "pptx", input: "application/vnd.openxmlformats-officedocument.presentationml.presentation", expected: "pptx"},
		{name: "legacy word", input: "application/msword", expected: "doc"},
		{name: "legacy excel", input: "application/vnd.ms-excel", expected: "xls"},
		{name: "legacy powerpoint", input: "application/vnd.ms-powerpoint", expected: "ppt"},
		{name: "no slash passes through", input: "plaintext", expected: "plaintext"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MimeFamily(tt.input))
		})
	}
}
