package coursemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmbeddedFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected []EmbeddedFile
	}{
		{
			name:     "empty body",
			body:     "",
			expected: nil,
		},
		{
			name: "escaped json blob",
			body: `<a data-bbfile="{&quot;linkName&quot;:&quot;Syllabus.pdf&quot;,&quot;mimeType&quot;:&quot;application/pdf&quot;,&quot;render&quot;:&quot;inline&quot;}">Syllabus</a>`,
			expected: []EmbeddedFile{
				{Name: "Syllabus.pdf", Mime: "application/pdf", Render: "inline"},
			},
		},
		{
			name: "alternative text fallback",
			body: `<img data-bbfile="{&quot;alternativeText&quot;:&quot;diagram.png&quot;,&quot;mimeType&quot;:&quot;image/png&quot;}">`,
			expected: []EmbeddedFile{
				{Name: "diagram.png", Mime: "image/png"},
			},
		},
		{
			name: "multiple files in one body",
			body: `<a data-bbfile="{&quot;linkName&quot;:&quot;a.docx&quot;}">a</a>` +
				`<a data-bbfile="{&quot;linkName&quot;:&quot;b.pptx&quot;}">b</a>`,
			expected: []EmbeddedFile{
				{Name: "a.docx"},
				{Name: "b.pptx"},
			},
		},
		{
			name:     "undecodable blob skipped",
			body:     `<a data-bbfile="not-json">broken</a>`,
			expected: nil,
		},
		{
			name:     "empty name skipped",
			body:     `<a data-bbfile="{&quot;mimeType&quot;:&quot;application/pdf&quot;}">x</a>`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseEmbeddedFiles(tt.body))
		})
	}
}

func TestParseContentLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected []ContentLink
	}{
		{
			name:     "empty body",
			body:     "",
			expected: nil,
		},
		{
			name:     "id before type",
			body:     `<a data-content-link="_123_1" data-content-link-type="document">Doc</a>`,
			expected: []ContentLink{{ID: "_123_1", Type: "document"}},
		},
		{
			name:     "type before id",
			body:     `<a data-content-link-type="knowledgecheck" data-content-link="_456_1">Check</a>`,
			expected: []ContentLink{{ID: "_456_1", Type: "knowledgecheck"}},
		},
		{
			name: "multiple links",
			body: `<a data-content-link="_1_1" data-content-link-type="document">a</a>` +
				`<a data-content-link="_2_1" data-content-link-type="test">b</a>`,
			expected: []ContentLink{
				{ID: "_1_1", Type: "document"},
				{ID: "_2_1", Type: "test"},
			},
		},
		{
			name:     "lone id attribute without type is ignored",
			body:     `<a data-content-link="_9_1">x</a>`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseContentLinks(tt.body))
		})
	}
}

func TestParseInlineURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected []InlineURL
	}{
		{
			name:     "empty body",
			body:     "",
			expected: nil,
		},
		{
			name:     "plain absolute link",
			body:     `<a href="https://example.edu/syllabus">Course syllabus</a>`,
			expected: []InlineURL{{Label: "Course syllabus", URL: "https://example.edu/syllabus"}},
		},
		{
			name:     "relative link ignored",
			body:     `<a href="/internal/page">Internal</a>`,
			expected: nil,
		},
		{
			name:     "embedded file anchor excluded",
			body:     `<a href="https://example.edu/f.pdf" data-bbfile="{&quot;linkName&quot;:&quot;f.pdf&quot;}">f</a>`,
			expected: nil,
		},
		{
			name:     "content link anchor excluded",
			body:     `<a href="https://example.edu/c" data-content-link="_1_1" data-content-link-type="document">c</a>`,
			expected: nil,
		},
		{
			name: "label stripped of nested markup",
			body: "<a href=\"https://example.edu/x\"><strong>Read\n  this</strong> first</a>",
			expected: []InlineURL{
				{Label: "Read this first", URL: "https://example.edu/x"},
			},
		},
		{
			name:     "empty label falls back to url",
			body:     `<a href="https://example.edu/y"><img src="pic.png"></a>`,
			expected: []InlineURL{{Label: "https://example.edu/y", URL: "https://example.edu/y"}},
		},
		{
			name:     "escaped ampersand decoded",
			body:     `<a href="https://example.edu/q?a=1&amp;b=2">q</a>`,
			expected: []InlineURL{{Label: "q", URL: "https://example.edu/q?a=1&b=2"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseInlineURLs(tt.body))
		})
	}
}

func TestParseVideoStudioLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected []VideoStudioLink
	}{
		{
			name:     "empty body",
			body:     "",
			expected: nil,
		},
		{
			name: "anchor with video id",
			body: `<a data-bbtype="video-studio" data-bbfile="{&quot;videoId&quot;:&quot;vid-42&quot;}" href="/studio/play/vid-42">Lecture 1</a>`,
			expected: []VideoStudioLink{
				{VideoID: "vid-42", Href: "/studio/play/vid-42"},
			},
		},
		{
			name: "alternate id casing",
			body: `<a data-bbtype="video-studio" data-bbfile="{&quot;videoID&quot;:&quot;vid-7&quot;}" href="/play">x</a>`,
			expected: []VideoStudioLink{
				{VideoID: "vid-7", Href: "/play"},
			},
		},
		{
			name:     "missing blob yields empty id",
			body:     `<a data-bbtype="video-studio" href="/play/9">x</a>`,
			expected: []VideoStudioLink{{VideoID: "", Href: "/play/9"}},
		},
		{
			name:     "broken blob yields empty id",
			body:     `<a data-bbtype="video-studio" data-bbfile="nope" href="/play/9">x</a>`,
			expected: []VideoStudioLink{{VideoID: "", Href: "/play/9"}},
		},
		{
			name:     "ordinary anchor ignored",
			body:     `<a href="https://example.edu">x</a>`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseVideoStudioLinks(tt.body))
		})
	}
}

func TestParseEmbeddedFilesDoesNotConsumeVideoStudio(t *testing.T) {
	t.Parallel()

	// A video-studio anchor also carries data-bbfile; its blob has no
	// linkName, so the file extractor skips it while the video extractor
	// reports it.
	body := `<a data-bbtype="video-studio" data-bbfile="{&quot;videoId&quot;:&quot;vid-1&quot;}" href="/play">v</a>` +
		`<a data-bbfile="{&quot;linkName&quot;:&quot;notes.pdf&quot;,&quot;mimeType&quot;:&quot;application/pdf&quot;}">n</a>`

	files := ParseEmbeddedFiles(body)
	require.Len(t, files, 1)
	assert.Equal(t, "notes.pdf", files[0].Name)

	videos := ParseVideoStudioLinks(body)
	require.Len(t, videos, 1)
	assert.Equal(t, "vid-1", videos[0].VideoID)
}
