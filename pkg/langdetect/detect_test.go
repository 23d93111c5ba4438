package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdtags/pkg/langdetect"
)

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{path: "README.md", want: true},
		{path: "docs/guide.markdown", want: true},
		{path: "notes.mdown", want: true},
		{path: "notes.mkd", want: true},
		{path: "main.go", want: false},
		{path: "notes.txt", want: false},
		{path: "Makefile", want: false},
		{path: "noext", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, langdetect.IsMarkdown(tt.path))
		})
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	assert.Contains(t, langdetect.Languages("README.md"), langdetect.Markdown)
	assert.Contains(t, langdetect.Languages("main.go"), "Go")
	assert.Empty(t, langdetect.Languages("file.unknown-extension"))
}
