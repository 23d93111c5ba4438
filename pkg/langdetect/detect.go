// Package langdetect classifies files by language using go-enry. The
// runner uses it to accept Markdown files whose extension is not in the
// configured list.
package langdetect

import (
	"path/filepath"
	"slices"

	"github.com/go-enry/go-enry/v2"
)

// Markdown is the enry name of the Markdown language.
const Markdown = "Markdown"

// Languages returns every language enry associates with the file name,
// either by exact file name or by extension. The result is empty for
// unknown names.
func Languages(path string) []string {
	name := filepath.Base(path)

	if langs := enry.GetLanguagesByFilename(name, nil, nil); len(langs) > 0 {
		return langs
	}
	return enry.GetLanguagesByExtension(name, nil, nil)
}

// IsMarkdown reports whether enry considers path a Markdown file.
// Ambiguous extensions count when Markdown is one of the candidates.
func IsMarkdown(path string) bool {
	return slices.Contains(Languages(path), Markdown)
}
