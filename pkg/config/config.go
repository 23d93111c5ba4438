// Package config defines the mdtags configuration types.
// These are plain data structures; discovery and merging live in
// internal/configloader.
package config

// OutputFormat selects how tag results are printed.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatFlat    OutputFormat = "flat"
	FormatSummary OutputFormat = "summary"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// DefaultMaxDepth is the inline nesting limit used when none is configured.
const DefaultMaxDepth = 64

// DefaultExtensions returns the file extensions treated as Markdown.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// Config is the root configuration structure.
type Config struct {
	// Format is the output format.
	Format OutputFormat `mapstructure:"format" yaml:"format,omitempty"`

	// Color controls styled output: auto, always or never.
	Color ColorMode `mapstructure:"color" yaml:"color,omitempty"`

	// Jobs is the number of files parsed in parallel. Zero means one per CPU.
	Jobs int `mapstructure:"jobs" yaml:"jobs,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty"`

	// Extensions lists the file extensions picked up when walking
	// directories.
	Extensions []string `mapstructure:"extensions" yaml:"extensions,omitempty"`

	// DetectLanguage also accepts files that language detection classifies
	// as Markdown regardless of their extension.
	DetectLanguage *bool `mapstructure:"detect_language" yaml:"detect_language,omitempty"`

	// MaxDepth bounds nesting of inline spans.
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth,omitempty"`

	// ShowText includes the extracted text of each tag in the output.
	ShowText *bool `mapstructure:"show_text" yaml:"show_text,omitempty"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Format:         FormatText,
		Color:          ColorAuto,
		Jobs:           0,
		Extensions:     DefaultExtensions(),
		DetectLanguage: Bool(false),
		MaxDepth:       DefaultMaxDepth,
		ShowText:       Bool(true),
	}
}

// ShouldDetectLanguage reports whether language detection is enabled.
func (c *Config) ShouldDetectLanguage() bool {
	return c != nil && c.DetectLanguage != nil && *c.DetectLanguage
}

// ShouldShowText reports whether extracted text is printed. It defaults to
// true when unset.
func (c *Config) ShouldShowText() bool {
	return c == nil || c.ShowText == nil || *c.ShowText
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
