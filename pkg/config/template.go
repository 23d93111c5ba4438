package config

import (
	"bytes"
	"fmt"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting with its default value. Otherwise settings
	// are written commented out.
	Full bool
}

// templateField documents one config key.
type templateField struct {
	key         string
	description string
	value       func(cfg *Config) string
}

//nolint:gochecknoglobals // Read-only template table.
var templateFields = []templateField{
	{
		key:         "format",
		description: "Output format: text, json, flat or summary.",
		value:       func(cfg *Config) string { return string(cfg.Format) },
	},
	{
		key:         "color",
		description: "Styled output: auto, always or never. Auto enables color when writing to a terminal.",
		value:       func(cfg *Config) string { return string(cfg.Color) },
	},
	{
		key:         "jobs",
		description: "Number of files parsed in parallel (0 = one per CPU core).",
		value:       func(cfg *Config) string { return fmt.Sprint(cfg.Jobs) },
	},
	{
		key:         "extensions",
		description: "File extensions picked up when walking directories.",
		value:       func(cfg *Config) string { return yamlList(cfg.Extensions) },
	},
	{
		key: "detect_language",
		description: "Also accept files that language detection classifies as Markdown, " +
			"such as README files without an extension.",
		value: func(cfg *Config) string { return fmt.Sprint(cfg.ShouldDetectLanguage()) },
	},
	{
		key: "max_depth",
		description: "Maximum nesting of emphasis and links inside each other. " +
			"Deeper content is reported as plain text.",
		value: func(cfg *Config) string { return fmt.Sprint(cfg.MaxDepth) },
	},
	{
		key:         "show_text",
		description: "Include the text of each tag in text and json output.",
		value:       func(cfg *Config) string { return fmt.Sprint(cfg.ShouldShowText()) },
	},
	{
		key:         "ignore",
		description: "Glob patterns for files to skip.",
		value:       func(_ *Config) string { return yamlList([]string{"vendor/**", "node_modules/**"}) },
	},
}

// GenerateTemplate returns a commented configuration file holding the
// default settings.
func GenerateTemplate(opts TemplateOptions) []byte {
	defaults := NewConfig()

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n")

	prefix := "# "
	if opts.Full {
		prefix = ""
	}

	for _, field := range templateFields {
		buf.WriteString("\n# ")
		buf.WriteString(wrapComment(field.description, commentWrapWidth))
		buf.WriteString("\n")

		value := field.value(defaults)
		if strings.HasPrefix(value, "\n") {
			buf.WriteString(prefix + field.key + ":")
			for _, line := range strings.Split(strings.TrimPrefix(value, "\n"), "\n") {
				buf.WriteString("\n" + prefix + line)
			}
			buf.WriteString("\n")
			continue
		}
		fmt.Fprintf(&buf, "%s%s: %s\n", prefix, field.key, value)
	}

	return buf.Bytes()
}

// yamlList renders items as an indented YAML block sequence.
func yamlList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "\n  - %q", item)
	}
	return sb.String()
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n# ")
}

// DefaultTemplateHeader returns the header comment of generated configs.
func DefaultTemplateHeader() string {
	return `# mdtags configuration
# See: https://github.com/yaklabco/mdtags`
}
