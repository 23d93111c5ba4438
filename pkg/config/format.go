package config

import (
	"fmt"
	"strings"
)

// Formats returns all output formats in display order.
func Formats() []OutputFormat {
	return []OutputFormat{FormatText, FormatJSON, FormatFlat, FormatSummary}
}

// IsValid returns true for a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatFlat, FormatSummary:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a format name. An empty name selects text.
func ParseOutputFormat(name string) (OutputFormat, error) {
	if name == "" {
		return FormatText, nil
	}
	format := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q (valid: text, json, flat, summary)", name)
	}
	return format, nil
}

// IsValid returns true for a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// ParseColorMode parses a color mode name. An empty name selects auto.
func ParseColorMode(name string) (ColorMode, error) {
	if name == "" {
		return ColorAuto, nil
	}
	mode := ColorMode(strings.ToLower(strings.TrimSpace(name)))
	if !mode.IsValid() {
		return "", fmt.Errorf("unknown color mode %q (valid: auto, always, never)", name)
	}
	return mode, nil
}
