package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdtags/pkg/config"
)

// projectDir returns a temporary directory marked as a VCS root so the
// upward config search stays inside it.
func projectDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("create .git: %v", err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(projectDir(t)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatText {
		t.Errorf("expected format %q, got %q", config.FormatText, result.Config.Format)
	}
	if result.Config.MaxDepth != config.DefaultMaxDepth {
		t.Errorf("expected max_depth %d, got %d", config.DefaultMaxDepth, result.Config.MaxDepth)
	}
	if !result.Config.ShouldShowText() {
		t.Error("expected show_text to default to true")
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".mdtags.yml"), `
format: json
show_text: false
extensions: [".md", ".mdx"]
`)

	result, err := Load(context.Background(), isolated(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", cfg.Format)
	}
	if cfg.ShouldShowText() {
		t.Error("expected show_text false from project config")
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[1] != ".mdx" {
		t.Errorf("unexpected extensions %v", cfg.Extensions)
	}
	if cfg.MaxDepth != config.DefaultMaxDepth {
		t.Errorf("unset max_depth should keep the default, got %d", cfg.MaxDepth)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ProjectConfigFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, "mdtags.yaml"), "max_depth: 12\n")

	sub := filepath.Join(dir, "docs", "guide")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolated(sub))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.MaxDepth != 12 {
		t.Errorf("expected max_depth 12, got %d", result.Config.MaxDepth)
	}
}

func TestLoad_ExplicitConfigOverridesProject(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".mdtags.yml"), "format: json\njobs: 2\n")

	explicit := filepath.Join(dir, "custom.yml")
	writeFile(t, explicit, "format: summary\n")

	opts := isolated(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatSummary {
		t.Errorf("expected explicit format summary, got %q", result.Config.Format)
	}
	if result.Config.Jobs != 2 {
		t.Errorf("expected jobs from project config, got %d", result.Config.Jobs)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != explicit {
		t.Errorf("unexpected load order %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".mdtags.yml"), "format: json\ndetect_language: true\n")

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{
		Format:         config.FormatFlat,
		DetectLanguage: config.Bool(false),
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatFlat {
		t.Errorf("expected CLI format flat, got %q", result.Config.Format)
	}
	if result.Config.ShouldDetectLanguage() {
		t.Error("expected CLI to switch detect_language off")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	path := filepath.Join(dir, ".mdtags.yml")
	writeFile(t, path, "format: sarif\n")

	_, err := Load(context.Background(), isolated(dir))
	if err == nil {
		t.Fatal("expected error for invalid format")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if validationErr.Field != "format" || validationErr.FilePath != path {
		t.Errorf("unexpected validation error %+v", validationErr)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".mdtags.yml"), "format: [\n")

	if _, err := Load(context.Background(), isolated(dir)); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoad_Environment(t *testing.T) {
	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".mdtags.yml"), "format: json\n")

	t.Setenv("MDTAGS_FORMAT", "summary")
	t.Setenv("MDTAGS_IGNORE", "vendor/**, build/**")
	t.Setenv("MDTAGS_SHOW_TEXT", "false")

	opts := isolated(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatSummary {
		t.Errorf("expected env format summary, got %q", result.Config.Format)
	}
	if len(result.Config.Ignore) != 2 || result.Config.Ignore[1] != "build/**" {
		t.Errorf("unexpected ignore %v", result.Config.Ignore)
	}
	if result.Config.ShouldShowText() {
		t.Error("expected env to switch show_text off")
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("MDTAGS_JOBS", "many")

	opts := isolated(projectDir(t))
	opts.IgnoreEnv = false

	if _, err := Load(context.Background(), opts); err == nil {
		t.Fatal("expected error for non-numeric MDTAGS_JOBS")
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, isolated(projectDir(t))); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
