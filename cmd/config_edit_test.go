package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveConfigEditPath(t *testing.T) {
	got, err := resolveConfigEditPath("/tmp/flag.yaml", "/tmp/used.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/tmp/flag.yaml" {
		t.Fatalf("flag should win, got %s", got)
	}

	got, err = resolveConfigEditPath("", "/tmp/used.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/tmp/used.yaml" {
		t.Fatalf("loaded config should win over default, got %s", got)
	}

	got, err = resolveConfigEditPath("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(got, ".minimcu.yaml") {
		t.Fatalf("expected home default, got %s", got)
	}
}

func TestEnsureConfigFileWithTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".minimcu.yaml")

	created, err := ensureConfigFileWithTemplate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected file to be created")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created file: %v", err)
	}
	if !strings.Contains(string(content), "database:") {
		t.Fatalf("template content missing: %q", string(content))
	}

	created, err = ensureConfigFileWithTemplate(path)
	if err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if created {
		t.Fatalf("existing file must not be recreated")
	}
}

func TestResolveEditorValue(t *testing.T) {
	if got := resolveEditorValue("code --wait", "nano"); got != "code --wait" {
		t.Fatalf("VISUAL should win, got %s", got)
	}
	if got := resolveEditorValue("", "nano"); got != "nano" {
		t.Fatalf("EDITOR fallback, got %s", got)
	}
	if got := resolveEditorValue(" ", ""); got != "vi" {
		t.Fatalf("vi default, got %s", got)
	}
}

func TestBuildEditorCommand(t *testing.T) {
	cmd, err := buildEditorCommand("code --wait", "/tmp/cfg.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmd.Args) != 3 || cmd.Args[1] != "--wait" || cmd.Args[2] != "/tmp/cfg.yaml" {
		t.Fatalf("unexpected args: %v", cmd.Args)
	}

	if _, err := buildEditorCommand("  ", "/tmp/cfg.yaml"); err == nil {
		t.Fatalf("expected error for empty editor")
	}
}
