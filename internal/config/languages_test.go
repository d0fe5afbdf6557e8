package config

import (
	"path/filepath"
	"testing"
)

func TestLanguagesMatch(t *testing.T) {
	cfg := DefaultLanguages()

	if got := cfg.Match("main.go"); got == nil || got.Name != "go" {
		t.Fatalf("Match main.go = %#v, want go", got)
	}
	if got := cfg.Match("go.mod"); got == nil || got.Name != "go" {
		t.Fatalf("Match go.mod = %#v, want go", got)
	}
	if got := cfg.Match(".bashrc"); got == nil || got.Name != "bash" {
		t.Fatalf("Match .bashrc = %#v, want bash", got)
	}
	if got := cfg.Match("deploy.yml"); got == nil || got.Name != "yaml" {
		t.Fatalf("Match deploy.yml = %#v, want yaml", got)
	}
	if got := cfg.Match("unknown.txt"); got != nil {
		t.Fatalf("Match unknown.txt = %#v, want nil", got)
	}
}

func TestLanguagesResolve(t *testing.T) {
	cfg := DefaultLanguages()
	for in, want := range map[string]string{
		"go":          "go",
		"Go":          "go",
		"golang":      "go",
		"yml":         "yaml",
		"config.toml": "toml",
		"zsh":         "bash",
		"":            "",
		"python":      "",
	} {
		if got := cfg.Resolve(in); got != want {
			t.Fatalf("Resolve(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadLanguages(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QPROMPT_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "languages.toml"), `
[[language]]
name = "yaml"
file-types = ["txt"]
`)

	cfg, err := LoadLanguages()
	if err != nil {
		t.Fatalf("LoadLanguages error: %v", err)
	}
	if len(cfg.Languages) != len(DefaultLanguages().Languages)+1 {
		t.Fatalf("Languages len = %d, want defaults plus one", len(cfg.Languages))
	}
	if got := cfg.Resolve("notes.txt"); got != "yaml" {
		t.Fatalf("Resolve notes.txt = %q, want yaml", got)
	}
	if got := cfg.Resolve("toml"); got != "toml" {
		t.Fatalf("Resolve toml = %q, want toml", got)
	}
}

func TestLoadLanguagesMissing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QPROMPT_CONFIG_HOME", dir)

	cfg, err := LoadLanguages()
	if err != nil {
		t.Fatalf("LoadLanguages error: %v", err)
	}
	if len(cfg.Languages) != len(DefaultLanguages().Languages) {
		t.Fatalf("Languages len = %d, want defaults only", len(cfg.Languages))
	}
}
