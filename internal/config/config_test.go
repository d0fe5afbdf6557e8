package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qprompt/internal/prompt"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("QPROMPT_CONFIG_HOME", "/tmp/qprompt-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/qprompt-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/qprompt-config")
	}

	t.Setenv("QPROMPT_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/qprompt" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/qprompt")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("QPROMPT_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Prompt.Label != "Input" {
		t.Fatalf("Label = %q, want %q", cfg.Prompt.Label, "Input")
	}
	if rs, _ := cfg.RenderStyle(); rs != prompt.RenderDefault {
		t.Fatalf("RenderStyle = %s, want default", rs)
	}
	if _, ok, _ := cfg.Block(); ok {
		t.Fatalf("default config has a block")
	}
}

func TestLoadWithThemeAndOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QPROMPT_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "theme", "test.toml"), `
pending = "#111111"
done = "#222222"
syntax-keyword = "#333333"
`)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[prompt]
label = "Name"
render-style = "password"
border = "right,bottom"
title = "Login"
width = 40

[theme]
theme = "test"
done = "#123456"

[keymap]
tab = "complete"
"ctrl+k" = "none"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Prompt.Label != "Name" {
		t.Fatalf("Label = %q, want %q", cfg.Prompt.Label, "Name")
	}
	if cfg.Prompt.Width != 40 {
		t.Fatalf("Width = %d, want 40", cfg.Prompt.Width)
	}
	if rs, _ := cfg.RenderStyle(); rs != prompt.RenderPassword {
		t.Fatalf("RenderStyle = %s, want password", rs)
	}
	block, ok, err := cfg.Block()
	if err != nil || !ok {
		t.Fatalf("Block = (%v, %v)", ok, err)
	}
	if block.Borders != prompt.BorderRight|prompt.BorderBottom || block.Title != "Login" {
		t.Fatalf("Block = %+v", block)
	}
	if cfg.Theme.Pending != "#111111" {
		t.Fatalf("Pending = %q, want %q", cfg.Theme.Pending, "#111111")
	}
	if cfg.Theme.Done != "#123456" {
		t.Fatalf("Done = %q, want %q", cfg.Theme.Done, "#123456")
	}
	if cfg.Theme.Aborted != "maroon" {
		t.Fatalf("Aborted = %q, want default %q", cfg.Theme.Aborted, "maroon")
	}

	keys, err := cfg.Bindings()
	if err != nil {
		t.Fatalf("Bindings error: %v", err)
	}
	if keys["tab"] != prompt.ActionComplete {
		t.Fatalf("tab = %q, want complete", keys["tab"])
	}
	if keys["enter"] != prompt.ActionComplete {
		t.Fatalf("default enter binding lost")
	}
	if _, ok := keys["ctrl+k"]; ok {
		t.Fatalf("ctrl+k still bound")
	}
}

func TestLoadThemeWrapped(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QPROMPT_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "theme", "wrapped.toml"), `
[theme]
pending = "#aaaaaa"
label = "#bbbbbb"
`)

	theme, err := LoadTheme("wrapped")
	if err != nil {
		t.Fatalf("LoadTheme error: %v", err)
	}
	if theme.Pending != "#aaaaaa" {
		t.Fatalf("Pending = %q, want %q", theme.Pending, "#aaaaaa")
	}
	if theme.Label != "#bbbbbb" {
		t.Fatalf("Label = %q, want %q", theme.Label, "#bbbbbb")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   string
	}{
		{"render style", "[prompt]\nrender-style = \"hidden\"\n", "render style"},
		{"border", "[prompt]\nborder = \"top,middle\"\n", "border"},
		{"action", "[keymap]\n\"ctrl+z\" = \"undo\"\n", "undo"},
		{"size", "[prompt]\nheight = -1\n", "negative"},
		{"toml", "[prompt\n", "config.toml"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("QPROMPT_CONFIG_HOME", dir)
			writeFile(t, filepath.Join(dir, "config.toml"), tc.config)
			_, err := Load()
			if err == nil {
				t.Fatalf("Load accepted %q", tc.config)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestPromptTheme(t *testing.T) {
	cfg := Default()
	cfg.Theme.Label = "#102030"
	cfg.Theme.SyntaxString = "red"
	theme := cfg.PromptTheme()

	fg, _, attrs := theme.Label.Decompose()
	if fg != tcell.NewRGBColor(0x10, 0x20, 0x30) {
		t.Fatalf("label fg = %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Fatalf("label lost bold")
	}
	if fg, _, _ := theme.Syntax["string"].Decompose(); fg != tcell.ColorRed {
		t.Fatalf("string fg = %v, want red", fg)
	}
	if _, _, attrs := theme.Separator.Decompose(); attrs&tcell.AttrDim == 0 {
		t.Fatalf("separator lost dim")
	}
	if _, ok := theme.Syntax["keyword"]; !ok {
		t.Fatalf("built-in keyword style dropped")
	}
}
