package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qprompt/internal/prompt"
)

type PromptOptions struct {
	Label       string `toml:"label"`
	RenderStyle string `toml:"render-style"`
	Border      string `toml:"border"`
	Title       string `toml:"title"`
	Language    string `toml:"language"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
}

// Theme colors are "#RRGGBB" or tcell color names. Empty keeps the built-in
// style.
type Theme struct {
	Theme             string `toml:"theme"`
	Pending           string `toml:"pending"`
	Aborted           string `toml:"aborted"`
	Done              string `toml:"done"`
	Label             string `toml:"label"`
	Separator         string `toml:"separator"`
	Value             string `toml:"value"`
	Border            string `toml:"border"`
	SyntaxKeyword     string `toml:"syntax-keyword"`
	SyntaxString      string `toml:"syntax-string"`
	SyntaxComment     string `toml:"syntax-comment"`
	SyntaxType        string `toml:"syntax-type"`
	SyntaxFunction    string `toml:"syntax-function"`
	SyntaxNumber      string `toml:"syntax-number"`
	SyntaxConstant    string `toml:"syntax-constant"`
	SyntaxOperator    string `toml:"syntax-operator"`
	SyntaxPunctuation string `toml:"syntax-punctuation"`
	SyntaxField       string `toml:"syntax-field"`
	SyntaxBuiltin     string `toml:"syntax-builtin"`
	SyntaxVariable    string `toml:"syntax-variable"`
	SyntaxParameter   string `toml:"syntax-parameter"`
}

type Config struct {
	Prompt PromptOptions     `toml:"prompt"`
	Theme  Theme             `toml:"theme"`
	Keymap map[string]string `toml:"keymap"`
}

func Default() Config {
	return Config{
		Prompt: PromptOptions{
			Label:       "Input",
			RenderStyle: "default",
			Border:      "none",
		},
		Theme: Theme{
			Pending:   "teal",
			Aborted:   "maroon",
			Done:      "green",
			Separator: "teal",
		},
		Keymap: map[string]string{},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	mergePrompt(&cfg.Prompt, userCfg.Prompt)
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, fmt.Errorf("theme %q: %w", cfg.Theme.Theme, err)
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	for k, v := range userCfg.Keymap {
		cfg.Keymap[k] = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every value that has a closed set of choices.
func (c Config) Validate() error {
	if _, err := c.RenderStyle(); err != nil {
		return err
	}
	if _, err := prompt.ParseBorders(c.Prompt.Border); err != nil {
		return err
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	if c.Prompt.Width < 0 || c.Prompt.Height < 0 {
		return fmt.Errorf("prompt size %dx%d is negative", c.Prompt.Width, c.Prompt.Height)
	}
	return nil
}

func (c Config) RenderStyle() (prompt.RenderStyle, error) {
	return prompt.ParseRenderStyle(c.Prompt.RenderStyle)
}

// Block returns the configured border block, or false when there is none.
func (c Config) Block() (prompt.Block, bool, error) {
	borders, err := prompt.ParseBorders(c.Prompt.Border)
	if err != nil {
		return prompt.Block{}, false, err
	}
	if borders == prompt.BorderNone {
		return prompt.Block{}, false, nil
	}
	style := tcell.StyleDefault.Foreground(prompt.ParseColor(c.Theme.Border, tcell.ColorDefault))
	return prompt.Block{Borders: borders, Title: c.Prompt.Title, Style: style}, true, nil
}

// Bindings merges the [keymap] overrides over the default key table.
func (c Config) Bindings() (prompt.Keymap, error) {
	return prompt.DefaultKeymap().Merge(c.Keymap)
}

// PromptTheme applies the configured colors to the built-in theme. Attributes
// (bold label, dim separator) are kept.
func (c Config) PromptTheme() prompt.Theme {
	t := prompt.DefaultTheme()
	fg := func(style tcell.Style, name string) tcell.Style {
		if name == "" {
			return style
		}
		return style.Foreground(prompt.ParseColor(name, tcell.ColorDefault))
	}
	t.Pending = fg(t.Pending, c.Theme.Pending)
	t.Aborted = fg(t.Aborted, c.Theme.Aborted)
	t.Done = fg(t.Done, c.Theme.Done)
	t.Label = fg(t.Label, c.Theme.Label)
	t.Separator = fg(t.Separator, c.Theme.Separator)
	t.Value = fg(t.Value, c.Theme.Value)
	t.Border = fg(t.Border, c.Theme.Border)
	syntax := make(map[string]tcell.Style, len(t.Syntax))
	for kind, style := range t.Syntax {
		syntax[kind] = style
	}
	for kind, name := range c.Theme.syntax() {
		syntax[kind] = fg(syntax[kind], name)
	}
	t.Syntax = syntax
	return t
}

func (t Theme) syntax() map[string]string {
	return map[string]string{
		"keyword":     t.SyntaxKeyword,
		"string":      t.SyntaxString,
		"comment":     t.SyntaxComment,
		"type":        t.SyntaxType,
		"function":    t.SyntaxFunction,
		"number":      t.SyntaxNumber,
		"constant":    t.SyntaxConstant,
		"operator":    t.SyntaxOperator,
		"punctuation": t.SyntaxPunctuation,
		"field":       t.SyntaxField,
		"builtin":     t.SyntaxBuiltin,
		"variable":    t.SyntaxVariable,
		"parameter":   t.SyntaxParameter,
	}
}

func set(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func mergePrompt(dst *PromptOptions, src PromptOptions) {
	set(&dst.Label, src.Label)
	set(&dst.RenderStyle, src.RenderStyle)
	set(&dst.Border, src.Border)
	set(&dst.Title, src.Title)
	set(&dst.Language, src.Language)
	if src.Width != 0 {
		dst.Width = src.Width
	}
	if src.Height != 0 {
		dst.Height = src.Height
	}
}

func mergeTheme(dst *Theme, src Theme) {
	set(&dst.Pending, src.Pending)
	set(&dst.Aborted, src.Aborted)
	set(&dst.Done, src.Done)
	set(&dst.Label, src.Label)
	set(&dst.Separator, src.Separator)
	set(&dst.Value, src.Value)
	set(&dst.Border, src.Border)
	set(&dst.SyntaxKeyword, src.SyntaxKeyword)
	set(&dst.SyntaxString, src.SyntaxString)
	set(&dst.SyntaxComment, src.SyntaxComment)
	set(&dst.SyntaxType, src.SyntaxType)
	set(&dst.SyntaxFunction, src.SyntaxFunction)
	set(&dst.SyntaxNumber, src.SyntaxNumber)
	set(&dst.SyntaxConstant, src.SyntaxConstant)
	set(&dst.SyntaxOperator, src.SyntaxOperator)
	set(&dst.SyntaxPunctuation, src.SyntaxPunctuation)
	set(&dst.SyntaxField, src.SyntaxField)
	set(&dst.SyntaxBuiltin, src.SyntaxBuiltin)
	set(&dst.SyntaxVariable, src.SyntaxVariable)
	set(&dst.SyntaxParameter, src.SyntaxParameter)
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads theme/<name>.toml, either flat or under a [theme] table.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var wrap struct {
		Theme *Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err == nil && wrap.Theme != nil {
		return *wrap.Theme, nil
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("QPROMPT_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "qprompt"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qprompt"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
