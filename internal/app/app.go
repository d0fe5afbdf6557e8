package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qprompt/internal/config"
	"github.com/kobzarvs/qprompt/internal/highlight"
	"github.com/kobzarvs/qprompt/internal/logger"
	"github.com/kobzarvs/qprompt/internal/prompt"
)

// Scenario selects which prompts a session shows.
type Scenario string

const (
	ScenarioText      Scenario = "text"
	ScenarioPassword  Scenario = "password"
	ScenarioInvisible Scenario = "invisible"
	ScenarioForm      Scenario = "form"
	ScenarioMultiline Scenario = "multiline"
)

var scenarios = []Scenario{ScenarioText, ScenarioPassword, ScenarioInvisible, ScenarioForm, ScenarioMultiline}

var errScreenClosed = errors.New("screen closed before the prompt finished")

const (
	multilineHeight = 4
	debugWidth      = 30
	debugHeight     = 20
)

type options struct {
	scenario Scenario
	debug    bool
	label    string
}

// parseArgs reads [scenario] [--debug] [label]. The first word is taken as the
// scenario only when it names one.
func parseArgs(args []string) (options, error) {
	opts := options{scenario: ScenarioText}
	scenarioSet := false
	for _, arg := range args {
		switch {
		case arg == "--debug" || arg == "-d":
			opts.debug = true
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %q", arg)
		case !scenarioSet && opts.label == "" && isScenario(arg):
			opts.scenario = Scenario(arg)
			scenarioSet = true
		case opts.label == "":
			opts.label = arg
		default:
			return opts, fmt.Errorf("unexpected argument %q", arg)
		}
	}
	return opts, nil
}

func isScenario(name string) bool {
	for _, s := range scenarios {
		if string(s) == name {
			return true
		}
	}
	return false
}

// App is the top-level runtime for qprompt.
type App struct {
	args []string
	out  io.Writer
}

func New(args []string) *App {
	return &App{args: args, out: os.Stdout}
}

func (a *App) Run() error {
	opts, err := parseArgs(a.args)
	if err != nil {
		return err
	}
	// A missing log file only costs us the log.
	if err := logger.Init(opts.debug); err == nil {
		defer logger.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	langs, err := config.LoadLanguages()
	if err != nil {
		return err
	}
	sess, err := newSession(opts, cfg, langs)
	if err != nil {
		return err
	}
	defer sess.close()

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	for _, f := range sess.fields {
		logger.Info("session start", "scenario", opts.scenario, "prompt", f.prompt.Label(),
			"render_style", f.prompt.RenderStyle(), "debug", opts.debug)
	}
	err = sess.run(s)
	s.Fini()
	if err != nil {
		return err
	}
	return sess.print(a.out)
}

type field struct {
	prompt prompt.TextPrompt
	state  *prompt.TextState
}

type session struct {
	scenario Scenario
	debug    bool
	// width and height bound single prompts; zero width means the screen's.
	width, height int
	keymap        prompt.Keymap
	fields        []*field
	engine        *highlight.Engine
}

func newSession(opts options, cfg config.Config, langs config.Languages) (*session, error) {
	keymap, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	rs, err := cfg.RenderStyle()
	if err != nil {
		return nil, err
	}
	block, hasBlock, err := cfg.Block()
	if err != nil {
		return nil, err
	}
	theme := cfg.PromptTheme()
	newPrompt := func(label string) prompt.TextPrompt {
		return prompt.NewTextPrompt(label).WithTheme(theme)
	}
	label := cfg.Prompt.Label
	if opts.label != "" {
		label = opts.label
	}

	ss := &session{
		scenario: opts.scenario,
		debug:    opts.debug,
		width:    cfg.Prompt.Width,
		height:   cfg.Prompt.Height,
		keymap:   keymap,
	}
	switch opts.scenario {
	case ScenarioForm:
		ss.fields = []*field{
			{prompt: newPrompt("Username"), state: prompt.NewTextState().WithFocus(true)},
			{prompt: newPrompt("Password").WithRenderStyle(prompt.RenderPassword), state: prompt.NewTextState()},
		}
		return ss, nil
	case ScenarioMultiline:
		if opts.label == "" {
			label = "Multi-line"
		}
		p := newPrompt(label).WithRenderStyle(rs).WithBlock(prompt.Block{
			Borders: prompt.BorderRight | prompt.BorderBottom,
			Title:   cfg.Prompt.Title,
			Style:   theme.Border,
		})
		ss.fields = []*field{{prompt: ss.withHighlighter(p, cfg, langs), state: prompt.NewTextState().WithFocus(true)}}
		return ss, nil
	case ScenarioPassword:
		rs = prompt.RenderPassword
	case ScenarioInvisible:
		rs = prompt.RenderInvisible
	}

	p := newPrompt(label).WithRenderStyle(rs)
	if ss.height == 0 {
		ss.height = 1
	}
	if hasBlock {
		p = p.WithBlock(block)
		if cfg.Prompt.Height == 0 {
			if block.Borders.Has(prompt.BorderTop) {
				ss.height++
			}
			if block.Borders.Has(prompt.BorderBottom) {
				ss.height++
			}
		}
	}
	ss.fields = []*field{{prompt: ss.withHighlighter(p, cfg, langs), state: prompt.NewTextState().WithFocus(true)}}
	return ss, nil
}

// withHighlighter attaches the configured language's highlighter. Failures are
// logged and leave the prompt plain.
func (ss *session) withHighlighter(p prompt.TextPrompt, cfg config.Config, langs config.Languages) prompt.TextPrompt {
	if cfg.Prompt.Language == "" || p.RenderStyle().Masked() {
		return p
	}
	name := langs.Resolve(cfg.Prompt.Language)
	if name == "" {
		logger.Warn("unknown language", "language", cfg.Prompt.Language)
		return p
	}
	engine, err := highlight.New(name)
	if err != nil {
		logger.Warn("highlighter disabled", "language", name, "error", err)
		return p
	}
	if dropped := engine.Dropped(); len(dropped) > 0 {
		logger.Warn("highlight patterns skipped", "language", name, "count", len(dropped))
	}
	ss.engine = engine
	return p.WithHighlighter(engine)
}

func (ss *session) close() {
	if ss.engine != nil {
		ss.engine.Close()
		ss.engine = nil
	}
}

func (ss *session) finished() bool {
	for _, f := range ss.fields {
		if !f.state.IsFinished() {
			return false
		}
	}
	return true
}

func (ss *session) focused() (int, *field) {
	for i, f := range ss.fields {
		if f.state.IsFocused() {
			return i, f
		}
	}
	return -1, nil
}

// run draws and handles keys until every prompt is finished. A panic
// finalizes the screen first so the terminal is usable again.
func (ss *session) run(s tcell.Screen) error {
	defer func() {
		if r := recover(); r != nil {
			s.Fini()
			panic(r)
		}
	}()

	ss.draw(s)
	for !ss.finished() {
		switch ev := s.PollEvent().(type) {
		case nil:
			return errScreenClosed
		case *tcell.EventKey:
			ss.handleKey(ev)
		case *tcell.EventResize:
			s.Sync()
		}
		ss.draw(s)
	}
	for _, f := range ss.fields {
		kv := []interface{}{"prompt", f.prompt.Label(), "status", f.state.Status()}
		if !f.prompt.RenderStyle().Masked() {
			kv = append(kv, "value", f.state.Value())
		}
		logger.Info("prompt finished", kv...)
	}
	return nil
}

// layout returns one area per field and the debug pane for a w x h screen.
func (ss *session) layout(w, h int) ([]prompt.Rect, prompt.Rect) {
	screen := prompt.NewRect(0, 0, w, h)
	debug := prompt.NewRect(max(w-debugWidth, 0), 0, min(debugWidth, w), min(debugHeight, h))
	switch ss.scenario {
	case ScenarioForm:
		return []prompt.Rect{screen.Row(0), screen.Row(1)}, debug
	case ScenarioMultiline:
		if !ss.debug {
			return []prompt.Rect{screen}, prompt.Rect{}
		}
		left, right := screen.SplitHorizontal()
		left.Height = min(left.Height, multilineHeight)
		return []prompt.Rect{left}, right
	}
	width := w
	if ss.width > 0 {
		width = min(ss.width, w)
	}
	return []prompt.Rect{prompt.NewRect(0, 0, width, min(ss.height, h))}, debug
}

func (ss *session) draw(s tcell.Screen) {
	s.HideCursor()
	w, h := s.Size()
	areas, debugArea := ss.layout(w, h)
	for i, f := range ss.fields {
		f.prompt.Draw(s, areas[i], f.state)
	}
	if ss.debug {
		state := ss.fields[0].state
		if _, f := ss.focused(); f != nil {
			state = f.state
		}
		prompt.Paragraph{Text: state.String(), Style: tcell.StyleDefault}.Render(s, debugArea)
	}
	s.Show()
}

func (ss *session) handleKey(tev *tcell.EventKey) {
	ev, ok := prompt.KeyEventFromTcell(tev)
	if !ok {
		return
	}
	if ss.scenario == ScenarioForm {
		ss.handleFormKey(ev)
		return
	}
	if _, f := ss.focused(); f != nil {
		ss.dispatch(f, ev)
	}
}

// handleFormKey moves focus down the form on Enter and back to the first
// field on Esc. Everything else goes to the focused field.
func (ss *session) handleFormKey(ev prompt.KeyEvent) {
	i, f := ss.focused()
	switch {
	case ev.Kind != prompt.KeyPress:
		return
	case ev.Code == prompt.KeyEnter && f != nil:
		ss.dispatch(f, ev)
		prompt.Blur(f.state)
		if i+1 < len(ss.fields) {
			prompt.Focus(ss.fields[i+1].state)
		}
	case ev.Code == prompt.KeyEsc:
		for j, other := range ss.fields {
			other.state.SetFocused(j == 0)
		}
	case f != nil:
		ss.dispatch(f, ev)
	}
}

func (ss *session) dispatch(f *field, ev prompt.KeyEvent) {
	action := ss.keymap.Dispatch(f.state, ev)
	if action == prompt.ActionNone {
		return
	}
	kv := []interface{}{"prompt", f.prompt.Label(), "key", ev.Name(), "action", string(action), "status", f.state.Status()}
	if !f.prompt.RenderStyle().Masked() {
		kv = append(kv, "value", f.state.Value())
	}
	logger.Debug("key", kv...)
}

// print writes each prompt's final line, with ANSI colors, to w.
func (ss *session) print(w io.Writer) error {
	for _, f := range ss.fields {
		if _, err := fmt.Fprintln(w, f.prompt.Line(f.state).ANSI()); err != nil {
			return err
		}
	}
	return nil
}
