package highlight

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/kobzarvs/qprompt/internal/prompt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/toml"
	"github.com/smacker/go-tree-sitter/yaml"
)

// Engine highlights prompt values with a tree-sitter grammar. It satisfies
// prompt.Highlighter. The value is reparsed from scratch on every call; prompt
// values are short.
type Engine struct {
	name    string
	lang    *sitter.Language
	parser  *sitter.Parser
	query   *sitter.Query
	dropped []string
	mu      sync.Mutex
}

var _ prompt.Highlighter = (*Engine)(nil)

func tsLanguageForName(name string) *sitter.Language {
	switch name {
	case "go":
		return golang.GetLanguage()
	case "yaml":
		return yaml.GetLanguage()
	case "toml":
		return toml.GetLanguage()
	case "bash":
		return bash.GetLanguage()
	default:
		return nil
	}
}

// Languages lists the grammar names New accepts.
func Languages() []string {
	names := make([]string, 0, len(queries))
	for name := range queries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds an engine for one of Languages(). Query patterns the linked
// grammar does not support are skipped and reported by Dropped; New only
// fails when none of them compile.
func New(language string) (*Engine, error) {
	lang := tsLanguageForName(language)
	if lang == nil {
		return nil, fmt.Errorf("highlight: unknown language %q (want one of %s)", language, strings.Join(Languages(), ", "))
	}
	query, dropped, err := compileQuery(lang, queries[language])
	if err != nil {
		return nil, fmt.Errorf("highlight %s: %w", language, err)
	}
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Engine{name: language, lang: lang, parser: p, query: query, dropped: dropped}, nil
}

func (e *Engine) Name() string { return e.name }

// Dropped returns the query patterns that failed to compile.
func (e *Engine) Dropped() []string { return e.dropped }

// Highlight returns syntax spans over value in character offsets.
func (e *Engine) Highlight(value string) []prompt.Span {
	if value == "" {
		return nil
	}
	source := []byte(value)

	e.mu.Lock()
	defer e.mu.Unlock()
	tree, err := e.parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil {
		return nil
	}
	defer tree.Close()

	runeAt := runeOffsets(value)
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(e.query, tree.RootNode())

	var out []prompt.Span
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		match = cursor.FilterPredicates(match, source)
		if match == nil {
			continue
		}
		for _, capture := range match.Captures {
			start, end := int(capture.Node.StartByte()), int(capture.Node.EndByte())
			if start >= end || end > len(source) {
				continue
			}
			out = append(out, prompt.Span{
				Start: runeAt[start],
				End:   runeAt[end],
				Kind:  e.query.CaptureNameForId(capture.Index),
			})
		}
	}
	return out
}

func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.Close()
	e.parser.Close()
}

// runeOffsets maps every byte offset of s, plus len(s), to the index of the
// character containing it.
func runeOffsets(s string) []int {
	out := make([]int, len(s)+1)
	n := 0
	for i := 0; i < len(s); n++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		for j := i; j < i+size; j++ {
			out[j] = n
		}
		i += size
	}
	out[len(s)] = n
	return out
}

// compileQuery compiles src, falling back to compiling its top-level patterns
// one by one and keeping those the grammar accepts.
func compileQuery(lang *sitter.Language, src string) (*sitter.Query, []string, error) {
	if q, err := sitter.NewQuery([]byte(src), lang); err == nil {
		return q, nil, nil
	}
	var kept, dropped []string
	for _, pattern := range splitPatterns(src) {
		q, err := sitter.NewQuery([]byte(pattern), lang)
		if err != nil {
			dropped = append(dropped, pattern)
			continue
		}
		q.Close()
		kept = append(kept, pattern)
	}
	if len(kept) == 0 {
		return nil, dropped, fmt.Errorf("no query pattern compiles")
	}
	q, err := sitter.NewQuery([]byte(strings.Join(kept, "\n")), lang)
	if err != nil {
		return nil, dropped, err
	}
	return q, dropped, nil
}

// splitPatterns cuts a query into its top-level patterns. Parentheses and
// brackets inside string literals do not count.
func splitPatterns(src string) []string {
	var out []string
	var cur strings.Builder
	depth := 0
	inString := false
	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) == "" && depth == 0 {
			continue
		}
		for i := 0; i < len(line); i++ {
			c := line[i]
			switch {
			case inString:
				if c == '\\' {
					i++
				} else if c == '"' {
					inString = false
				}
			case c == '"':
				inString = true
			case c == '(' || c == '[':
				depth++
			case c == ')' || c == ']':
				depth--
			}
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
		if depth <= 0 && !inString {
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
			depth = 0
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		out = append(out, strings.TrimSpace(cur.String()))
	}
	return out
}
