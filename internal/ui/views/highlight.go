package views

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"pastelines/internal/domain"
)

// TabWidth is the number of spaces a tab expands to
const TabWidth = 4

// Highlighter turns file content into pre-styled lines, one per source line.
// Results are cached per file index until Reset.
type Highlighter struct {
	enabled bool
	style   *chroma.Style
	cache   map[int][]string
}

// NewHighlighter creates a highlighter using a chroma style name
func NewHighlighter(enabled bool, styleName string) *Highlighter {
	return &Highlighter{
		enabled: enabled,
		style:   styles.Get(styleName),
		cache:   make(map[int][]string),
	}
}

// Reset drops every cached file
func (h *Highlighter) Reset() {
	h.cache = make(map[int][]string)
}

// Lines returns the styled lines of a file
func (h *Highlighter) Lines(f *domain.File) []string {
	if cached, ok := h.cache[f.Index]; ok {
		return cached
	}

	var out []string
	if h.enabled {
		out = h.highlight(f)
	}
	if out == nil {
		out = make([]string, len(f.Lines))
		for i, line := range f.Lines {
			out[i] = ExpandTabs(line)
		}
	}
	h.cache[f.Index] = out
	return out
}

func (h *Highlighter) highlight(f *domain.File) []string {
	lexer := lexers.Match(f.Name)
	if lexer == nil {
		lexer = lexers.Analyse(f.Content)
	}
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	// Tokenise the normalised lines so token line breaks match f.Lines
	iter, err := lexer.Tokenise(nil, strings.Join(f.Lines, "\n"))
	if err != nil {
		return nil
	}

	builders := make([]strings.Builder, len(f.Lines))
	current := 0
	for _, tok := range iter.Tokens() {
		style := h.tokenStyle(tok.Type)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				current++
			}
			if current >= len(builders) {
				break
			}
			if part != "" {
				builders[current].WriteString(style.Render(ExpandTabs(part)))
			}
		}
	}

	out := make([]string, len(builders))
	for i := range builders {
		out[i] = builders[i].String()
	}
	return out
}

func (h *Highlighter) tokenStyle(t chroma.TokenType) lipgloss.Style {
	s := lipgloss.NewStyle()
	if h.style == nil {
		return s
	}
	entry := h.style.Get(t)
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}

// ExpandTabs replaces tabs with TabWidth spaces
func ExpandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", TabWidth))
}
