package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"pastelines/internal/domain"
)

// LineView describes one rendered source line
type LineView struct {
	Number   int
	Text     string // pre-styled
	Plain    string // used instead of Text when the line is selected
	Selected bool
	Cursor   bool
	Warning  bool
}

// Renderer draws file headers and gutter rows
type Renderer struct {
	styles       *Styles
	showWarnings bool
}

// NewRenderer creates a renderer
func NewRenderer(styles *Styles, showWarnings bool) *Renderer {
	return &Renderer{styles: styles, showWarnings: showWarnings}
}

// GutterWidth is the number of cells left of the code for a file with
// lineCount lines: cursor, digits, warning marker and a space
func GutterWidth(lineCount int) int {
	return len(strconv.Itoa(lineCount)) + 3
}

// RenderHeader renders the title row of a file
func (r *Renderer) RenderHeader(f *domain.File, sel *domain.Selection, active bool, width int) string {
	name := fmt.Sprintf("F%d  %s", f.Index+1, f.Name)
	style := r.styles.FileHeaderDim
	if active {
		style = r.styles.FileHeader
	}

	info := fmt.Sprintf(" %d lines", f.LineCount())
	if sel != nil {
		if sel.Single() {
			info += fmt.Sprintf("  L%d", sel.Start)
		} else {
			info += fmt.Sprintf("  L%d-L%d", sel.Start, sel.End)
		}
	}

	var b strings.Builder
	b.WriteString(style.Render(name))
	b.WriteString(r.styles.Dim.Render(info))
	if r.showWarnings && f.Annotation != "" {
		b.WriteString("  ")
		b.WriteString(r.styles.Annotation.Render(f.Annotation))
	}
	return ansi.Truncate(b.String(), width, "…")
}

// RenderLine renders the gutter and text of one line, cut to width cells
func (r *Renderer) RenderLine(lv LineView, lineCount, width int) string {
	digits := GutterWidth(lineCount) - 3

	cursor := " "
	if lv.Cursor {
		cursor = r.styles.GutterCursor.Render("▶")
	}

	number := fmt.Sprintf("%*d", digits, lv.Number)
	switch {
	case lv.Selected:
		number = r.styles.GutterSelected.Render(number)
	case lv.Cursor:
		number = r.styles.GutterCursor.Render(number)
	default:
		number = r.styles.Gutter.Render(number)
	}

	marker := " "
	if r.showWarnings && lv.Warning {
		marker = r.styles.Warning.Render("!")
	}

	text := lv.Text
	if lv.Selected {
		text = r.styles.SelectionBg.Render(lv.Plain)
	}

	return ansi.Truncate(cursor+number+marker+" "+text, width, "…")
}
