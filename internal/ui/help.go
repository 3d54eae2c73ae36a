package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"pastelines/internal/session"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// renderHelpContent renders the full help text
func (r *HelpRenderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	entry := func(keys, desc string) string {
		return fmt.Sprintf("  %s %s\n", keyStyle.Render(keys), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("pastelines Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(entry("↑/↓, j/k", "Move the line cursor"))
	help.WriteString(entry("PgUp/PgDn", "Page up/down"))
	help.WriteString(entry("g/G", "Go to top/bottom"))
	help.WriteString(entry("Tab/S-Tab", "Next/previous file"))
	help.WriteString(entry(":", "Go to line (\"12\" selects, \"+12\" extends)"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(entry("Click", "Select the clicked line number"))
	help.WriteString(entry("Shift+Click", "Extend the range to the clicked line"))
	help.WriteString(entry("Space/Enter", "Select the line under the cursor"))
	help.WriteString(entry("s", "Extend the range to the cursor"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Links"))
	help.WriteString("\n")
	help.WriteString(entry("y", "Copy the shareable link"))
	help.WriteString(entry("o", "Open a link or lines value"))
	help.WriteString(entry("p", "View the selected lines in a pager"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(entry("?", "Show this help"))
	help.WriteString(entry("q", "Quit and print the link"))

	return help.String()
}

// renderExcerpts renders every selected range for the pager
func renderExcerpts(excerpts []session.Excerpt) string {
	if len(excerpts) == 0 {
		return "No lines selected.\n"
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	numberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	for i, ex := range excerpts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headerStyle.Render(ex.Header()))
		b.WriteString("\n")
		width := len(fmt.Sprint(ex.Selection.End))
		for j, line := range ex.Lines {
			n := ex.Selection.Start + j
			b.WriteString(numberStyle.Render(fmt.Sprintf("%*d", width, n)))
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// PagerOps runs the external pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showInPager returns a command that pauses rendering while the pager runs
func (m *Model) showInPager(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}

		err := m.pager.ShowInPager(content)

		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{err: err}
	}
}
