package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"pastelines/internal/config"
	"pastelines/internal/domain"
	"pastelines/internal/eventbus"
	"pastelines/internal/session"
	"pastelines/internal/ui/logic"
	"pastelines/internal/ui/views"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeGotoLine
	modeOpenLink
)

// chrome rows: title, status and footer
const chromeRows = 3

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	session *session.Session
	paste   *domain.Paste
	nav     *logic.Navigator

	width  int
	height int

	// marks is the visual "selected" state, written only through Mark/Unmark
	marks map[int]map[int]bool

	styles      *views.Styles
	renderer    *views.Renderer
	highlighter *views.Highlighter
	keys        keyMap
	help        help.Model
	helpContent *HelpRenderer
	input       textinput.Model
	mode        inputMode

	link          string
	status        string
	statusIsError bool
	statusSeq     int
	inPagerMode   bool
	initCmd       tea.Cmd

	pager   *PagerOps
	program *tea.Program
}

// NewModel creates a new UI model and installs it as the session's marker
func NewModel(cfg *config.Config, bus eventbus.EventBus, sess *session.Session) *Model {
	styles := views.NewStyles()
	m := &Model{
		bus:         bus,
		config:      cfg,
		session:     sess,
		nav:         logic.NewNavigator(),
		marks:       make(map[int]map[int]bool),
		styles:      styles,
		renderer:    views.NewRenderer(styles, cfg.UISettings.ShowWarnings),
		highlighter: views.NewHighlighter(cfg.UISettings.SyntaxHighlight, cfg.UISettings.Style),
		keys:        newKeyMap(),
		help:        help.New(),
		helpContent: NewHelpRenderer(),
		input:       textinput.New(),
		pager:       NewPagerOps(),
	}

	sess.SetMarker(m)
	sess.OnLinkChange(func(link string) {
		m.link = link
	})
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Open installs a paste and restores the selections encoded in rawLink
func (m *Model) Open(p *domain.Paste, rawLink string) error {
	if m.paste == nil || m.paste.ID != p.ID {
		m.highlighter.Reset()
	}
	m.paste = p

	counts := make([]int, len(p.Files))
	for i, f := range p.Files {
		counts[i] = f.LineCount()
	}
	m.nav.SetFiles(counts)

	result, err := m.session.Open(p, rawLink)
	if err != nil {
		return err
	}
	if result.Parameter != "" {
		m.initCmd = m.setStatus(restoredStatus(result.Restored, len(result.Skipped)), false)
	}
	m.focusFirstSelection()
	return nil
}

// Link returns the current shareable link
func (m *Model) Link() string {
	return m.session.Link()
}

// Mark implements selection.Marker
func (m *Model) Mark(fileIndex, line int) {
	if m.marks[fileIndex] == nil {
		m.marks[fileIndex] = make(map[int]bool)
	}
	m.marks[fileIndex][line] = true
}

// Unmark implements selection.Marker
func (m *Model) Unmark(fileIndex, line int) {
	delete(m.marks[fileIndex], line)
}

// IsMarked reports whether a line currently shows as selected
func (m *Model) IsMarked(fileIndex, line int) bool {
	return m.marks[fileIndex][line]
}

// focusFirstSelection moves the cursor to the first restored range
func (m *Model) focusFirstSelection() {
	sels := m.session.Selections()
	if len(sels) == 0 {
		return
	}
	m.nav.MoveToLine(sels[0].FileIndex, sels[0].Start)
}

func restoredStatus(restored, skipped int) string {
	return fmt.Sprintf("Restored %d selection(s), skipped %d", restored, skipped)
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.initCmd
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 10
		m.nav.SetViewportHeight(m.height - chromeRows)
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("Clipboard: %v", msg.err)
			return m, m.setStatus("Could not copy link", true)
		}
		return m, m.setStatus("Link copied", false)

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		// A newer status owns its own timer
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusIsError = false
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.nav.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.nav.Move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.nav.Move(-m.nav.ViewportHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.nav.Move(m.nav.ViewportHeight())
	case key.Matches(msg, m.keys.Top):
		m.nav.Move(-m.nav.Len())
	case key.Matches(msg, m.keys.Bottom):
		m.nav.Move(m.nav.Len())
	case key.Matches(msg, m.keys.NextFile):
		m.nav.JumpFile(1)
	case key.Matches(msg, m.keys.PrevFile):
		m.nav.JumpFile(-1)
	case key.Matches(msg, m.keys.Select):
		if r, ok := m.nav.Cursor(); ok {
			return m, m.gesture(r.File, r.Line, false)
		}
	case key.Matches(msg, m.keys.Extend):
		if r, ok := m.nav.Cursor(); ok {
			return m, m.gesture(r.File, r.Line, true)
		}
	case key.Matches(msg, m.keys.GotoLine):
		return m, m.startInput(modeGotoLine, ": ")
	case key.Matches(msg, m.keys.OpenLink):
		return m, m.startInput(modeOpenLink, "link: ")
	case key.Matches(msg, m.keys.CopyLink):
		return m, copyLink(m.session.Link())
	case key.Matches(msg, m.keys.Pager):
		return m, m.showInPager(renderExcerpts(m.session.Excerpts()))
	case key.Matches(msg, m.keys.Help):
		return m, m.showInPager(m.helpContent.renderHelpContent())
	}
	return m, nil
}

func (m *Model) startInput(mode inputMode, prompt string) tea.Cmd {
	m.mode = mode
	m.input.Reset()
	m.input.Prompt = prompt
	m.input.Focus()
	return textinput.Blink
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeNormal
		m.input.Blur()
		if mode == modeGotoLine {
			return m, m.gotoLine(value)
		}
		return m, m.openLink(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// gotoLine handles "12" (select) and "+12" (extend) in the cursor's file
func (m *Model) gotoLine(value string) tea.Cmd {
	r, ok := m.nav.Cursor()
	if !ok || value == "" {
		return nil
	}

	extend := strings.HasPrefix(value, "+")
	n, err := strconv.Atoi(strings.TrimPrefix(value, "+"))
	if err != nil {
		return m.setStatus(fmt.Sprintf("Not a line number: %q", value), true)
	}

	cmd := m.gesture(r.File, n, extend)
	if sel, ok := m.session.Selection(r.File); ok {
		// Follow the clamped line, which is always one end of the range
		target := sel.End
		if n <= sel.Start {
			target = sel.Start
		}
		m.nav.MoveToLine(r.File, target)
	}
	return cmd
}

func (m *Model) openLink(value string) tea.Cmd {
	if value == "" {
		return nil
	}
	result, err := m.session.OpenLink(value)
	if err != nil {
		// The session reports the failure as an ErrorEvent
		log.Printf("Open link: %v", err)
		return nil
	}
	m.focusFirstSelection()
	return m.setStatus(restoredStatus(result.Restored, len(result.Skipped)), false)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.nav.Scroll(-3)
		return nil
	case tea.MouseButtonWheelDown:
		m.nav.Scroll(3)
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || m.paste == nil {
		return nil
	}

	// Row 0 is the title
	r, idx, ok := m.nav.Visible(msg.Y - 1)
	if !ok || r.Kind != logic.RowLine {
		return nil
	}
	if msg.X >= views.GutterWidth(m.paste.LineCount(r.File)) {
		return nil
	}

	m.nav.SetSelectedIndex(idx)
	return m.gesture(r.File, r.Line, msg.Shift)
}

// gesture applies one plain or extend activation
func (m *Model) gesture(fileIndex, line int, extend bool) tea.Cmd {
	before := m.session.Link()
	if !m.session.Activate(fileIndex, line, extend) {
		return nil
	}
	after := m.session.Link()
	if m.config.UISettings.CopyLinkOnChange && after != before {
		return copyLink(after)
	}
	return nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	case eventbus.LinkRestoredEvent:
		log.Printf("UI: link restored %d, skipped %d", e.Restored, e.Skipped)
	}
	return nil
}

func (m *Model) setStatus(status string, isError bool) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.status = status
	m.statusIsError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 || m.paste == nil {
		return "Loading..."
	}

	var b strings.Builder

	title := m.styles.Title.Render("pastelines")
	info := m.styles.Dim.Render(fmt.Sprintf("  %s  %d file(s)", m.paste.ID, len(m.paste.Files)))
	b.WriteString(title + info)
	b.WriteString("\n")

	cursor, hasCursor := m.nav.Cursor()
	for i := 0; i < m.nav.ViewportHeight(); i++ {
		if r, idx, ok := m.nav.Visible(i); ok {
			active := hasCursor && cursor.File == r.File
			b.WriteString(m.renderRow(r, idx == m.nav.SelectedIndex(), active))
		}
		b.WriteString("\n")
	}

	b.WriteString(ansi.Truncate(m.renderStatus(), m.width, "…"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderRow(r logic.Row, isCursor, activeFile bool) string {
	f := m.paste.File(r.File)

	switch r.Kind {
	case logic.RowHeader:
		var sel *domain.Selection
		if s, ok := m.session.Selection(r.File); ok {
			sel = &s
		}
		return m.renderer.RenderHeader(f, sel, activeFile, m.width)
	case logic.RowEmpty:
		return m.styles.Dim.Render("  (empty file)")
	case logic.RowLine:
		styled := m.highlighter.Lines(f)
		return m.renderer.RenderLine(views.LineView{
			Number:   r.Line,
			Text:     styled[r.Line-1],
			Plain:    views.ExpandTabs(f.Line(r.Line)),
			Selected: m.IsMarked(r.File, r.Line),
			Cursor:   isCursor,
			Warning:  f.HasWarning(r.Line),
		}, f.LineCount(), m.width)
	}
	return ""
}

func (m *Model) renderStatus() string {
	if m.mode != modeNormal {
		return m.styles.Prompt.Render(m.input.View())
	}
	if m.status != "" {
		if m.statusIsError {
			return m.styles.StatusError.Render(m.status)
		}
		return m.styles.StatusSuccess.Render(m.status)
	}
	link := m.link
	if link == "" {
		link = m.session.Link()
	}
	return m.styles.StatusLink.Render(link)
}
