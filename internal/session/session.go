// Package session owns the selection state of one paste view and wires the
// store, gesture service and link synchronizer together.
package session

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"pastelines/internal/config"
	"pastelines/internal/domain"
	"pastelines/internal/eventbus"
	"pastelines/internal/link"
	"pastelines/internal/linkcodec"
	"pastelines/internal/logic"
	"pastelines/internal/selection"
)

// Excerpt is the text covered by one selection
type Excerpt struct {
	Selection domain.Selection
	FileName  string
	Lines     []string
}

// Header renders "name:start" or "name:start-end"
func (e Excerpt) Header() string {
	if e.Selection.Single() {
		return fmt.Sprintf("%s:%d", e.FileName, e.Selection.Start)
	}
	return fmt.Sprintf("%s:%d-%d", e.FileName, e.Selection.Start, e.Selection.End)
}

// Session is created once per viewer and re-initialized whenever the paste
// changes identity
type Session struct {
	cfg   *config.Config
	bus   eventbus.EventBus
	codec *linkcodec.Codec
	store *logic.MemorySelectionStore
	svc   *selection.Service

	paste *domain.Paste
	port  *link.URLPort
	sync  *link.Synchronizer

	onLinkChange func(string)
}

// New creates an empty session. marker may be nil.
func New(cfg *config.Config, bus eventbus.EventBus, marker selection.Marker) *Session {
	store := logic.NewMemorySelectionStore()
	return &Session{
		cfg:   cfg,
		bus:   bus,
		codec: linkcodec.New(cfg.Link.Separator),
		store: store,
		svc:   selection.NewService(store, nil, marker, bus),
	}
}

// SetMarker replaces the rendering layer
func (s *Session) SetMarker(marker selection.Marker) {
	s.svc.SetMarker(marker)
}

// OnLinkChange registers a callback for every change of the shareable link
func (s *Session) OnLinkChange(fn func(link string)) {
	s.onLinkChange = fn
	if s.port != nil {
		s.port.OnChange = fn
	}
}

// Open installs a paste and restores selections from rawLink, which may be
// a full URL, a bare parameter value, or empty. Opening a paste with a new
// identity clears every selection first.
func (s *Session) Open(p *domain.Paste, rawLink string) (link.LoadResult, error) {
	if p == nil {
		return link.LoadResult{}, fmt.Errorf("open session: nil paste")
	}

	if s.paste == nil || s.paste.ID != p.ID {
		s.svc.Reset(p)
		if s.bus != nil {
			s.bus.Publish(domain.PasteLoadedEvent{PasteID: p.ID, FileCount: len(p.Files)})
		}
	}
	s.paste = p

	return s.OpenLink(rawLink)
}

// OpenLink replaces the current selections with the ones encoded in rawLink
func (s *Session) OpenLink(rawLink string) (link.LoadResult, error) {
	if s.paste == nil {
		return link.LoadResult{}, fmt.Errorf("open link: no paste loaded")
	}

	address, err := s.resolve(rawLink)
	if err != nil {
		s.fail(err)
		return link.LoadResult{}, err
	}
	port, err := link.NewURLPort(address, s.cfg.Link.Parameter, s.cfg.Link.PasswordParameter)
	if err != nil {
		s.fail(err)
		return link.LoadResult{}, err
	}
	port.OnChange = s.onLinkChange

	if s.sync != nil {
		s.sync.Close()
	}
	if s.store.Len() > 0 {
		s.svc.Reset(s.paste)
	}

	s.port = port
	s.sync = link.NewSynchronizer(port, s.codec, s.svc, s.bus)
	result := s.sync.Load()
	if s.onLinkChange != nil {
		s.onLinkChange(port.String())
	}
	return result, nil
}

func (s *Session) fail(err error) {
	log.Printf("Session: %v", err)
	if s.bus != nil {
		s.bus.Publish(domain.ErrorEvent{Message: err.Error(), Err: err})
	}
}

// resolve turns user input into an absolute link for the current paste
func (s *Session) resolve(rawLink string) (string, error) {
	rawLink = strings.TrimSpace(rawLink)
	if strings.Contains(rawLink, "://") {
		return rawLink, nil
	}

	base, err := url.Parse(s.cfg.Link.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", s.cfg.Link.BaseURL, err)
	}
	base = base.JoinPath(s.paste.ID)

	switch {
	case rawLink == "":
	case strings.HasPrefix(rawLink, "?"):
		base.RawQuery = strings.TrimPrefix(rawLink, "?")
	default:
		base.RawQuery = url.QueryEscape(s.cfg.Link.Parameter) + "=" + url.QueryEscape(rawLink)
	}

	log.Printf("Session: resolved %q to %s", rawLink, base)
	return base.String(), nil
}

// Activate forwards a gesture to the selection service
func (s *Session) Activate(fileIndex, line int, extend bool) bool {
	return s.svc.Activate(fileIndex, line, extend)
}

// Selections returns every active range ordered by file
func (s *Session) Selections() []domain.Selection {
	return s.svc.Selections()
}

// Selection returns the active range of one file
func (s *Session) Selection(fileIndex int) (domain.Selection, bool) {
	return s.svc.Get(fileIndex)
}

// IsSelected reports whether a line is inside its file's active range
func (s *Session) IsSelected(fileIndex, line int) bool {
	return s.svc.IsSelected(fileIndex, line)
}

// Paste returns the installed paste
func (s *Session) Paste() *domain.Paste {
	return s.paste
}

// Link returns the current shareable link
func (s *Session) Link() string {
	if s.sync == nil {
		return ""
	}
	return s.sync.Link()
}

// Parameter returns the current encoded selection value
func (s *Session) Parameter() string {
	return s.codec.Encode(s.svc.Selections())
}

// Excerpts returns the text of every active range ordered by file
func (s *Session) Excerpts() []Excerpt {
	var out []Excerpt
	for _, sel := range s.svc.Selections() {
		f := s.paste.File(sel.FileIndex)
		if f == nil {
			continue
		}
		ex := Excerpt{Selection: sel, FileName: f.Name}
		for n := sel.Start; n <= sel.End; n++ {
			ex.Lines = append(ex.Lines, f.Line(n))
		}
		out = append(out, ex)
	}
	return out
}

// Close stops link synchronization
func (s *Session) Close() {
	if s.sync != nil {
		s.sync.Close()
	}
}
