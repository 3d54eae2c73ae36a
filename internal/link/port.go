package link

import (
	"fmt"
	"net/url"
	"strings"
)

// Port is the host page's address bar as seen by the synchronizer
type Port interface {
	ReadParameter() string
	WriteParameter(value string)
}

// URLPort keeps a shareable link in memory. Writes replace the current
// address instead of adding to it, so rewriting the same value changes nothing.
type URLPort struct {
	current           *url.URL
	parameter         string
	passwordParameter string

	// OnChange is called with the new link whenever a write changed it
	OnChange func(link string)
}

// NewURLPort parses raw as the starting address
func NewURLPort(raw, parameter, passwordParameter string) (*URLPort, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse link %q: %w", raw, err)
	}
	return &URLPort{
		current:           u,
		parameter:         parameter,
		passwordParameter: passwordParameter,
	}, nil
}

// ReadParameter returns the decoded value of the selection parameter
func (p *URLPort) ReadParameter() string {
	return p.current.Query().Get(p.parameter)
}

// WriteParameter sets the selection parameter and drops the password
// parameter. Every other parameter keeps its position and raw value. An
// empty value removes the selection parameter.
func (p *URLPort) WriteParameter(value string) {
	var pairs []string
	written := false
	for _, pair := range splitQuery(p.current.RawQuery) {
		key := queryKey(pair)
		switch {
		case key == p.passwordParameter && p.passwordParameter != "":
			continue
		case key == p.parameter:
			if written || value == "" {
				continue
			}
			pairs = append(pairs, p.pair(value))
			written = true
		default:
			pairs = append(pairs, pair)
		}
	}
	if !written && value != "" {
		pairs = append(pairs, p.pair(value))
	}

	next := *p.current
	next.RawQuery = strings.Join(pairs, "&")
	next.ForceQuery = false
	if next.String() == p.current.String() {
		return
	}
	p.current = &next

	if p.OnChange != nil {
		p.OnChange(next.String())
	}
}

// SetPath replaces the path of the link, e.g. with a paste identifier
func (p *URLPort) SetPath(path string) {
	next := *p.current
	next.Path = path
	next.RawPath = ""
	p.current = &next
}

// String returns the full current link
func (p *URLPort) String() string {
	return p.current.String()
}

func (p *URLPort) pair(value string) string {
	return url.QueryEscape(p.parameter) + "=" + url.QueryEscape(value)
}

func splitQuery(raw string) []string {
	var out []string
	for _, pair := range strings.Split(raw, "&") {
		if pair != "" {
			out = append(out, pair)
		}
	}
	return out
}

func queryKey(pair string) string {
	key, _, _ := strings.Cut(pair, "=")
	if unescaped, err := url.QueryUnescape(key); err == nil {
		return unescaped
	}
	return key
}
