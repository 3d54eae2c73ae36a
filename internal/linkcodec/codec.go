// Package linkcodec converts the active line ranges of a paste to and from
// the compact value carried by a shareable link.
//
// Grammar:
//
//	value := { token | other }
//	token := "F" file "-L" line [ "-L" line ]
//
// file and line are 1-based decimal numbers. Anything between tokens is
// ignored, so the separator written after a two-line token is optional when
// decoding and single-line tokens may abut.
package linkcodec

import (
	"fmt"
	"strconv"
	"strings"

	"pastelines/internal/domain"
)

// DefaultSeparator follows every two-line token
const DefaultSeparator = "_"

// Token is one decoded file range. File, Start and End are as written in
// the link, so File is 1-based.
type Token struct {
	File   int
	Start  int
	End    int
	HasEnd bool
}

// FileIndex returns the zero-based file index
func (t Token) FileIndex() int {
	return t.File - 1
}

func (t Token) String() string {
	if t.HasEnd {
		return fmt.Sprintf("F%d-L%d-L%d", t.File, t.Start, t.End)
	}
	return fmt.Sprintf("F%d-L%d", t.File, t.Start)
}

// Skipped describes a token that had the right shape but unusable numbers
type Skipped struct {
	Offset int
	Text   string
	Reason string
}

// Codec encodes and decodes link values
type Codec struct {
	Separator string
}

// New creates a codec; an empty separator falls back to DefaultSeparator
func New(separator string) *Codec {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Codec{Separator: separator}
}

// Encode writes one token per selection, in the order given. A separator
// follows a range token and never a single-line one.
func (c *Codec) Encode(selections []domain.Selection) string {
	var b strings.Builder
	for _, sel := range selections {
		fmt.Fprintf(&b, "F%d-L%d", sel.FileIndex+1, sel.Start)
		if sel.End != sel.Start {
			fmt.Fprintf(&b, "-L%d%s", sel.End, c.Separator)
		}
	}
	return b.String()
}

// Decode scans value for tokens. Malformed tokens are reported in skipped
// and scanning resumes right after them.
func (c *Codec) Decode(value string) (tokens []Token, skipped []Skipped) {
	s := scanner{src: value}
	for s.pos < len(s.src) {
		start := s.pos
		raw, ok := s.token()
		if !ok {
			s.pos = start + 1
			continue
		}

		text := s.src[start:s.pos]
		tok, reason := raw.resolve()
		if reason != "" {
			skipped = append(skipped, Skipped{Offset: start, Text: text, Reason: reason})
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, skipped
}

// Replay feeds decoded tokens to activate as extend gestures: one at the
// start line and, for a two-line token with distinct lines, one at the end
// line. It returns how many tokens produced at least one applied gesture.
func Replay(tokens []Token, activate func(fileIndex, line int, extend bool) bool) int {
	restored := 0
	for _, tok := range tokens {
		applied := activate(tok.FileIndex(), tok.Start, true)
		if tok.HasEnd && tok.End != tok.Start {
			applied = activate(tok.FileIndex(), tok.End, true) || applied
		}
		if applied {
			restored++
		}
	}
	return restored
}

// rawToken holds the digit runs of a token before conversion
type rawToken struct {
	file, start, end string
}

func (r rawToken) resolve() (Token, string) {
	file, err := strconv.Atoi(r.file)
	if err != nil {
		return Token{}, "file number out of range"
	}
	start, err := strconv.Atoi(r.start)
	if err != nil {
		return Token{}, "line number out of range"
	}
	if file < 1 {
		return Token{}, "file numbers start at 1"
	}
	if start < 1 {
		return Token{}, "line numbers start at 1"
	}

	tok := Token{File: file, Start: start, End: start}
	if r.end == "" {
		return tok, ""
	}
	end, err := strconv.Atoi(r.end)
	if err != nil {
		return Token{}, "line number out of range"
	}
	if end < 1 {
		return Token{}, "line numbers start at 1"
	}
	tok.End = end
	tok.HasEnd = true
	return tok, ""
}

type scanner struct {
	src string
	pos int
}

// token reads "F<digits>-L<digits>[-L<digits>]" at pos. On failure pos is
// left wherever matching stopped and the caller rewinds.
func (s *scanner) token() (rawToken, bool) {
	var r rawToken
	if !s.literal("F") {
		return r, false
	}
	if r.file = s.digits(); r.file == "" {
		return r, false
	}
	if !s.literal("-L") {
		return r, false
	}
	if r.start = s.digits(); r.start == "" {
		return r, false
	}

	// The second line is optional; back out if it is incomplete
	mark := s.pos
	if s.literal("-L") {
		if r.end = s.digits(); r.end == "" {
			s.pos = mark
		}
	}
	return r, true
}

func (s *scanner) literal(lit string) bool {
	if strings.HasPrefix(s.src[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

func (s *scanner) digits() string {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	return s.src[start:s.pos]
}
