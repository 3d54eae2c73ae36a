// Package paste builds the ordered file list a viewer renders and selects from.
package paste

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"pastelines/internal/domain"
)

// MaxFiles is the largest number of files one paste may hold
const MaxFiles = 5

var (
	// ErrNoFiles is returned when a paste would contain no files
	ErrNoFiles = errors.New("paste has no files")
	// ErrTooManyFiles is returned when more than MaxFiles are given
	ErrTooManyFiles = fmt.Errorf("paste holds at most %d files", MaxFiles)
)

// tokenPattern matches strings shaped like chat bot tokens, which are
// flagged so a viewer can warn before sharing a link to them
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9_-]{23,28}\.[A-Za-z0-9_-]{6,7}\.[A-Za-z0-9_-]{27,38}`)

// Source is one named piece of content
type Source struct {
	Name    string
	Content string
}

// Load reads every path into a paste. "-" reads from stdin.
func Load(paths []string, stdin io.Reader) (*domain.Paste, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}
	if len(paths) > MaxFiles {
		return nil, ErrTooManyFiles
	}

	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		var (
			data []byte
			err  error
			name = filepath.Base(path)
		)
		if path == "-" {
			name = "stdin"
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		sources = append(sources, Source{Name: name, Content: string(data)})
	}
	return New(sources)
}

// New builds a paste from in-memory sources
func New(sources []Source) (*domain.Paste, error) {
	if len(sources) == 0 {
		return nil, ErrNoFiles
	}
	if len(sources) > MaxFiles {
		return nil, ErrTooManyFiles
	}

	h := sha256.New()
	p := &domain.Paste{}
	for i, src := range sources {
		name := strings.Join(SplitLines(src.Name), "_")
		if name == "" {
			name = fmt.Sprintf("File %d", i+1)
		}

		f := &domain.File{
			Index:            i,
			Name:             name,
			Content:          src.Content,
			Lines:            SplitLines(src.Content),
			WarningPositions: scanWarnings(src.Content),
		}
		f.WarningLines = WarningLines(f.Lines, f.WarningPositions)
		if len(f.WarningPositions) > 0 {
			f.Annotation = "Possible token detected"
		}
		p.Files = append(p.Files, f)

		fmt.Fprintf(h, "%d:%s\x00%d:%s\x00", len(name), name, len(src.Content), src.Content)
	}
	p.ID = hex.EncodeToString(h.Sum(nil))[:16]
	return p, nil
}

// SplitLines splits on \n, \r\n and \r. A trailing line break does not start
// a new line and empty content has no lines.
func SplitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// WarningLines maps sorted byte offsets onto the 1-based lines containing
// them. Each line is assumed to be followed by a single line break.
func WarningLines(lines []string, positions []int) []int {
	var out []int
	next := 0
	offset := 0
	for n, line := range lines {
		if next >= len(positions) {
			break
		}
		end := offset + len(line)
		flagged := false
		for next < len(positions) && positions[next] <= end {
			if positions[next] >= offset {
				flagged = true
			}
			next++
		}
		if flagged {
			out = append(out, n+1)
		}
		offset = end + 1
	}
	return out
}

func scanWarnings(content string) []int {
	var positions []int
	for _, loc := range tokenPattern.FindAllStringIndex(content, -1) {
		positions = append(positions, loc[0])
	}
	return positions
}
