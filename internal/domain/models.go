package domain

// File represents one named text file inside a paste
type File struct {
	Index   int // zero-based position within the paste
	Name    string
	Content string

	// Lines is the content split into lines, line N is Lines[N-1]
	Lines      []string
	Annotation string

	WarningPositions []int // byte offsets flagged by the loader
	WarningLines     []int // 1-based lines holding a flagged offset
}

// LineCount returns the number of addressable lines
func (f *File) LineCount() int {
	return len(f.Lines)
}

// Line returns the text of a 1-based line, or "" when out of range
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.Lines) {
		return ""
	}
	return f.Lines[n-1]
}

// Paste represents a shareable bundle of files
type Paste struct {
	ID    string // content-derived identity
	Files []*File
}

// File returns the file at a zero-based index, or nil
func (p *Paste) File(index int) *File {
	if p == nil || index < 0 || index >= len(p.Files) {
		return nil
	}
	return p.Files[index]
}

// LineCount returns the line count of a file, or -1 when the file does not exist
func (p *Paste) LineCount(index int) int {
	f := p.File(index)
	if f == nil {
		return -1
	}
	return f.LineCount()
}

// HasWarning reports whether a 1-based line was flagged
func (f *File) HasWarning(n int) bool {
	for _, w := range f.WarningLines {
		if w == n {
			return true
		}
	}
	return false
}

// Selection is an inclusive, contiguous range of 1-based lines in one file
type Selection struct {
	FileIndex int
	Start     int
	End       int
}

// Single reports whether the selection covers exactly one line
func (s Selection) Single() bool {
	return s.Start == s.End
}

// Contains reports whether a 1-based line falls inside the selection
func (s Selection) Contains(line int) bool {
	return line >= s.Start && line <= s.End
}
