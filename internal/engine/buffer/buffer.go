// Package buffer provides an immutable line-indexed snapshot of a text
// document. A Buffer is built once from source text and never mutated;
// navigation and rendering read from it concurrently without locking.
package buffer

import (
	"io"
	"os"
	"strings"
)

// LineInfo is a read-only view of a single line.
type LineInfo struct {
	// Text is the raw line content without the trailing newline.
	Text string

	// Blank is true if the line is empty or contains only whitespace.
	Blank bool
}

// Buffer is an ordered, fixed-length sequence of lines.
type Buffer struct {
	path  string
	lines []LineInfo
}

// New creates a buffer from raw text. The text is split on '\n';
// a trailing '\r' on each line is stripped (CRLF input).
func New(text string) *Buffer {
	raw := strings.Split(text, "\n")

	// A trailing newline produces a phantom empty last element; drop it
	// so the line count matches what an editor would show.
	if n := len(raw); n > 1 && raw[n-1] == "" {
		raw = raw[:n-1]
	}

	lines := make([]LineInfo, len(raw))
	for i, s := range raw {
		s = strings.TrimSuffix(s, "\r")
		lines[i] = LineInfo{
			Text:  s,
			Blank: strings.TrimSpace(s) == "",
		}
	}
	return &Buffer{lines: lines}
}

// FromReader creates a buffer by reading all of r.
func FromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(string(data)), nil
}

// Open creates a buffer from the contents of a file.
func Open(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b := New(string(data))
	b.path = path
	return b, nil
}

// Path returns the file path the buffer was loaded from, if any.
func (b *Buffer) Path() string {
	return b.path
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at the given index.
// Out-of-range indices return an empty blank line rather than panic.
func (b *Buffer) Line(i int) LineInfo {
	if i < 0 || i >= len(b.lines) {
		return LineInfo{Blank: true}
	}
	return b.lines[i]
}

// LineText returns the text of the line at the given index.
func (b *Buffer) LineText(i int) string {
	return b.Line(i).Text
}

// IsBlank returns true if the line at the given index is blank.
func (b *Buffer) IsBlank(i int) bool {
	return b.Line(i).Blank
}

// ClampLine clamps a line index to the valid range [0, LineCount-1].
// An empty buffer clamps everything to 0.
func (b *Buffer) ClampLine(i int) int {
	if i < 0 {
		return 0
	}
	if max := len(b.lines) - 1; i > max {
		if max < 0 {
			return 0
		}
		return max
	}
	return i
}
