package syntax

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// Position is a 1-based line and column; Column counts runes.
type Position struct {
	Line   int
	Column int
}

// LineCol is a 0-based line and a column in UTF-16 code units, the unit
// used by the Language Server Protocol.
type LineCol struct {
	Line int
	Col  int
}

// LineIndex maps byte offsets in a source text to line/column pairs.
type LineIndex struct {
	src   []byte
	lines []int
}

func NewLineIndex(src []byte) *LineIndex {
	li := &LineIndex{src: src, lines: []int{0}}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			li.lines = append(li.lines, i+1)
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			li.lines = append(li.lines, i+1)
		}
	}
	return li
}

func (li *LineIndex) LineCount() int {
	return len(li.lines)
}

func (li *LineIndex) line(offset int) int {
	offset = max(0, min(offset, len(li.src)))
	return sort.Search(len(li.lines), func(i int) bool { return li.lines[i] > offset }) - 1
}

// Position converts a byte offset to a 1-based line and rune column.
func (li *LineIndex) Position(offset int) Position {
	offset = max(0, min(offset, len(li.src)))
	line := li.line(offset)
	col := utf8.RuneCount(li.src[li.lines[line]:offset])
	return Position{Line: line + 1, Column: col + 1}
}

// LineCol converts a byte offset to a 0-based line and UTF-16 column.
func (li *LineIndex) LineCol(offset int) LineCol {
	offset = max(0, min(offset, len(li.src)))
	line := li.line(offset)
	col := 0
	for _, r := range string(li.src[li.lines[line]:offset]) {
		col += utf16Len(r)
	}
	return LineCol{Line: line, Col: col}
}

// Offset converts a 0-based line and UTF-16 column back to a byte offset,
// clamping to the end of the line.
func (li *LineIndex) Offset(lc LineCol) int {
	if lc.Line < 0 {
		return 0
	}
	if lc.Line >= len(li.lines) {
		return len(li.src)
	}
	start := li.lines[lc.Line]
	end := len(li.src)
	if lc.Line+1 < len(li.lines) {
		end = li.lines[lc.Line+1]
	}
	col := 0
	for i, r := range string(li.src[start:end]) {
		if col >= lc.Col || r == '\n' || r == '\r' {
			return start + i
		}
		col += utf16Len(r)
	}
	return end
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
