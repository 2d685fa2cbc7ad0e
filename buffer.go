package jess

import (
	"container/list"
	"fmt"
	"io"
	"strings"
)

/*
Buffer stores the lines of the file being edited together with the current (dot) line.

If the buffer contains lines, dotline always refers to one of them and lineNbr is its 1-based position.
In an empty buffer dotline is nil and lineNbr is zero.
*/
type Buffer struct {
	// the last line number is accessible via lines.Len()
	lines    *LineList
	dotline  *list.Element // the current (dot) line -- can be nil
	lineNbr  int           // the current line number
	filename string        // name of the file the buffer was read from
}

/*
NewBuffer initialises an empty buffer for the given file.
*/
func NewBuffer(filename string) *Buffer {
	return &Buffer{lines: NewLineList(), filename: filename}
}

func (b *Buffer) String() string {
	return fmt.Sprintf("%s: %d lines, current line %d", b.filename, b.lines.Len(), b.lineNbr)
}

// Filename returns the name the buffer was created with.
func (b *Buffer) Filename() string {
	return b.filename
}

// Len returns the number of lines in the buffer.
func (b *Buffer) Len() int {
	return b.lines.Len()
}

// CurrentLine returns the 1-based number of the current line, zero if the buffer is empty.
func (b *Buffer) CurrentLine() int {
	return b.lineNbr
}

// CurrentText returns the text of the current line, or "" if the buffer is empty.
func (b *Buffer) CurrentText() string {
	if b.dotline == nil {
		return ""
	}
	return lineOf(b.dotline).text
}

// Lines returns a copy of the text of every line in the buffer.
func (b *Buffer) Lines() []string {
	return b.lines.Texts()
}

/*
SetCurrent moves to the given 1-based line number.
If there is no such line the current line is left unchanged and false is returned.
*/
func (b *Buffer) SetCurrent(lineNbr int) bool {
	e := b.lines.Nth(lineNbr - 1)
	if e == nil {
		return false
	}
	b.dotline = e
	b.lineNbr = lineNbr
	return true
}

/*
Append inserts text as a new line after the current line (or as the only line of an empty buffer).
The new line becomes the current line.
*/
func (b *Buffer) Append(text string) *list.Element {
	b.dotline = b.lines.InsertAfter(b.dotline, text)
	b.lineNbr++
	return b.dotline
}

/*
Prepend inserts text as a new first line, which becomes the current line.
*/
func (b *Buffer) Prepend(text string) *list.Element {
	b.dotline = b.lines.InsertAfter(nil, text)
	b.lineNbr = 1
	return b.dotline
}

/*
Delete removes up to count consecutive lines, starting with 'start' and moving towards the end of the buffer.
Deleting past the end of the buffer is not an error; the number of lines actually removed is returned.

Whenever the current line is removed, the current line becomes its predecessor or,
if it was the first line, its successor.
*/
func (b *Buffer) Delete(start *list.Element, count int) int {
	if start == nil {
		return 0
	}
	// position of 'start'. Every following line moves up into this position as its predecessor is removed.
	pos := 1
	for e := start.Prev(); e != nil; e = e.Prev() {
		pos++
	}

	nbrDeleted := 0
	for e := start; e != nil && nbrDeleted < count; nbrDeleted++ {
		next := e.Next()
		if e == b.dotline {
			if prev := e.Prev(); prev != nil {
				b.dotline = prev
				b.lineNbr = pos - 1
			} else {
				b.dotline = next
				if next == nil {
					b.lineNbr = 0
				}
			}
		} else if pos < b.lineNbr {
			b.lineNbr--
		}
		b.lines.Unlink(e)
		e = next
	}
	return nbrDeleted
}

/*
printRange writes up to end-start+1 lines starting at line 'start' to 'writer',
optionally preceded by the line number.
Stops silently at the end of the buffer.
Returns the number of the last line printed, zero if nothing was printed.
*/
func (b *Buffer) printRange(writer io.Writer, start, end int, numbered bool) (int, error) {
	e := b.lines.Nth(start - 1)
	lastPrinted := 0
	for lineNbr := start; e != nil && lineNbr <= end; lineNbr++ {
		var err error
		if numbered {
			_, err = fmt.Fprintf(writer, "%d %s", lineNbr, lineOf(e).text)
		} else {
			_, err = io.WriteString(writer, lineOf(e).text)
		}
		if err != nil {
			return lastPrinted, err
		}
		lastPrinted = lineNbr
		e = e.Next()
	}
	return lastPrinted, nil
}

/*
Frame writes the complete buffer to 'writer', between a header containing the filename and a footer.
*/
func (b *Buffer) Frame(writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "----< %s >----\n", b.filename); err != nil {
		return err
	}
	for e := b.lines.Front(); e != nil; e = e.Next() {
		if _, err := io.WriteString(writer, lineOf(e).text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(writer, strings.Repeat("-", len(b.filename)+12))
	return err
}
