package jess

import (
	"container/list"
	"fmt"
	"strings"
)

const newline string = "\n"

/*
Line stores the text of one line, including its line terminator if present.
The line number is not stored, this is implicit.
*/
type Line struct {
	text string
}

func (l *Line) String() string {
	return fmt.Sprintf("line of length %d", len(l.text))
}

// Text returns the line exactly as stored.
func (l *Line) Text() string {
	return l.text
}

// terminate appends a newline unless the line already ends with one.
func (l *Line) terminate() {
	if !strings.HasSuffix(l.text, newline) {
		l.text += newline
	}
}

/*
LineList is the ordered sequence of lines making up a buffer.

The elements of the underlying list hold *Line values. An element handed out
by InsertAfter or Nth stays valid until it is passed to Unlink.
*/
type LineList struct {
	lines *list.List
}

// NewLineList returns an empty list.
func NewLineList() *LineList {
	return &LineList{lines: list.New()}
}

/*
InsertAfter creates a new line holding text and splices it in directly after anchor.
A nil anchor inserts the line at the head of the list (in an empty list it becomes the sole line).
*/
func (ll *LineList) InsertAfter(anchor *list.Element, text string) *list.Element {
	line := &Line{text: text}
	if anchor == nil {
		return ll.lines.PushFront(line)
	}
	return ll.lines.InsertAfter(line, anchor)
}

/*
Nth returns the element at the zero-based index n, or nil if the list is too short.
Negative indexes also return nil.
*/
func (ll *LineList) Nth(n int) *list.Element {
	if n < 0 || n >= ll.lines.Len() {
		return nil
	}
	e := ll.lines.Front()
	for ; n > 0; n-- {
		e = e.Next()
	}
	return e
}

/*
Unlink removes e from the list and returns the element which preceded it (nil if e was the head).
e must be an element of this list.
*/
func (ll *LineList) Unlink(e *list.Element) *list.Element {
	prev := e.Prev()
	ll.lines.Remove(e)
	return prev
}

// Len returns the number of lines.
func (ll *LineList) Len() int {
	return ll.lines.Len()
}

// Front returns the first line, or nil if the list is empty.
func (ll *LineList) Front() *list.Element {
	return ll.lines.Front()
}

// Texts returns a snapshot of the text of every line, in order.
func (ll *LineList) Texts() []string {
	texts := make([]string, 0, ll.lines.Len())
	for e := ll.lines.Front(); e != nil; e = e.Next() {
		texts = append(texts, lineOf(e).text)
	}
	return texts
}

func lineOf(e *list.Element) *Line {
	return e.Value.(*Line)
}
