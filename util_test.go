package jess

import (
	"bytes"
	"strings"
	"testing"
)

/*
Creates a buffer with lines corresponding to the given slice elements (a newline is added to each).
As after reading a file, the current line is the last line.
*/
func createBuffer(lines []string) *Buffer {
	buffer := NewBuffer("test.txt")
	for _, line := range lines {
		buffer.Append(line + "\n")
	}
	return buffer
}

/*
Creates an editor for a buffer with the given lines. Input is read from 'input', output is returned in the bytes.Buffer.
*/
func createEditor(lines []string, input string) (*Editor, *bytes.Buffer) {
	var out bytes.Buffer
	return NewEditor(createBuffer(lines), strings.NewReader(input), &out), &out
}

/*
Parses and processes the given command, failing the test on error.
*/
func process(t *testing.T, ed *Editor, cmdStr string) (quit bool) {
	t.Helper()
	quit, err := ed.ProcessCommand(ParseCommand(cmdStr))
	if err != nil {
		t.Fatalf("command '%s': error %s", cmdStr, err)
	}
	return quit
}

/*
Checks that the current line is consistent, i.e. is in the buffer at the position given by the current line number.
*/
func checkCursor(t *testing.T, buffer *Buffer) {
	t.Helper()
	if buffer.Len() == 0 {
		if buffer.dotline != nil || buffer.lineNbr != 0 {
			t.Fatalf("empty buffer: current line %v, line number %d", buffer.dotline, buffer.lineNbr)
		}
		return
	}
	if buffer.dotline == nil {
		t.Fatalf("buffer with %d lines has no current line", buffer.Len())
	}
	if e := buffer.lines.Nth(buffer.lineNbr - 1); e != buffer.dotline {
		t.Fatalf("current line number %d does not match current line '%s'", buffer.lineNbr, lineOf(buffer.dotline).text)
	}
}

func assertInt(t *testing.T, text string, val, expected int) {
	t.Helper()
	if val != expected {
		t.Fatalf("assert failed: %s got %d, expected %d", text, val, expected)
	}
}

func assertBufferContents(t *testing.T, buffer *Buffer, expected string) {
	t.Helper()
	got := strings.Join(buffer.Lines(), "")
	if got != expected {
		t.Fatalf("buffers did not match.\nBuffer1: %s\nBuffer2: %s", strings.ReplaceAll(got, "\n", "\\n"), strings.ReplaceAll(expected, "\n", "\\n"))
	}
}
