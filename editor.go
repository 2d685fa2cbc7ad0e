package jess

import (
	"bufio"
	"io"
	"log"
)

/*
Editor executes commands against a buffer.

Commands which read further input (e.g. append) read from In,
which must therefore be the same reader the commands themselves are read from.
*/
type Editor struct {
	Buffer     *Buffer
	In         *bufio.Reader
	Out        io.Writer
	Log        *log.Logger // debug output, discarded unless debugging
	Prompt     string      // the prompt string
	ShowPrompt bool        // whether to show the prompt
}

/*
NewEditor initialises an editor for the given buffer.
Debug logging is switched off; replace Log to activate it.
*/
func NewEditor(buffer *Buffer, in io.Reader, out io.Writer) *Editor {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	return &Editor{
		Buffer: buffer,
		In:     reader,
		Out:    out,
		Log:    log.New(io.Discard, "", 0),
		Prompt: ":", // default prompt
	}
}
