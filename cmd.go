package jess

import (
	"container/list"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ---- constants for the available commands
const commandAppend string = "a"
const commandDelete string = "d"
const commandFilename string = "f"
const commandHelp string = "h"
const commandNumber string = "n"
const commandPrint string = "p"
const commandQuit string = "q"
const commandLinenumber string = "="

// returned when only an address (or nothing at all) was entered
const commandNoCommand string = ""

// terminates input mode
const endOfInput string = "."

var errUnrecognisedCommand error = errors.New("unrecognised command")

/*
Command is a command parsed from user input.
*/
type Command struct {
	addrRange AddressRange
	cmd       string
	restOfCmd string
}

func (cmd Command) String() string {
	return fmt.Sprintf("range: %s, cmd: '%s', rest: '%s'", cmd.addrRange, cmd.cmd, cmd.restOfCmd)
}

/*
ParseCommand splits a line of input (without its line terminator) into
an address range, a one-character command and the rest of the line.

Parsing never fails: unknown commands are only detected when the command is processed.
*/
func ParseCommand(str string) Command {
	addrRange, rest := ParseRange(str)
	if rest == "" {
		return Command{addrRange: addrRange, cmd: commandNoCommand}
	}
	_, size := utf8.DecodeRuneInString(rest)
	return Command{addrRange: addrRange, cmd: rest[:size], restOfCmd: rest[size:]}
}

/*
ProcessCommand executes the command against the editor's buffer.

Returns TRUE if the editor should quit.
Addresses outside the buffer are ignored without an error;
the only errors are unrecognised commands and i/o errors.
*/
func (ed *Editor) ProcessCommand(cmd Command) (quit bool, err error) {
	ed.Log.Printf("command: %s", cmd)

	switch cmd.cmd {
	case commandPrint, commandNumber, commandDelete, commandLinenumber, commandFilename, commandQuit:
		// these commands take no parameters
		if cmd.restOfCmd != "" {
			return false, fmt.Errorf("%w: '%s%s'", errUnrecognisedCommand, cmd.cmd, cmd.restOfCmd)
		}
	}

	switch cmd.cmd {
	case commandPrint, commandNumber:
		err = ed.cmdPrint(cmd)
	case commandDelete:
		ed.cmdDelete(cmd)
	case commandAppend:
		err = ed.cmdAppend(cmd)
	case commandNoCommand:
		err = ed.cmdMoveTo(cmd)
	case commandLinenumber:
		err = ed.cmdLinenumber(cmd)
	case commandFilename:
		_, err = fmt.Fprintln(ed.Out, ed.Buffer.Filename())
	case commandHelp:
		err = ed.Help(cmd)
	case commandQuit:
		return true, nil
	default:
		return false, fmt.Errorf("%w: '%s'", errUnrecognisedCommand, cmd.cmd)
	}

	ed.Log.Printf("buffer: %s", ed.Buffer)
	return false, err
}

/*
Prints the addressed lines; for command 'n' each line is preceded by its line number.

A single address moves the current line to the addressed line before printing it.
After printing a span, the current line is the last line printed.
*/
func (ed *Editor) cmdPrint(cmd Command) error {
	numbered := cmd.cmd == commandNumber
	buffer := ed.Buffer
	switch {
	case cmd.addrRange.IsAbsent():
		if buffer.dotline == nil {
			return nil
		}
	case cmd.addrRange.IsSingle():
		if !buffer.SetCurrent(cmd.addrRange.Start()) {
			return nil
		}
	default:
		start, end := cmd.addrRange.resolve(buffer.Len())
		lastPrinted, err := buffer.printRange(ed.Out, start, end, numbered)
		if lastPrinted != 0 {
			buffer.SetCurrent(lastPrinted)
		}
		return err
	}
	_, err := buffer.printRange(ed.Out, buffer.lineNbr, buffer.lineNbr, numbered)
	return err
}

/*
Deletes the addressed lines from the buffer.

The current line is first moved to the start of the range.
Each time the current line is deleted, the current line becomes the previous line
(or the following line, if the first line was deleted).
A span extending beyond the end of the buffer deletes as many lines as there are.
*/
func (ed *Editor) cmdDelete(cmd Command) {
	buffer := ed.Buffer
	count := 1
	switch {
	case cmd.addrRange.IsAbsent():
		// current line
	case cmd.addrRange.IsSingle():
		if !buffer.SetCurrent(cmd.addrRange.Start()) {
			return
		}
	default:
		start, end := cmd.addrRange.resolve(buffer.Len())
		if end < start || !buffer.SetCurrent(start) {
			return
		}
		count = end - start + 1
	}
	buffer.Delete(buffer.dotline, count)
}

/*
Appends text after the addressed line (or the current line if no address was given).

If text follows the command (e.g. "2a some text") it is added as a single line.
Otherwise lines are read from the input until a line containing only a fullstop, or end of input.

The address '0' (zero) is valid for this command: it places the entered text at the beginning of the buffer.
For a span, text is appended after the first line of the span.

The current line is set to the last line entered.
If the addressed line does not exist, nothing is appended, but any lines of input mode are still read (and discarded),
so that they are never executed as commands.
*/
func (ed *Editor) cmdAppend(cmd Command) error {
	buffer := ed.Buffer
	atTop, skip := false, false
	if !cmd.addrRange.IsAbsent() {
		if cmd.addrRange.Start() == 0 {
			atTop = true
		} else if !buffer.SetCurrent(cmd.addrRange.Start()) {
			skip = true
		}
	}

	insert := func(text string) {
		if skip {
			return
		}
		var e *list.Element
		if atTop {
			e = buffer.Prepend(text)
			atTop = false
		} else {
			e = buffer.Append(text)
		}
		lineOf(e).terminate()
	}

	if text := strings.TrimPrefix(cmd.restOfCmd, " "); text != "" {
		insert(text)
		return nil
	}

	for {
		inputStr, err := ed.In.ReadString('\n')
		if strings.TrimSuffix(inputStr, "\n") == endOfInput {
			return nil
		}
		if len(inputStr) != 0 {
			insert(inputStr)
		}
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

/*
Handles a line containing only an address: moves to the addressed line and prints it.
For a span, moves to the last line of the span.
Without an address, nothing happens.
*/
func (ed *Editor) cmdMoveTo(cmd Command) error {
	if cmd.addrRange.IsAbsent() {
		return nil
	}
	_, end := cmd.addrRange.resolve(ed.Buffer.Len())
	if !ed.Buffer.SetCurrent(end) {
		return nil
	}
	_, err := io.WriteString(ed.Out, ed.Buffer.CurrentText())
	return err
}

/*
Prints the line number of the addressed line (the last line of a span),
or the number of lines in the buffer if no address was given.
The current line is unchanged.
*/
func (ed *Editor) cmdLinenumber(cmd Command) error {
	lineNbr := ed.Buffer.Len()
	if !cmd.addrRange.IsAbsent() {
		_, lineNbr = cmd.addrRange.resolve(ed.Buffer.Len())
		if lineNbr < 1 || lineNbr > ed.Buffer.Len() {
			return nil
		}
	}
	_, err := fmt.Fprintln(ed.Out, lineNbr)
	return err
}
