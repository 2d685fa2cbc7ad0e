package jess

import (
	"fmt"
	"strings"
)

/*
Help displays a list of the available commands,
or if a command is included (e.g. "h a") then it prints a help for that command.
*/
func (ed *Editor) Help(cmd Command) error {
	out := ed.Out
	fmt.Fprintln(out)
	if subcmd := strings.TrimSpace(cmd.restOfCmd); len(subcmd) != 0 {
		switch subcmd {
		case commandAppend:
			fmt.Fprintln(out, " ", commandAppend, "Appends text after the addressed line.")
			fmt.Fprintln(out, "\n  Text following the command is added as a single line.")
			fmt.Fprintln(out, "  Otherwise text is entered in input mode, i.e. any number of lines, terminated by a fullstop on its own line.")
			fmt.Fprintln(out, "  Specifying the address '0' (zero) adds the entered text at the beginning of the buffer.")
			fmt.Fprintln(out, "\n  Ex.: 2a      appends text after line 2.")
		case commandDelete:
			fmt.Fprintln(out, " ", commandDelete, "Deletes lines from the buffer.")
			fmt.Fprintln(out, "\n  Ex.: 2,4d      deletes lines 2-4.")
		case commandFilename:
			fmt.Fprintln(out, " ", commandFilename, "Prints the name of the file being edited.")
		case commandHelp:
			fmt.Fprintln(out, " ", commandHelp, "Displays this help")
		case commandNumber, commandPrint:
			fmt.Fprintln(out, " ", commandNumber, "Prints the addressed lines with their line numbers.")
			fmt.Fprintln(out, " ", commandPrint, "Prints the addressed lines.")
			fmt.Fprintln(out, "\n  Ex.: ,3n      prints lines 1-3 with their line numbers.")
		case commandQuit:
			fmt.Fprintln(out, " ", commandQuit, "Quits the editor.")
		case commandLinenumber:
			fmt.Fprintln(out, " ", commandLinenumber, "Prints the line number of the addressed line.")
			fmt.Fprintln(out, "\n  Without an address, prints the number of lines in the buffer.")
		default:
			return fmt.Errorf("command '%s' not recognised. Enter '%s' for a list of all commands", subcmd, commandHelp)
		}
	} else {
		fmt.Fprintln(out, " ", commandAppend, "Appends text after the addressed line.")
		fmt.Fprintln(out, " ", commandDelete, "Deletes lines from the buffer.")
		fmt.Fprintln(out, " ", commandFilename, "Prints the name of the file being edited.")
		fmt.Fprintln(out, " ", commandHelp, "Displays this help. (Specify another command to get help on that command)")
		fmt.Fprintln(out, " ", commandNumber, "Prints the addressed lines with their line numbers.")
		fmt.Fprintln(out, " ", commandPrint, "Prints the addressed lines.")
		fmt.Fprintln(out, " ", commandQuit, "Quits the editor.")
		fmt.Fprintln(out, " ", commandLinenumber, "Prints the line number of the addressed line.")
		fmt.Fprintln(out, "\n  Addresses: n  (line n),  n,m  (lines n to m),  n,  (line n to the end),  ,m  (line 1 to m),  ,  (all lines)")
	}
	_, err := fmt.Fprintln(out)
	return err
}
