package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/rjo67/jess"
)

/*
VERSION is the program version
*/
const VERSION = "0.1"

/*
NAME is the progam name
*/
const NAME = "jess"

func main() {
	var debug, showMemory, listFile bool
	var prompt string

	flag.BoolVar(&debug, "d", false, "debug mode")
	flag.BoolVar(&showMemory, "m", false, "show memory usage")
	flag.BoolVar(&listFile, "l", false, "list the file after reading it")
	flag.StringVar(&prompt, "p", ":", "Specifies a command prompt")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	ed, err := readInputFile(flag.Arg(0), os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	if debug {
		ed.Log = log.New(os.Stderr, "jess: ", log.Ltime)
	}
	ed.Prompt = prompt
	ed.ShowPrompt = term.IsTerminal(int(os.Stdin.Fd()))

	if listFile {
		if err := ed.Buffer.Frame(ed.Out); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			os.Exit(1)
		}
	}

	mainloop(ed, showMemory)
}

func usage() {
	fmt.Fprintf(os.Stderr, "*** %s (v%s)\n", NAME, VERSION)
	fmt.Fprintf(os.Stderr, "usage: %s [flags] filename\n", os.Args[0])
	flag.PrintDefaults()
}

/*
Reads the given file into a new buffer and returns an editor for it.
The number of bytes read is printed.
*/
func readInputFile(filename string, in io.Reader, out io.Writer) (*jess.Editor, error) {
	nbrBytesRead, buffer, err := jess.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out, nbrBytesRead)
	return jess.NewEditor(buffer, in, out), nil
}

func mainloop(ed *jess.Editor, showMemory bool) {
	quit := false
	for !quit {
		if showMemory {
			fmt.Fprintf(ed.Out, "%s ", GetMemUsage())
		}
		if ed.ShowPrompt {
			fmt.Fprint(ed.Out, ed.Prompt, " ")
		}
		cmdStr, err := ed.In.ReadString('\n')
		if err != nil && (err != io.EOF || cmdStr == "") {
			// EOF might happen if reading commands from input file
			if err != io.EOF {
				fmt.Fprintf(ed.Out, "error: %s\n", err)
			}
			return
		}

		cmd := jess.ParseCommand(strings.TrimSuffix(cmdStr, "\n")) // remove LF
		quit, err = ed.ProcessCommand(cmd)

		// each command call can return an error, which will be displayed here
		if err != nil {
			fmt.Fprintf(ed.Out, "? %s\n", err)
		}
	}
}

// GetMemUsage returns a formatted string of current memory stats
// from https://golangcode.com/print-the-current-memory-usage/
func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	nbrGC := m.NumGC
	gcStr := ""
	if nbrGC > 0 {
		lastGC := time.Unix(0, int64(m.LastGC))
		gcStr = fmt.Sprintf(", GC(#%d @ %s)", nbrGC, lastGC.Format(time.Kitchen))
	}
	return fmt.Sprintf("Heap=%v MiB, Sys=%v MiB%s", bToMb(m.HeapAlloc), bToMb(m.Sys), gcStr)
}

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
