package jess

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testdata []struct {
	lineLength int
}

func TestLongLines(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "longline.txt")
	if err := createFileWithLongLine(filename); err != nil {
		t.Fatalf("could not create test file: %s", err)
	}

	data := testdata{
		{4194304 + 1}, // first line is 4MB + 1
		{12},          // second line has no \n
	}

	doReadTestWithFile(t, data, filename)
}

func TestLinesThatDoNotFinishWithALinebreak(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nolinebreak.txt")
	if err := os.WriteFile(filename, []byte("Does not end with linebreak."), 0o644); err != nil {
		t.Fatalf("could not create test file: %s", err)
	}

	data := testdata{
		{28},
	}
	doReadTestWithFile(t, data, filename)
}

func TestStringReader(t *testing.T) {
	str := "line1\n\neol\n"

	data := testdata{
		{6}, {1}, {4},
	}
	reader := strings.NewReader(str)
	doReadTestWithReader(t, data, bufio.NewReader(reader))
}

func TestEmptyReader(t *testing.T) {
	nbrBytes, buffer, err := ReadReader("empty", bufio.NewReader(strings.NewReader("")))
	if err != nil {
		t.Fatalf("got error message %v", err)
	}
	assertInt(t, "nbrBytes", nbrBytes, 0)
	assertInt(t, "buffer length", buffer.Len(), 0)
	checkCursor(t, buffer)
}

func TestMissingFile(t *testing.T) {
	if _, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

/* --------------------  helper routines ---------------- */

func doReadTestWithFile(t *testing.T, data testdata, filename string) {
	nbrBytes, buffer, err := ReadFile(filename)
	if err != nil {
		t.Fatalf("got error message %v", err)
	}
	if buffer.Filename() != filename {
		t.Fatalf("bad filename %s", buffer.Filename())
	}
	doReadTest(t, data, nbrBytes, buffer)
}

func doReadTestWithReader(t *testing.T, data testdata, reader *bufio.Reader) {
	nbrBytes, buffer, err := ReadReader("reader", reader)
	if err != nil {
		t.Fatalf("got error message %v", err)
	}
	doReadTest(t, data, nbrBytes, buffer)
}

func doReadTest(t *testing.T, data testdata, nbrBytes int, buffer *Buffer) {
	// length of buffer (file lines) must equal length of testdata
	if buffer.Len() != len(data) {
		t.Fatalf("Expected %d lines but got %d", len(data), buffer.Len())
	}
	// after reading, the current line is the last line
	assertInt(t, "current line", buffer.CurrentLine(), len(data))
	checkCursor(t, buffer)

	expectedNbrBytes := 0
	for currentLine, line := range buffer.Lines() {
		if len(line) != data[currentLine].lineLength {
			t.Fatalf("Bad line length at line %d, expected %d but got %d", currentLine+1, data[currentLine].lineLength, len(line))
		}
		expectedNbrBytes += len(line)
	}
	if expectedNbrBytes != nbrBytes {
		t.Fatalf("Expected %d bytes but read %d", expectedNbrBytes, nbrBytes)
	}
}

func createFileWithLongLine(fn string) (err error) {
	file, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	fs := 1024 * 1024 * 4 // 4MB

	// Create a 4MB long line consisting of the letter a.
	for i := 0; i < fs; i++ {
		w.WriteRune('a')
	}

	// Terminate the line with a break.
	w.WriteRune('\n')

	// Put in a second line, which doesn't have a linebreak.
	w.WriteString("Second line.")

	return w.Flush()
}
