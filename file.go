package jess

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

/*
 * Reads the entire file identified by 'filename' into a new buffer.
 * The number of bytes read is also returned.
 * Non-EOF errors are returned in the error variable.
 *
 * The file is closed when this function returns.
 */
func ReadFile(filename string) (nbrBytesRead int, buffer *Buffer, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, nil, fmt.Errorf("cannot read %s: %w", filename, err)
	}

	defer file.Close()

	// Start reading from the file with a reader
	reader := bufio.NewReader(file)
	return ReadReader(filename, reader)
}

/*
 * Reads the entire contents of the 'reader' into a new buffer named 'filename'.
 * Each line is appended to the buffer, so that afterwards the current line is the last line.
 * The number of bytes read is also returned.
 * Non-EOF errors are returned in the error variable.
 */
func ReadReader(filename string, reader *bufio.Reader) (nbrBytesRead int, buffer *Buffer, err error) {

	buffer = NewBuffer(filename)

	var lineStr string
	for {
		lineStr, err = reader.ReadString('\n')

		// if EOF comes directly after \n, then get length=0 and err=EOF
		if len(lineStr) != 0 {
			buffer.Append(lineStr)
			nbrBytesRead += len(lineStr)
		}

		if err != nil {
			break
		}
	}

	if err != io.EOF {
		return nbrBytesRead, nil, err
	}

	return nbrBytesRead, buffer, nil
}
