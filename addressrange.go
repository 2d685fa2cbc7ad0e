package jess

import (
	"fmt"
	"math"
	"strconv"
)

const charComma byte = ','

// kinds of address range
const (
	notSpecified = iota // no address was given
	singleLine          // exactly one line
	lineSpan            // an inclusive span of lines
)

/*
An AddressRange stores the start and end line numbers of a range.

Which fields are meaningful depends on the kind: a range which was not specified has neither,
and a span may run to the end of the buffer, whatever its length is when the command is executed.
*/
type AddressRange struct {
	kind       int
	start, end int
	toEnd      bool // span runs to the last line; 'end' is unused
}

func (r AddressRange) String() string {
	switch r.kind {
	case singleLine:
		return fmt.Sprintf("(%d)", r.start)
	case lineSpan:
		if r.toEnd {
			return fmt.Sprintf("(%d,$)", r.start)
		}
		return fmt.Sprintf("(%d,%d)", r.start, r.end)
	default:
		return "()"
	}
}

// IsAbsent returns TRUE if no address was specified.
func (r AddressRange) IsAbsent() bool {
	return r.kind == notSpecified
}

// IsSingle returns TRUE if the range addresses exactly one line.
func (r AddressRange) IsSingle() bool {
	return r.kind == singleLine
}

// IsSpan returns TRUE if the range addresses a span of lines (which may be empty if start > end).
func (r AddressRange) IsSpan() bool {
	return r.kind == lineSpan
}

// Start returns the first line of the range, zero if no address was specified.
func (r AddressRange) Start() int {
	return r.start
}

/*
resolve returns the actual start and end line numbers for a buffer with 'lastLine' lines.
Must not be called for a range which was not specified.
*/
func (r AddressRange) resolve(lastLine int) (start, end int) {
	if r.toEnd {
		return r.start, lastLine
	}
	return r.start, r.end
}

func newSingle(lineNbr int) AddressRange {
	return AddressRange{kind: singleLine, start: lineNbr, end: lineNbr}
}

func newSpan(start, end int) AddressRange {
	if start == end {
		return newSingle(start)
	}
	return AddressRange{kind: lineSpan, start: start, end: end}
}

func newSpanToEnd(start int) AddressRange {
	return AddressRange{kind: lineSpan, start: start, toEnd: true}
}

/*
ParseRange parses an address range from the front of rangeStr.
The range and the part of rangeStr which was not consumed are returned.

	(empty)   not specified
	n         {n, n}
	n,        {n, last line}
	n,m       {n, m}
	,         {1, last line}
	,m        {1, m}

Anything else is not an address: the range is not specified and nothing is consumed.

Line numbers too large for an int are clamped to the largest int, i.e. they address a line beyond the end of the buffer.
*/
func ParseRange(rangeStr string) (AddressRange, string) {
	var start int
	rest := rangeStr

	switch {
	case len(rest) > 0 && rest[0] == charComma:
		start = 1
	case len(rest) > 0 && isDigit(rest[0]):
		start, rest = parseNumber(rest)
		if len(rest) == 0 || rest[0] != charComma {
			return newSingle(start), rest
		}
	default:
		return AddressRange{kind: notSpecified}, rangeStr
	}

	// rest starts with the comma
	rest = rest[1:]
	if len(rest) == 0 || !isDigit(rest[0]) {
		return newSpanToEnd(start), rest
	}
	end, rest := parseNumber(rest)
	return newSpan(start, end), rest
}

/*
parseNumber consumes the longest run of decimal digits at the start of str.
str must start with a digit.
*/
func parseNumber(str string) (int, string) {
	i := 0
	for i < len(str) && isDigit(str[i]) {
		i++
	}
	nbr, err := strconv.Atoi(str[:i])
	if err != nil {
		// only possible error is out of range
		nbr = math.MaxInt
	}
	return nbr, str[i:]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
