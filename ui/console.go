package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StdConsole reads one token per line from in and writes lines to out.
type StdConsole struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewStdConsole(in io.Reader, out io.Writer) *StdConsole {
	return &StdConsole{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Read returns the next trimmed line, or "" once the input is exhausted.
func (c *StdConsole) Read() string {
	if !c.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

func (c *StdConsole) Print(line string) {
	fmt.Fprintln(c.out, line)
}
