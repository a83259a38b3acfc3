// Package console implements the interactive prompt collaborators: a
// validated numeric input source that re-prompts until it gets an
// acceptable value, and a plain line-oriented output sink.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Console reads validated values from an input stream and writes prompt
// and status lines to an output stream. Reads retry indefinitely on bad
// input and never return an invalid value.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer

	// fatal is called when the input stream ends mid-prompt. The
	// default logs to the output and exits nonzero; tests override it.
	fatal func()
}

// New creates a console over the given streams.
func New(r io.Reader, w io.Writer) *Console {
	c := &Console{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
	c.fatal = func() {
		fmt.Fprintln(os.Stderr, "input stream closed")
		os.Exit(1)
	}
	return c
}

// Print writes one line to the output.
func (c *Console) Print(line string) {
	fmt.Fprintln(c.out, line)
}

// prompt writes text without a trailing newline and reads one token.
func (c *Console) prompt(text string) string {
	fmt.Fprint(c.out, text)
	if !c.scanner.Scan() {
		c.fatal()
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

// ReadFloat prompts until it reads a valid non-negative number. Zero is
// rejected unless allowZero is set.
func (c *Console) ReadFloat(text string, allowZero bool) float64 {
	for {
		raw := c.prompt(text)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || (!allowZero && v == 0) {
			if allowZero {
				c.Print("Invalid input. Please enter a non-negative number.")
			} else {
				c.Print("Invalid input. Please enter a positive number.")
			}
			continue
		}
		return v
	}
}

// ReadInt prompts until it reads a valid non-negative integer.
func (c *Console) ReadInt(text string) int {
	for {
		raw := c.prompt(text)
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.Print("Invalid input. Please enter a non-negative integer.")
			continue
		}
		return v
	}
}

// ReadChoice prompts until the answer matches one of the options
// (case-insensitive, first letter is enough) and returns the matched
// option in its canonical form.
func (c *Console) ReadChoice(text string, options ...string) string {
	for {
		raw := strings.ToLower(c.prompt(text))
		for _, opt := range options {
			lower := strings.ToLower(opt)
			if raw == lower || (len(raw) == 1 && raw[0] == lower[0]) {
				return opt
			}
		}
		c.Print(fmt.Sprintf("Invalid choice. Please enter one of: %s.", strings.Join(options, ", ")))
	}
}
