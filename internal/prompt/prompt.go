// Package prompt reads validated answers from a line-based console.
// Malformed input is reported and asked again; it never reaches the caller.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input ends before a valid answer arrives
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers from in
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line asks for one line of free text, trimmed
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Int asks until the answer is an integer in [lo, hi]
func (p *Prompter) Int(label string, lo, hi int) (int, error) {
	for {
		text, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		if n < lo || n > hi {
			fmt.Fprintf(p.out, "Please choose between %d and %d.\n", lo, hi)
			continue
		}
		return n, nil
	}
}

// Float asks until the answer parses as a number
func (p *Prompter) Float(label string) (float64, error) {
	for {
		text, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		return f, nil
	}
}

// YesNo asks until the answer is y or n (case-insensitive)
func (p *Prompter) YesNo(label string) (bool, error) {
	for {
		text, err := p.Line(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(text) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Pause waits for ENTER
func (p *Prompter) Pause(label string) error {
	_, err := p.Line(label)
	return err
}
