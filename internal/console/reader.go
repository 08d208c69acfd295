/*
Package console reads list values from a console and renders traversals.
*/
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Prompt is written before each value read from an interactive terminal.
const Prompt = "Insert new value: "

// ErrMalformedInput indicates a token that is not an integer.
var ErrMalformedInput = errors.New("malformed input")

// Source supplies one value per call.
type Source interface {
	Next() (int, error)
}

// Reader reads whitespace separated integers.
type Reader struct {
	scanner *bufio.Scanner
	prompt  io.Writer
	n       int
}

// NewReader creates a Reader. If prompt is not nil, Prompt is written to it
// before each read.
func NewReader(r io.Reader, prompt io.Writer) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	return &Reader{
		scanner: scanner,
		prompt:  prompt,
	}
}

// Next reads the next value.
func (r *Reader) Next() (int, error) {
	if r.prompt != nil {
		if _, err := io.WriteString(r.prompt, Prompt); err != nil {
			return 0, err
		}
	}

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}

	r.n++

	return parse(r.scanner.Text(), r.n)
}

// Values is a Source backed by already split tokens, such as command line arguments.
type Values struct {
	tokens []string
	n      int
}

// NewValues creates a Source that yields tokens in order.
func NewValues(tokens []string) *Values {
	return &Values{tokens: tokens}
}

// Next parses the next token.
func (v *Values) Next() (int, error) {
	if v.n >= len(v.tokens) {
		return 0, io.ErrUnexpectedEOF
	}

	token := v.tokens[v.n]
	v.n++

	return parse(token, v.n)
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func parse(token string, pos int) (int, error) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q is not an integer", ErrMalformedInput, pos, token)
	}
	return value, nil
}
