package console

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Format is an output format.
type Format string

// Available output formats.
const (
	// Text writes one "Value: <integer>" line per value.
	Text Format = "text"
	// Table writes the values as a borderless table.
	Table Format = "table"
)

// ParseFormat parses an output format name.
//
// The empty string selects Text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return Text, nil
	case Text, Table:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q", s)
	}
}

// Printer renders value sequences.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Print writes title on its own line followed by values.
func (p *Printer) Print(title string, values iter.Seq[int]) error {
	if _, err := fmt.Fprintln(p.w, title); err != nil {
		return err
	}

	switch p.format {
	case Table:
		return p.table(values)
	default:
		return p.text(values)
	}
}

func (p *Printer) text(values iter.Seq[int]) error {
	for v := range values {
		if _, err := fmt.Fprintf(p.w, "Value: %d\n", v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) table(values iter.Seq[int]) error {
	var data [][]string

	i := 0
	for v := range values {
		i++
		data = append(data, []string{strconv.Itoa(i), strconv.Itoa(v)})
	}

	table := tablewriter.NewWriter(p.w)
	table.SetHeader([]string{"#", "VALUE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
