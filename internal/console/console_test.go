package console_test

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/mgnsk/dllist/internal/console"
	. "github.com/onsi/gomega"
)

func TestReader(t *testing.T) {
	t.Run("whitespace separated values", func(t *testing.T) {
		g := NewWithT(t)

		r := console.NewReader(strings.NewReader("5 3\n8\t-1\n\n9"), nil)

		var values []int
		for range 5 {
			v, err := r.Next()
			g.Expect(err).NotTo(HaveOccurred())
			values = append(values, v)
		}

		g.Expect(values).To(Equal([]int{5, 3, 8, -1, 9}))

		_, err := r.Next()
		g.Expect(errors.Is(err, io.ErrUnexpectedEOF)).To(BeTrue())
	})

	t.Run("prompt", func(t *testing.T) {
		g := NewWithT(t)

		var prompt bytes.Buffer
		r := console.NewReader(strings.NewReader("1 2"), &prompt)

		_, err := r.Next()
		g.Expect(err).NotTo(HaveOccurred())
		_, err = r.Next()
		g.Expect(err).NotTo(HaveOccurred())

		g.Expect(prompt.String()).To(Equal(console.Prompt + console.Prompt))
	})

	t.Run("malformed input", func(t *testing.T) {
		g := NewWithT(t)

		r := console.NewReader(strings.NewReader("1 two 3"), nil)

		_, err := r.Next()
		g.Expect(err).NotTo(HaveOccurred())

		_, err = r.Next()
		g.Expect(errors.Is(err, console.ErrMalformedInput)).To(BeTrue())
		g.Expect(err.Error()).To(ContainSubstring(`token 2 "two"`))
	})
}

func TestValues(t *testing.T) {
	g := NewWithT(t)

	v := console.NewValues([]string{"7", "x"})

	n, err := v.Next()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(n).To(Equal(7))

	_, err = v.Next()
	g.Expect(errors.Is(err, console.ErrMalformedInput)).To(BeTrue())

	_, err = v.Next()
	g.Expect(errors.Is(err, io.ErrUnexpectedEOF)).To(BeTrue())
}

func TestIsTerminal(t *testing.T) {
	g := NewWithT(t)

	g.Expect(console.IsTerminal(strings.NewReader(""))).To(BeFalse())
}

func TestParseFormat(t *testing.T) {
	g := NewWithT(t)

	f, err := console.ParseFormat("")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(f).To(Equal(console.Text))

	f, err = console.ParseFormat("table")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(f).To(Equal(console.Table))

	_, err = console.ParseFormat("yaml")
	g.Expect(err).To(HaveOccurred())
}

func TestPrinter(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		g := NewWithT(t)

		var out bytes.Buffer
		p := console.NewPrinter(&out, console.Text)

		g.Expect(p.Print("Nodes...", slices.Values([]int{5, 3}))).To(Succeed())
		g.Expect(out.String()).To(Equal("Nodes...\nValue: 5\nValue: 3\n"))
	})

	t.Run("text without values", func(t *testing.T) {
		g := NewWithT(t)

		var out bytes.Buffer
		p := console.NewPrinter(&out, console.Text)

		g.Expect(p.Print("Nodes...", slices.Values([]int(nil)))).To(Succeed())
		g.Expect(out.String()).To(Equal("Nodes...\n"))
	})

	t.Run("table", func(t *testing.T) {
		g := NewWithT(t)

		var out bytes.Buffer
		p := console.NewPrinter(&out, console.Table)

		g.Expect(p.Print("Now in reverse order...", slices.Values([]int{9, 1}))).To(Succeed())

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		g.Expect(lines).To(HaveLen(4))
		g.Expect(lines[0]).To(Equal("Now in reverse order..."))
		g.Expect(lines[1]).To(ContainSubstring("VALUE"))
		g.Expect(strings.Fields(lines[2])).To(Equal([]string{"1", "9"}))
		g.Expect(strings.Fields(lines[3])).To(Equal([]string{"2", "1"}))
	})
}
