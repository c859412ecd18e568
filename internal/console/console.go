// Package console provides the terminal surface used by command handlers:
// confirmation prompts, info/warn messages and tabular rendering.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Console abstracts user interaction so command handlers can be tested
// without a terminal.
type Console interface {
	// Confirm prompts for a yes/no answer. A forced confirmation proceeds
	// without prompting.
	Confirm(prompt string, force bool) bool
	Info(msg string)
	Warn(msg string)
	RenderTable(headers []string, rows [][]string) string
}

// Terminal is the interactive Console implementation over stdin/stdout.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) Confirm(prompt string, force bool) bool {
	if force {
		return true
	}
	fmt.Fprintf(t.out, "%s [y/N]: ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (t *Terminal) Info(msg string) {
	fmt.Fprintln(t.out, msg)
}

func (t *Terminal) Warn(msg string) {
	fmt.Fprintln(t.out, msg)
}

func (t *Terminal) RenderTable(headers []string, rows [][]string) string {
	return FormatTable(headers, rows)
}

// FormatTable renders rows under headers as an aligned text table.
func FormatTable(headers []string, rows [][]string) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))
	separators := make([]string, len(headers))
	for i, h := range headers {
		separators[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(separators, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}
