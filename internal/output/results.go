package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	lipglosstable "github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// Result is one resolved expression.
type Result struct {
	Input string
	Time  time.Time
	Err   error
}

// Resolver turns an expression into an instant.
type Resolver func(input string) (time.Time, error)

// Resolve runs resolve over inputs sequentially.
func Resolve(inputs []string, resolve Resolver) []Result {
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		t, err := resolve(in)
		results = append(results, Result{Input: in, Time: t, Err: err})
	}
	return results
}

func (r Result) cell(format string) string {
	if r.Err != nil {
		return "error: " + r.Err.Error()
	}
	return FormatTime(r.Time, format)
}

// PrintResults writes a table when stdout is a terminal and tab separated lines otherwise.
func PrintResults(results []Result, format string) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return WriteTable(os.Stdout, results, format)
	}
	return WritePlain(os.Stdout, results, format)
}

// WriteTable renders results as a markdown table.
func WriteTable(w io.Writer, results []Result, format string) error {
	re := lipgloss.NewRenderer(w)
	cellStyle := re.NewStyle().Padding(0, 1)
	errStyle := cellStyle.Foreground(lipgloss.Color("203"))

	t := lipglosstable.New().
		Headers("Input", "Result").
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row >= 0 && row < len(results) && col == 1 && results[row].Err != nil {
				return errStyle
			}
			return cellStyle
		})

	for _, r := range results {
		t.Row(r.Input, r.cell(format))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// WritePlain writes one "input<TAB>result" line per result.
func WritePlain(w io.Writer, results []Result, format string) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Input, r.cell(format)); err != nil {
			return err
		}
	}
	return nil
}

// Examples are the expressions shown in usage output.
var Examples = []string{
	"today",
	"tomorrow",
	"2 days",
	"9 weeks",
	"1 month",
	"next friday 9am",
	"3 hours ago",
	"in an hour",
	"14 december 11:20",
	"Wed, 14 Feb 2024 23:16:09 GMT",
	"2024-04-10T13:31:46+04:00",
	"1740599117",
}

// WriteExamples prints each example as it would be typed, aligned with its result.
func WriteExamples(w io.Writer, name string, results []Result, format string) error {
	if len(results) == 0 {
		return nil
	}

	re := lipgloss.NewRenderer(w)
	cellStyle := re.NewStyle().PaddingLeft(2)

	t := lipglosstable.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle })

	for _, r := range results {
		t.Row(name+" "+r.Input, "-> "+r.cell(format))
	}

	for _, line := range strings.Split(t.Render(), "\n") {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
