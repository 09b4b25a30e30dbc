package main

import (
	"fmt"
	"io"
	"os"

	"github.com/steved/tu/internal/output"
	"github.com/steved/tu/internal/relativetime"
)

type durationCmd struct {
	commonFlags

	Words []string `arg:"" help:"Duration such as '2 days', 'in an hour' or '1h30m'."`
}

func (cmd *durationCmd) Run() error {
	cmd.configureLogger()
	return cmd.run(os.Stdout)
}

func (cmd *durationCmd) run(w io.Writer) error {
	s, err := joinWords(cmd.Words)
	if err != nil {
		return err
	}

	iv, err := relativetime.ParseDuration(s)
	if err != nil {
		return err
	}

	if d, ok := iv.Exact(); ok {
		_, err = fmt.Fprintf(w, "%s\t%s\n", iv, output.FormatDuration(d))
		return err
	}

	_, err = fmt.Fprintln(w, iv)
	return err
}
