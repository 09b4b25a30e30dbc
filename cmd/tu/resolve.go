package main

import (
	"fmt"
	"io"
	"os"

	zlog "github.com/rs/zerolog/log"

	"github.com/steved/tu/internal/output"
	"github.com/steved/tu/internal/relativetime"
)

type resolveCmd struct {
	timeFlags

	Until bool     `help:"Also print the time until the result, negative when it is in the past."`
	Words []string `arg:"" optional:"" help:"Natural language time, e.g. 'in 2 days' or 'Wed, 14 Feb 2024 23:16:09 GMT'."`
}

func (cmd *resolveCmd) Run() error {
	cmd.configureLogger()
	return cmd.run(os.Stdout, os.Stderr)
}

func (cmd *resolveCmd) run(stdout, stderr io.Writer) error {
	ref, err := cmd.reference()
	if err != nil {
		return err
	}

	if len(cmd.Words) == 0 {
		resolve, err := cmd.resolver()
		if err != nil {
			return err
		}

		fmt.Fprintln(stderr, "Usage: tu <natural time/duration>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Examples:")
		if err := output.WriteExamples(stderr, "tu", output.Resolve(output.Examples, resolve), cmd.Format); err != nil {
			return err
		}
		return fmt.Errorf("no time expression given")
	}

	t, err := relativetime.ParseArgs(cmd.Words, ref, cmd.Dialect)
	if err != nil {
		return err
	}

	zlog.Debug().
		Strs("words", cmd.Words).
		Time("now", ref).
		Stringer("dialect", cmd.Dialect).
		Time("result", t).
		Msg("resolved time")

	if cmd.Until {
		_, err = fmt.Fprintf(stdout, "%s\t%s\n", output.FormatTime(t, cmd.Format), output.FormatDuration(t.Sub(ref)))
		return err
	}

	_, err = fmt.Fprintln(stdout, output.FormatTime(t, cmd.Format))
	return err
}
