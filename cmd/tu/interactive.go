package main

import (
	"time"

	"github.com/steved/tu/internal/output"
	"github.com/steved/tu/internal/relativetime"
)

type interactiveCmd struct {
	timeFlags
}

func (cmd *interactiveCmd) Run() error {
	cmd.configureLogger()

	// Unlike one-shot commands the prompt follows the wall clock unless --now pins it.
	now := time.Now
	if cmd.Now != "" {
		ref, err := cmd.reference()
		if err != nil {
			return err
		}
		now = func() time.Time { return ref }
	}

	resolve := func(input string) (time.Time, error) {
		return relativetime.Parse(input, now(), cmd.Dialect)
	}

	return output.RunInteractive(resolve, now, cmd.Format)
}

type examplesCmd struct {
	timeFlags
}

func (cmd *examplesCmd) Run() error {
	cmd.configureLogger()

	resolve, err := cmd.resolver()
	if err != nil {
		return err
	}
	return output.PrintResults(output.Resolve(output.Examples, resolve), cmd.Format)
}
