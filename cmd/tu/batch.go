package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/steved/tu/internal/output"
)

type batchCmd struct {
	timeFlags

	Parallelism int      `help:"Number of expressions resolved at once." default:"4"`
	Files       []string `arg:"" optional:"" type:"existingfile" help:"Files with one expression per line. Reads stdin when omitted."`
}

func (cmd *batchCmd) Validate() error {
	if cmd.Parallelism < 1 {
		return fmt.Errorf("--parallelism must be at least 1")
	}
	return nil
}

func (cmd *batchCmd) Run() error {
	cmd.configureLogger()

	inputs, err := cmd.readInputs(os.Stdin)
	if err != nil {
		return err
	}

	resolve, err := cmd.resolver()
	if err != nil {
		return err
	}

	results := resolveAll(inputs, resolve, cmd.Parallelism)
	if err := output.PrintResults(results, cmd.Format); err != nil {
		return err
	}

	return countFailures(results)
}

func (cmd *batchCmd) readInputs(stdin io.Reader) ([]string, error) {
	if len(cmd.Files) == 0 {
		return readExpressions(stdin)
	}

	var inputs []string
	for _, path := range cmd.Files {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}

		lines, err := readExpressions(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		inputs = append(inputs, lines...)
	}

	return inputs, nil
}

// readExpressions returns the non-empty lines of r that are not # comments.
func readExpressions(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines, scanner.Err()
}

// resolveAll resolves inputs concurrently; results keep the input order.
func resolveAll(inputs []string, resolve output.Resolver, parallelism int) []output.Result {
	results := make([]output.Result, len(inputs))

	var eg errgroup.Group
	eg.SetLimit(parallelism)

	zlog.Debug().Int("expressions", len(inputs)).Int("parallelism", parallelism).Msg("resolving batch")

	for i, input := range inputs {
		eg.Go(func() error {
			t, err := resolve(input)
			if err != nil {
				zlog.Debug().Str("input", input).Err(err).Msg("failed to resolve")
			}
			results[i] = output.Result{Input: input, Time: t, Err: err}
			return nil
		})
	}

	_ = eg.Wait()

	return results
}

func countFailures(results []output.Result) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions could not be resolved", failed, len(results))
	}
	return nil
}
