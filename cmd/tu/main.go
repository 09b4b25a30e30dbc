package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/steved/tu/internal/config"
	"github.com/steved/tu/internal/english"
	"github.com/steved/tu/internal/output"
	"github.com/steved/tu/internal/relativetime"
)

type commonFlags struct {
	Verbose bool `help:"Enable debug logging." short:"v"`
}

func (c *commonFlags) configureLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if c.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

type timeFlags struct {
	commonFlags

	Dialect english.Dialect   `help:"How to read ambiguous dates like 03/04: us (month first) or uk (day first)." default:"us" env:"TU_DIALECT"`
	Now     relativetime.Expr `help:"Resolve relative to this time instead of the current time. Read with --dialect." placeholder:"time" env:"TU_NOW"`
	Format  string            `help:"Output format: iso, unix, unixms, local or a Go time layout." default:"iso" short:"f" env:"TU_FORMAT"`
}

// reference resolves --now with the configured dialect. Without it the frozen process
// time is used.
func (c *timeFlags) reference() (time.Time, error) {
	if c.Now == "" {
		return relativetime.Now(), nil
	}

	ref, err := c.Now.Resolve(relativetime.Now(), c.Dialect)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now: %w", err)
	}
	return ref, nil
}

func (c *timeFlags) resolver() (output.Resolver, error) {
	ref, err := c.reference()
	if err != nil {
		return nil, err
	}
	return func(input string) (time.Time, error) {
		return relativetime.Parse(input, ref, c.Dialect)
	}, nil
}

type cli struct {
	Resolve     resolveCmd     `cmd:"" help:"Resolve a natural language time such as 'next friday 9am'." default:"withargs"`
	Duration    durationCmd    `cmd:"" help:"Parse a duration such as '2 days' or '1h30m'."`
	Batch       batchCmd       `cmd:"" help:"Resolve one expression per line from files or stdin."`
	Interactive interactiveCmd `cmd:"" help:"Resolve expressions as they are typed."`
	Examples    examplesCmd    `cmd:"" help:"Show example expressions and what they resolve to."`
}

func options(configPaths ...string) []kong.Option {
	return []kong.Option{
		kong.Name("tu"),
		kong.Description("Convert natural language dates and times to timestamps."),
		kong.UsageOnError(),
		kong.TypeMapper(reflect.TypeFor[relativetime.Expr](), relativetime.Mapper),
		kong.Configuration(config.Loader, configPaths...),
	}
}

func main() {
	root := cli{}
	ctx := kong.Parse(&root, options(config.Paths...)...)

	ctx.FatalIfErrorf(ctx.Run(&root))
}

func joinWords(words []string) (string, error) {
	s := strings.TrimSpace(strings.Join(words, " "))
	if s == "" {
		return "", fmt.Errorf("no time expression given")
	}
	return s, nil
}
