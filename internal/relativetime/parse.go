package relativetime

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/common/model"
	zlog "github.com/rs/zerolog/log"

	"github.com/steved/tu/internal/english"
)

var (
	// Everything in one invocation resolves against the same instant, so init the time once and freeze it.
	now = sync.OnceValue(time.Now)

	// 13-digit inputs are read as milliseconds only when that lands after this point.
	millisCutoff = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Now returns the frozen process time.
func Now() time.Time {
	return now()
}

// ParseArgs joins command line words and resolves them with Parse.
func ParseArgs(args []string, ref time.Time, dialect english.Dialect) (time.Time, error) {
	return Parse(strings.Join(args, " "), ref, dialect)
}

// Parse resolves s against ref. Epoch timestamps, RFC 3339 and RFC 2822 are tried
// before the English grammar; compact durations such as "90m" are the last resort.
// The result is always in UTC.
func Parse(s string, ref time.Time, dialect english.Dialect) (time.Time, error) {
	s = stripConnectors(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time expression")
	}

	if t, ok := parseEpoch(s); ok {
		zlog.Debug().Str("input", s).Str("format", "epoch").Time("result", t).Msg("parsed time")
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		zlog.Debug().Str("input", s).Str("format", "rfc3339").Time("result", t).Msg("parsed time")
		return t.UTC(), nil
	}

	if t, err := mail.ParseDate(s); err == nil {
		zlog.Debug().Str("input", s).Str("format", "rfc2822").Time("result", t).Msg("parsed time")
		return t.UTC(), nil
	}

	t, err := english.ParseDateString(s, ref, dialect)
	if err == nil {
		zlog.Debug().Str("input", s).Str("format", "english").Stringer("dialect", dialect).Time("result", t).Msg("parsed time")
		return t.UTC(), nil
	}

	if d, derr := model.ParseDuration(s); derr == nil {
		zlog.Debug().Str("input", s).Str("format", "duration").Time("result", ref.Add(time.Duration(d))).Msg("parsed time")
		return ref.Add(time.Duration(d)).UTC(), nil
	}

	return time.Time{}, err
}

// ParseDuration reads an interval such as "2 days", "in an hour" or "1h30m".
func ParseDuration(s string) (english.Interval, error) {
	s = stripConnectors(s)

	iv, err := english.ParseDuration(s)
	if err == nil {
		return iv, nil
	}

	if d, derr := model.ParseDuration(s); derr == nil {
		zlog.Debug().Str("input", s).Str("format", "duration").Msg("parsed compact duration")
		return english.Interval{Amount: time.Duration(d).Seconds(), Unit: english.Second}, nil
	}

	return english.Interval{}, err
}

// FormatISO renders t in UTC as RFC 3339 with a Z suffix. Fractional seconds are
// only shown when present.
func FormatISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// stripConnectors drops a leading "in" or "at" and reads "in a"/"in an" as one.
func stripConnectors(s string) string {
	words := strings.Fields(s)
	switch {
	case len(words) >= 2 && strings.EqualFold(words[0], "in") &&
		(strings.EqualFold(words[1], "a") || strings.EqualFold(words[1], "an")):
		words = append([]string{"1"}, words[2:]...)
	case len(words) >= 1 && (strings.EqualFold(words[0], "in") || strings.EqualFold(words[0], "at")):
		words = words[1:]
	}
	return strings.Join(words, " ")
}

func parseEpoch(s string) (time.Time, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return time.Time{}, false
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	if len(s) == 13 {
		if t := time.UnixMilli(n).UTC(); t.After(millisCutoff) {
			return t, true
		}
	}
	return time.Unix(n, 0).UTC(), true
}
