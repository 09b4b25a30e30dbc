// Package english converts loosely typed English dates and times such as "tomorrow",
// "2 weeks ago", "14 december 11:20" or "2024-04-10T13:31:46+04:00" into instants,
// and extracts relative durations such as "1.5 hours".
//
// Parsing happens in two stages: a recursive-descent grammar over a small token stream
// produces a DateTimeSpec, which is then resolved against a reference time. Every call
// is independent and safe for concurrent use.
package english

import (
	"time"
)

// Parse runs the grammar without resolving the result.
func Parse(text string, dialect Dialect) (DateTimeSpec, error) {
	spec, err := newParser(text, dialect).parse()
	if err != nil {
		return DateTimeSpec{}, withInput(err, text)
	}
	return spec, nil
}

// ParseDateString resolves text against now. The dialect decides how ambiguous
// numeric dates like 03/04/2024 are read.
func ParseDateString(text string, now time.Time, dialect Dialect) (time.Time, error) {
	spec, err := Parse(text, dialect)
	if err != nil {
		return time.Time{}, err
	}

	t, err := Resolve(spec, now)
	if err != nil {
		return time.Time{}, withInput(err, text)
	}
	return t, nil
}

// ParseDuration extracts a relative interval such as "2 days" or "3 weeks ago".
// Anything that names a time of day or a calendar date is rejected.
func ParseDuration(text string) (Interval, error) {
	spec, err := Parse(text, US)
	if err != nil {
		return Interval{}, err
	}

	if spec.Time != nil {
		return Interval{}, &ParseError{Input: text, Msg: "unexpected time component"}
	}

	switch d := spec.Date.(type) {
	case Relative:
		return Interval(d), nil
	case Absolute:
		return Interval{}, &ParseError{Input: text, Msg: "unexpected absolute date"}
	case FromName:
		return Interval{}, &ParseError{Input: text, Msg: "unexpected date component"}
	}

	return Interval{}, &ParseError{Input: text, Msg: "could not parse duration"}
}
