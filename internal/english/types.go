package english

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Dialect selects the order of ambiguous numeric dates such as 03/04.
type Dialect int

const (
	// US reads 03/04 as March 4th.
	US Dialect = iota
	// UK reads 03/04 as 3rd April.
	UK
)

func (d Dialect) String() string {
	if d == UK {
		return "uk"
	}
	return "us"
}

func (d *Dialect) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "us":
		*d = US
	case "uk":
		*d = UK
	default:
		return fmt.Errorf("unknown dialect %q (must be us or uk)", text)
	}
	return nil
}

func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Direction int

const (
	Here Direction = iota
	Next
	Last
)

func directionFromName(name string) (Direction, bool) {
	switch name {
	case "next":
		return Next, true
	case "last":
		return Last, true
	}
	return Here, false
}

type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var unitNames = [...]string{"second", "minute", "hour", "day", "week", "month", "year"}

func (u Unit) String() string {
	if u < Second || u > Year {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// exact reports whether the unit has a fixed length.
func (u Unit) exact() bool { return u <= Week }

func (u Unit) duration() time.Duration {
	switch u {
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	case Day:
		return 24 * time.Hour
	case Week:
		return 7 * 24 * time.Hour
	}
	return 0
}

var units = map[string]Unit{
	"s": Second, "sec": Second, "secs": Second, "second": Second, "seconds": Second,
	"min": Minute, "mins": Minute, "minute": Minute, "minutes": Minute,
	"h": Hour, "hr": Hour, "hrs": Hour, "hour": Hour, "hours": Hour,
	"d": Day, "day": Day, "days": Day,
	"w": Week, "wk": Week, "wks": Week, "week": Week, "weeks": Week,
	"month": Month, "months": Month,
	"y": Year, "yr": Year, "yrs": Year, "year": Year, "years": Year,
}

func timeUnit(name string) (Unit, bool) {
	u, ok := units[name]
	return u, ok
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

func monthName(name string) (time.Month, bool) {
	m, ok := months[name]
	return m, ok
}

type nameKind int

const (
	byWeekday nameKind = iota
	byMonth
	byDayMonth
)

// ByName refers to a weekday, a month, or a day of a month, awaiting a year.
type ByName struct {
	kind      nameKind
	Weekday   time.Weekday
	Month     time.Month
	Day       int
	Direction Direction
}

func byNameFromName(name string, direct Direction) (ByName, bool) {
	if wd, ok := weekdays[name]; ok {
		return ByName{kind: byWeekday, Weekday: wd, Direction: direct}, true
	}
	if m, ok := months[name]; ok {
		return ByName{kind: byMonth, Month: m, Direction: direct}, true
	}
	return ByName{}, false
}

func byNameFromDayMonth(day int, month time.Month, direct Direction) ByName {
	return ByName{kind: byDayMonth, Day: day, Month: month, Direction: direct}
}

func (b ByName) IsWeekday() bool  { return b.kind == byWeekday }
func (b ByName) IsMonth() bool    { return b.kind == byMonth }
func (b ByName) IsDayMonth() bool { return b.kind == byDayMonth }

// DateSpec is the unresolved date portion of an expression: Absolute, FromName or Relative.
type DateSpec interface {
	dateSpec()
}

type Absolute struct {
	Year  int
	Month time.Month
	Day   int
}

type FromName struct {
	Name ByName
}

type Relative struct {
	Amount float64
	Unit   Unit
}

func (Absolute) dateSpec() {}
func (FromName) dateSpec() {}
func (Relative) dateSpec() {}

// TimeSpec is the unresolved time of day. Offset is in seconds east of UTC.
type TimeSpec struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
	Offset      *int
}

// DateTimeSpec is the parser output. At least one of Date and Time is set.
type DateTimeSpec struct {
	Date DateSpec
	Time *TimeSpec
}

// Interval is a signed count of a single calendar unit.
type Interval struct {
	Amount float64
	Unit   Unit
}

func (iv Interval) String() string {
	amount := strconv.FormatFloat(iv.Amount, 'f', -1, 64)
	name := iv.Unit.String()
	if iv.Amount != 1 && iv.Amount != -1 {
		name += "s"
	}
	return amount + " " + name
}

// maxMonths bounds calendar intervals to years time.Date can represent.
const maxMonths = 12 * 1_000_000_000

// Exact reports whether the interval has a fixed length that fits in a time.Duration,
// and returns it.
func (iv Interval) Exact() (time.Duration, bool) {
	if !iv.Unit.exact() {
		return 0, false
	}
	d, err := iv.duration()
	return d, err == nil
}

func (iv Interval) duration() (time.Duration, error) {
	f := iv.Amount * float64(iv.Unit.duration())
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, errorf("amount out of range: %s", iv)
	}
	return time.Duration(f), nil
}

// Apply adds the interval to t. Months and years are added field-wise and the day of
// month is clamped to the end of the target month.
func (iv Interval) Apply(t time.Time) (time.Time, error) {
	if iv.Unit.exact() {
		d, err := iv.duration()
		if err != nil {
			return time.Time{}, err
		}
		return t.Add(d), nil
	}

	n := iv.Amount
	if iv.Unit == Year {
		n *= 12
	}
	if math.Abs(n) > maxMonths {
		return time.Time{}, errorf("amount out of range: %s", iv)
	}
	if n != float64(int(n)) {
		return time.Time{}, errorf("fractional %s not supported: %s", iv.Unit, iv)
	}

	return addMonths(t, int(n)), nil
}

func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + n
	year += floorDiv(total, 12)
	month = time.Month(total - floorDiv(total, 12)*12 + 1)
	day = min(day, daysIn(year, month))

	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// pivotYear maps a two digit year into 1941..2040.
func pivotYear(y int) int {
	if y >= 100 {
		return y
	}
	if y > 40 {
		return 1900 + y
	}
	return 2000 + y
}
