package english

import (
	"time"
)

// Resolve turns a parsed spec into an instant relative to now. Results carry now's
// location unless the spec has an explicit offset, in which case they are in UTC.
func Resolve(spec DateTimeSpec, now time.Time) (time.Time, error) {
	switch d := spec.Date.(type) {
	case nil:
		if spec.Time == nil {
			return time.Time{}, errorf("no date or time to resolve")
		}
		return timeOn(now, spec.Time)

	case Absolute:
		if d.Day < 1 || d.Day > daysIn(d.Year, d.Month) {
			return time.Time{}, errorf("bad date: day %d out of range for %s %d", d.Day, d.Month, d.Year)
		}
		date := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, now.Location())
		return timeOn(date, spec.Time)

	case FromName:
		date, err := d.Name.resolve(now)
		if err != nil {
			return time.Time{}, err
		}
		return timeOn(date, spec.Time)

	case Relative:
		t, err := Interval(d).Apply(now)
		if err != nil {
			return time.Time{}, err
		}
		if spec.Time == nil {
			return t, nil
		}
		return timeOn(t, spec.Time)
	}

	return time.Time{}, errorf("unknown date spec %T", spec.Date)
}

// timeOn places ts on the calendar date of date. A nil ts is midnight.
func timeOn(date time.Time, ts *TimeSpec) (time.Time, error) {
	year, month, day := date.Date()
	if ts == nil {
		return time.Date(year, month, day, 0, 0, 0, 0, date.Location()), nil
	}

	if err := ts.validate(); err != nil {
		return time.Time{}, err
	}

	loc := date.Location()
	if ts.Offset != nil {
		loc = time.FixedZone("", *ts.Offset)
	}

	t := time.Date(year, month, day, ts.Hour, ts.Minute, ts.Second, ts.Microsecond*int(time.Microsecond), loc)
	if ts.Offset != nil {
		t = t.UTC()
	}
	return t, nil
}

func (ts *TimeSpec) validate() error {
	switch {
	case ts.Hour < 0 || ts.Hour > 23:
		return errorf("bad time: hour %d out of range", ts.Hour)
	case ts.Minute < 0 || ts.Minute > 59:
		return errorf("bad time: minute %d out of range", ts.Minute)
	case ts.Second < 0 || ts.Second > 59:
		return errorf("bad time: second %d out of range", ts.Second)
	case ts.Microsecond < 0 || ts.Microsecond > 999999:
		return errorf("bad time: microsecond %d out of range", ts.Microsecond)
	}
	return nil
}

// resolve returns midnight of the date the name refers to, seen from now.
//
// A bare weekday is the nearest one with today counting, "next" skips today and "last"
// looks strictly backwards. Month names and day-month pairs follow the same rule on
// the year; a bare month name means its 1st, so the current month counts only on the 1st.
func (b ByName) resolve(now time.Time) (time.Time, error) {
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	switch b.kind {
	case byWeekday:
		diff := int(b.Weekday - today.Weekday())
		switch b.Direction {
		case Here:
			diff = mod(diff, 7)
		case Next:
			diff = mod(diff-1, 7) + 1
		case Last:
			diff = -(mod(-diff-1, 7) + 1)
		}
		return today.AddDate(0, 0, diff), nil

	case byMonth:
		switch b.Direction {
		case Here:
			if compareDayMonth(b.Month, 1, month, day) < 0 {
				year++
			}
		case Next:
			if b.Month <= month {
				year++
			}
		case Last:
			if b.Month >= month {
				year--
			}
		}
		return time.Date(year, b.Month, 1, 0, 0, 0, 0, now.Location()), nil

	case byDayMonth:
		cmp := compareDayMonth(b.Month, b.Day, month, day)
		switch b.Direction {
		case Here:
			if cmp < 0 {
				year++
			}
		case Next:
			if cmp <= 0 {
				year++
			}
		case Last:
			if cmp >= 0 {
				year--
			}
		}
		if b.Day < 1 || b.Day > daysIn(year, b.Month) {
			return time.Time{}, errorf("bad date: day %d out of range for %s %d", b.Day, b.Month, year)
		}
		return time.Date(year, b.Month, b.Day, 0, 0, 0, 0, now.Location()), nil
	}

	return time.Time{}, errorf("unknown name reference")
}

func compareDayMonth(m1 time.Month, d1 int, m2 time.Month, d2 int) int {
	switch {
	case m1 != m2:
		return int(m1) - int(m2)
	default:
		return d1 - d2
	}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
