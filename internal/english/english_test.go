package english

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestParseDateString(t *testing.T) {
	// Wednesday
	wed := date(2025, time.January, 15, 10, 0, 0)

	tests := []struct {
		name    string
		input   string
		now     time.Time
		dialect Dialect
		want    time.Time
	}{
		{name: "today", input: "today", now: date(2024, 1, 1, 0, 0, 0), want: date(2024, 1, 1, 0, 0, 0)},
		{name: "yesterday", input: "yesterday", now: date(2024, 1, 2, 0, 0, 0), want: date(2024, 1, 1, 0, 0, 0)},
		{name: "tomorrow keeps time of day", input: "tomorrow", now: date(2024, 1, 1, 9, 34, 52), want: date(2024, 1, 2, 9, 34, 52)},
		{name: "days", input: "2 days", now: date(2024, 1, 1, 0, 0, 0), want: date(2024, 1, 3, 0, 0, 0)},
		{name: "week", input: "1 week", now: date(2024, 1, 1, 0, 0, 0), want: date(2024, 1, 8, 0, 0, 0)},
		{name: "weeks", input: "2 weeks", now: date(2024, 1, 1, 0, 0, 0), want: date(2024, 1, 15, 0, 0, 0)},
		{name: "month", input: "1 month", now: date(2024, 1, 1, 0, 0, 0), want: date(2024, 2, 1, 0, 0, 0)},
		{name: "month keeps day", input: "1 month", now: date(2024, 4, 30, 0, 0, 0), want: date(2024, 5, 30, 0, 0, 0)},
		{name: "month clamps to leap day", input: "1 month", now: date(2024, 1, 31, 0, 0, 0), want: date(2024, 2, 29, 0, 0, 0)},
		{name: "month clamps to february", input: "1 month", now: date(2023, 1, 31, 0, 0, 0), want: date(2023, 2, 28, 0, 0, 0)},
		{name: "hour", input: "1 hour", now: date(2024, 1, 1, 8, 34, 52), want: date(2024, 1, 1, 9, 34, 52)},
		{name: "ago", input: "3 days ago", now: wed, want: date(2025, 1, 12, 10, 0, 0)},
		{name: "negative weeks", input: "-2 weeks", now: wed, want: date(2025, 1, 1, 10, 0, 0)},
		{name: "decimal hours", input: "1.5 hours", now: wed, want: date(2025, 1, 15, 11, 30, 0)},
		{name: "fractional years", input: "1.5 years", now: wed, want: date(2026, 7, 15, 10, 0, 0)},
		{name: "relative with time", input: "2 days 11:20", now: wed, want: date(2025, 1, 17, 11, 20, 0)},
		{name: "day month time", input: "14 december 11:20", now: date(2025, 1, 1, 0, 0, 0), want: date(2025, 12, 14, 11, 20, 0)},
		{name: "trailing text ignored", input: "14 december 11:20 at home", now: date(2025, 1, 1, 0, 0, 0), want: date(2025, 12, 14, 11, 20, 0)},
		{name: "dotted day", input: "15. Jun 2025 at 14:19:13", now: date(2024, 1, 1, 0, 0, 0), want: date(2025, 6, 15, 14, 19, 13)},
		{name: "dotted day lowercase", input: "7. dec 1922 at 23:41:55", now: date(2024, 1, 1, 0, 0, 0), want: date(1922, 12, 7, 23, 41, 55)},
		{name: "iso with offset", input: "2024-04-10T13:31:46+04:00", now: wed, want: date(2024, 4, 10, 9, 31, 46)},
		{name: "iso with hour offset", input: "2024-04-10T13:31:46+04", now: wed, want: date(2024, 4, 10, 9, 31, 46)},
		{name: "iso with short offset", input: "2024-04-10T13:31:46+4", now: wed, want: date(2024, 4, 10, 9, 31, 46)},
		{name: "iso with compact offset", input: "2024-04-10T13:31:46+0400", now: wed, want: date(2024, 4, 10, 9, 31, 46)},
		{name: "iso date only", input: "2024-04-10", now: wed, want: date(2024, 4, 10, 0, 0, 0)},
		{name: "iso with pm", input: "2024-04-10 7:12 PM", now: wed, want: date(2024, 4, 10, 19, 12, 0)},
		{name: "month day year", input: "Apr 10, 2024, 7:12 PM UTC", now: wed, want: date(2024, 4, 10, 19, 12, 0)},
		{name: "month day year no comma", input: "Apr 10 2024 7:12 PM UTC", now: wed, want: date(2024, 4, 10, 19, 12, 0)},
		{name: "slash us", input: "03/04/2024", now: wed, dialect: US, want: date(2024, 3, 4, 0, 0, 0)},
		{name: "slash uk", input: "03/04/2024", now: wed, dialect: UK, want: date(2024, 4, 3, 0, 0, 0)},
		{name: "slash two digit year", input: "12/25/99", now: wed, dialect: US, want: date(1999, 12, 25, 0, 0, 0)},
		{name: "slash without year", input: "25/12", now: wed, dialect: UK, want: date(2025, 12, 25, 0, 0, 0)},
		{name: "weekday later this week", input: "friday", now: wed, want: date(2025, 1, 17, 0, 0, 0)},
		{name: "weekday today", input: "wednesday", now: wed, want: date(2025, 1, 15, 0, 0, 0)},
		{name: "weekday wraps", input: "monday", now: wed, want: date(2025, 1, 20, 0, 0, 0)},
		{name: "next weekday nearest", input: "next friday", now: wed, want: date(2025, 1, 17, 0, 0, 0)},
		{name: "next weekday skips today", input: "next wednesday", now: wed, want: date(2025, 1, 22, 0, 0, 0)},
		{name: "last weekday", input: "last friday", now: wed, want: date(2025, 1, 10, 0, 0, 0)},
		{name: "last weekday skips today", input: "last wednesday", now: wed, want: date(2025, 1, 8, 0, 0, 0)},
		{name: "next weekday with time", input: "next monday at 2pm", now: wed, want: date(2025, 1, 20, 14, 0, 0)},
		{name: "tomorrow with time", input: "tomorrow at 9am", now: wed, want: date(2025, 1, 16, 9, 0, 0)},
		{name: "hour before date", input: "7pm tomorrow", now: wed, want: date(2025, 1, 16, 19, 0, 0)},
		{name: "hour only", input: "5pm", now: wed, want: date(2025, 1, 15, 17, 0, 0)},
		{name: "noon", input: "12pm", now: wed, want: date(2025, 1, 15, 12, 0, 0)},
		{name: "midnight", input: "12am", now: wed, want: date(2025, 1, 15, 0, 0, 0)},
		{name: "formal time", input: "11:20", now: wed, want: date(2025, 1, 15, 11, 20, 0)},
		{name: "informal time", input: "11.20 pm", now: wed, want: date(2025, 1, 15, 23, 20, 0)},
		{name: "month this year", input: "december", now: wed, want: date(2025, 12, 1, 0, 0, 0)},
		{name: "current month already started", input: "january", now: wed, want: date(2026, 1, 1, 0, 0, 0)},
		{name: "current month on the 1st", input: "january", now: date(2025, 1, 1, 10, 0, 0), want: date(2025, 1, 1, 0, 0, 0)},
		{name: "later month name", input: "february", now: wed, want: date(2025, 2, 1, 0, 0, 0)},
		{name: "next month name", input: "next january", now: wed, want: date(2026, 1, 1, 0, 0, 0)},
		{name: "last month name", input: "last december", now: wed, want: date(2024, 12, 1, 0, 0, 0)},
		{name: "day month passed", input: "10 january", now: wed, want: date(2026, 1, 10, 0, 0, 0)},
		{name: "day month today", input: "15 january", now: wed, want: date(2025, 1, 15, 0, 0, 0)},
		{name: "last day month", input: "last 20 january", now: wed, want: date(2024, 1, 20, 0, 0, 0)},
		{name: "ordinal", input: "Dec 14th 2024", now: wed, want: date(2024, 12, 14, 0, 0, 0)},
		{name: "bare year", input: "2024", now: wed, want: date(2024, 1, 1, 0, 0, 0)},
		{name: "time with utc offset today", input: "13:31:46+04:00", now: wed, want: date(2025, 1, 15, 9, 31, 46)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDateString(tc.input, tc.now, tc.dialect)
			require.NoError(t, err, "ParseDateString(%q) returned unexpected error", tc.input)
			assert.Equal(t, tc.want, got, "ParseDateString(%q) returned unexpected value", tc.input)
		})
	}
}

func TestParseDateStringKeepsLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, loc)

	got, err := ParseDateString("2024-03-02 10:00", now, US)
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 10, got.Hour())

	got, err = ParseDateString("10:00Z", now, US)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), got)
}

func TestParseDateStringErrors(t *testing.T) {
	now := date(2025, 1, 15, 10, 0, 0)

	tests := []struct {
		input       string
		dialect     Dialect
		errContains string
	}{
		{input: "2024-02-30", errContains: "day 30 out of range"},
		{input: "31/04/2024", dialect: UK, errContains: "day 31 out of range"},
		{input: "29 feb", errContains: "day 29 out of range for February 2025"},
		{input: "25:00", errContains: "hour 25 out of range"},
		{input: "10:61", errContains: "minute 61 out of range"},
		{input: "1.5 months", errContains: "fractional month not supported"},
		{input: "not a date", errContains: "not a date"},
		{input: "200000 days", errContains: "amount out of range"},
		{input: "20000 weeks", errContains: "amount out of range"},
		{input: "2000000000 years", errContains: "amount out of range"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			_, err := ParseDateString(tc.input, now, tc.dialect)
			require.Error(t, err, "ParseDateString(%q) should return an error", tc.input)
			assert.ErrorContains(t, err, tc.errContains)
		})
	}
}

func TestTodayTomorrowRoundTrip(t *testing.T) {
	for _, now := range []time.Time{
		date(2024, 1, 1, 0, 0, 0),
		date(2024, 2, 29, 23, 59, 59),
		date(2025, 12, 31, 12, 30, 0),
	} {
		today, err := ParseDateString("today", now, US)
		require.NoError(t, err)

		tomorrow, err := ParseDateString("tomorrow", now, US)
		require.NoError(t, err)

		back, err := Interval{Amount: -1, Unit: Day}.Apply(tomorrow)
		require.NoError(t, err)

		assert.Equal(t, today, back, "tomorrow minus one day should be today for %s", now)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  Interval
	}{
		{input: "2 days", want: Interval{Amount: 2, Unit: Day}},
		{input: "1 month", want: Interval{Amount: 1, Unit: Month}},
		{input: "3 weeks ago", want: Interval{Amount: -3, Unit: Week}},
		{input: "-1 year", want: Interval{Amount: -1, Unit: Year}},
		{input: "90 secs", want: Interval{Amount: 90, Unit: Second}},
		{input: "1.5 hours", want: Interval{Amount: 1.5, Unit: Hour}},
		{input: "tomorrow", want: Interval{Amount: 1, Unit: Day}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDuration(tc.input)
			require.NoError(t, err, "ParseDuration(%q) returned unexpected error", tc.input)
			assert.Equal(t, tc.want, got)
		})
	}

	got, err := ParseDuration("1.05 hours")
	require.NoError(t, err)
	assert.InDelta(t, 1.05, got.Amount, 1e-9, "leading zeros in the fraction are significant")
}

func TestParseDurationErrors(t *testing.T) {
	for _, tt := range []struct {
		input   string
		wantErr string
	}{
		{input: "14 december 11:20", wantErr: "unexpected time component"},
		{input: "11:20", wantErr: "unexpected time component"},
		{input: "2 days 10:00", wantErr: "unexpected time component"},
		{input: "2024-01-01", wantErr: "unexpected absolute date"},
		{input: "friday", wantErr: "unexpected date component"},
		{input: "", wantErr: "empty date string"},
	} {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDuration(tt.input)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestIntervalApply(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
		from     time.Time
		want     time.Time
		wantErr  bool
	}{
		{name: "leap february", interval: Interval{Amount: 1, Unit: Month}, from: date(2024, 1, 31, 0, 0, 0), want: date(2024, 2, 29, 0, 0, 0)},
		{name: "backwards clamps", interval: Interval{Amount: -1, Unit: Month}, from: date(2024, 3, 31, 6, 0, 0), want: date(2024, 2, 29, 6, 0, 0)},
		{name: "year from leap day", interval: Interval{Amount: 1, Unit: Year}, from: date(2024, 2, 29, 0, 0, 0), want: date(2025, 2, 28, 0, 0, 0)},
		{name: "months across years", interval: Interval{Amount: -13, Unit: Month}, from: date(2024, 1, 15, 0, 0, 0), want: date(2022, 12, 15, 0, 0, 0)},
		{name: "december overflow", interval: Interval{Amount: 1, Unit: Month}, from: date(2024, 12, 31, 0, 0, 0), want: date(2025, 1, 31, 0, 0, 0)},
		{name: "exact days", interval: Interval{Amount: 1.5, Unit: Day}, from: date(2024, 1, 1, 0, 0, 0), want: date(2024, 1, 2, 12, 0, 0)},
		{name: "fractional month", interval: Interval{Amount: 0.5, Unit: Month}, from: date(2024, 1, 1, 0, 0, 0), wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.interval.Apply(tc.from)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIntervalExact(t *testing.T) {
	d, ok := Interval{Amount: 2, Unit: Day}.Exact()
	assert.True(t, ok)
	assert.Equal(t, 48*time.Hour, d)

	_, ok = Interval{Amount: 1, Unit: Month}.Exact()
	assert.False(t, ok, "months have no fixed length")

	_, ok = Interval{Amount: 200000, Unit: Day}.Exact()
	assert.False(t, ok, "longer than a time.Duration can hold")

	_, ok = Interval{Amount: -20000, Unit: Week}.Exact()
	assert.False(t, ok)

	d, ok = Interval{Amount: 100000, Unit: Day}.Exact()
	assert.True(t, ok)
	assert.Equal(t, 100000*24*time.Hour, d)
}

func TestIntervalString(t *testing.T) {
	assert.Equal(t, "2 days", Interval{Amount: 2, Unit: Day}.String())
	assert.Equal(t, "1 hour", Interval{Amount: 1, Unit: Hour}.String())
	assert.Equal(t, "-1 week", Interval{Amount: -1, Unit: Week}.String())
	assert.Equal(t, "1.5 hours", Interval{Amount: 1.5, Unit: Hour}.String())
}

func TestDialectUnmarshalText(t *testing.T) {
	var d Dialect
	require.NoError(t, d.UnmarshalText([]byte("UK")))
	assert.Equal(t, UK, d)
	require.NoError(t, d.UnmarshalText([]byte("us")))
	assert.Equal(t, US, d)
	assert.Error(t, d.UnmarshalText([]byte("fr")))
	assert.Equal(t, "uk", UK.String())
}
