package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/steved/tu/internal/relativetime"
)

const localTimeFormat = "2006-01-02 15:04:05 MST"

// Formats accepted by FormatTime besides a Go reference layout.
const (
	FormatISO    = "iso"
	FormatUnix   = "unix"
	FormatUnixMs = "unixms"
	FormatLocal  = "local"
)

// FormatTime renders t per format. Unknown names are used as a time.Format layout
// applied to the UTC time.
func FormatTime(t time.Time, format string) string {
	switch strings.ToLower(format) {
	case "", FormatISO:
		return relativetime.FormatISO(t)
	case FormatUnix:
		return strconv.FormatInt(t.Unix(), 10)
	case FormatUnixMs:
		return strconv.FormatInt(t.UnixMilli(), 10)
	case FormatLocal:
		return t.Local().Format(localTimeFormat)
	}
	return t.UTC().Format(format)
}

// FormatDuration renders d compactly, e.g. 30s, 5m, 2h, 1h10m or 3d4h.
// The output is accepted back by the compact duration parser.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		// -math.MinInt64 overflows back to itself; Sub saturates to it for far past times.
		if d == math.MinInt64 {
			d++
		}
		return "-" + FormatDuration(-d)
	}

	d = d.Round(time.Second)

	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}

	if d < 24*time.Hour {
		hours := int(d.Hours())
		mins := int(d.Minutes()) % 60

		if mins == 0 {
			return fmt.Sprintf("%dh", hours)
		}

		return fmt.Sprintf("%dh%dm", hours, mins)
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24

	if hours == 0 {
		return fmt.Sprintf("%dd", days)
	}

	return fmt.Sprintf("%dd%dh", days, hours)
}
