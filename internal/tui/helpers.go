package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/comunitur/comunitur/internal/api"
)

// timeLayout is how the form reads and renders timestamps.
const timeLayout = "2006-01-02 15:04"

// errText converts an error to the line a screen shows. Connection
// failures get a generic message; everything else (including the
// service's own message) is shown as-is.
func errText(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, api.ErrConnection) {
		return "Cannot reach the booking service. Check your connection and try again."
	}
	return err.Error()
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatInterval(start, end time.Time) string {
	return start.Format(timeLayout) + " → " + end.Format(timeLayout)
}

func parseFormTime(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.Local)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
