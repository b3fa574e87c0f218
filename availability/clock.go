package availability

import (
	"strconv"
	"strings"
	"time"

	"github.com/info-graph/info-graph-task/pkg/apperr"
)

// minuteOfDay converts a "HH:MM" or "HH:MM:SS" clock string into minutes
// since midnight. All times are naive local time-of-day.
func minuteOfDay(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, apperr.Validationf("invalid time of day %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, apperr.Validationf("invalid time of day %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, apperr.Validationf("invalid time of day %q", clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, apperr.Validationf("time of day %q out of range", clock)
	}
	return hour*60 + minute, nil
}

func nowMinutes(now time.Time) int {
	return now.Hour()*60 + now.Minute()
}

// parseDate reads a "YYYY-MM-DD" calendar date. Full timestamps are
// accepted and truncated to their date, since older rows were stored
// with a time component.
func parseDate(s string) (time.Time, error) {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	d, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, apperr.Validationf("invalid date %q", s)
	}
	return d, nil
}

const dateLayout = "2006-01-02"

// ValidateTimeOfDay checks a clock string without computing anything,
// for write-time validation of hours and serving windows.
func ValidateTimeOfDay(clock string) error {
	_, err := minuteOfDay(clock)
	return err
}

// ValidateDate checks a calendar-date string at write time.
func ValidateDate(s string) error {
	_, err := parseDate(s)
	return err
}

func truncateToDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// spanText renders a minute count the way the client displays it:
// "1h 30m" or "45m".
func spanText(minutes int) string {
	h, m := minutes/60, minutes%60
	if h > 0 {
		return strconv.Itoa(h) + "h " + strconv.Itoa(m) + "m"
	}
	return strconv.Itoa(m) + "m"
}
