package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DatePair is one candidate trip: fly out on Outbound, back on Return.
type DatePair struct {
	Outbound time.Time
	Return   time.Time
}

var ErrLengthMismatch = fmt.Errorf("months and day groups must have the same length")

// ParseInputDays parses the --days flag format "d1,d2:d3,d4" into day
// groups, one group per month. Tokens that are not positive integers are
// skipped.
func ParseInputDays(s string) ([][]int, error) {
	groups := strings.Split(strings.TrimSpace(s), ":")
	result := make([][]int, 0, len(groups))
	for _, g := range groups {
		days := make([]int, 0)
		for _, tok := range strings.Split(strings.TrimSpace(g), ",") {
			d, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil || d < 0 {
				continue
			}
			days = append(days, d)
		}
		result = append(result, days)
	}
	return result, nil
}

// CreateDates expands the (month, day, duration) grid into outbound/return
// pairs, month-major, then day-major, then duration-major. Combinations that
// do not form a valid calendar date are dropped.
func CreateDates(year int, months []int, dayGroups [][]int, durations []int) ([]DatePair, error) {
	if len(months) != len(dayGroups) {
		return nil, ErrLengthMismatch
	}

	var outbounds []time.Time
	for i, m := range months {
		for _, d := range dayGroups[i] {
			out, ok := makeDate(year, m, d)
			if !ok {
				continue
			}
			outbounds = append(outbounds, out)
		}
	}

	pairs := make([]DatePair, 0, len(outbounds)*len(durations))
	for _, out := range outbounds {
		for _, dur := range durations {
			pairs = append(pairs, DatePair{
				Outbound: out,
				Return:   out.AddDate(0, 0, dur),
			})
		}
	}
	return pairs, nil
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// makeDate builds a UTC date and rejects values that time.Date would
// normalize away, e.g. February 30th.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
