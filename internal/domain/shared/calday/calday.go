package calday

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("calday: window end must not precede start")

// Day is a normalized calendar day counted in whole days since the Unix
// epoch. Time-of-day and timezone are stripped on construction so interval
// comparisons are plain integer comparisons.
type Day int

const layout = "2006-01-02"

// FromTime truncates t to its UTC calendar day.
func FromTime(t time.Time) Day {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Day(midnight.Unix() / 86400)
}

// Date builds a Day from a calendar date.
func Date(year int, month time.Month, day int) Day {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Parse reads a Day from its YYYY-MM-DD form.
func Parse(s string) (Day, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, err
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*86400, 0).UTC()
}

func (d Day) AddDays(n int) Day { return d + Day(n) }

func (d Day) String() string { return d.Time().Format(layout) }

// DaysBetween returns b - a in whole days.
func DaysBetween(a, b Day) int { return int(b - a) }

// Window is a contiguous run of calendar days, inclusive on both ends.
type Window struct {
	Start Day
	End   Day
}

// NewWindow validates that end does not precede start.
func NewWindow(start, end Day) (Window, error) {
	if end < start {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

// Days is the number of days the window spans.
func (w Window) Days() int { return int(w.End-w.Start) + 1 }

func (w Window) Contains(d Day) bool { return d >= w.Start && d <= w.End }

// IndexOf returns the zero-based position of d inside the window, or -1.
func (w Window) IndexOf(d Day) int {
	if !w.Contains(d) {
		return -1
	}
	return int(d - w.Start)
}

func (w Window) Before(d Day) bool { return d < w.Start }

func (w Window) After(d Day) bool { return d > w.End }
