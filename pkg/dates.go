package pkg

import (
	"fmt"
	"time"
)

const (
	// DateFormat is the textual form of a calendar date on the wire.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the textual form of the dashboard's last-update
	// fields. Minute precision, no zone designator.
	DateTimeFormat = "2006/01/02 15:04"
)

// DateStamp is a calendar date with no time-of-day component.
type DateStamp struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDateStamp validates year, month and day against the Gregorian
// calendar before constructing the stamp.
func NewDateStamp(year int, month time.Month, day int) (DateStamp, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return DateStamp{}, fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, month, day)
	}
	return DateStamp{Year: year, Month: month, Day: day}, nil
}

// ParseDateStamp parses the fixed DateFormat form. No alternate layouts
// are accepted.
func ParseDateStamp(raw string) (DateStamp, error) {
	t, err := time.Parse(DateFormat, raw)
	if err != nil {
		return DateStamp{}, err
	}
	return DateStamp{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d DateStamp) String() string {
	return d.Time().Format(DateFormat)
}

// Time returns the stamp as midnight UTC.
func (d DateStamp) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d DateStamp) IsZero() bool {
	return d == DateStamp{}
}

func parseDateTime(raw string) (time.Time, error) {
	return time.Parse(DateTimeFormat, raw)
}

func formatDateTime(t time.Time) string {
	return t.Format(DateTimeFormat)
}
