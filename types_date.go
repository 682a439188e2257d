package savemoney

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// TimeFormat is the wall-clock format attached to transactions.
const TimeFormat = "15:04"

// DefaultTime is used when a transaction carries no wall-clock time.
const DefaultTime = "00:00"

// Date represents a calendar date with day-level granularity. Transactions
// are interpreted at local noon, so a plain date never straddles a DST
// boundary.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// String formats the date in its standard ISO form.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date formatted according
// to the layout. See [time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a canonical representation of the day, at noon UTC.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 12, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of calendar months
// added, normalized by [time.Date] (Jan 31 +1 month is Mar 2 or 3).
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// AddYear returns a new Date with the given number of years added.
func (d Date) AddYear(i int) Date { return NewDate(d.y+i, d.m, d.d) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2026-2-5".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, strings.TrimSpace(str))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ParseClock validates a wall-clock string in HH:MM form and returns it
// zero-padded, so clocks compare correctly as text. An empty string
// resolves to DefaultTime.
func ParseClock(str string) (string, error) {
	if str == "" {
		return DefaultTime, nil
	}
	tm, err := time.Parse(TimeFormat, str)
	if err != nil {
		return "", fmt.Errorf("invalid time %q want format %q: %w", str, TimeFormat, err)
	}
	return tm.Format(TimeFormat), nil
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a
// json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseDate(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshaler type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Period selects the aggregation granularity of a report.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a period name, accepting both the noun and the
// adjective forms.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "day", "daily":
		return Daily, nil
	case "week", "weekly":
		return Weekly, nil
	case "month", "monthly":
		return Monthly, nil
	case "year", "yearly":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}

// StartOf returns the first day of the period containing d.
//
// Weeks are calendar-month-anchored, not ISO weeks: the week index within
// the month is (day-1)/7, so week boundaries reset on the first of each
// month and a week never crosses into the next month.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		week := (d.d - 1) / 7
		return NewDate(d.y, d.m, week*7+1)
	case Monthly:
		return NewDate(d.y, d.m, 1)
	case Yearly:
		return NewDate(d.y, time.January, 1)
	default:
		panic("unknown period")
	}
}

// EndOf returns the last day of the period containing d. The last week of
// a month is clipped to the month's end and can be shorter than 7 days.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		week := (d.d - 1) / 7
		monthEnd := NewDate(d.y, d.m+1, 0)
		end := (week + 1) * 7
		if end > monthEnd.Day() {
			end = monthEnd.Day()
		}
		return NewDate(d.y, d.m, end)
	case Monthly:
		return NewDate(d.y, d.m+1, 0)
	case Yearly:
		return NewDate(d.y, time.December, 31)
	default:
		panic("unknown period")
	}
}

// Step returns d shifted by n units of the period. A week shifts by 7
// days, a month by one calendar month, a year by one calendar year.
func (d Date) Step(period Period, n int) Date {
	switch period {
	case Daily:
		return d.Add(n)
	case Weekly:
		return d.Add(n * 7)
	case Monthly:
		return d.AddMonth(n)
	case Yearly:
		return d.AddYear(n)
	default:
		panic("unknown period")
	}
}

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the period range containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }
