// Package period turns the textual period arguments of the stats/chart
// commands into concrete half-open day ranges.
package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidFormat reports a wrong argument count or unparseable tokens.
	ErrInvalidFormat = errors.New("invalid period format")
	// ErrInvalidRange reports a custom range whose start lies after its end.
	ErrInvalidRange = errors.New("start date after end date")
	// ErrInvalidMonth reports a month number outside 1..12.
	ErrInvalidMonth = errors.New("month out of range")
)

// ISO day layout used by the record store.
const dayFormat = "2006-01-02"

var monthNames = []string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// Range is a half-open [Start, End) set of consecutive days plus the
// human-readable label used in replies.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}

// StartDay returns the inclusive lower bound as an ISO day string.
func (r Range) StartDay() string { return r.Start.Format(dayFormat) }

// EndDay returns the exclusive upper bound as an ISO day string.
func (r Range) EndDay() string { return r.End.Format(dayFormat) }

// Days returns the number of calendar days in the range.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Resolve maps the command arguments onto a day range relative to today,
// which must come from the inbound message timestamp so results do not
// depend on server wall clock.
//
//	(no args), "week"     last 7 days ending today
//	"month"               the calendar month containing today
//	"D.M.Y D.M.Y"         explicit inclusive range
//	"M Y"                 a specific calendar month
func Resolve(args []string, today time.Time) (Range, error) {
	today = truncateDay(today)

	switch len(args) {
	case 0:
		return week(today), nil
	case 1:
		switch strings.ToLower(args[0]) {
		case "week":
			return week(today), nil
		case "month":
			return Month(today.Year(), int(today.Month()))
		default:
			return Range{}, ErrInvalidFormat
		}
	case 2:
		return resolvePair(args[0], args[1])
	default:
		return Range{}, ErrInvalidFormat
	}
}

// ResolveAdmin maps the admin command arguments: no args means unbounded
// (zero Start/End), two args are an explicit D.M.Y range.
func ResolveAdmin(args []string) (Range, error) {
	switch len(args) {
	case 0:
		return Range{Label: "всё время"}, nil
	case 2:
		return Custom(args[0], args[1])
	default:
		return Range{}, ErrInvalidFormat
	}
}

// Unbounded reports whether the range has no date bounds.
func (r Range) Unbounded() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

func week(today time.Time) Range {
	start := today.AddDate(0, 0, -6)
	return Range{
		Start: start,
		End:   today.AddDate(0, 0, 1),
		Label: fmt.Sprintf("неделю (%s - %s)", start.Format("02.01"), today.Format("02.01.2006")),
	}
}

// Month resolves a specific calendar month, rolling December over into
// January of the following year.
func Month(year, month int) (Range, error) {
	if month < 1 || month > 12 {
		return Range{}, ErrInvalidMonth
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Range{
		Start: start,
		End:   start.AddDate(0, 1, 0),
		Label: fmt.Sprintf("%s %d", monthNames[month-1], year),
	}, nil
}

// Custom resolves an explicit inclusive D.M.Y range. The exclusive end is
// the second date plus one day; the range fails when the start lies after
// that computed end.
func Custom(startToken, endToken string) (Range, error) {
	start, err := ParseDay(startToken)
	if err != nil {
		return Range{}, err
	}
	last, err := ParseDay(endToken)
	if err != nil {
		return Range{}, err
	}

	end := last.AddDate(0, 0, 1)
	if start.After(end) {
		return Range{}, ErrInvalidRange
	}

	return Range{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("период (%s - %s)", startToken, endToken),
	}, nil
}

func resolvePair(first, second string) (Range, error) {
	if dateShaped(first) && dateShaped(second) {
		return Custom(first, second)
	}

	// Not both date-shaped: interpret as (month, year).
	month, err := strconv.Atoi(first)
	if err != nil {
		return Range{}, ErrInvalidFormat
	}
	year, err := strconv.Atoi(second)
	if err != nil {
		return Range{}, ErrInvalidFormat
	}
	return Month(year, month)
}

// dateShaped reports whether a token has the three dot-separated fields of
// a D.M.Y date, without validating the values.
func dateShaped(token string) bool {
	return len(strings.Split(token, ".")) == 3
}

// ParseDay parses a D.M.Y token into a date-only time.Time, rejecting
// tokens that do not name a real calendar day (e.g. 31.02.2024).
func ParseDay(token string) (time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidFormat
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, ErrInvalidFormat
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, so verify nothing moved.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, ErrInvalidFormat
	}
	return t, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
