package ledger

import (
	"fmt"
	"strings"
)

// Period is a calendar period used to anchor reporting windows.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// ToDateName returns the "-to-Date" name for the period (e.g., "Month-to-Date").
func (p Period) ToDateName() string {
	switch p {
	case Daily:
		return "Today's" // A "Day-to-Date" doesn't make much sense.
	case Weekly:
		return "Week-to-Date"
	case Monthly:
		return "Month-to-Date"
	case Quarterly:
		return "Quarter-to-Date"
	case Yearly:
		return "Year-to-Date"
	default:
		// This should be unreachable
		return p.Name() + "-to-Date"
	}
}

// Name returns the singular noun for the period (e.g., "day", "week", "month").
func (p Period) Name() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Range returns the full Range of the period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// ToDate returns the Range from the start of the period containing d up to d
// itself, i.e. the month-to-date window when p is Monthly.
func (p Period) ToDate(d Date) Range {
	return Range{From: d.StartOf(p), To: d}
}

// Previous returns the full Range of the period immediately before the one
// containing d. For Monthly this is the whole previous calendar month, with
// its actual length.
func (p Period) Previous(d Date) Range {
	return p.Range(d.StartOf(p).Add(-1))
}

// ParsePeriod parses a period name like "month" or "yearly".
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}
