package calendar

import (
	"fmt"
	"time"

	"github.com/username/kalender/pkg/dateutil"
)

// DayType represents the visual category of a day cell
type DayType int

const (
	DayTypeEmpty DayType = iota // padding cell outside the month
	DayTypeCurrent
	DayTypeHoliday
	DayTypeDayOff
	DayTypeSunday
	DayTypeSaturday
	DayTypeWeekday
)

func (t DayType) String() string {
	switch t {
	case DayTypeEmpty:
		return "empty"
	case DayTypeCurrent:
		return "current"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeDayOff:
		return "dayoff"
	case DayTypeSunday:
		return "sunday"
	case DayTypeSaturday:
		return "saturday"
	case DayTypeWeekday:
		return "weekday"
	default:
		return fmt.Sprintf("DayType(%d)", int(t))
	}
}

// Cell is a single day in a month grid. Day is 0 for padding cells.
type Cell struct {
	Day  int
	Type DayType
}

// Week is one Monday-first row of a month grid
type Week [7]Cell

// MonthBlock represents a rendered month: its grid and the month's holidays and day-offs
type MonthBlock struct {
	Year     int
	Month    time.Month
	Weeks    []Week
	Holidays []DateLabel
	DayOffs  []DateLabel
}

// Title returns the month name with the 4-digit year, e.g. "January 2024"
func (b MonthBlock) Title() string {
	return fmt.Sprintf("%s %04d", b.Month, b.Year)
}

// Date is a civil calendar date
type Date = dateutil.Date
