package calendar

import (
	"fmt"
	"time"

	"github.com/username/kalender/pkg/dateutil"
)

// MonthDays returns the month as Monday-first weeks of day numbers.
// Days outside the month are 0.
func MonthDays(year int, month time.Month) ([][7]int, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month must be in 1..12, got %d", int(month))
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("year %d is out of range", year)
	}

	first := Date{Year: year, Month: month, Day: 1}
	col := dateutil.MondayIndex(first.Weekday())
	days := dateutil.DaysIn(year, month)

	var weeks [][7]int
	var week [7]int
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}

	return weeks, nil
}

// Classify returns the visual category of a day.
// The first matching rule wins: today, holiday, day-off, Sunday, Saturday, weekday.
func Classify(date Date, column int, holidays, dayoffs *DateSet, today Date) DayType {
	switch {
	case date == today:
		return DayTypeCurrent
	case holidays.Has(date):
		return DayTypeHoliday
	case dayoffs.Has(date):
		return DayTypeDayOff
	case column == 6:
		return DayTypeSunday
	case column == 5:
		return DayTypeSaturday
	default:
		return DayTypeWeekday
	}
}

// RenderMonth builds the month block with classified cells and the month's
// holidays and day-offs in insertion order
func RenderMonth(year int, month time.Month, holidays, dayoffs *DateSet, today Date) (MonthBlock, error) {
	days, err := MonthDays(year, month)
	if err != nil {
		return MonthBlock{}, err
	}

	block := MonthBlock{
		Year:     year,
		Month:    month,
		Weeks:    make([]Week, 0, len(days)),
		Holidays: holidays.InMonth(year, month),
		DayOffs:  dayoffs.InMonth(year, month),
	}

	for _, row := range days {
		var week Week
		for col, day := range row {
			if day == 0 {
				continue
			}
			date := Date{Year: year, Month: month, Day: day}
			week[col] = Cell{
				Day:  day,
				Type: Classify(date, col, holidays, dayoffs, today),
			}
		}
		block.Weeks = append(block.Weeks, week)
	}

	return block, nil
}

// Rows splits blocks into consecutive rows of n blocks
func Rows(blocks []MonthBlock, n int) [][]MonthBlock {
	if n <= 0 {
		n = 1
	}
	var rows [][]MonthBlock
	for i := 0; i < len(blocks); i += n {
		end := i + n
		if end > len(blocks) {
			end = len(blocks)
		}
		rows = append(rows, blocks[i:end])
	}
	return rows
}
