package terminal

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/username/kalender/internal/calendar"
	"github.com/username/kalender/internal/config"
)

const emptyCell = "   "

// Line is one line of output in plain and styled form.
// Plain is used for width calculations.
type Line struct {
	Plain  string
	Styled string
}

// Block is a rectangular piece of text laid out as a column
type Block struct {
	Lines []Line
}

// Width returns the display width of the widest line
func (b Block) Width() int {
	width := 0
	for _, line := range b.Lines {
		if w := runewidth.StringWidth(line.Plain); w > width {
			width = w
		}
	}
	return width
}

func (b *Block) add(text string, style Style) {
	b.Lines = append(b.Lines, Line{Plain: text, Styled: style.Render(text)})
}

// FormatMonth renders a month block: title, weekday header, one line per
// week and the month's holidays and day-offs
func FormatMonth(month calendar.MonthBlock, palette Palette, labels config.LabelsConfig) Block {
	var block Block

	block.add(month.Title(), palette.Title)
	block.add(labels.Weekdays, palette.Header)

	for _, week := range month.Weeks {
		var plain, styled strings.Builder
		for _, cell := range week {
			if cell.Day == 0 {
				plain.WriteString(emptyCell)
				styled.WriteString(emptyCell)
				continue
			}
			text := fmt.Sprintf("%2d ", cell.Day)
			plain.WriteString(text)
			styled.WriteString(palette.ForDay(cell.Type).Render(text))
		}
		block.Lines = append(block.Lines, Line{Plain: plain.String(), Styled: styled.String()})
	}

	block.add("", Style{})
	block.add(labels.Listing, palette.Listing)

	for _, entry := range month.Holidays {
		block.add(listingLine(entry), palette.HolidayEntry)
	}
	for _, entry := range month.DayOffs {
		block.add(listingLine(entry), palette.DayOffEntry)
	}

	return block
}

func listingLine(entry calendar.DateLabel) string {
	return fmt.Sprintf("• %d: %s", entry.Date.Day, entry.Label)
}
