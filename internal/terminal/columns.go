package terminal

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	// DefaultWidth is used when the terminal width is unknown
	DefaultWidth = 80

	columnGap = 2
)

// Width returns the width of the terminal attached to f.
// COLUMNS overrides the detected value.
func Width(f *os.File) int {
	if columns, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && columns > 0 {
		return columns
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Columns lays blocks out side by side in the given width.
// Blocks that do not fit on one row wrap onto the next, keeping their order.
// Spare width is shared between the columns of a row.
func Columns(blocks []Block, width int) []string {
	var lines []string
	for start := 0; start < len(blocks); {
		n := fitColumns(blocks[start:], width)
		lines = append(lines, joinRow(blocks[start:start+n], width)...)
		start += n
	}
	return lines
}

// fitColumns returns how many leading blocks fit in width (at least one)
func fitColumns(blocks []Block, width int) int {
	used := 0
	for i, block := range blocks {
		w := block.Width()
		if i > 0 {
			w += columnGap
		}
		if i > 0 && used+w > width {
			return i
		}
		used += w
	}
	return len(blocks)
}

func joinRow(blocks []Block, width int) []string {
	widths := make([]int, len(blocks))
	total := columnGap * (len(blocks) - 1)
	height := 0
	for i, block := range blocks {
		widths[i] = block.Width()
		total += widths[i]
		if len(block.Lines) > height {
			height = len(block.Lines)
		}
	}

	if extra := width - total; extra > 0 {
		share, rest := extra/len(blocks), extra%len(blocks)
		for i := range widths {
			widths[i] += share
			if i < rest {
				widths[i]++
			}
		}
	}

	gap := strings.Repeat(" ", columnGap)
	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		var sb strings.Builder
		for i, block := range blocks {
			if i > 0 {
				sb.WriteString(gap)
			}
			var line Line
			if row < len(block.Lines) {
				line = block.Lines[row]
			}
			sb.WriteString(line.Styled)
			if i < len(blocks)-1 {
				if pad := widths[i] - runewidth.StringWidth(line.Plain); pad > 0 {
					sb.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	return lines
}
