// Package terminal formats month blocks for a color terminal.
package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/username/kalender/internal/calendar"
	"github.com/username/kalender/internal/config"
)

var namedColors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

var namedBgColors = map[string]color.Attribute{
	"black":   color.BgBlack,
	"red":     color.BgRed,
	"green":   color.BgGreen,
	"yellow":  color.BgYellow,
	"blue":    color.BgBlue,
	"magenta": color.BgMagenta,
	"cyan":    color.BgCyan,
	"white":   color.BgWhite,
}

var textAttributes = map[string]color.Attribute{
	"bold":      color.Bold,
	"dim":       color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
	"blink":     color.BlinkSlow,
	"reverse":   color.ReverseVideo,
}

// Style applies terminal attributes to text. The zero Style leaves text unchanged.
type Style struct {
	c *color.Color
}

// Render wraps text in the style's escape sequences
func (s Style) Render(text string) string {
	if s.c == nil {
		return text
	}
	return s.c.Sprint(text)
}

// ParseStyle parses a style definition such as "bold white on red" or
// "black on #AAFFFF blink". Colors are names, #RRGGBB or rgb(r,g,b); a color
// following "on" is the background.
func ParseStyle(def string) (Style, error) {
	tokens := strings.Fields(strings.ToLower(def))
	if len(tokens) == 0 {
		return Style{}, nil
	}

	c := color.New()
	background := false
	for _, token := range tokens {
		if token == "on" {
			background = true
			continue
		}

		if attr, ok := textAttributes[token]; ok {
			c.Add(attr)
			continue
		}

		if r, g, b, ok, err := parseRGB(token); ok {
			if err != nil {
				return Style{}, fmt.Errorf("invalid style %q: %w", def, err)
			}
			if background {
				c.AddBgRGB(r, g, b)
			} else {
				c.AddRGB(r, g, b)
			}
			background = false
			continue
		}

		names := namedColors
		if background {
			names = namedBgColors
		}
		attr, ok := names[token]
		if !ok {
			return Style{}, fmt.Errorf("invalid style %q: unknown token %q", def, token)
		}
		c.Add(attr)
		background = false
	}

	if background {
		return Style{}, fmt.Errorf("invalid style %q: missing color after 'on'", def)
	}

	return Style{c: c}, nil
}

// parseRGB reports ok when token looks like an RGB color
func parseRGB(token string) (r, g, b int, ok bool, err error) {
	switch {
	case strings.HasPrefix(token, "#"):
		hex := token[1:]
		if len(hex) != 6 {
			return 0, 0, 0, true, fmt.Errorf("color %q must have 6 hex digits", token)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, 0, 0, true, fmt.Errorf("color %q: %w", token, err)
		}
		return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true, nil

	case strings.HasPrefix(token, "rgb(") && strings.HasSuffix(token, ")"):
		parts := strings.Split(token[4:len(token)-1], ",")
		if len(parts) != 3 {
			return 0, 0, 0, true, fmt.Errorf("color %q must have 3 components", token)
		}
		var rgb [3]int
		for i, part := range parts {
			n, err := strconv.Atoi(part)
			if err != nil || n < 0 || n > 255 {
				return 0, 0, 0, true, fmt.Errorf("color %q: component %q must be 0..255", token, part)
			}
			rgb[i] = n
		}
		return rgb[0], rgb[1], rgb[2], true, nil
	}

	return 0, 0, 0, false, nil
}

// Palette holds the style of every element of the calendar
type Palette struct {
	Title        Style
	Header       Style
	Today        Style
	Holiday      Style
	DayOff       Style
	Sunday       Style
	Saturday     Style
	Weekday      Style
	Listing      Style
	HolidayEntry Style
	DayOffEntry  Style
	Error        Style
	ErrorDetail  Style
}

// NewPalette parses every style of the config
func NewPalette(cfg config.StyleConfig) (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		def  string
		dst  *Style
	}{
		{"title", cfg.Title, &p.Title},
		{"header", cfg.Header, &p.Header},
		{"today", cfg.Today, &p.Today},
		{"holiday", cfg.Holiday, &p.Holiday},
		{"dayoff", cfg.DayOff, &p.DayOff},
		{"sunday", cfg.Sunday, &p.Sunday},
		{"saturday", cfg.Saturday, &p.Saturday},
		{"weekday", cfg.Weekday, &p.Weekday},
		{"listing", cfg.Listing, &p.Listing},
		{"holiday_entry", cfg.HolidayEntry, &p.HolidayEntry},
		{"dayoff_entry", cfg.DayOffEntry, &p.DayOffEntry},
		{"error", cfg.Error, &p.Error},
		{"error_detail", cfg.ErrorDetail, &p.ErrorDetail},
	}

	for _, f := range fields {
		style, err := ParseStyle(f.def)
		if err != nil {
			return Palette{}, fmt.Errorf("style.%s: %w", f.name, err)
		}
		*f.dst = style
	}

	return p, nil
}

// ForDay returns the style of a day cell
func (p Palette) ForDay(t calendar.DayType) Style {
	switch t {
	case calendar.DayTypeCurrent:
		return p.Today
	case calendar.DayTypeHoliday:
		return p.Holiday
	case calendar.DayTypeDayOff:
		return p.DayOff
	case calendar.DayTypeSunday:
		return p.Sunday
	case calendar.DayTypeSaturday:
		return p.Saturday
	case calendar.DayTypeWeekday:
		return p.Weekday
	default:
		return Style{}
	}
}
