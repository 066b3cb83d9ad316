package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// MonthsPerRow is the number of month blocks shown side by side
const MonthsPerRow = 4

// Kalender renders years using holidays and day-offs from a Source
type Kalender struct {
	source   Source
	loader   *Loader
	holidays *DateSet
	dayoffs  *DateSet
	today    Date
	logger   *zap.Logger
}

// New creates a new Kalender. today is the date highlighted as the current day.
func New(source Source, today Date, logger *zap.Logger) *Kalender {
	return &Kalender{
		source:   source,
		loader:   NewLoader(logger),
		holidays: NewDateSet(),
		dayoffs:  NewDateSet(),
		today:    today,
		logger:   logger,
	}
}

// Load replaces the current holidays and day-offs with the source's contents
func (k *Kalender) Load() []error {
	k.holidays.Reset()
	k.dayoffs.Reset()

	problems := k.loader.LoadInto(k.source, k.holidays, k.dayoffs)

	k.logger.Info("Dates loaded",
		zap.Int("holidays", k.holidays.Len()),
		zap.Int("dayoffs", k.dayoffs.Len()),
		zap.Int("problems", len(problems)))

	return problems
}

// Holidays returns the loaded holidays
func (k *Kalender) Holidays() *DateSet {
	return k.holidays
}

// DayOffs returns the loaded day-offs
func (k *Kalender) DayOffs() *DateSet {
	return k.dayoffs
}

// RenderMonth renders a single month with the loaded dates
func (k *Kalender) RenderMonth(year int, month time.Month) (MonthBlock, error) {
	return RenderMonth(year, month, k.holidays, k.dayoffs, k.today)
}

// RenderYear loads the dates once and renders January through December.
// Load problems are returned separately; they never stop the render.
func (k *Kalender) RenderYear(year int) ([]MonthBlock, []error, error) {
	problems := k.Load()

	blocks := make([]MonthBlock, 0, 12)
	for month := time.January; month <= time.December; month++ {
		block, err := k.RenderMonth(year, month)
		if err != nil {
			return nil, problems, fmt.Errorf("failed to render %s %d: %w", month, year, err)
		}
		blocks = append(blocks, block)
	}

	return blocks, problems, nil
}
