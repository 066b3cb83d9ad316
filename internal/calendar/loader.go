package calendar

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/username/kalender/pkg/dateutil"
	"go.uber.org/zap"
)

// Config group names
const (
	SectionHolidays = "holidays"
	SectionDayOffs  = "dayoffs"
)

// Loader reads holidays and day-offs from a Source
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new Loader instance
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads both groups into fresh sets.
// Problems are never fatal: a missing group leaves its set empty and a bad
// entry is skipped.
func (l *Loader) Load(src Source) (holidays, dayoffs *DateSet, problems []error) {
	holidays = NewDateSet()
	dayoffs = NewDateSet()
	problems = l.LoadInto(src, holidays, dayoffs)
	return holidays, dayoffs, problems
}

// LoadInto reads both groups into the given sets, merging with their contents
func (l *Loader) LoadInto(src Source, holidays, dayoffs *DateSet) []error {
	var problems []error
	problems = append(problems, l.loadSection(src, SectionHolidays, holidays)...)
	problems = append(problems, l.loadSection(src, SectionDayOffs, dayoffs)...)
	return problems
}

func (l *Loader) loadSection(src Source, section string, into *DateSet) []error {
	if !src.HasSection(section) {
		l.logger.Warn("Config section missing", zap.String("section", section))
		return []error{errors.WithStack(&SectionError{Section: section})}
	}

	var problems []error
	loaded := 0
	for _, entry := range src.Entries(section) {
		date, err := ParseDateValue(entry.Value)
		if err != nil {
			l.logger.Warn("Failed to convert date",
				zap.String("section", section),
				zap.String("key", entry.Key),
				zap.String("value", entry.Value),
				zap.Error(err))
			problems = append(problems, errors.WithStack(&DateParseError{
				Section: section,
				Key:     entry.Key,
				Value:   entry.Value,
				Err:     err,
			}))
			continue
		}

		into.Set(date, LabelFromKey(entry.Key))
		loaded++
	}

	l.logger.Debug("Config section loaded",
		zap.String("section", section),
		zap.Int("dates", loaded),
		zap.Int("skipped", len(problems)))

	return problems
}

// ParseDateValue parses "year,month,day" (optionally wrapped in brackets) into a Date
func ParseDateValue(value string) (Date, error) {
	raw := strings.TrimSpace(value)
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]"))
	if raw == "" {
		return Date{}, errors.New("empty date value")
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return Date{}, errors.Errorf("expected year,month,day, got %d value(s)", len(parts))
	}

	var nums [3]int
	for i, part := range parts {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, errors.Wrapf(err, "invalid number %q", part)
		}
		nums[i] = n
	}

	date, err := dateutil.NewDate(nums[0], nums[1], nums[2])
	if err != nil {
		return Date{}, errors.WithStack(err)
	}
	return date, nil
}
