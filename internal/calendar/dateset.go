package calendar

import "time"

// DateLabel maps a calendar date to its display label
type DateLabel struct {
	Date  Date
	Label string
}

// DateSet is a date → label mapping that remembers insertion order.
// Re-setting an existing date updates its label and keeps its position.
type DateSet struct {
	order  []Date
	labels map[Date]string
}

// NewDateSet creates an empty DateSet
func NewDateSet() *DateSet {
	return &DateSet{
		labels: make(map[Date]string),
	}
}

// Set stores label for date
func (s *DateSet) Set(date Date, label string) {
	if _, ok := s.labels[date]; !ok {
		s.order = append(s.order, date)
	}
	s.labels[date] = label
}

// Label returns the label stored for date
func (s *DateSet) Label(date Date) (string, bool) {
	if s == nil {
		return "", false
	}
	label, ok := s.labels[date]
	return label, ok
}

// Has reports whether date is in the set
func (s *DateSet) Has(date Date) bool {
	_, ok := s.Label(date)
	return ok
}

// Len returns the number of dates
func (s *DateSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Entries returns all entries in insertion order
func (s *DateSet) Entries() []DateLabel {
	if s == nil {
		return nil
	}
	entries := make([]DateLabel, 0, len(s.order))
	for _, date := range s.order {
		entries = append(entries, DateLabel{Date: date, Label: s.labels[date]})
	}
	return entries
}

// InMonth returns the entries of the given month in insertion order
func (s *DateSet) InMonth(year int, month time.Month) []DateLabel {
	var entries []DateLabel
	for _, entry := range s.Entries() {
		if entry.Date.InMonth(year, month) {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Reset removes all entries
func (s *DateSet) Reset() {
	s.order = nil
	s.labels = make(map[Date]string)
}
