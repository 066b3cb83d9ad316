package calendar

import "fmt"

// SectionError is reported when a required config group is missing
type SectionError struct {
	Section string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("no '%s' section found in config file", e.Section)
}

// DateParseError is reported when an entry's value is not a valid year,month,day triple
type DateParseError struct {
	Section string
	Key     string
	Value   string
	Err     error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("%s.%s = %q: %v", e.Section, e.Key, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
