package calendar

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Entry is a raw key/value pair from a config group
type Entry struct {
	Key   string
	Value string
}

// Source provides named groups of date entries
type Source interface {
	// HasSection reports whether the group exists
	HasSection(name string) bool

	// Entries returns the group's entries in file order
	Entries(section string) []Entry
}

// IniSource implements Source on top of an ini file
type IniSource struct {
	file *ini.File
}

// Keys are lower-cased on load, so NEW_YEAR'S_DAY and new_year's_day
// name the same entry. Section names keep their case.
var loadOptions = ini.LoadOptions{InsensitiveKeys: true}

// OpenIniSource loads an ini file. A missing file yields an empty source.
func OpenIniSource(path string) (*IniSource, error) {
	opts := loadOptions
	opts.Loose = true
	file, err := ini.LoadSources(opts, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dates file: %w", err)
	}
	return &IniSource{file: file}, nil
}

// ParseIniSource builds a source from ini text
func ParseIniSource(data []byte) (*IniSource, error) {
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dates: %w", err)
	}
	return &IniSource{file: file}, nil
}

// HasSection reports whether the group exists
func (s *IniSource) HasSection(name string) bool {
	_, err := s.file.GetSection(name)
	return err == nil
}

// Entries returns the group's entries in file order
func (s *IniSource) Entries(section string) []Entry {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return nil
	}

	keys := sec.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, Entry{Key: key.Name(), Value: key.String()})
	}
	return entries
}
