package calendar

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeSource struct {
	sections map[string][]Entry
}

func (s fakeSource) HasSection(name string) bool {
	_, ok := s.sections[name]
	return ok
}

func (s fakeSource) Entries(section string) []Entry {
	return s.sections[section]
}

func date(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func mustParse(t *testing.T, text string) *IniSource {
	t.Helper()
	src, err := ParseIniSource([]byte(text))
	if err != nil {
		t.Fatalf("ParseIniSource() error = %v", err)
	}
	return src
}

func TestLoader_Load(t *testing.T) {
	src := mustParse(t, `
[holidays]
new_year = 2024,1,1
independence_day = 2024,8,17

[dayoffs]
company_day_off = 2024,9,23
`)

	holidays, dayoffs, problems := NewLoader(zap.NewNop()).Load(src)

	if len(problems) != 0 {
		t.Fatalf("problems = %v, want none", problems)
	}

	wantHolidays := []DateLabel{
		{Date: date(2024, time.January, 1), Label: "New Year"},
		{Date: date(2024, time.August, 17), Label: "Independence Day"},
	}
	if got := holidays.Entries(); !reflect.DeepEqual(got, wantHolidays) {
		t.Errorf("holidays = %v, want %v", got, wantHolidays)
	}

	wantDayOffs := []DateLabel{
		{Date: date(2024, time.September, 23), Label: "Company Day Off"},
	}
	if got := dayoffs.Entries(); !reflect.DeepEqual(got, wantDayOffs) {
		t.Errorf("dayoffs = %v, want %v", got, wantDayOffs)
	}
}

func TestLoader_KeyCaseIsFolded(t *testing.T) {
	src := mustParse(t, `
[holidays]
NEW_YEAR'S_DAY = 2024,1,1
Independence_Day = 2024,8,17

[dayoffs]
`)

	holidays, _, problems := NewLoader(zap.NewNop()).Load(src)
	if len(problems) != 0 {
		t.Fatalf("problems = %v, want none", problems)
	}

	want := []DateLabel{
		{Date: date(2024, time.January, 1), Label: "New Year's Day"},
		{Date: date(2024, time.August, 17), Label: "Independence Day"},
	}
	if got := holidays.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("holidays = %v, want %v", got, want)
	}
}

func TestLoader_DuplicateKeyKeepsLastValue(t *testing.T) {
	src := mustParse(t, `
[holidays]
nyepi = 2024,3,11
NYEPI = 2024,3,12

[dayoffs]
`)

	holidays, _, problems := NewLoader(zap.NewNop()).Load(src)
	if len(problems) != 0 {
		t.Fatalf("problems = %v, want none", problems)
	}

	want := []DateLabel{{Date: date(2024, time.March, 12), Label: "Nyepi"}}
	if got := holidays.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("holidays = %v, want %v", got, want)
	}
}

func TestLoader_SkipsMalformedEntries(t *testing.T) {
	src := mustParse(t, `
[holidays]
new_year = 2024,1,1
bad_month = 2024,13,5
two_values = 2024,5
not_a_number = 2024,x,1
empty =
christmas_day = 2024,12,25

[dayoffs]
`)

	holidays, dayoffs, problems := NewLoader(zap.NewNop()).Load(src)

	if len(problems) != 4 {
		t.Fatalf("len(problems) = %d, want 4: %v", len(problems), problems)
	}
	for _, problem := range problems {
		var parseErr *DateParseError
		if !errors.As(problem, &parseErr) {
			t.Fatalf("unexpected problem: %v", problem)
		}
		if parseErr.Section != SectionHolidays {
			t.Errorf("Section = %q, want %q", parseErr.Section, SectionHolidays)
		}
	}

	var first *DateParseError
	errors.As(problems[0], &first)
	if first.Key != "bad_month" || first.Value != "2024,13,5" {
		t.Errorf("first problem = %s=%q, want bad_month=\"2024,13,5\"", first.Key, first.Value)
	}
	if !strings.Contains(first.Error(), "month must be in 1..12") {
		t.Errorf("Error() = %q, want month range message", first.Error())
	}

	if holidays.Len() != 2 {
		t.Errorf("holidays.Len() = %d, want 2", holidays.Len())
	}
	if !holidays.Has(date(2024, time.January, 1)) || !holidays.Has(date(2024, time.December, 25)) {
		t.Errorf("holidays = %v, want new year and christmas", holidays.Entries())
	}
	if dayoffs.Len() != 0 {
		t.Errorf("dayoffs.Len() = %d, want 0", dayoffs.Len())
	}
}

func TestLoader_MissingHolidaysSection(t *testing.T) {
	src := fakeSource{sections: map[string][]Entry{
		SectionDayOffs: {{Key: "company_day_off", Value: "2024,9,23"}},
	}}

	holidays, dayoffs, problems := NewLoader(zap.NewNop()).Load(src)

	if len(problems) != 1 {
		t.Fatalf("len(problems) = %d, want 1", len(problems))
	}
	var sectionErr *SectionError
	if !errors.As(problems[0], &sectionErr) {
		t.Fatalf("problem = %v, want *SectionError", problems[0])
	}
	if sectionErr.Section != SectionHolidays {
		t.Errorf("Section = %q, want %q", sectionErr.Section, SectionHolidays)
	}
	if want := "no 'holidays' section found in config file"; sectionErr.Error() != want {
		t.Errorf("Error() = %q, want %q", sectionErr.Error(), want)
	}

	if holidays.Len() != 0 {
		t.Errorf("holidays.Len() = %d, want 0", holidays.Len())
	}
	if dayoffs.Len() != 1 {
		t.Errorf("dayoffs.Len() = %d, want 1", dayoffs.Len())
	}
}

func TestLoader_MissingBothSections(t *testing.T) {
	holidays, dayoffs, problems := NewLoader(zap.NewNop()).Load(fakeSource{})

	if len(problems) != 2 {
		t.Errorf("len(problems) = %d, want 2", len(problems))
	}
	if holidays.Len() != 0 || dayoffs.Len() != 0 {
		t.Errorf("got %d holidays and %d dayoffs, want none", holidays.Len(), dayoffs.Len())
	}
}

func TestLoader_KeepsFileOrder(t *testing.T) {
	src := fakeSource{sections: map[string][]Entry{
		SectionHolidays: {
			{Key: "late", Value: "2024,1,20"},
			{Key: "early", Value: "2024,1,5"},
			{Key: "middle", Value: "2024,1,10"},
		},
		SectionDayOffs: {},
	}}

	holidays, _, problems := NewLoader(zap.NewNop()).Load(src)
	if len(problems) != 0 {
		t.Fatalf("problems = %v, want none", problems)
	}

	var labels []string
	for _, entry := range holidays.InMonth(2024, time.January) {
		labels = append(labels, entry.Label)
	}
	want := []string{"Late", "Early", "Middle"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestParseDateValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Date
		wantErr bool
	}{
		{"Plain triple", "2024,1,1", date(2024, time.January, 1), false},
		{"Spaces", " 2024, 8 , 17 ", date(2024, time.August, 17), false},
		{"Brackets", "[2024, 2, 29]", date(2024, time.February, 29), false},
		{"Invalid month", "2024,13,5", Date{}, true},
		{"Invalid leap day", "2023,2,29", Date{}, true},
		{"Too few", "2024,1", Date{}, true},
		{"Too many", "2024,1,1,1", Date{}, true},
		{"Not a number", "2024,jan,1", Date{}, true},
		{"Empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateValue(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateValue(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDateValue(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestOpenIniSource_MissingFile(t *testing.T) {
	src, err := OpenIniSource(t.TempDir() + "/missing.ini")
	if err != nil {
		t.Fatalf("OpenIniSource() error = %v", err)
	}

	if src.HasSection(SectionHolidays) {
		t.Error("HasSection(holidays) = true, want false")
	}
	if entries := src.Entries(SectionHolidays); len(entries) != 0 {
		t.Errorf("Entries(holidays) = %v, want none", entries)
	}
}
