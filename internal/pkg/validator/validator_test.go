package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "12:00"}
	invalid := []string{"24:00", "9:30", "09:60", "09-30", "0930", "", "09:3"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2025, 1, true},
		{2025, 12, true},
		{2025, 0, false},
		{2025, 13, false},
		{1999, 6, false},
		{2101, 6, false},
	}
	for _, c := range cases {
		got := IsValidMonth(c.year, c.month)
		if got != c.want {
			t.Errorf("IsValidMonth(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}

func TestIsValidHexColor(t *testing.T) {
	valid := []string{"#000000", "#FFFFFF", "#a1B2c3"}
	invalid := []string{"000000", "#FFF", "#GGGGGG", "#1234567", ""}
	for _, s := range valid {
		if !IsValidHexColor(s) {
			t.Errorf("IsValidHexColor(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidHexColor(s) {
			t.Errorf("IsValidHexColor(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "must be YYYY-MM-DD"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["name"] != "name is required" {
		t.Errorf("ToMap()[name] = %q", m["name"])
	}
}
