package validator

import (
	"testing"
	"time"
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
	if _, ok := IsValidDate("2024-06-10"); !ok {
		t.Error("IsValidDate(\"2024-06-10\") = false, want true")
	}
	invalid := []string{"2024-13-01", "10-06-2024", "June 10", ""}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseFlexibleDate(t *testing.T) {
	want := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	cases := []string{
		"2025-12-01",
		"2025/12/01",
		"01-12-2025",
		"Dec 1, 2025",
		"December 1, 2025",
		"1 Dec 2025",
	}
	for _, s := range cases {
		got, ok := ParseFlexibleDate(s)
		if !ok {
			t.Errorf("ParseFlexibleDate(%q) failed", s)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseFlexibleDate(%q) = %v, want %v", s, got, want)
		}
	}

	if _, ok := ParseFlexibleDate("not a date"); ok {
		t.Error("ParseFlexibleDate(\"not a date\") = true, want false")
	}
}

func TestIsValidWeekday(t *testing.T) {
	wd, ok := IsValidWeekday("Friday")
	if !ok || wd != time.Friday {
		t.Errorf("IsValidWeekday(\"Friday\") = %v, %v", wd, ok)
	}
	if _, ok := IsValidWeekday("friday"); ok {
		t.Error("IsValidWeekday(\"friday\") = true, want false")
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2024-06"); !ok {
		t.Error("IsValidMonth(\"2024-06\") = false, want true")
	}
	if _, ok := IsValidMonth("2024-6"); ok {
		t.Error("IsValidMonth(\"2024-6\") = true, want false")
	}
}
