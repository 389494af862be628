package validator

import (
	"testing"

	"github.com/shopspring/decimal"
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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2025-09")
	if !ok {
		t.Fatal("IsValidMonth(2025-09) = false, want true")
	}
	if month.Day() != 1 || month.Month() != 9 || month.Year() != 2025 {
		t.Errorf("IsValidMonth(2025-09) = %v, want 2025-09-01", month)
	}

	invalid := []string{"2025-13", "2025-9", "09-2025", "2025-09-01", ""}
	for _, m := range invalid {
		if _, ok := IsValidMonth(m); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-28"); !ok {
		t.Error("IsValidDate(2025-02-28) = false, want true")
	}
	invalid := []string{"2025-02-30", "28/02/2025", "2025-2-28", ""}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidPercentage(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"50.5", true},
		{"100", true},
		{"100.01", false},
		{"-1", false},
	}
	for _, c := range cases {
		pct, _ := decimal.NewFromString(c.input)
		if got := IsValidPercentage(pct); got != c.want {
			t.Errorf("IsValidPercentage(%s) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"DP-0123", "AB123", "ABCD-12345"}
	invalid := []string{"dp-0123", "A-123", "DP-12", "DP0123456", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "email", Message: "must be a valid email"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["name"] != "is required" {
		t.Errorf("ToMap()[name] = %q, want %q", m["name"], "is required")
	}
}
