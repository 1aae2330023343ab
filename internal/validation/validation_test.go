package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestDateOnlyRoundTrip(t *testing.T) {
	v := validator.New()
	if err := v.RegisterValidation("dateonly", dateOnly); err != nil {
		t.Fatalf("register rule: %v", err)
	}

	cases := []struct {
		in string
		ok bool
	}{
		{"2024-03-15", true},
		{"2024-02-29", true},
		{"2024-02-30", false},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"2024-3-15", false},
		{"15-03-2024", false},
		{"2024-03-15T00:00:00Z", false},
		{"", false},
	}
	for _, tc := range cases {
		got := v.Var(tc.in, "dateonly") == nil
		if got != tc.ok {
			t.Errorf("dateonly(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}

func TestToStoredInvestorType(t *testing.T) {
	cases := map[string]string{
		"Individual":    "Individual",
		"Institution":   "Institution",
		"Family Office": "Family_Office",
	}
	for in, want := range cases {
		if got := ToStoredInvestorType(in); got != want {
			t.Errorf("ToStoredInvestorType(%q) = %q, want %q", in, got, want)
		}
	}
}
