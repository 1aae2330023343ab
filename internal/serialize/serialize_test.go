package serialize

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/fundledger-backend/internal/types"
)

func TestFundSerialization(t *testing.T) {
	target, _ := decimal.NewFromString("250000000.00")
	row := &types.Fund{
		ID:            uuid.New(),
		Name:          "Growth Fund I",
		VintageYear:   2024,
		TargetSizeUSD: target,
		Status:        types.FundStatusFundraising,
		CreatedAt:     time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
	}

	got := Fund(row)
	if got.TargetSizeUSD != 250_000_000 {
		t.Errorf("TargetSizeUSD = %v, want 250000000", got.TargetSizeUSD)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Timestamps stay timezone-aware ISO-8601.
	if !strings.Contains(string(raw), `"created_at":"2024-03-15T09:30:00Z"`) {
		t.Errorf("created_at not ISO-8601: %s", raw)
	}
}

func TestInvestorTypeDisplay(t *testing.T) {
	cases := []struct {
		stored string
		want   string
	}{
		{types.InvestorTypeIndividual, "Individual"},
		{types.InvestorTypeInstitution, "Institution"},
		{types.InvestorTypeFamilyOfficeStored, "Family Office"},
	}
	for _, tc := range cases {
		row := &types.Investor{
			ID:           uuid.New(),
			Name:         "n",
			InvestorType: tc.stored,
			Email:        "n@example.com",
			CreatedAt:    time.Now(),
		}
		if got := Investor(row).InvestorType; got != tc.want {
			t.Errorf("Investor(%q).InvestorType = %q, want %q", tc.stored, got, tc.want)
		}
	}
}

func TestInvestmentDateWireFormat(t *testing.T) {
	dateRe := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// Stored timestamps with stray time components still serialize as bare dates.
	for _, stored := range []time.Time{
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 23, 59, 58, 123456789, time.UTC),
	} {
		row := &types.Investment{
			ID:             uuid.New(),
			InvestorID:     uuid.New(),
			FundID:         uuid.New(),
			AmountUSD:      decimal.NewFromFloat(42.5),
			InvestmentDate: stored,
		}
		got := Investment(row)
		if !dateRe.MatchString(got.InvestmentDate) {
			t.Errorf("InvestmentDate = %q, want YYYY-MM-DD", got.InvestmentDate)
		}
		if got.InvestmentDate != "2024-03-15" {
			t.Errorf("InvestmentDate = %q, want 2024-03-15", got.InvestmentDate)
		}
	}
}

func TestSlicesSerializeAsEmptyArrays(t *testing.T) {
	for name, raw := range map[string]any{
		"funds":       Funds(nil),
		"investors":   Investors(nil),
		"investments": Investments(nil),
	} {
		b, err := json.Marshal(raw)
		if err != nil {
			t.Fatalf("marshal %s: %v", name, err)
		}
		if string(b) != "[]" {
			t.Errorf("%s = %s, want []", name, b)
		}
	}
}
