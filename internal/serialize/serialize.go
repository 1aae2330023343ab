// Package serialize maps stored rows to their wire objects: decimals become
// float64 (exact for two-decimal currency in this domain's ranges), dates
// become YYYY-MM-DD strings, timestamps stay timezone-aware ISO-8601, and
// the stored family-office investor type is mapped back to its display form.
package serialize

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/fundledger-backend/internal/types"
	"github.com/yungbote/fundledger-backend/internal/validation"
)

type FundResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	VintageYear   int       `json:"vintage_year"`
	TargetSizeUSD float64   `json:"target_size_usd"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type InvestorResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	InvestorType string    `json:"investor_type"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

type InvestmentResponse struct {
	ID             uuid.UUID `json:"id"`
	InvestorID     uuid.UUID `json:"investor_id"`
	FundID         uuid.UUID `json:"fund_id"`
	AmountUSD      float64   `json:"amount_usd"`
	InvestmentDate string    `json:"investment_date"`
}

func Fund(row *types.Fund) FundResponse {
	return FundResponse{
		ID:            row.ID,
		Name:          row.Name,
		VintageYear:   row.VintageYear,
		TargetSizeUSD: row.TargetSizeUSD.InexactFloat64(),
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
	}
}

func Funds(rows []*types.Fund) []FundResponse {
	out := make([]FundResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, Fund(row))
	}
	return out
}

func Investor(row *types.Investor) InvestorResponse {
	return InvestorResponse{
		ID:           row.ID,
		Name:         row.Name,
		InvestorType: ToDisplayInvestorType(row.InvestorType),
		Email:        row.Email,
		CreatedAt:    row.CreatedAt,
	}
}

func Investors(rows []*types.Investor) []InvestorResponse {
	out := make([]InvestorResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, Investor(row))
	}
	return out
}

func Investment(row *types.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:             row.ID,
		InvestorID:     row.InvestorID,
		FundID:         row.FundID,
		AmountUSD:      row.AmountUSD.InexactFloat64(),
		InvestmentDate: row.InvestmentDate.Format(validation.DateLayout),
	}
}

func Investments(rows []*types.Investment) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, Investment(row))
	}
	return out
}

// ToDisplayInvestorType is the inverse of validation.ToStoredInvestorType.
func ToDisplayInvestorType(stored string) string {
	if stored == types.InvestorTypeFamilyOfficeStored {
		return types.InvestorTypeFamilyOfficeDisplay
	}
	return stored
}
