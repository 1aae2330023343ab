package types

import "github.com/google/uuid"

// Wire types for the fund analytics summary. Amounts are float64 on the
// wire; exact for two-decimal currency in this domain's ranges.

type TopInvestor struct {
	InvestorID    uuid.UUID `json:"investor_id"`
	InvestorName  string    `json:"investor_name"`
	TotalInvested float64   `json:"total_invested"`
	Percentage    float64   `json:"percentage"`
	Rank          int       `json:"rank"`
}

type InvestorTypeBreakdown struct {
	Count      int     `json:"count"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

type FeeAllocation struct {
	InvestorID   uuid.UUID `json:"investor_id"`
	InvestorName string    `json:"investor_name"`
	Fee          float64   `json:"fee"`
	Percentage   float64   `json:"percentage"`
}

type FeeDistribution struct {
	TotalManagementFee float64         `json:"total_management_fee"`
	ByInvestor         []FeeAllocation `json:"by_investor"`
}

type FundAnalytics struct {
	FundID            uuid.UUID                        `json:"fund_id"`
	TotalRaised       float64                          `json:"total_raised"`
	TargetSize        float64                          `json:"target_size"`
	UtilizationPct    float64                          `json:"utilization_pct"`
	InvestorCount     int                              `json:"investor_count"`
	AverageInvestment float64                          `json:"average_investment"`
	TopInvestors      []TopInvestor                    `json:"top_investors"`
	ByInvestorType    map[string]InvestorTypeBreakdown `json:"by_investor_type"`
	FeeDistribution   FeeDistribution                  `json:"fee_distribution"`
}
