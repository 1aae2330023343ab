package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment is a capital commitment by one investor into one fund.
// Over-subscription is permitted: nothing ties the sum of amounts to the
// fund's target size.
type Investment struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvestorID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"investor_id"`
	Investor       *Investor       `gorm:"foreignKey:InvestorID;references:ID" json:"investor,omitempty"`
	FundID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"fund_id"`
	Fund           *Fund           `gorm:"foreignKey:FundID;references:ID" json:"fund,omitempty"`
	AmountUSD      decimal.Decimal `gorm:"type:decimal(18,2);not null;column:amount_usd" json:"amount_usd"`
	InvestmentDate time.Time       `gorm:"type:date;not null;column:investment_date" json:"investment_date"`
}

func (Investment) TableName() string {
	return "investment"
}
