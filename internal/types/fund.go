package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	FundStatusFundraising = "Fundraising"
	FundStatusInvesting   = "Investing"
	FundStatusClosed      = "Closed"
)

// Fund name uniqueness is enforced by the database index; a violation
// surfaces as gorm.ErrDuplicatedKey, not as a validation failure.
type Fund struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string          `gorm:"uniqueIndex;not null;column:name" json:"name"`
	VintageYear   int             `gorm:"not null;column:vintage_year" json:"vintage_year"`
	TargetSizeUSD decimal.Decimal `gorm:"type:decimal(18,2);not null;column:target_size_usd" json:"target_size_usd"`
	Status        string          `gorm:"not null;column:status" json:"status"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
}

func (Fund) TableName() string {
	return "fund"
}
