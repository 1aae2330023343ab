package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvestorTypeIndividual  = "Individual"
	InvestorTypeInstitution = "Institution"

	// The family-office type is stored with an underscore and mapped back
	// to "Family Office" at the wire boundary.
	InvestorTypeFamilyOfficeStored  = "Family_Office"
	InvestorTypeFamilyOfficeDisplay = "Family Office"
)

type Investor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null;column:name" json:"name"`
	InvestorType string    `gorm:"not null;column:investor_type" json:"investor_type"`
	Email        string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (Investor) TableName() string {
	return "investor"
}
