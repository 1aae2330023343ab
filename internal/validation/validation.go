// Package validation declares the typed request shapes for every write and
// parameterized read. Constraints ride on gin binding tags; Register wires
// the custom rules into gin's validator engine.
package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yungbote/fundledger-backend/internal/types"
)

type FundCreateRequest struct {
	Name          string  `json:"name" binding:"required,min=1"`
	VintageYear   int     `json:"vintage_year" binding:"required,gte=1900,lte=2100"`
	TargetSizeUSD float64 `json:"target_size_usd" binding:"required,gt=0"`
	Status        string  `json:"status" binding:"required,oneof=Fundraising Investing Closed"`
}

// FundUpdateRequest is a full replace of the mutable fields; the target fund
// id travels in the body, not the path.
type FundUpdateRequest struct {
	ID            string  `json:"id" binding:"required,uuid"`
	Name          string  `json:"name" binding:"required,min=1"`
	VintageYear   int     `json:"vintage_year" binding:"required,gte=1900,lte=2100"`
	TargetSizeUSD float64 `json:"target_size_usd" binding:"required,gt=0"`
	Status        string  `json:"status" binding:"required,oneof=Fundraising Investing Closed"`
}

type InvestorCreateRequest struct {
	Name         string `json:"name" binding:"required,min=1"`
	InvestorType string `json:"investor_type" binding:"required,oneof='Individual' 'Institution' 'Family Office'"`
	Email        string `json:"email" binding:"required,email"`
}

type InvestmentCreateRequest struct {
	InvestorID     string  `json:"investor_id" binding:"required,uuid"`
	AmountUSD      float64 `json:"amount_usd" binding:"required,gt=0"`
	InvestmentDate string  `json:"investment_date" binding:"required,dateonly"`
}

// ToStoredInvestorType maps the display form to the stored form.
func ToStoredInvestorType(s string) string {
	if s == types.InvestorTypeFamilyOfficeDisplay {
		return types.InvestorTypeFamilyOfficeStored
	}
	return s
}

const DateLayout = "2006-01-02"

// dateOnly accepts YYYY-MM-DD strings that survive a parse/format round
// trip, so calendar-impossible dates like 2024-02-30 are rejected.
func dateOnly(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return d.Format(DateLayout) == s
}

var registerOnce sync.Once

// Register installs the custom rules and json-tag field naming on gin's
// shared validator engine. Safe to call from router wiring and from tests.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("dateonly", dateOnly)
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
