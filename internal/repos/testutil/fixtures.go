package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/fundledger-backend/internal/types"
)

func SeedFund(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, targetSize string) *types.Fund {
	tb.Helper()
	target, err := decimal.NewFromString(targetSize)
	if err != nil {
		tb.Fatalf("bad target size %q: %v", targetSize, err)
	}
	f := &types.Fund{
		ID:            uuid.New(),
		Name:          name,
		VintageYear:   2024,
		TargetSizeUSD: target,
		Status:        types.FundStatusFundraising,
		CreatedAt:     time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed fund: %v", err)
	}
	return f
}

func SeedInvestor(tb testing.TB, ctx context.Context, tx *gorm.DB, name, investorType, email string) *types.Investor {
	tb.Helper()
	i := &types.Investor{
		ID:           uuid.New(),
		Name:         name,
		InvestorType: investorType,
		Email:        email,
		CreatedAt:    time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(i).Error; err != nil {
		tb.Fatalf("seed investor: %v", err)
	}
	return i
}

func SeedInvestment(tb testing.TB, ctx context.Context, tx *gorm.DB, fundID, investorID uuid.UUID, amount, date string) *types.Investment {
	tb.Helper()
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		tb.Fatalf("bad amount %q: %v", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		tb.Fatalf("bad date %q: %v", date, err)
	}
	v := &types.Investment{
		ID:             uuid.New(),
		InvestorID:     investorID,
		FundID:         fundID,
		AmountUSD:      amt,
		InvestmentDate: day,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed investment: %v", err)
	}
	return v
}
