package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/types"
)

// In-memory repo fakes for service tests. Lookups mirror the real repos:
// unknown ids return empty slices, not errors.

type fakeFundRepo struct {
	funds     []*types.Fund
	createErr error
	updateErr error
}

func (f *fakeFundRepo) Create(ctx context.Context, tx *gorm.DB, funds []*types.Fund) ([]*types.Fund, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.funds = append(f.funds, funds...)
	return funds, nil
}

func (f *fakeFundRepo) GetByIDs(ctx context.Context, tx *gorm.DB, fundIDs []uuid.UUID) ([]*types.Fund, error) {
	var out []*types.Fund
	for _, fund := range f.funds {
		for _, id := range fundIDs {
			if fund.ID == id {
				out = append(out, fund)
			}
		}
	}
	return out, nil
}

func (f *fakeFundRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Fund, error) {
	return f.funds, nil
}

func (f *fakeFundRepo) Update(ctx context.Context, tx *gorm.DB, fund *types.Fund) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, existing := range f.funds {
		if existing.ID == fund.ID {
			fund.CreatedAt = existing.CreatedAt
			f.funds[i] = fund
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeInvestorRepo struct {
	investors []*types.Investor
	createErr error
}

func (f *fakeInvestorRepo) Create(ctx context.Context, tx *gorm.DB, investors []*types.Investor) ([]*types.Investor, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.investors = append(f.investors, investors...)
	return investors, nil
}

func (f *fakeInvestorRepo) GetByIDs(ctx context.Context, tx *gorm.DB, investorIDs []uuid.UUID) ([]*types.Investor, error) {
	var out []*types.Investor
	for _, investor := range f.investors {
		for _, id := range investorIDs {
			if investor.ID == id {
				out = append(out, investor)
			}
		}
	}
	return out, nil
}

func (f *fakeInvestorRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Investor, error) {
	return f.investors, nil
}

type fakeInvestmentRepo struct {
	investments []*types.Investment
	createErr   error
}

func (f *fakeInvestmentRepo) Create(ctx context.Context, tx *gorm.DB, investments []*types.Investment) ([]*types.Investment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.investments = append(f.investments, investments...)
	return investments, nil
}

func (f *fakeInvestmentRepo) GetByFundIDs(ctx context.Context, tx *gorm.DB, fundIDs []uuid.UUID) ([]*types.Investment, error) {
	var out []*types.Investment
	for _, investment := range f.investments {
		for _, id := range fundIDs {
			if investment.FundID == id {
				out = append(out, investment)
			}
		}
	}
	return out, nil
}

func testLogger(mode string) *logger.Logger {
	log, err := logger.New(mode)
	if err != nil {
		panic(err)
	}
	return log
}
