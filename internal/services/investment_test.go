package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/fundledger-backend/internal/apperr"
	"github.com/yungbote/fundledger-backend/internal/types"
	"github.com/yungbote/fundledger-backend/internal/validation"
)

func investmentFixture() (*fakeFundRepo, *fakeInvestorRepo, *fakeInvestmentRepo, InvestmentService, *types.Fund, *types.Investor) {
	fund := &types.Fund{
		ID:            uuid.New(),
		Name:          "Fund",
		VintageYear:   2024,
		TargetSizeUSD: decimal.NewFromInt(1000),
		Status:        types.FundStatusFundraising,
		CreatedAt:     time.Now().UTC(),
	}
	investor := &types.Investor{
		ID:           uuid.New(),
		Name:         "Investor",
		InvestorType: types.InvestorTypeInstitution,
		Email:        "investor@example.com",
		CreatedAt:    time.Now().UTC(),
	}
	funds := &fakeFundRepo{funds: []*types.Fund{fund}}
	investors := &fakeInvestorRepo{investors: []*types.Investor{investor}}
	investments := &fakeInvestmentRepo{}
	svc := NewInvestmentService(nil, testLogger("test"), funds, investors, investments)
	return funds, investors, investments, svc, fund, investor
}

func TestCreateInvestment(t *testing.T) {
	_, _, investments, svc, fund, investor := investmentFixture()

	created, err := svc.CreateInvestment(context.Background(), nil, fund.ID, validation.InvestmentCreateRequest{
		InvestorID:     investor.ID.String(),
		AmountUSD:      42.5,
		InvestmentDate: "2025-02-01",
	})
	if err != nil {
		t.Fatalf("CreateInvestment: %v", err)
	}
	if created.FundID != fund.ID || created.InvestorID != investor.ID {
		t.Errorf("references not set: %+v", created)
	}
	if !created.AmountUSD.Equal(decimal.NewFromFloat(42.5)) {
		t.Errorf("AmountUSD = %s, want 42.5", created.AmountUSD)
	}
	if created.InvestmentDate.Format("2006-01-02") != "2025-02-01" {
		t.Errorf("InvestmentDate = %s", created.InvestmentDate)
	}
	if len(investments.investments) != 1 {
		t.Errorf("investment not persisted")
	}
}

func TestCreateInvestmentMissingFundWinsOverMissingInvestor(t *testing.T) {
	_, _, _, svc, _, _ := investmentFixture()

	// Both ids unknown: the fund check runs first so the error names the fund.
	_, err := svc.CreateInvestment(context.Background(), nil, uuid.New(), validation.InvestmentCreateRequest{
		InvestorID:     uuid.New().String(),
		AmountUSD:      1,
		InvestmentDate: "2025-01-01",
	})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Status != 404 || appErr.Message != "Fund not found" {
		t.Fatalf("got %v, want 404 Fund not found", err)
	}
}

func TestCreateInvestmentMissingInvestor(t *testing.T) {
	_, _, _, svc, fund, _ := investmentFixture()

	_, err := svc.CreateInvestment(context.Background(), nil, fund.ID, validation.InvestmentCreateRequest{
		InvestorID:     uuid.New().String(),
		AmountUSD:      1,
		InvestmentDate: "2025-01-01",
	})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Status != 404 || appErr.Message != "Investor not found" {
		t.Fatalf("got %v, want 404 Investor not found", err)
	}
}

func TestListForFundMissingFund(t *testing.T) {
	_, _, _, svc, _, _ := investmentFixture()

	_, err := svc.ListForFund(context.Background(), nil, uuid.New())
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Status != 404 {
		t.Fatalf("got %v, want 404", err)
	}
}
