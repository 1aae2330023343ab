package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/fundledger-backend/internal/apperr"
	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/repos"
	"github.com/yungbote/fundledger-backend/internal/types"
	"github.com/yungbote/fundledger-backend/internal/validation"
)

type InvestmentService interface {
	ListForFund(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) ([]*types.Investment, error)
	CreateInvestment(ctx context.Context, tx *gorm.DB, fundID uuid.UUID, req validation.InvestmentCreateRequest) (*types.Investment, error)
}

type investmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	fundRepo       repos.FundRepo
	investorRepo   repos.InvestorRepo
	investmentRepo repos.InvestmentRepo
}

func NewInvestmentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	fundRepo repos.FundRepo,
	investorRepo repos.InvestorRepo,
	investmentRepo repos.InvestmentRepo,
) InvestmentService {
	return &investmentService{
		db:             db,
		log:            baseLog.With("service", "InvestmentService"),
		fundRepo:       fundRepo,
		investorRepo:   investorRepo,
		investmentRepo: investmentRepo,
	}
}

func (vs *investmentService) ListForFund(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) ([]*types.Investment, error) {
	if err := vs.requireFund(ctx, tx, fundID); err != nil {
		return nil, err
	}
	investments, err := vs.investmentRepo.GetByFundIDs(ctx, tx, []uuid.UUID{fundID})
	if err != nil {
		vs.log.Error("ListForFund failed", "error", err, "fund_id", fundID)
		return nil, fmt.Errorf("list investments: %w", err)
	}
	return investments, nil
}

// CreateInvestment checks the fund before the investor so a missing fund is
// reported even when the investor id is also unknown.
func (vs *investmentService) CreateInvestment(ctx context.Context, tx *gorm.DB, fundID uuid.UUID, req validation.InvestmentCreateRequest) (*types.Investment, error) {
	if err := vs.requireFund(ctx, tx, fundID); err != nil {
		return nil, err
	}

	investorID, err := uuid.Parse(req.InvestorID)
	if err != nil {
		return nil, apperr.Validation("investor_id must be a valid UUID", []apperr.FieldIssue{
			{Field: "investor_id", Rule: "uuid", Message: "must be a valid UUID"},
		})
	}
	investors, err := vs.investorRepo.GetByIDs(ctx, tx, []uuid.UUID{investorID})
	if err != nil {
		vs.log.Error("CreateInvestment investor lookup failed", "error", err, "investor_id", investorID)
		return nil, fmt.Errorf("load investor: %w", err)
	}
	if len(investors) == 0 {
		return nil, apperr.NotFound("Investor not found")
	}

	investmentDate, err := time.Parse(validation.DateLayout, req.InvestmentDate)
	if err != nil {
		return nil, apperr.Validation("investment_date must be a valid YYYY-MM-DD date", []apperr.FieldIssue{
			{Field: "investment_date", Rule: "dateonly", Message: "must be a valid YYYY-MM-DD date"},
		})
	}

	investment := &types.Investment{
		ID:             uuid.New(),
		InvestorID:     investorID,
		FundID:         fundID,
		AmountUSD:      decimal.NewFromFloat(req.AmountUSD).Round(2),
		InvestmentDate: investmentDate,
	}
	if _, err := vs.investmentRepo.Create(ctx, tx, []*types.Investment{investment}); err != nil {
		vs.log.Warn("CreateInvestment failed", "error", err, "fund_id", fundID, "investor_id", investorID)
		return nil, err
	}
	return investment, nil
}

func (vs *investmentService) requireFund(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) error {
	funds, err := vs.fundRepo.GetByIDs(ctx, tx, []uuid.UUID{fundID})
	if err != nil {
		vs.log.Error("fund lookup failed", "error", err, "fund_id", fundID)
		return fmt.Errorf("load fund: %w", err)
	}
	if len(funds) == 0 {
		return apperr.NotFound("Fund not found")
	}
	return nil
}
