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

type FundService interface {
	ListFunds(ctx context.Context, tx *gorm.DB) ([]*types.Fund, error)
	GetFund(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) (*types.Fund, error)
	CreateFund(ctx context.Context, tx *gorm.DB, req validation.FundCreateRequest) (*types.Fund, error)
	UpdateFund(ctx context.Context, tx *gorm.DB, req validation.FundUpdateRequest) (*types.Fund, error)
}

type fundService struct {
	db       *gorm.DB
	log      *logger.Logger
	fundRepo repos.FundRepo
}

func NewFundService(db *gorm.DB, baseLog *logger.Logger, fundRepo repos.FundRepo) FundService {
	return &fundService{
		db:       db,
		log:      baseLog.With("service", "FundService"),
		fundRepo: fundRepo,
	}
}

func (fs *fundService) ListFunds(ctx context.Context, tx *gorm.DB) ([]*types.Fund, error) {
	funds, err := fs.fundRepo.List(ctx, tx)
	if err != nil {
		fs.log.Error("ListFunds failed", "error", err)
		return nil, fmt.Errorf("list funds: %w", err)
	}
	return funds, nil
}

func (fs *fundService) GetFund(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) (*types.Fund, error) {
	funds, err := fs.fundRepo.GetByIDs(ctx, tx, []uuid.UUID{fundID})
	if err != nil {
		fs.log.Error("GetFund failed", "error", err, "fund_id", fundID)
		return nil, fmt.Errorf("load fund: %w", err)
	}
	if len(funds) == 0 {
		return nil, apperr.NotFound("Fund not found")
	}
	return funds[0], nil
}

// CreateFund does not pre-check name uniqueness; the database constraint
// rejects duplicates and the classifier maps that to 409.
func (fs *fundService) CreateFund(ctx context.Context, tx *gorm.DB, req validation.FundCreateRequest) (*types.Fund, error) {
	fund := &types.Fund{
		ID:            uuid.New(),
		Name:          req.Name,
		VintageYear:   req.VintageYear,
		TargetSizeUSD: decimal.NewFromFloat(req.TargetSizeUSD).Round(2),
		Status:        req.Status,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := fs.fundRepo.Create(ctx, tx, []*types.Fund{fund}); err != nil {
		fs.log.Warn("CreateFund failed", "error", err, "name", req.Name)
		return nil, err
	}
	return fund, nil
}

func (fs *fundService) UpdateFund(ctx context.Context, tx *gorm.DB, req validation.FundUpdateRequest) (*types.Fund, error) {
	fundID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, apperr.Validation("id must be a valid UUID", []apperr.FieldIssue{
			{Field: "id", Rule: "uuid", Message: "must be a valid UUID"},
		})
	}
	fund := &types.Fund{
		ID:            fundID,
		Name:          req.Name,
		VintageYear:   req.VintageYear,
		TargetSizeUSD: decimal.NewFromFloat(req.TargetSizeUSD).Round(2),
		Status:        req.Status,
	}
	if err := fs.fundRepo.Update(ctx, tx, fund); err != nil {
		fs.log.Warn("UpdateFund failed", "error", err, "fund_id", fundID)
		return nil, err
	}
	return fs.GetFund(ctx, tx, fundID)
}
