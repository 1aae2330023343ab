package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/repos"
	"github.com/yungbote/fundledger-backend/internal/types"
	"github.com/yungbote/fundledger-backend/internal/validation"
)

type InvestorService interface {
	ListInvestors(ctx context.Context, tx *gorm.DB) ([]*types.Investor, error)
	CreateInvestor(ctx context.Context, tx *gorm.DB, req validation.InvestorCreateRequest) (*types.Investor, error)
}

type investorService struct {
	db           *gorm.DB
	log          *logger.Logger
	investorRepo repos.InvestorRepo
}

func NewInvestorService(db *gorm.DB, baseLog *logger.Logger, investorRepo repos.InvestorRepo) InvestorService {
	return &investorService{
		db:           db,
		log:          baseLog.With("service", "InvestorService"),
		investorRepo: investorRepo,
	}
}

func (is *investorService) ListInvestors(ctx context.Context, tx *gorm.DB) ([]*types.Investor, error) {
	investors, err := is.investorRepo.List(ctx, tx)
	if err != nil {
		is.log.Error("ListInvestors failed", "error", err)
		return nil, fmt.Errorf("list investors: %w", err)
	}
	return investors, nil
}

// CreateInvestor stores the transliterated investor type; email uniqueness
// is the database's job and surfaces as a conflict.
func (is *investorService) CreateInvestor(ctx context.Context, tx *gorm.DB, req validation.InvestorCreateRequest) (*types.Investor, error) {
	investor := &types.Investor{
		ID:           uuid.New(),
		Name:         req.Name,
		InvestorType: validation.ToStoredInvestorType(req.InvestorType),
		Email:        req.Email,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := is.investorRepo.Create(ctx, tx, []*types.Investor{investor}); err != nil {
		is.log.Warn("CreateInvestor failed", "error", err, "email", req.Email)
		return nil, err
	}
	return investor, nil
}
