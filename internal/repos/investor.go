package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/types"
)

type InvestorRepo interface {
	Create(ctx context.Context, tx *gorm.DB, investors []*types.Investor) ([]*types.Investor, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, investorIDs []uuid.UUID) ([]*types.Investor, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Investor, error)
}

type investorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInvestorRepo(db *gorm.DB, baseLog *logger.Logger) InvestorRepo {
	return &investorRepo{db: db, log: baseLog.With("repo", "InvestorRepo")}
}

func (ir *investorRepo) Create(ctx context.Context, tx *gorm.DB, investors []*types.Investor) ([]*types.Investor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if len(investors) == 0 {
		return []*types.Investor{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&investors).Error; err != nil {
		return nil, err
	}
	return investors, nil
}

func (ir *investorRepo) GetByIDs(ctx context.Context, tx *gorm.DB, investorIDs []uuid.UUID) ([]*types.Investor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var results []*types.Investor
	if len(investorIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", investorIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *investorRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Investor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var results []*types.Investor
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
