package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/types"
)

type InvestmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, investments []*types.Investment) ([]*types.Investment, error)
	GetByFundIDs(ctx context.Context, tx *gorm.DB, fundIDs []uuid.UUID) ([]*types.Investment, error)
}

type investmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInvestmentRepo(db *gorm.DB, baseLog *logger.Logger) InvestmentRepo {
	return &investmentRepo{db: db, log: baseLog.With("repo", "InvestmentRepo")}
}

func (ivr *investmentRepo) Create(ctx context.Context, tx *gorm.DB, investments []*types.Investment) ([]*types.Investment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ivr.db
	}
	if len(investments) == 0 {
		return []*types.Investment{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&investments).Error; err != nil {
		return nil, err
	}
	return investments, nil
}

func (ivr *investmentRepo) GetByFundIDs(ctx context.Context, tx *gorm.DB, fundIDs []uuid.UUID) ([]*types.Investment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ivr.db
	}
	var results []*types.Investment
	if len(fundIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("fund_id IN ?", fundIDs).
		Order("investment_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
