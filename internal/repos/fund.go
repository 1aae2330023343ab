package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/types"
)

type FundRepo interface {
	Create(ctx context.Context, tx *gorm.DB, funds []*types.Fund) ([]*types.Fund, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, fundIDs []uuid.UUID) ([]*types.Fund, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Fund, error)
	Update(ctx context.Context, tx *gorm.DB, fund *types.Fund) error
}

type fundRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFundRepo(db *gorm.DB, baseLog *logger.Logger) FundRepo {
	return &fundRepo{db: db, log: baseLog.With("repo", "FundRepo")}
}

func (fr *fundRepo) Create(ctx context.Context, tx *gorm.DB, funds []*types.Fund) ([]*types.Fund, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if len(funds) == 0 {
		return []*types.Fund{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&funds).Error; err != nil {
		return nil, err
	}
	return funds, nil
}

func (fr *fundRepo) GetByIDs(ctx context.Context, tx *gorm.DB, fundIDs []uuid.UUID) ([]*types.Fund, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []*types.Fund
	if len(fundIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", fundIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *fundRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Fund, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []*types.Fund
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Update replaces the mutable fields of the fund identified by fund.ID.
// Returns gorm.ErrRecordNotFound when no row matches.
func (fr *fundRepo) Update(ctx context.Context, tx *gorm.DB, fund *types.Fund) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Fund{}).
		Where("id = ?", fund.ID).
		Updates(map[string]interface{}{
			"name":            fund.Name,
			"vintage_year":    fund.VintageYear,
			"target_size_usd": fund.TargetSizeUSD,
			"status":          fund.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
