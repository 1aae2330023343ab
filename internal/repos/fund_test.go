package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/fundledger-backend/internal/repos/testutil"
	"github.com/yungbote/fundledger-backend/internal/types"
)

func TestFundRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewFundRepo(db, testutil.Logger(t))

	first := testutil.SeedFund(t, ctx, tx, "Fund Repo Alpha", "250000000.00")
	second := &types.Fund{
		ID:            uuid.New(),
		Name:          "Fund Repo Beta",
		VintageYear:   2025,
		TargetSizeUSD: decimal.NewFromInt(500_000_000),
		Status:        types.FundStatusInvesting,
		CreatedAt:     first.CreatedAt.Add(time.Second),
	}
	if _, err := repo.Create(ctx, tx, []*types.Fund{second}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{first.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{uuid.New()}); err != nil || len(rows) != 0 {
		t.Fatalf("GetByIDs unknown id: err=%v len=%d", err, len(rows))
	}

	rows, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("List: got %d rows, want at least 2", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].CreatedAt.Before(rows[i-1].CreatedAt) {
			t.Fatalf("List not ordered by created_at ascending at index %d", i)
		}
	}

	second.Name = "Fund Repo Beta Renamed"
	second.Status = types.FundStatusClosed
	if err := repo.Update(ctx, tx, second); err != nil {
		t.Fatalf("Update: %v", err)
	}
	reloaded, err := repo.GetByIDs(ctx, tx, []uuid.UUID{second.ID})
	if err != nil || len(reloaded) != 1 {
		t.Fatalf("reload after update: err=%v len=%d", err, len(reloaded))
	}
	if reloaded[0].Name != "Fund Repo Beta Renamed" || reloaded[0].Status != types.FundStatusClosed {
		t.Fatalf("update not applied: %+v", reloaded[0])
	}

	missing := &types.Fund{ID: uuid.New(), Name: "ghost", VintageYear: 2024, TargetSizeUSD: decimal.NewFromInt(1), Status: types.FundStatusClosed}
	if err := repo.Update(ctx, tx, missing); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Update missing fund: got %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestFundRepoDuplicateName(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewFundRepo(db, testutil.Logger(t))

	testutil.SeedFund(t, ctx, tx, "Fund Repo Duplicate", "100.00")

	dup := &types.Fund{
		ID:            uuid.New(),
		Name:          "Fund Repo Duplicate",
		VintageYear:   2024,
		TargetSizeUSD: decimal.NewFromInt(100),
		Status:        types.FundStatusFundraising,
		CreatedAt:     time.Now().UTC(),
	}
	_, err := repo.Create(ctx, tx, []*types.Fund{dup})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate fund name: got %v, want gorm.ErrDuplicatedKey", err)
	}
}
