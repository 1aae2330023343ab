package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/fundledger-backend/internal/repos/testutil"
	"github.com/yungbote/fundledger-backend/internal/types"
)

func TestInvestmentRepoOrdering(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewInvestmentRepo(db, testutil.Logger(t))

	fund := testutil.SeedFund(t, ctx, tx, "Investment Repo Fund", "250000000.00")
	investor := testutil.SeedInvestor(t, ctx, tx, "Investment Repo Investor", types.InvestorTypeInstitution, "investment.repo@example.com")

	// Seed out of date order on purpose.
	testutil.SeedInvestment(t, ctx, tx, fund.ID, investor.ID, "300.00", "2024-09-22")
	testutil.SeedInvestment(t, ctx, tx, fund.ID, investor.ID, "100.00", "2024-03-15")
	testutil.SeedInvestment(t, ctx, tx, fund.ID, investor.ID, "200.00", "2024-06-01")

	rows, err := repo.GetByFundIDs(ctx, tx, []uuid.UUID{fund.ID})
	if err != nil {
		t.Fatalf("GetByFundIDs: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("GetByFundIDs: got %d rows, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].InvestmentDate.Before(rows[i-1].InvestmentDate) {
			t.Fatalf("not ordered by investment_date ascending at index %d", i)
		}
	}

	if rows, err := repo.GetByFundIDs(ctx, tx, []uuid.UUID{uuid.New()}); err != nil || len(rows) != 0 {
		t.Fatalf("GetByFundIDs unknown fund: err=%v len=%d", err, len(rows))
	}
}
