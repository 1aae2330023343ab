package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fundledger-backend/internal/apperr"
	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/repos"
	"github.com/yungbote/fundledger-backend/internal/types"
)

const managementFeeRate = 0.02

type AnalyticsService interface {
	FundAnalytics(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) (*types.FundAnalytics, error)
}

type analyticsService struct {
	db             *gorm.DB
	log            *logger.Logger
	fundRepo       repos.FundRepo
	investorRepo   repos.InvestorRepo
	investmentRepo repos.InvestmentRepo
}

func NewAnalyticsService(
	db *gorm.DB,
	baseLog *logger.Logger,
	fundRepo repos.FundRepo,
	investorRepo repos.InvestorRepo,
	investmentRepo repos.InvestmentRepo,
) AnalyticsService {
	return &analyticsService{
		db:             db,
		log:            baseLog.With("service", "AnalyticsService"),
		fundRepo:       fundRepo,
		investorRepo:   investorRepo,
		investmentRepo: investmentRepo,
	}
}

// investorRow is one investment joined with its investor.
type investorRow struct {
	investorID   uuid.UUID
	investorName string
	investorType string
	amount       float64
}

type investorTotal struct {
	investorID   uuid.UUID
	investorName string
	total        float64
}

// FundAnalytics aggregates a fund's investments in a single pass: total
// raised, utilization against target, per-investor and per-type breakdowns,
// top-5 ranking, and the management-fee figure.
func (as *analyticsService) FundAnalytics(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) (*types.FundAnalytics, error) {
	funds, err := as.fundRepo.GetByIDs(ctx, tx, []uuid.UUID{fundID})
	if err != nil {
		as.log.Error("FundAnalytics fund lookup failed", "error", err, "fund_id", fundID)
		return nil, fmt.Errorf("load fund: %w", err)
	}
	if len(funds) == 0 {
		return nil, apperr.NotFound("Fund not found")
	}
	fund := funds[0]

	investments, err := as.investmentRepo.GetByFundIDs(ctx, tx, []uuid.UUID{fundID})
	if err != nil {
		as.log.Error("FundAnalytics investment fetch failed", "error", err, "fund_id", fundID)
		return nil, fmt.Errorf("load investments: %w", err)
	}

	// One investor lookup per investment row. Rows whose investor no longer
	// resolves are dropped from every aggregate.
	rows := make([]investorRow, 0, len(investments))
	for _, investment := range investments {
		investors, err := as.investorRepo.GetByIDs(ctx, tx, []uuid.UUID{investment.InvestorID})
		if err != nil {
			as.log.Error("FundAnalytics investor lookup failed", "error", err, "investor_id", investment.InvestorID)
			return nil, fmt.Errorf("load investor: %w", err)
		}
		if len(investors) == 0 {
			as.log.Warn("Investment references a missing investor; dropped from aggregates",
				"fund_id", fundID, "investment_id", investment.ID, "investor_id", investment.InvestorID)
			continue
		}
		investor := investors[0]
		rows = append(rows, investorRow{
			investorID:   investor.ID,
			investorName: investor.Name,
			investorType: investor.InvestorType,
			amount:       investment.AmountUSD.InexactFloat64(),
		})
	}

	totalRaised := 0.0
	for _, row := range rows {
		totalRaised += row.amount
	}

	targetSize := fund.TargetSizeUSD.InexactFloat64()
	utilizationPct := totalRaised / targetSize * 100

	// Zero investments would divide by zero; the average is defined as 0.
	averageInvestment := 0.0
	if len(investments) > 0 {
		averageInvestment = totalRaised / float64(len(investments))
	}

	// Group by investor, keeping first-encounter order so equal totals rank
	// in iteration order.
	byInvestorIndex := make(map[uuid.UUID]int, len(rows))
	byInvestor := make([]*investorTotal, 0, len(rows))
	for _, row := range rows {
		i, ok := byInvestorIndex[row.investorID]
		if !ok {
			i = len(byInvestor)
			byInvestorIndex[row.investorID] = i
			byInvestor = append(byInvestor, &investorTotal{
				investorID:   row.investorID,
				investorName: row.investorName,
			})
		}
		byInvestor[i].total += row.amount
	}

	byType := make(map[string]*types.InvestorTypeBreakdown)
	for _, row := range rows {
		b, ok := byType[row.investorType]
		if !ok {
			b = &types.InvestorTypeBreakdown{}
			byType[row.investorType] = b
		}
		b.Count++
		b.Total += row.amount
	}

	ranked := make([]*investorTotal, len(byInvestor))
	copy(ranked, byInvestor)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total > ranked[j].total
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	topInvestors := make([]types.TopInvestor, 0, len(ranked))
	for i, it := range ranked {
		topInvestors = append(topInvestors, types.TopInvestor{
			InvestorID:    it.investorID,
			InvestorName:  it.investorName,
			TotalInvested: it.total,
			Percentage:    round2(it.total / totalRaised * 100),
			Rank:          i + 1,
		})
	}

	byInvestorType := make(map[string]types.InvestorTypeBreakdown, len(byType))
	for typ, b := range byType {
		byInvestorType[typ] = types.InvestorTypeBreakdown{
			Count:      b.Count,
			Total:      b.Total,
			Percentage: round2(b.Total / totalRaised * 100),
		}
	}

	totalManagementFee := totalRaised * managementFeeRate
	feeAllocations := allocateManagementFees(totalManagementFee, ranked)

	return &types.FundAnalytics{
		FundID:            fund.ID,
		TotalRaised:       totalRaised,
		TargetSize:        targetSize,
		UtilizationPct:    round2(utilizationPct),
		InvestorCount:     len(byInvestor),
		AverageInvestment: round2(averageInvestment),
		TopInvestors:      topInvestors,
		ByInvestorType:    byInvestorType,
		FeeDistribution: types.FeeDistribution{
			TotalManagementFee: round2(totalManagementFee),
			ByInvestor:         feeAllocations,
		},
	}, nil
}

// allocateManagementFees will split the fee across the top investors once an
// allocation policy is decided; until then every call yields an empty list.
// TODO: decide the allocation policy (pro-rata by top-5 share is the leading
// candidate) and implement it here.
func allocateManagementFees(totalFee float64, top []*investorTotal) []types.FeeAllocation {
	return []types.FeeAllocation{}
}

// round2 rounds half away from zero at the cent level.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
