// Seeds demo funds, investors, and investments. Safe to run repeatedly:
// funds and investors upsert by their unique keys, investments are only
// created when the table is empty.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/fundledger-backend/internal/db"
	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/types"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dbService, err := db.NewService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	fund1 := upsertFund(theDB, log, "Titanbay Growth Fund I", 2024, "250000000.00", types.FundStatusFundraising)
	fund2 := upsertFund(theDB, log, "Titanbay Growth Fund II", 2025, "500000000.00", types.FundStatusInvesting)

	inv1 := upsertInvestor(theDB, log, "Goldman Sachs Asset Management", types.InvestorTypeInstitution, "investments@gsam.com")
	inv2 := upsertInvestor(theDB, log, "CalPERS", types.InvestorTypeInstitution, "privateequity@calpers.ca.gov")
	inv3 := upsertInvestor(theDB, log, "Sophia Lee", types.InvestorTypeIndividual, "sophia.lee@example.com")

	var count int64
	if err := theDB.Model(&types.Investment{}).Count(&count).Error; err != nil {
		log.Error("Investment count failed", "error", err)
		os.Exit(1)
	}
	if count == 0 {
		createInvestment(theDB, log, fund1, inv1, "50000000.00", "2024-03-15")
		createInvestment(theDB, log, fund1, inv2, "75000000.00", "2024-09-22")
		createInvestment(theDB, log, fund2, inv3, "1000000.00", "2025-01-10")
	}

	log.Info("Seed complete")
}

func upsertFund(theDB *gorm.DB, log *logger.Logger, name string, vintageYear int, targetSize, status string) *types.Fund {
	target, err := decimal.NewFromString(targetSize)
	if err != nil {
		log.Error("Bad seed amount", "value", targetSize, "error", err)
		os.Exit(1)
	}
	fund := &types.Fund{
		ID:            uuid.New(),
		Name:          name,
		VintageYear:   vintageYear,
		TargetSizeUSD: target,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
	if err := theDB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(fund).Error; err != nil {
		log.Error("Fund upsert failed", "name", name, "error", err)
		os.Exit(1)
	}
	// Re-read so callers get the persisted row when the fund already existed.
	var row types.Fund
	if err := theDB.Where("name = ?", name).First(&row).Error; err != nil {
		log.Error("Fund reload failed", "name", name, "error", err)
		os.Exit(1)
	}
	return &row
}

func upsertInvestor(theDB *gorm.DB, log *logger.Logger, name, investorType, email string) *types.Investor {
	investor := &types.Investor{
		ID:           uuid.New(),
		Name:         name,
		InvestorType: investorType,
		Email:        email,
		CreatedAt:    time.Now().UTC(),
	}
	if err := theDB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(investor).Error; err != nil {
		log.Error("Investor upsert failed", "email", email, "error", err)
		os.Exit(1)
	}
	var row types.Investor
	if err := theDB.Where("email = ?", email).First(&row).Error; err != nil {
		log.Error("Investor reload failed", "email", email, "error", err)
		os.Exit(1)
	}
	return &row
}

func createInvestment(theDB *gorm.DB, log *logger.Logger, fund *types.Fund, investor *types.Investor, amount, date string) {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		log.Error("Bad seed amount", "value", amount, "error", err)
		os.Exit(1)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		log.Error("Bad seed date", "value", date, "error", err)
		os.Exit(1)
	}
	investment := &types.Investment{
		ID:             uuid.New(),
		InvestorID:     investor.ID,
		FundID:         fund.ID,
		AmountUSD:      amt,
		InvestmentDate: day,
	}
	if err := theDB.Create(investment).Error; err != nil {
		log.Error("Investment create failed", "fund", fund.Name, "investor", investor.Name, "error", err)
		os.Exit(1)
	}
}
