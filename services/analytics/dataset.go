package analytics

import (
	"fmt"
	"math/rand"
	"time"

	"profitpilot/utils"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Purchase is one row of the synthetic purchases dataset the forecasting
// and revenue reports run over.
type Purchase struct {
	PurchaseID string    `gorm:"column:purchaseId;primaryKey" json:"purchaseId"`
	Timestamp  time.Time `gorm:"column:timestamp;index" json:"timestamp"`
	Cost       float64   `gorm:"column:cost" json:"cost"`
	Sales      int       `gorm:"column:sales" json:"sales"`
}

func (Purchase) TableName() string { return "purchases" }

// OpenDB opens (creating if needed) the analytics database and migrates
// the purchases table.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, utils.NewStorageError("failed to open analytics database", err)
	}
	if err := db.AutoMigrate(&Purchase{}); err != nil {
		return nil, utils.NewStorageError("failed to migrate purchases table", err)
	}
	return db, nil
}

// dailyVolume returns the purchases-per-day band for a month. Volume dips
// hard over the summer and peaks toward year end, which gives the model a
// seasonal signal worth fitting.
func dailyVolume(month time.Month, rng *rand.Rand) int {
	switch {
	case month >= time.January && month <= time.May:
		return 10 + rng.Intn(41)
	case month == time.June || month == time.July:
		return 1 + rng.Intn(10)
	default:
		return 15 + rng.Intn(46)
	}
}

// GenerateSampleData fills an empty purchases table with three years of
// synthetic purchases. A populated table is left untouched.
func GenerateSampleData(db *gorm.DB, target int) error {
	var count int64
	if err := db.Model(&Purchase{}).Count(&count).Error; err != nil {
		return utils.NewStorageError("failed to count purchases", err)
	}
	if count > 0 {
		utils.GetLogger().Info("purchases dataset already populated", zap.Int64("rows", count))
		return nil
	}

	rng := rand.New(rand.NewSource(42))
	start := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	var rows []Purchase
	id := 0
	for day := start; !day.After(end) && id < target; day = day.AddDate(0, 0, 1) {
		for i := 0; i < dailyVolume(day.Month(), rng) && id < target; i++ {
			id++
			rows = append(rows, Purchase{
				PurchaseID: purchaseID(id),
				Timestamp:  day.Add(time.Duration(rng.Intn(24*3600)) * time.Second),
				Cost:       5 + rng.Float64()*45,
				Sales:      1,
			})
		}
	}

	if err := db.CreateInBatches(rows, 500).Error; err != nil {
		return utils.NewStorageError("failed to insert sample purchases", err)
	}
	utils.GetLogger().Info("generated sample purchases dataset", zap.Int("rows", len(rows)))
	return nil
}

func purchaseID(n int) string {
	return fmt.Sprintf("P-%08d", n)
}
