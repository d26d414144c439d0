package repository

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"truebalance-be-svc/internal/models"
)

// setupTestDB opens a named in-memory SQLite database unique to the test and migrates the bill schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Bill{}, &models.Installment{}))

	return db
}

type billFixture struct {
	name        string
	date        time.Time
	amount      string
	category    *string
	creditCards []*uint
}

// insertBill stores a bill with one installment per entry of creditCards and returns its ID
func insertBill(t *testing.T, db *gorm.DB, f billFixture) uint {
	t.Helper()

	total := decimal.RequireFromString(f.amount)
	bill := &models.Bill{
		Name:                 f.name,
		ExecutionDate:        f.date,
		TotalAmount:          total,
		NumberOfInstallments: len(f.creditCards),
		Category:             f.category,
	}
	for i, card := range f.creditCards {
		bill.Installments = append(bill.Installments, models.Installment{
			InstallmentNumber: i + 1,
			CreditCardID:      card,
			Amount:            total,
			DueDate:           f.date.AddDate(0, i, 0),
		})
	}

	require.NoError(t, db.Create(bill).Error)
	return bill.ID
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}
