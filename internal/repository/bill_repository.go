package repository

import (
	"truebalance-be-svc/internal/filter"
	"truebalance-be-svc/internal/models"

	"gorm.io/gorm"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	SearchBills(predicate filter.Predicate, sort filter.SortOptions, page int, limit int) ([]*models.Bill, int64, error)
	GetBillByID(id uint) (*models.Bill, error)
	CreateBill(bill *models.Bill) error
	DeleteBill(id uint) error
	GetCreditCardBillIDs(billIDs []uint) (map[uint]bool, error)
	ListCategories() ([]string, error)
}

// billRepository implements BillRepository
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new instance of BillRepository
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{
		db: db,
	}
}

// SearchBills retrieves one page of bills matching the predicate and the total match count
func (r *billRepository) SearchBills(predicate filter.Predicate, sort filter.SortOptions, page int, limit int) ([]*models.Bill, int64, error) {
	var bills []*models.Bill
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	where, err := predicateScope(predicate)
	if err != nil {
		return nil, 0, err
	}

	err = r.db.Model(&models.Bill{}).Scopes(where).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*models.Bill{}, 0, nil
	}

	err = r.db.Model(&models.Bill{}).
		Scopes(where, sortScope(sort)).
		Limit(limit).
		Offset(offset).
		Find(&bills).Error
	if err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

// GetBillByID retrieves a bill by ID with its installments
func (r *billRepository) GetBillByID(id uint) (*models.Bill, error) {
	var bill models.Bill

	err := r.db.
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installments.installment_number ASC")
		}).
		Where("bills.id = ?", id).
		First(&bill).Error
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

// CreateBill creates a bill together with its installments
func (r *billRepository) CreateBill(bill *models.Bill) error {
	return r.db.Create(bill).Error
}

// DeleteBill deletes a bill and its installments in a transaction.
// Returns gorm.ErrRecordNotFound when no bill has the given ID.
func (r *billRepository) DeleteBill(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).Delete(&models.Installment{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Bill{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetCreditCardBillIDs reports which of the given bills have an installment charged to a credit card
func (r *billRepository) GetCreditCardBillIDs(billIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool, len(billIDs))
	if len(billIDs) == 0 {
		return result, nil
	}

	var ids []uint
	err := r.db.Model(&models.Installment{}).
		Distinct("bill_id").
		Where("bill_id IN ? AND credit_card_id IS NOT NULL", billIDs).
		Pluck("bill_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		result[id] = true
	}

	return result, nil
}

// ListCategories retrieves the distinct non-empty bill categories
func (r *billRepository) ListCategories() ([]string, error) {
	var categories []string

	err := r.db.Model(&models.Bill{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ?", "").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
