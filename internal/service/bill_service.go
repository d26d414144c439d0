package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"truebalance-be-svc/internal/filter"
	"truebalance-be-svc/internal/models"
	"truebalance-be-svc/internal/models/response"
	"truebalance-be-svc/internal/repository"
	"truebalance-be-svc/pkg/logger"
)

const (
	// DefaultPageSize is the page size used when none is requested
	DefaultPageSize = 20
	// MaxPageSize is the largest page size SearchBills returns
	MaxPageSize     = 100
	maxInstallments = 360
)

var (
	// ErrBillNotFound is returned when a bill does not exist
	ErrBillNotFound = errors.New("bill not found")
	// ErrInvalidRange is returned when a lower bound is greater than its upper bound
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidBill is returned when a bill creation request is invalid
	ErrInvalidBill = errors.New("invalid bill")
)

// CreateBillRequest represents the request for bill creation
type CreateBillRequest struct {
	Name                 string          `json:"name" binding:"required" example:"Supermarket"`
	Description          *string         `json:"description,omitempty" example:"Weekly groceries"`
	ExecutionDate        time.Time       `json:"execution_date" binding:"required" example:"2024-03-15T00:00:00Z"`
	TotalAmount          decimal.Decimal `json:"total_amount" swaggertype:"string" example:"250.90"`
	NumberOfInstallments int             `json:"number_of_installments" binding:"required,min=1" example:"3"`
	Category             *string         `json:"category,omitempty" example:"Food"`
	CreditCardID         *uint           `json:"credit_card_id,omitempty" example:"5"`
}

// BillService interface defines bill service methods
type BillService interface {
	SearchBills(criteria filter.BillCriteria, sort filter.SortOptions, page, limit int) ([]*response.BillResponse, int64, error)
	GetBill(id uint) (*response.BillDetailResponse, error)
	CreateBill(req *CreateBillRequest) (*response.BillDetailResponse, error)
	DeleteBill(id uint) error
	ListCategories() ([]string, error)
}

// billService implements BillService interface
type billService struct {
	billRepo repository.BillRepository
	logger   *logger.Logger
}

// NewBillService creates a new bill service
func NewBillService(billRepo repository.BillRepository, logger *logger.Logger) BillService {
	return &billService{
		billRepo: billRepo,
		logger:   logger,
	}
}

// SearchBills returns one page of bills matching the criteria
func (s *billService) SearchBills(criteria filter.BillCriteria, sort filter.SortOptions, page, limit int) ([]*response.BillResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if criteria.StartDate != nil && criteria.EndDate != nil && criteria.StartDate.After(*criteria.EndDate) {
		return nil, 0, fmt.Errorf("%w: start_date is after end_date", ErrInvalidRange)
	}
	if criteria.MinAmount != nil && criteria.MaxAmount != nil && criteria.MinAmount.GreaterThan(*criteria.MaxAmount) {
		return nil, 0, fmt.Errorf("%w: min_amount is greater than max_amount", ErrInvalidRange)
	}

	bills, total, err := s.billRepo.SearchBills(criteria.Predicate(), sort, page, limit)
	if err != nil {
		s.logger.WithError(err).WithFields(searchLogFields(criteria, sort, page, limit)).Error("Failed to search bills")
		return nil, 0, err
	}

	ids := make([]uint, 0, len(bills))
	for _, b := range bills {
		ids = append(ids, b.ID)
	}
	withCard, err := s.billRepo.GetCreditCardBillIDs(ids)
	if err != nil {
		s.logger.WithError(err).Error("Failed to resolve credit card flags")
		return nil, 0, err
	}

	results := make([]*response.BillResponse, 0, len(bills))
	for _, b := range bills {
		resp := toBillResponse(b, withCard[b.ID])
		results = append(results, &resp)
	}

	logFields := searchLogFields(criteria, sort, page, limit)
	logFields["total"] = total
	logFields["count"] = len(results)
	s.logger.WithFields(logFields).Info("Bills retrieved successfully")

	return results, total, nil
}

// GetBill returns a bill with its installments
func (s *billService) GetBill(id uint) (*response.BillDetailResponse, error) {
	if id == 0 {
		return nil, ErrBillNotFound
	}

	bill, err := s.billRepo.GetBillByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		s.logger.WithError(err).WithField("bill_id", id).Error("Failed to get bill")
		return nil, err
	}

	return toBillDetailResponse(bill), nil
}

// CreateBill validates the request, splits the total into installments and stores the bill
func (s *billService) CreateBill(req *CreateBillRequest) (*response.BillDetailResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidBill)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidBill)
	}
	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total_amount must be greater than zero", ErrInvalidBill)
	}
	if req.NumberOfInstallments < 1 || req.NumberOfInstallments > maxInstallments {
		return nil, fmt.Errorf("%w: number_of_installments must be between 1 and %d", ErrInvalidBill, maxInstallments)
	}
	if req.ExecutionDate.IsZero() {
		return nil, fmt.Errorf("%w: execution_date is required", ErrInvalidBill)
	}

	var category *string
	if req.Category != nil {
		c := strings.TrimSpace(*req.Category)
		category = &c
	}

	bill := &models.Bill{
		Name:                 name,
		Description:          req.Description,
		ExecutionDate:        req.ExecutionDate.UTC(),
		TotalAmount:          req.TotalAmount.Round(2),
		NumberOfInstallments: req.NumberOfInstallments,
		Category:             category,
	}

	amounts := SplitAmount(bill.TotalAmount, bill.NumberOfInstallments)
	for i, amount := range amounts {
		bill.Installments = append(bill.Installments, models.Installment{
			InstallmentNumber: i + 1,
			CreditCardID:      req.CreditCardID,
			Amount:            amount,
			DueDate:           req.ExecutionDate.UTC().AddDate(0, i, 0),
		})
	}

	if err := s.billRepo.CreateBill(bill); err != nil {
		s.logger.WithError(err).WithField("name", name).Error("Failed to create bill")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"bill_id":      bill.ID,
		"total_amount": bill.TotalAmount.String(),
		"installments": bill.NumberOfInstallments,
	}).Info("Bill created successfully")

	return toBillDetailResponse(bill), nil
}

// DeleteBill removes a bill and its installments
func (s *billService) DeleteBill(id uint) error {
	if err := s.billRepo.DeleteBill(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBillNotFound
		}
		s.logger.WithError(err).WithField("bill_id", id).Error("Failed to delete bill")
		return err
	}

	s.logger.WithField("bill_id", id).Info("Bill deleted successfully")
	return nil
}

// ListCategories returns the categories in use
func (s *billService) ListCategories() ([]string, error) {
	categories, err := s.billRepo.ListCategories()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list categories")
		return nil, err
	}
	return categories, nil
}

// SplitAmount divides total into n installments of whole cents.
// The remainder cents go to the first installment so the parts always sum to total.
func SplitAmount(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}

	cents := total.Shift(2).Round(0).IntPart()
	base := cents / int64(n)
	remainder := cents - base*int64(n)

	parts := make([]decimal.Decimal, n)
	for i := range parts {
		c := base
		if i == 0 {
			c += remainder
		}
		parts[i] = decimal.New(c, -2)
	}
	return parts
}

func toBillResponse(b *models.Bill, hasCreditCard bool) response.BillResponse {
	return response.BillResponse{
		ID:                   b.ID,
		Name:                 b.Name,
		Description:          b.Description,
		ExecutionDate:        b.ExecutionDate,
		TotalAmount:          b.TotalAmount,
		NumberOfInstallments: b.NumberOfInstallments,
		Category:             b.Category,
		HasCreditCard:        hasCreditCard,
		CreatedAt:            b.CreatedAt,
	}
}

func toBillDetailResponse(b *models.Bill) *response.BillDetailResponse {
	hasCreditCard := false
	installments := make([]response.InstallmentResponse, 0, len(b.Installments))
	for _, inst := range b.Installments {
		if inst.CreditCardID != nil {
			hasCreditCard = true
		}
		installments = append(installments, response.InstallmentResponse{
			ID:                inst.ID,
			InstallmentNumber: inst.InstallmentNumber,
			Amount:            inst.Amount,
			DueDate:           inst.DueDate,
			CreditCardID:      inst.CreditCardID,
		})
	}

	return &response.BillDetailResponse{
		BillResponse: toBillResponse(b, hasCreditCard),
		Installments: installments,
	}
}

func searchLogFields(criteria filter.BillCriteria, sort filter.SortOptions, page, limit int) map[string]interface{} {
	fields := map[string]interface{}{
		"page":  page,
		"limit": limit,
		"sort":  sort.String(),
	}
	if criteria.Name != nil {
		fields["name"] = *criteria.Name
	}
	if criteria.StartDate != nil {
		fields["start_date"] = criteria.StartDate.Format(time.RFC3339)
	}
	if criteria.EndDate != nil {
		fields["end_date"] = criteria.EndDate.Format(time.RFC3339)
	}
	if criteria.MinAmount != nil {
		fields["min_amount"] = criteria.MinAmount.String()
	}
	if criteria.MaxAmount != nil {
		fields["max_amount"] = criteria.MaxAmount.String()
	}
	if criteria.InstallmentCount != nil {
		fields["installments"] = *criteria.InstallmentCount
	}
	if !criteria.Category.IsAny() {
		fields["category"] = criteria.Category.String()
	}
	if criteria.CreditCardID != nil {
		fields["credit_card_id"] = *criteria.CreditCardID
	}
	if criteria.HasCreditCard != nil {
		fields["has_credit_card"] = *criteria.HasCreditCard
	}
	return fields
}
