package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"truebalance-be-svc/internal/filter"
	"truebalance-be-svc/internal/service"
	"truebalance-be-svc/pkg/logger"
	"truebalance-be-svc/pkg/utils"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService service.BillService
	logger      *logger.Logger
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService service.BillService, logger *logger.Logger) *BillHandler {
	return &BillHandler{
		billService: billService,
		logger:      logger,
	}
}

// SearchBills handles GET /api/v1/bills
// @Summary Search bills
// @Description Search bills with optional filters. Every filter is optional; omitted filters do not constrain the result.
// @Tags bills
// @Accept json
// @Produce json
// @Param name query string false "Case-insensitive substring of the bill name"
// @Param start_date query string false "Execution date lower bound (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "Execution date upper bound (RFC3339 or YYYY-MM-DD)"
// @Param min_amount query string false "Minimum total amount"
// @Param max_amount query string false "Maximum total amount"
// @Param installments query int false "Exact number of installments"
// @Param category query string false "Category, case-insensitive"
// @Param uncategorized query bool false "Only bills without category"
// @Param credit_card_id query int false "Only bills with an installment on this credit card"
// @Param has_credit_card query bool false "Only bills with (true) or without (false) credit card installments"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param sort query string false "Sort as field:direction" default(execution_date:desc)
// @Success 200 {object} utils.PaginatedResponse{data=[]response.BillResponse} "Bills retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills [get]
func (h *BillHandler) SearchBills(c *gin.Context) {
	criteria, err := parseBillCriteria(c)
	if err != nil {
		h.logger.WithError(err).Warn("Invalid bill filter")
		utils.BadRequestResponse(c, "Invalid bill filter", err)
		return
	}

	sort, err := filter.ParseSortOptions(c.Query("sort"))
	if err != nil {
		h.logger.WithError(err).WithField("sort", c.Query("sort")).Warn("Invalid sort parameter")
		utils.BadRequestResponse(c, "Invalid sort parameter", err)
		return
	}

	page, perPage := utils.QueryPage(c, service.DefaultPageSize, service.MaxPageSize)

	bills, total, err := h.billService.SearchBills(criteria, sort, page, perPage)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			utils.BadRequestResponse(c, "Invalid bill filter", err)
			return
		}
		h.logger.WithError(err).Error("Failed to search bills")
		utils.InternalServerErrorResponse(c, "Failed to search bills", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Bills retrieved successfully", bills, page, perPage, total)
}

// GetBill handles GET /api/v1/bills/:id
// @Summary Get bill
// @Description Get a bill with its installments
// @Tags bills
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} utils.APIResponse{data=response.BillDetailResponse} "Bill retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid bill ID"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bill ID", err)
		return
	}

	bill, err := h.billService.GetBill(id)
	if err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			utils.NotFoundResponse(c, "Bill not found", err)
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to get bill", err)
		return
	}

	utils.SuccessResponse(c, "Bill retrieved successfully", bill)
}

// CreateBill handles POST /api/v1/bills
// @Summary Create bill
// @Description Create a bill; the total is split into monthly installments
// @Tags bills
// @Accept json
// @Produce json
// @Param request body service.CreateBillRequest true "Bill to create"
// @Success 201 {object} utils.APIResponse{data=response.BillDetailResponse} "Bill created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req service.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	bill, err := h.billService.CreateBill(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBill) {
			utils.BadRequestResponse(c, "Invalid bill", err)
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to create bill", err)
		return
	}

	utils.CreatedResponse(c, "Bill created successfully", bill)
}

// DeleteBill handles DELETE /api/v1/bills/:id
// @Summary Delete bill
// @Description Delete a bill and its installments
// @Tags bills
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} utils.APIResponse "Bill deleted successfully"
// @Failure 400 {object} utils.APIResponse "Invalid bill ID"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bill ID", err)
		return
	}

	if err := h.billService.DeleteBill(id); err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			utils.NotFoundResponse(c, "Bill not found", err)
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete bill", err)
		return
	}

	utils.SuccessResponse(c, "Bill deleted successfully", gin.H{"id": id})
}

// ListCategories handles GET /api/v1/bills/categories
// @Summary List categories
// @Description List the distinct categories used by bills
// @Tags bills
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]string} "Categories retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/categories [get]
func (h *BillHandler) ListCategories(c *gin.Context) {
	categories, err := h.billService.ListCategories()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to list categories", err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	utils.SuccessResponse(c, "Categories retrieved successfully", categories)
}

// parseBillCriteria reads the optional bill filters from the query string
func parseBillCriteria(c *gin.Context) (filter.BillCriteria, error) {
	var criteria filter.BillCriteria
	var err error

	criteria.Name = utils.QueryString(c, "name")

	if criteria.StartDate, err = utils.QueryTime(c, "start_date"); err != nil {
		return criteria, err
	}
	if criteria.EndDate, err = utils.QueryTime(c, "end_date"); err != nil {
		return criteria, err
	}
	if criteria.MinAmount, err = utils.QueryDecimal(c, "min_amount"); err != nil {
		return criteria, err
	}
	if criteria.MaxAmount, err = utils.QueryDecimal(c, "max_amount"); err != nil {
		return criteria, err
	}
	if criteria.InstallmentCount, err = utils.QueryInt(c, "installments"); err != nil {
		return criteria, err
	}
	if criteria.CreditCardID, err = utils.QueryUint(c, "credit_card_id"); err != nil {
		return criteria, err
	}
	if criteria.HasCreditCard, err = utils.QueryBool(c, "has_credit_card"); err != nil {
		return criteria, err
	}

	uncategorized, err := utils.QueryBool(c, "uncategorized")
	if err != nil {
		return criteria, err
	}
	category := utils.QueryString(c, "category")

	switch {
	case uncategorized != nil && *uncategorized && category != nil:
		return criteria, errors.New("category and uncategorized=true are mutually exclusive")
	case uncategorized != nil && *uncategorized:
		criteria.Category = filter.Uncategorized()
	case category != nil:
		criteria.Category = filter.CategoryNamed(*category)
	}

	return criteria, nil
}
