package handler

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kaushal774/jewelbill-api/internal/application/service"
	"github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/dto/request"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/dto/response"
	"github.com/kaushal774/jewelbill-api/pkg/pagination"
)

// BillingHandler handles bill-related HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Create handles recording a new sale
func (h *BillingHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	items := make([]service.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.SaleItemInput{Name: item.Name, Weight: item.Weight}
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		Customer:        req.Customer,
		Mobile:          req.Mobile,
		Metal:           req.Metal,
		NetWeight:       req.NetWeight,
		OldWeight:       req.OldWeight,
		Rate:            req.Rate,
		DisplayRate:     req.DisplayRate,
		Purity:          req.Purity,
		Making:          req.Making,
		ExtraAdjustment: req.ExtraAdjustment,
		GSTPercent:      req.GSTPercent,
		Discount:        req.Discount,
		Paid:            req.Paid,
		Items:           items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill recorded successfully", bill)
}

// Get handles retrieving a single bill
func (h *BillingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// List handles listing bills with filters
func (h *BillingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Render handles regenerating the printable document for a bill
func (h *BillingHandler) Render(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	path, err := h.billingService.RenderBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
