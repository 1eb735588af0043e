package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kaushal774/jewelbill-api/internal/application/service"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/dto/request"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/dto/response"
)

// InventoryHandler handles stock ledger HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Restock handles adding stock weight to an item
func (h *InventoryHandler) Restock(c *gin.Context) {
	var req request.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	item, err := h.inventoryService.Restock(c.Request.Context(), &service.RestockInput{
		Metal:  req.Metal,
		Name:   req.Name,
		Weight: req.Weight,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock updated successfully", item)
}

// List handles listing the full ledger across both metals
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventoryService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Inventory retrieved successfully", items)
}

// ListByMetal handles listing one metal's ledger
func (h *InventoryHandler) ListByMetal(c *gin.Context) {
	items, err := h.inventoryService.ListByMetal(c.Request.Context(), c.Param("metal"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Inventory retrieved successfully", items)
}
