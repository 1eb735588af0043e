package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kaushal774/jewelbill-api/internal/application/service"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/dto/request"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/dto/response"
)

// ShopHandler handles shop profile HTTP requests
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Get handles retrieving the shop profile
func (h *ShopHandler) Get(c *gin.Context) {
	shop, err := h.shopService.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop profile retrieved successfully", shop)
}

// Update handles replacing the shop profile fields
func (h *ShopHandler) Update(c *gin.Context) {
	var req request.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	shop, err := h.shopService.Update(c.Request.Context(), &service.UpdateShopInput{
		Name:    req.Name,
		GSTIN:   req.GSTIN,
		Address: req.Address,
		Mobile:  req.Mobile,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop profile updated successfully", shop)
}
