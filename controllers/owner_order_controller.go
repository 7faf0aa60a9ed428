package controllers

import (
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/apperr"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/resp"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/services"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/utils"

	"github.com/gin-gonic/gin"
)

// OwnerOrderController serves the restaurant dashboard. The restaurant is
// always derived from the authenticated owner.
type OwnerOrderController struct{ Svc *services.OrderService }

func NewOwnerOrderController(s *services.OrderService) *OwnerOrderController {
	return &OwnerOrderController{Svc: s}
}

// GET /owner/orders?status=
func (h *OwnerOrderController) List(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}

	orders, err := h.Svc.ListRestaurantOrders(id.UserID, c.Query("status"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// PUT /owner/orders/status
func (h *OwnerOrderController) UpdateStatus(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}

	var body struct {
		OrderID uint   `json:"orderId" binding:"required"`
		Status  string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Error(c, apperr.E(apperr.CodeInvalidInput, "Missing required fields"))
		return
	}

	if err := h.Svc.UpdateStatus(id.UserID, body.OrderID, entity.OrderStatus(body.Status)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order status updated"})
}
