package controllers

import (
	"strconv"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/apperr"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/resp"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/services"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}

	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.E(apperr.CodeInvalidInput, "Missing required fields"))
		return
	}

	out, err := h.Svc.PlaceOrder(id.UserID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders?status=
func (h *OrderController) List(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}

	orders, err := h.Svc.ListOrders(id.UserID, c.Query("status"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		resp.Error(c, apperr.E(apperr.CodeInvalidInput, "Invalid order id"))
		return
	}

	detail, err := h.Svc.GetOrder(id.UserID, uint(orderID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}
