package controllers

import (
	"strconv"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/apperr"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/resp"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/services"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart?restaurantId=
func (h *CartController) Get(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}

	restID, err := strconv.ParseUint(c.Query("restaurantId"), 10, 64)
	if err != nil || restID == 0 {
		resp.Error(c, apperr.E(apperr.CodeInvalidInput, "restaurantId required"))
		return
	}

	cart, err := h.Svc.Get(id.UserID, uint(restID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	// no cart is a normal empty result
	resp.OK(c, cart)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.E(apperr.CodeInvalidInput, "Missing required fields"))
		return
	}
	if err := h.Svc.Add(id.UserID, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Item added to cart"})
}

// PUT /cart/items
func (h *CartController) UpdateQty(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}

	var body struct {
		CartItemID uint `json:"cartItemId" binding:"required"`
		Qty        *int `json:"qty" binding:"required"` // pointer so 0 still binds
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Error(c, apperr.E(apperr.CodeInvalidInput, "Missing required fields"))
		return
	}
	if err := h.Svc.SetItemQuantity(id.UserID, body.CartItemID, *body.Qty); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart updated"})
}

// DELETE /cart?restaurantId= (optional; absent clears every cart)
func (h *CartController) Clear(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}

	var restID *uint
	if raw := c.Query("restaurantId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || v == 0 {
			resp.Error(c, apperr.E(apperr.CodeInvalidInput, "Invalid restaurantId"))
			return
		}
		u := uint(v)
		restID = &u
	}

	if err := h.Svc.Clear(id.UserID, restID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart cleared"})
}
