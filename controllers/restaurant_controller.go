package controllers

import (
	"strconv"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/apperr"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/resp"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.CatalogService }

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	out, err := h.Svc.ListRestaurants()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id/menu
func (h *RestaurantController) Menu(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || restID == 0 {
		resp.Error(c, apperr.E(apperr.CodeInvalidInput, "restaurant_id required"))
		return
	}

	out, err := h.Svc.ListMenu(uint(restID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
