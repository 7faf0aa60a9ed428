package controllers

import (
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/resp"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/repository"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ Users *repository.UserRepository }

func NewAdminController(ur *repository.UserRepository) *AdminController {
	return &AdminController{Users: ur}
}

// GET /admin/users
func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.Users.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, users)
}
