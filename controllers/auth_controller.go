package controllers

import (
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/apperr"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/resp"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/repository"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/utils"

	"github.com/gin-gonic/gin"
)

// AuthController only echoes the verified identity; credentials and sessions
// live with the identity provider, not here.
type AuthController struct{ Users *repository.UserRepository }

func NewAuthController(ur *repository.UserRepository) *AuthController {
	return &AuthController{Users: ur}
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	id, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}

	u, err := h.Users.GetByID(id.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if u == nil {
		resp.Error(c, apperr.E(apperr.CodeUnauthorized, "Unauthorized"))
		return
	}
	resp.OK(c, gin.H{
		"id": u.ID, "name": u.Name, "email": u.Email,
		"phone": u.Phone, "address": u.Address, "role": u.Role,
	})
}
