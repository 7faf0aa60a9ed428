package resp

import (
	"log"
	"net/http"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

// Error maps a taxonomy error onto its HTTP status and emits the envelope.
// Anything outside the taxonomy is a 500 with a generic body; the cause goes
// to the log only.
func Error(c *gin.Context, err error) {
	ae := apperr.As(err)
	if ae == nil {
		log.Printf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "code": "INTERNAL", "error": "internal error"})
		return
	}
	if ae.Err != nil {
		log.Printf("%s: %v", ae.Code, ae.Err)
	}
	c.JSON(statusOf(ae.Code), gin.H{"ok": false, "code": ae.Code, "error": ae.Msg})
}

func statusOf(code apperr.Code) int {
	switch code {
	case apperr.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperr.CodeForbidden:
		return http.StatusForbidden
	case apperr.CodeInvalidInput, apperr.CodeInvalidState:
		return http.StatusBadRequest
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
