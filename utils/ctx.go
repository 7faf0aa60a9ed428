package utils

import (
	"github.com/gin-gonic/gin"
)

// Identity is the request-scoped authentication context the auth middleware
// builds from the verified token. Handlers read it once and pass explicit
// values down; nothing below the controllers touches the gin context.
type Identity struct {
	UserID uint
	Role   string
}

const identityKey = "identity"

func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	if !ok || id.UserID == 0 {
		return Identity{}, false
	}
	return id, true
}
