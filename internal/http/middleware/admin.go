package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DarkSword7/KodoMart/internal/apperr"
	"github.com/DarkSword7/KodoMart/internal/models"
)

// Admin must run after Auth. It rejects with 403 unless the attached
// identity carries the admin flag.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(UserKey)
		if !ok {
			abort(c, apperr.ErrNoToken)
			return
		}
		u := v.(*models.User)
		if !u.IsAdmin {
			abort(c, apperr.ErrAdminOnly)
			return
		}
		c.Next()
	}
}
