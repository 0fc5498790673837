package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DarkSword7/KodoMart/internal/apperr"
	"github.com/DarkSword7/KodoMart/internal/service"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// UserKey is the gin context key holding the authenticated *models.User.
const UserKey = "user"

// Auth rejects the request with 401 unless the session cookie verifies and
// still resolves to an account. The resolved user (hash excluded) is attached
// to the context; no store access happens past a failed gate.
func Auth(svc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(CookieName)
		if err != nil {
			abort(c, apperr.ErrNoToken)
			return
		}
		u, err := svc.CurrentUser(c.Request.Context(), tok)
		if err != nil {
			abort(c, err)
			return
		}
		c.Set(UserKey, u)
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}
