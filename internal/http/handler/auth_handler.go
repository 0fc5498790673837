package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DarkSword7/KodoMart/internal/apperr"
	"github.com/DarkSword7/KodoMart/internal/http/middleware"
	"github.com/DarkSword7/KodoMart/internal/models"
	"github.com/DarkSword7/KodoMart/internal/service"
	"github.com/DarkSword7/KodoMart/internal/token"
)

type AuthHandler struct {
	auth         service.AuthService
	users        service.UserService
	cookieSecure bool
}

func NewAuthHandler(a service.AuthService, u service.UserService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: a, users: u, cookieSecure: cookieSecure}
}

type registerIn struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateIn struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.ErrMissingFields)
		return
	}
	u, tok, err := h.auth.Register(c.Request.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.setCookie(c, tok)
	c.JSON(http.StatusOK, publicProfile(u))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.ErrMissingFields)
		return
	}
	u, tok, err := h.auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.setCookie(c, tok)
	c.JSON(http.StatusOK, publicProfile(u))
}

// Logout clears the cookie only; an already-issued token stays valid until
// expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	u := c.MustGet(middleware.UserKey).(*models.User)
	// resolved by the gate already; re-read in case the record vanished since
	cur, err := h.users.Get(c.Request.Context(), u.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"_id": cur.ID, "username": cur.Username, "email": cur.Email})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	u := c.MustGet(middleware.UserKey).(*models.User)
	var in updateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.ErrMissingFields)
		return
	}
	upd, err := h.users.Update(c.Request.Context(), u.ID, service.UserPatch{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, publicProfile(upd))
}

func (h *AuthHandler) setCookie(c *gin.Context, tok string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, tok, int(token.TTL.Seconds()), "/", "", h.cookieSecure, true)
}

func publicProfile(u *models.User) gin.H {
	return gin.H{"_id": u.ID, "username": u.Username, "email": u.Email, "isAdmin": u.IsAdmin}
}
