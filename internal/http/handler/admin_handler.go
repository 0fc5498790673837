package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DarkSword7/KodoMart/internal/apperr"
	"github.com/DarkSword7/KodoMart/internal/service"
)

type AdminHandler struct{ users service.UserService }

func NewAdminHandler(u service.UserService) *AdminHandler { return &AdminHandler{users: u} }

func (h *AdminHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) Get(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *AdminHandler) Update(c *gin.Context) {
	var in updateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.ErrMissingFields)
		return
	}
	u, err := h.users.Update(c.Request.Context(), c.Param("id"), service.UserPatch{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, publicProfile(u))
}

func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User removed."})
}
