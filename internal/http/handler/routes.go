package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/DarkSword7/KodoMart/internal/http/middleware"
	"github.com/DarkSword7/KodoMart/internal/service"
)

// RegisterRoutes wires the /api/users surface. The same wiring is used by the
// server binary and the handler tests.
func RegisterRoutes(r *gin.Engine, authSvc service.AuthService, ah *AuthHandler, adh *AdminHandler) {
	auth := middleware.Auth(authSvc)
	admin := middleware.Admin()

	api := r.Group("/api/users")
	api.POST("", ah.Register)
	api.POST("/auth", ah.Login)
	api.POST("/logout", auth, ah.Logout)
	api.GET("/profile", auth, ah.Profile)
	api.PUT("/profile", auth, ah.UpdateProfile)

	api.GET("", auth, admin, adh.List)
	api.GET("/:id", auth, admin, adh.Get)
	api.PUT("/:id", auth, admin, adh.Update)
	api.DELETE("/:id", auth, admin, adh.Delete)
}
