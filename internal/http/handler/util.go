package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/DarkSword7/KodoMart/internal/apperr"
)

func fail(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}
