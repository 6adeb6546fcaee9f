package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/elesfuerzo/pos-api/internal/domain/enum"
)

// GetUID extracts the operator UID from the Gin context
func GetUID(c *gin.Context) string {
	return c.GetString("user_uid")
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	return c.GetString("user_email")
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) enum.UserRole {
	return enum.UserRole(c.GetString("user_role"))
}
