package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server/middleware"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "Missing or invalid token", "")
		return
	}

	response := gin.H{
		"userId": userID,
	}
	if email := middleware.UserEmailFromContext(c); email != "" {
		response["email"] = email
	}
	if name := middleware.UserNameFromContext(c); name != "" {
		response["name"] = name
	}
	respond.OK(c, response)
}
