package handlers

import (
	"newsroom/models"

	"github.com/gin-gonic/gin"
)

// actorFromContext rebuilds the acting user from the claims the auth
// middleware stored. Enough for every gate check without a DB round
// trip per request.
func actorFromContext(c *gin.Context) (*models.User, bool) {
	userID, ok := c.Get("user_id")
	if !ok {
		return nil, false
	}
	username, ok := c.Get("username")
	if !ok {
		return nil, false
	}
	role, ok := c.Get("role")
	if !ok {
		return nil, false
	}

	return &models.User{
		ID:       userID.(uint),
		Username: username.(string),
		Role:     role.(models.Role),
	}, true
}
