package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// UserIDKey is the context key for the ID of the user that owns the request scope.
const UserIDKey ContextKey = "user_id"

// UserScope returns a Gin middleware handler that parses the :user_id path parameter
// and stores it in the context. Requests with a malformed ID are rejected.
func UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("user_id")
		if raw == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "User ID is required",
				Code:  string(domainerror.ErrCodeInvalidUserID),
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid user ID format",
				Code:  string(domainerror.ErrCodeInvalidUserID),
			})
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
