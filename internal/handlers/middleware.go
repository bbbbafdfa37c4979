package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authScheme is the expected Authorization scheme: "Token <key>".
const authScheme = "Token"

const requestIDHeader = "X-Request-Id"

// requestIDMiddleware tags every request with an ID for log correlation.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("requestId", id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// userIDMiddleware resolves the bearer key to a user ID and stores it in
// the Gin context. Requests without a valid key never reach the handlers.
func (h *Handler) userIDMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != authScheme {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userID, err := h.services.Authenticate(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid token",
		})
		return
	}

	// store in Gin context
	c.Set("userId", userID)
	c.Next()
}
