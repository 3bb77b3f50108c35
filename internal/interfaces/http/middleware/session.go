package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionKey is the context key holding the guest session id
const SessionKey = "session_id"

// GuestSession resolves the guest session id from the X-Session-ID header,
// minting a fresh one when the client has none yet. The id is echoed back
// so the client can persist it.
func GuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set(SessionKey, sessionID)
		c.Header("X-Session-ID", sessionID)

		c.Next()
	}
}
