package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderBridgeToken carries the shared secret of the command bridge
const HeaderBridgeToken = "X-Bridge-Token"

// BridgeToken rejects requests that do not present token, either in the
// X-Bridge-Token header, as a bearer token, or as the "token" query parameter
// (browsers cannot set headers on WebSocket upgrades). An empty token
// disables the check.
func BridgeToken(token string) gin.HandlerFunc {
	if token == "" {
		return func(c *gin.Context) { c.Next() }
	}
	want := []byte(token)

	return func(c *gin.Context) {
		got := c.GetHeader(HeaderBridgeToken)
		if got == "" {
			got = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if got == "" {
			got = c.Query("token")
		}

		if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid bridge token",
			})
			return
		}
		c.Next()
	}
}
