package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/santiagotraba/task-manager-backend/internal/app/token"
	"github.com/santiagotraba/task-manager-backend/pkg/apierrors"
)

const userIDKey = "userId"

// AuthMiddleware rejects requests without a verifiable bearer token and
// attaches the token's user id to the context for the handlers behind it.
// An expired token gets its own message key so clients can re-login instead
// of treating the token as tampered with.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgAccessDenied, lang),
			)
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			msgKey := apierrors.MsgInvalidToken
			if errors.Is(err, token.ErrExpired) {
				msgKey = apierrors.MsgTokenExpired
			}
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, msgKey, lang),
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	if value, exists := c.Get(userIDKey); exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}
