package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"servicebook/internal/handler/httperr"
	"servicebook/internal/pkg/cookie"
	"servicebook/internal/pkg/errs"
	"servicebook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxOwnerIDKey = "owner_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing access token"), "Access token required", nil)
			return
		}

		ownerID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxOwnerIDKey, ownerID)
		c.Next()
	}
}

func GetOwnerID(c *gin.Context) (uuid.UUID, bool) {
	ownerID, exists := c.Get(ctxOwnerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := ownerID.(uuid.UUID)
	return id, ok
}
