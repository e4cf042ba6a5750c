package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/auth"
	"storefront/internal/entity"
)

const (
	currentIdentityContextKey = "current-identity"
)

// RequestIdentity 存储请求上下文中的认证身份信息
type RequestIdentity struct {
	AccountID   uint
	AccountType entity.AccountType
	TypeLocalID uint
}

// IsAdmin 判断身份是否具有管理员权限
func (i *RequestIdentity) IsAdmin() bool {
	if i == nil {
		return false
	}
	return i.AccountType == entity.AccountTypeAdmin
}

// Authenticate 会话认证中间件。Verifies the token cookie (or bearer
// fallback) and attaches the identity to the context. Identity is exactly
// the verified claims; the account row is not re-read per request. On any
// failure the context is simply left unauthenticated and downstream guards
// decide the response.
func (h *HTTPHandler) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := ReadToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := h.tokenManager.ParseToken(tokenString)
		if err != nil {
			logrus.WithField("reason", auth.VerifyFailureReason(err)).Warn("session token rejected")
			c.Next()
			return
		}

		accountType, ok := entity.ParseAccountType(claims.AccountType)
		if !ok {
			logrus.WithField("account_type", claims.AccountType).Warn("token carries unknown account type")
			c.Next()
			return
		}

		c.Set(currentIdentityContextKey, &RequestIdentity{
			AccountID:   claims.AccountID,
			AccountType: accountType,
			TypeLocalID: claims.TypeLocalID,
		})
		c.Next()
	}
}

// RequireAuth 认证守卫中间件
func (h *HTTPHandler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "authentication required",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin 管理员权限守卫中间件
func (h *HTTPHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil || !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeForbidden,
				Message: "admin privileges required",
			})
			return
		}
		c.Next()
	}
}

// CurrentIdentity 从上下文获取当前认证身份
func CurrentIdentity(c *gin.Context) *RequestIdentity {
	value, exists := c.Get(currentIdentityContextKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*RequestIdentity)
	if !ok {
		return nil
	}
	return identity
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
