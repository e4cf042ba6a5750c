package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/entity"
	"storefront/internal/service"
)

// accountTypeParam resolves the :account_type route segment against the
// closed enum.
func accountTypeParam(c *gin.Context) (entity.AccountType, bool) {
	accountType, ok := entity.ParseAccountType(c.Param("account_type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown account type"})
		return "", false
	}
	return accountType, true
}

func (h *HTTPHandler) Register(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "account repository not available"})
		return
	}

	accountType, ok := accountTypeParam(c)
	if !ok {
		return
	}

	var req entity.AuthCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration payload"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.authService.Register(ctx, accountType, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		case errors.Is(err, service.ErrAccountExists):
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
		default:
			logrus.WithError(err).Error("failed to register account")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register account"})
		}
		return
	}

	c.Status(http.StatusCreated)
}

func (h *HTTPHandler) Login(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "account repository not available"})
		return
	}

	accountType, ok := accountTypeParam(c)
	if !ok {
		return
	}

	var req entity.AuthCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid login payload"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	session, err := h.authService.Login(ctx, accountType, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		case errors.Is(err, service.ErrWrongAccountType):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account type invalid"})
		default:
			logrus.WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		}
		return
	}

	h.cookies.SetAuthCookies(c, session.Token, h.tokenManager.Expiry(), session.SessionID)
	c.JSON(http.StatusOK, entity.LoginResponse{Success: true})
}

func (h *HTTPHandler) Logout(c *gin.Context) {
	h.cookies.ClearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *HTTPHandler) ChangePassword(c *gin.Context) {
	identity := CurrentIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req entity.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid password payload"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.authService.ChangePassword(ctx, identity.AccountID, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "new password is required"})
		case errors.Is(err, service.ErrAccountMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": "account no longer exists"})
		default:
			logrus.WithError(err).WithField("account_id", identity.AccountID).Error("failed to change password")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
