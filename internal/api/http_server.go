package api

import (
	"time"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/model"
	"storefront/internal/service"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg          config.Config
	repo         model.Repository
	tokenManager *auth.Manager
	cookies      CookiePolicy

	// 服务层
	authService *service.AuthService
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	tokenManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	handler := &HTTPHandler{
		cfg:          cfg,
		repo:         repo,
		tokenManager: tokenManager,
		cookies:      NewCookiePolicy(cfg.CookieDomain, cfg.IsProduction()),
		authService:  service.NewAuthService(repo, tokenManager),
	}

	return handler, nil
}
