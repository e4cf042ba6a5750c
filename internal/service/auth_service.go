package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"storefront/internal/auth"
	"storefront/internal/entity"
	"storefront/internal/model"
)

// Expected flow outcomes. Handlers map these to status codes; anything else
// reaching them is an internal fault and must stay undetailed to the client.
var (
	ErrValidation         = errors.New("invalid auth payload")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongAccountType   = errors.New("account type invalid")
	ErrAccountMissing     = errors.New("account no longer exists")
)

// Session is the result of a successful login: the signed token plus the
// opaque correlation id, both destined for cookies.
type Session struct {
	Token     string
	ExpiresAt time.Time
	SessionID string
}

// AuthService composes the hasher, the account store, the role registry and
// the token manager into the account-creation and login flows.
type AuthService struct {
	repo   model.Repository
	tokens *auth.Manager
}

// NewAuthService 创建认证服务
func NewAuthService(repo model.Repository, tokens *auth.Manager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates the identity row plus the requested role membership.
func (s *AuthService) Register(ctx context.Context, accountType entity.AccountType, email, password string) error {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return ErrValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	account := &entity.DbAccount{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateAccount(ctx, account, accountType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountExists
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// Login validates credentials and role membership in strict order: the
// password is verified before any role information is touched, so a
// wrong-role login for valid credentials stays distinguishable from a
// credential failure and role data is never evaluated for an
// unauthenticated caller.
func (s *AuthService) Login(ctx context.Context, accountType entity.AccountType, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, ErrValidation
	}

	account, err := s.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithField("email", email).Warn("login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if !auth.VerifyPassword(account.PasswordHash, password) {
		logrus.WithField("email", email).Warn("password verification failed")
		return nil, ErrInvalidCredentials
	}

	typeLocalID, err := s.repo.AccountRoleMembership(ctx, accountType, account.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithFields(logrus.Fields{
				"account_id":   account.ID,
				"account_type": accountType,
			}).Warn("account holds no membership in requested role table")
			return nil, ErrWrongAccountType
		}
		return nil, fmt.Errorf("resolve role membership: %w", err)
	}

	token, expiresAt, err := s.tokens.IssueToken(account.ID, accountType, typeLocalID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		SessionID: auth.NewSessionID(),
	}, nil
}

// ChangePassword rehashes and stores a new password for the authenticated
// account. ErrAccountMissing means the account row vanished underneath a
// still-valid token.
func (s *AuthService) ChangePassword(ctx context.Context, accountID uint, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return ErrValidation
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdateAccountPassword(ctx, accountID, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountMissing
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ListAccounts is the administrative read; the transport layer guards it.
func (s *AuthService) ListAccounts(ctx context.Context) ([]entity.AccountSummary, error) {
	summaries, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return summaries, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
