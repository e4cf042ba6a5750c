package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/entity"
)

// Claims is the signed session claim set proving an authenticated identity
// and its role for a bounded validity window.
type Claims struct {
	AccountID   uint   `json:"aid"`
	AccountType string `json:"typ"`
	TypeLocalID uint   `json:"tid"`
	jwt.RegisteredClaims
}

// Manager encapsulates session token generation and validation.
type Manager struct {
	secret []byte
	issuer string
	expiry time.Duration
}

// NewManager creates a new token manager.
func NewManager(secret, issuer string, expiry time.Duration) (*Manager, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if expiry <= 0 {
		expiry = time.Hour * 24 * 365
	}
	if strings.TrimSpace(issuer) == "" {
		issuer = "storefront"
	}
	return &Manager{
		secret: []byte(trimmed),
		issuer: issuer,
		expiry: expiry,
	}, nil
}

// Expiry returns the configured token validity window.
func (m *Manager) Expiry() time.Duration {
	if m == nil {
		return 0
	}
	return m.expiry
}

// IssueToken signs a token embedding the account id, its account type and the
// type-local id of the matching role record.
func (m *Manager) IssueToken(accountID uint, accountType entity.AccountType, typeLocalID uint) (string, time.Time, error) {
	if m == nil {
		return "", time.Time{}, errors.New("token manager is nil")
	}
	if accountID == 0 {
		return "", time.Time{}, errors.New("invalid account for token generation")
	}
	now := time.Now().UTC()
	expiry := now.Add(m.expiry)

	claims := Claims{
		AccountID:   accountID,
		AccountType: string(accountType),
		TypeLocalID: typeLocalID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", accountID),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiry, nil
}

// ParseToken validates the token and returns claims. Signature is checked
// before expiry, expiry before claim structure.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	if m == nil {
		return nil, errors.New("token manager is nil")
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if _, ok := entity.ParseAccountType(claims.AccountType); !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// VerifyFailureReason classifies a ParseToken error for log fields. All
// failure kinds collapse to "unauthenticated" at the call site.
func VerifyFailureReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
