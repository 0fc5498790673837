package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DarkSword7/KodoMart/internal/apperr"
)

// TTL matches the cookie lifetime set on login/registration.
const TTL = 30 * 24 * time.Hour

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a server-held HS256 secret.
// Tokens are stateless: there is no revocation list, logout only clears the
// client cookie and an issued token stays valid until expiry.
type Manager struct {
	secret []byte
}

func NewManager(secret []byte) *Manager { return &Manager{secret: secret} }

func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify returns the user id carried by the token. Structural, signature and
// expiry failures all collapse to ErrInvalidToken; callers must not expose
// the distinction.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid || claims.UserID == "" {
		return "", apperr.ErrInvalidToken
	}
	return claims.UserID, nil
}
