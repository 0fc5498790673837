package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/DarkSword7/KodoMart/internal/apperr"
)

func TestIssueVerify(t *testing.T) {
	m := NewManager([]byte("test-secret"))

	tok, err := m.Issue("64b0c8f2a1b2c3d4e5f60718")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(tok, "."))

	uid, err := m.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "64b0c8f2a1b2c3d4e5f60718", uid)
}

func TestVerifyCorruptedSignature(t *testing.T) {
	m := NewManager([]byte("test-secret"))
	tok, err := m.Issue("64b0c8f2a1b2c3d4e5f60718")
	require.NoError(t, err)

	corrupted := tok[:len(tok)-2] + "xx"
	_, err = m.Verify(corrupted)
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	m := NewManager([]byte("test-secret"))
	other := NewManager([]byte("other-secret"))
	tok, err := other.Issue("64b0c8f2a1b2c3d4e5f60718")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager([]byte("test-secret"))

	claims := &Claims{
		UserID: "64b0c8f2a1b2c3d4e5f60718",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	require.NoError(t, err)

	_, err = m.Verify(expired)
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewManager([]byte("test-secret"))
	for _, tok := range []string{"", "not.a.jwt", "invalid"} {
		_, err := m.Verify(tok)
		require.ErrorIs(t, err, apperr.ErrInvalidToken)
	}
}
