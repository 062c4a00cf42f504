package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")

	tok, err := issuer.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	uid, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-42", uid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")

	for _, tok := range []string{"", "   ", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := NewJWTIssuer("secret-a").Issue("user-1")
	require.NoError(t, err)

	_, err = NewJWTIssuer("secret-b").Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := issued

	issuer := NewJWTIssuerWithClock("test-secret", time.Hour, func() time.Time { return clock })

	tok, err := issuer.Issue("user-1")
	require.NoError(t, err)

	clock = issued.Add(30 * time.Minute)
	uid, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)

	clock = issued.Add(2 * time.Hour)
	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRequiresUserID(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")

	_, err := issuer.Issue("  ")
	assert.Error(t, err)
}

func TestIssueRequiresSecret(t *testing.T) {
	issuer := NewJWTIssuer("")

	_, err := issuer.Issue("user-1")
	assert.Error(t, err)
}
