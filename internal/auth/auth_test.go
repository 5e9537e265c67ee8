package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/skillbit-be/internal/models"
)

func TestBcryptHashAndVerify(t *testing.T) {
	h := Bcrypt{Cost: bcrypt.MinCost}

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, h.Verify("correct horse", hash))
	assert.False(t, h.Verify("wrong horse", hash))
	assert.False(t, h.Verify("correct horse", "not-a-bcrypt-hash"))

	again, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func parseToken(t *testing.T, raw, secret string) (*jwt.Token, error) {
	t.Helper()
	return jwt.Parse(raw, func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer("skillbit-api"),
	)
}

func TestGenerateSignsUserClaims(t *testing.T) {
	tm := NewTokenManager("secret", "skillbit-api", time.Hour)
	user := models.User{Email: "ada@example.com", Role: models.JobSeeker, Name: "Ada"}

	raw, err := tm.Generate(user)
	require.NoError(t, err)

	token, err := parseToken(t, raw, "secret")
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", sub)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, models.JobSeeker, claims["role"])

	_, err = parseToken(t, raw, "other")
	assert.Error(t, err)
}

func TestGenerateSetsExpiry(t *testing.T) {
	tm := NewTokenManager("secret", "skillbit-api", time.Minute)
	raw, err := tm.Generate(models.User{Email: "ada@example.com"})
	require.NoError(t, err)

	token, err := parseToken(t, raw, "secret")
	require.NoError(t, err)
	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp.Time, 5*time.Second)
}
