package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myplanner/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := CreateAccessToken("u1", "user")
	require.NoError(t, err)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestParseAccessTokenRejects(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	sign := func(claims *model.AccessClaims, secret string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	cases := map[string]string{
		"wrong secret": sign(&model.AccessClaims{UserID: "u1", RegisteredClaims: valid}, "other"),
		"expired": sign(&model.AccessClaims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}}, "test-secret"),
		"wrong issuer": sign(&model.AccessClaims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}, "test-secret"),
		"missing user": sign(&model.AccessClaims{RegisteredClaims: valid}, "test-secret"),
		"garbage":      "not-a-token",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAccessToken(token)
			assert.Error(t, err)
		})
	}
}
