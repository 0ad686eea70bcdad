package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager(testSecret, 15, 60)

	t.Run("AccessToken", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(10, "stu@uni.edu", "STUDENT")
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), claims.UserID)
		assert.Equal(t, "stu@uni.edu", claims.Email)
		assert.Equal(t, TokenTypeAccess, claims.Type)
		assert.Equal(t, "STUDENT", claims.Role)
	})

	t.Run("RefreshToken", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken(10, "stu@uni.edu")
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
		assert.Empty(t, claims.Role)
	})
}

func TestTokenManager_Validate(t *testing.T) {
	manager := NewTokenManager(testSecret, 15, 60)

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("another-secret-that-is-also-long-enough", 15, 60)
		token, err := other.GenerateAccessToken(10, "stu@uni.edu", "STUDENT")
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewTokenManager(testSecret, -1, -1)
		token, err := expired.GenerateAccessToken(10, "stu@uni.edu", "STUDENT")
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
