package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/namanpunn/logikxmind-uat/internal/config"
)

func newTestAuthUsecase(t *testing.T) *AuthUsecase {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthUsecase(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-signing-key",
			AdminUsername:     "admin",
			AdminPasswordHash: string(hash),
			TokenTTLHours:     8,
		},
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "admin", password: "s3cret"},
		{name: "wrong password", username: "admin", password: "guess", wantErr: ErrInvalidCredentials},
		{name: "wrong username", username: "root", password: "s3cret", wantErr: ErrInvalidCredentials},
		{name: "both wrong", username: "root", password: "guess", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestAuthUsecase(t)
			resp, err := uc.Login(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.AccessToken)
			assert.Equal(t, "bearer", resp.TokenType)
		})
	}
}

func TestVerifyAdmin(t *testing.T) {
	t.Parallel()

	t.Run("fresh token verifies", func(t *testing.T) {
		uc := newTestAuthUsecase(t)
		resp, err := uc.Login("admin", "s3cret")
		require.NoError(t, err)

		claims, err := uc.VerifyAdmin(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "admin", claims.Subject)
	})

	t.Run("token expires after eight hours", func(t *testing.T) {
		uc := newTestAuthUsecase(t)
		issued := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return issued }

		resp, err := uc.Login("admin", "s3cret")
		require.NoError(t, err)

		uc.now = func() time.Time { return issued.Add(8*time.Hour - time.Minute) }
		_, err = uc.VerifyAdmin(resp.AccessToken)
		assert.NoError(t, err)

		uc.now = func() time.Time { return issued.Add(8*time.Hour + time.Minute) }
		_, err = uc.VerifyAdmin(resp.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		uc := newTestAuthUsecase(t)
		_, err := uc.VerifyAdmin("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		uc := newTestAuthUsecase(t)
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := other.SignedString([]byte("some-other-key"))
		require.NoError(t, err)

		_, err = uc.VerifyAdmin(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("valid token without the admin role is rejected", func(t *testing.T) {
		uc := newTestAuthUsecase(t)
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
			Role: "viewer",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := tok.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = uc.VerifyAdmin(signed)
		assert.ErrorIs(t, err, ErrWrongRole)
	})
}
