package usecase

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/namanpunn/logikxmind-uat/internal/config"
	"github.com/namanpunn/logikxmind-uat/internal/models"
)

const adminRole = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongRole          = errors.New("token does not carry the admin role")
)

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthUsecase issues and verifies admin bearer tokens. Credentials come from
// the environment: a username plus a bcrypt hash, never plaintext literals.
type AuthUsecase struct {
	username     string
	passwordHash string
	jwtSecret    []byte
	tokenTTL     time.Duration

	now func() time.Time
}

func NewAuthUsecase(cfg *config.Config) *AuthUsecase {
	return &AuthUsecase{
		username:     cfg.Auth.AdminUsername,
		passwordHash: cfg.Auth.AdminPasswordHash,
		jwtSecret:    []byte(cfg.Auth.JWTSecret),
		tokenTTL:     time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
		now:          time.Now,
	}
}

func (uc *AuthUsecase) Login(username, password string) (*models.AdminLoginResponse, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(uc.passwordHash), []byte(password))
	if !usernameOK || passwordErr != nil {
		return nil, ErrInvalidCredentials
	}

	now := uc.now()
	claims := AdminClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &models.AdminLoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	}, nil
}

// VerifyAdmin parses the token and checks signature, expiry and role.
// Signature and expiry failures return ErrInvalidToken; a valid token with
// the wrong role returns ErrWrongRole so callers can answer 403 instead of
// 401.
func (uc *AuthUsecase) VerifyAdmin(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return uc.jwtSecret, nil
	}, jwt.WithTimeFunc(uc.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Role != adminRole {
		return nil, ErrWrongRole
	}
	return claims, nil
}
