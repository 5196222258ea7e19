package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campushub/campus-accounts/internal/models"
)

var (
	// ErrMissingSecret is returned when the process-wide signing secret is
	// not configured; every issue and verify operation fails with it.
	ErrMissingSecret = errors.New("jwt signing secret is not configured")

	// ErrInvalidToken is returned for malformed payloads, bad signatures,
	// unknown roles, and expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carries the account id and role alongside the registered claims.
type Claims struct {
	UserID int64       `json:"id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWT issues and verifies bearer tokens signed with a process-wide secret.
// Rotating the secret invalidates all outstanding tokens; there is no
// server-side revocation.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token lifetime
}

// New creates a new JWT instance.
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token embedding the account id and role.
func (j *JWT) Generate(ctx context.Context, id int64, role models.Role) (string, error) {
	if j.SecretKey == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := Claims{
		UserID: id,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Authenticate verifies the token string and returns the embedded identity.
func (j *JWT) Authenticate(ctx context.Context, tokenString string) (*models.Identity, error) {
	if j.SecretKey == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return &models.Identity{ID: claims.UserID, Role: claims.Role}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization
// header, expecting the "Bearer <token>" shape.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
