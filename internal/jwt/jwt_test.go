package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/campus-accounts/internal/models"
)

func TestJWT_GenerateAndAuthenticate(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, 42, models.RoleFaculty)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := j.Authenticate(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), identity.ID)
	assert.Equal(t, models.RoleFaculty, identity.Role)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, models.RoleStudent)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := j.Authenticate(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	issuer := New("secret-a", time.Minute)
	token, err := issuer.Generate(ctx, 7, models.RoleAdmin)
	assert.NoError(t, err)

	verifier := New("secret-b", time.Minute)
	identity, err := verifier.Authenticate(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWT_MissingSecret(t *testing.T) {
	j := New("", time.Minute)
	ctx := context.Background()

	_, err := j.Generate(ctx, 1, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrMissingSecret)

	identity, err := j.Authenticate(ctx, "whatever")
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.Nil(t, identity)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	identity, err := j.Authenticate(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWT_UnknownRoleRejected(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, 3, models.Role("janitor"))
	assert.NoError(t, err)

	identity, err := j.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, identity)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"MissingToken", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
