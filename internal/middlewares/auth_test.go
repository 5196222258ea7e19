package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/campushub/campus-accounts/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := &models.Identity{ID: 42, Role: models.RoleFaculty}

	tests := []struct {
		name             string
		mockSetup        func(m *MockAuthenticator)
		expectedStatus   int
		expectNextCalled bool
		expectedBody     string
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
			expectedBody:     `{"message":"Access denied. No token provided."}`,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
			expectedBody:     `{"message":"Invalid token"}`,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return(identity, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockAuth)

			// Wrap a next handler to check the identity landed in context
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := models.IdentityFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, identity, got)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
