package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-planner/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{
		UserID:           userID,
		RegisteredClaims: gojwt.RegisteredClaims{ID: "jti-1"},
	}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener, rc *MockRevocationChecker)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener, rc *MockRevocationChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener, rc *MockRevocationChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "RevokedToken",
			mockSetup: func(m *MockTokener, rc *MockRevocationChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("oldtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "oldtoken").
					Return(claims, nil)
				rc.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(true, nil)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "RevocationStoreDown",
			mockSetup: func(m *MockTokener, rc *MockRevocationChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claims, nil)
				rc.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, errors.New("redis down"))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener, rc *MockRevocationChecker) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claims, nil)
				rc.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockRevoked := NewMockRevocationChecker(ctrl)
			tt.mockSetup(mockTokener, mockRevoked)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := UserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, got)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockRevoked)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if !tt.expectNextCalled {
				assert.Contains(t, rr.Body.String(), `"message"`)
			}
		})
	}
}

func TestAuthMiddleware_WithoutRevocationChecker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)
	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: uuid.New()}, nil)

	nextCalled := false
	handler := AuthMiddleware(mockTokener, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)

	_, ok = UserIDFromContext(WithClaims(req.Context(), &jwt.Claims{}))
	assert.False(t, ok)
}
