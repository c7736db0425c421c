package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/camai-video/gateway/internal/domain"
)

// MockSessionRepo is a mock implementation of SessionRepository
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func newSessionTestApp(repo SessionRepository) *fiber.App {
	app := fiber.New()

	// Convert AppError the way the real router's error handler does
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			if appErr, ok := err.(*domain.AppError); ok {
				return c.Status(appErr.StatusCode).JSON(appErr)
			}
			return c.Status(500).SendString(err.Error())
		}
		return nil
	})

	app.Use(Session("camai_session", repo))

	app.Get("/test", func(c *fiber.Ctx) error {
		principal, err := GetPrincipal(c)
		if err != nil {
			return err
		}
		return c.SendString(principal.OrganizationID.String())
	})

	return app
}

func TestSession(t *testing.T) {
	validToken := "session-token-12345"
	validHash := hashSessionToken(validToken)
	userID := uuid.New()
	orgID := uuid.New()

	tests := []struct {
		name           string
		cookie         string
		setupMock      func(*MockSessionRepo)
		expectedStatus int
		wantBody       string
	}{
		{
			name:   "valid session resolves principal",
			cookie: validToken,
			setupMock: func(m *MockSessionRepo) {
				m.On("GetByTokenHash", mock.Anything, validHash).Return(&domain.Session{
					ID:             uuid.New(),
					UserID:         userID,
					OrganizationID: orgID,
					TokenHash:      validHash,
					ExpiresAt:      time.Now().Add(time.Hour),
				}, nil)
			},
			expectedStatus: 200,
			wantBody:       orgID.String(),
		},
		{
			name:           "missing cookie",
			cookie:         "",
			setupMock:      func(m *MockSessionRepo) {},
			expectedStatus: 401,
		},
		{
			name:   "unknown token",
			cookie: "bogus-token",
			setupMock: func(m *MockSessionRepo) {
				m.On("GetByTokenHash", mock.Anything, hashSessionToken("bogus-token")).
					Return(nil, domain.ErrSessionNotFound)
			},
			expectedStatus: 401,
		},
		{
			name:   "expired session",
			cookie: validToken,
			setupMock: func(m *MockSessionRepo) {
				m.On("GetByTokenHash", mock.Anything, validHash).Return(&domain.Session{
					ID:             uuid.New(),
					UserID:         userID,
					OrganizationID: orgID,
					TokenHash:      validHash,
					ExpiresAt:      time.Now().Add(-time.Minute),
				}, nil)
			},
			expectedStatus: 401,
		},
		{
			name:   "store failure looks like missing session",
			cookie: validToken,
			setupMock: func(m *MockSessionRepo) {
				m.On("GetByTokenHash", mock.Anything, validHash).
					Return(nil, assert.AnError)
			},
			expectedStatus: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockSessionRepo{}
			tt.setupMock(mockRepo)

			app := newSessionTestApp(mockRepo)

			req := httptest.NewRequest("GET", "/test", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "camai_session", Value: tt.cookie})
			}

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.wantBody, string(body))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetPrincipal_MissingLocal(t *testing.T) {
	app := fiber.New()
	app.Get("/test", func(c *fiber.Ctx) error {
		_, err := GetPrincipal(c)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		return c.SendString("checked")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
