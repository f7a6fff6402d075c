package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/namanpunn/logikxmind-uat/internal/config"
	"github.com/namanpunn/logikxmind-uat/internal/models"
	"github.com/namanpunn/logikxmind-uat/internal/repo/llm"
	pkgmdw "github.com/namanpunn/logikxmind-uat/internal/server/middleware"
	"github.com/namanpunn/logikxmind-uat/internal/usecase"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()
	return e
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found maps to 404",
			err:        models.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "not found",
		},
		{
			name:       "empty model reply maps to 500 with detail",
			err:        llm.ErrEmptyResponse,
			wantStatus: http.StatusInternalServerError,
			wantBody:   llm.ErrEmptyResponse.Error(),
		},
		{
			name:       "missing json block keeps stage detail when wrapped",
			err:        fmt.Errorf("roadmap creation stage: %w", llm.ErrNoJSONFound),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "roadmap creation stage",
		},
		{
			name:       "malformed reply maps to 500",
			err:        fmt.Errorf("decode mentor reply: %w", llm.ErrMalformedReply),
			wantStatus: http.StatusInternalServerError,
			wantBody:   llm.ErrMalformedReply.Error(),
		},
		{
			name:       "unknown errors stay opaque",
			err:        fmt.Errorf("mongo exploded: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/boom", func(c echo.Context) error {
				return tt.err
			})

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func newTestAuthUsecase(t *testing.T) *usecase.AuthUsecase {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return usecase.NewAuthUsecase(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-signing-key",
			AdminUsername:     "admin",
			AdminPasswordHash: string(hash),
			TokenTTLHours:     8,
		},
	})
}

func TestAdminLoginEndpoint(t *testing.T) {
	e := newTestEcho()
	auth := NewAuthController(newTestAuthUsecase(t))
	e.POST("/admin/login", auth.Login)

	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		body := `{"username":"admin","password":"s3cret"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
		assert.Contains(t, rec.Body.String(), "access_token")
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		body := `{"username":"admin","password":"guess"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		body := `{"username":"admin"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminAuthMiddleware(t *testing.T) {
	uc := newTestAuthUsecase(t)
	e := newTestEcho()
	e.DELETE("/complaint/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, pkgmdw.AdminAuth(uc))

	t.Run("missing header returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/complaint/abc", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/complaint/abc", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/complaint/abc", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid admin token passes", func(t *testing.T) {
		resp, err := uc.Login("admin", "s3cret")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/complaint/abc", nil)
		req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

type fakeChatUsecase struct {
	resp *models.ChatResponse
	err  error
}

func (f *fakeChatUsecase) ProcessChat(_ context.Context, _ models.ChatRequest) (*models.ChatResponse, error) {
	return f.resp, f.err
}

func TestChatEndpoint(t *testing.T) {
	t.Run("valid request returns the mentor reply", func(t *testing.T) {
		e := newTestEcho()
		handler := NewController(&fakeChatUsecase{resp: &models.ChatResponse{
			UniqueID: "abc123",
			Response: &models.MentorReply{Response: "keep going"},
		}})
		e.POST("/chat", handler.Chat)

		body := `{"unique_id":"abc123","message":"hello"}`
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "keep going")
		assert.Contains(t, rec.Body.String(), `"requires_action":false`)
	})

	t.Run("missing message returns 400", func(t *testing.T) {
		e := newTestEcho()
		handler := NewController(&fakeChatUsecase{})
		e.POST("/chat", handler.Chat)

		body := `{"unique_id":"abc123"}`
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
