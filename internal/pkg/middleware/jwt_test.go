package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	jwtpkg "github.com/fleetline/dispatch/internal/pkg/jwt"
	"github.com/fleetline/dispatch/internal/pkg/models"
)

type stubResolver struct {
	caller *models.CallerIdentity
}

func (s *stubResolver) ResolveCaller(ctx context.Context, userID string) (*models.CallerIdentity, error) {
	if s.caller == nil || s.caller.UserID != userID {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	return s.caller, nil
}

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "dispatch-test",
	}
}

func runAuthMiddleware(t *testing.T, authHeader string, resolver CallerResolver) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := JWTAuthMiddleware(testJWTConfig(), resolver)
	handler := mw(func(c echo.Context) error {
		caller, ok := CallerFromContext(c)
		assert.True(t, ok)
		return c.JSON(http.StatusOK, caller)
	})

	return rec, handler(c)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec, err := runAuthMiddleware(t, "", &stubResolver{})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_BadFormat(t *testing.T) {
	rec, err := runAuthMiddleware(t, "Basic abc123", &stubResolver{})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	rec, err := runAuthMiddleware(t, "Bearer garbage", &stubResolver{})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_UnknownUser(t *testing.T) {
	// A syntactically valid token whose user no longer exists must not
	// authenticate.
	token, _, err := jwtpkg.GenerateToken("999", models.RoleDriver, testJWTConfig())
	assert.NoError(t, err)

	rec, err := runAuthMiddleware(t, "Bearer "+token, &stubResolver{})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_Success(t *testing.T) {
	caller := &models.CallerIdentity{
		UserID: "2",
		Name:   "John Driver",
		Email:  "driver@demo.com",
		Role:   models.RoleDriver,
	}
	token, _, err := jwtpkg.GenerateToken("2", models.RoleDriver, testJWTConfig())
	assert.NoError(t, err)

	rec, err := runAuthMiddleware(t, "Bearer "+token, &stubResolver{caller: caller})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.CallerIdentity
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "2", got.UserID)
	assert.Equal(t, models.RoleDriver, got.Role)
}

func TestAdminOnly(t *testing.T) {
	e := echo.New()

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	tests := []struct {
		name     string
		caller   *models.CallerIdentity
		wantCode int
	}{
		{name: "admin passes", caller: &models.CallerIdentity{UserID: "1", Role: models.RoleAdmin}, wantCode: http.StatusOK},
		{name: "driver forbidden", caller: &models.CallerIdentity{UserID: "2", Role: models.RoleDriver}, wantCode: http.StatusForbidden},
		{name: "unauthenticated", caller: nil, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/activity", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.caller != nil {
				c.Set("caller", tt.caller)
			}

			err := AdminOnly()(next)(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
