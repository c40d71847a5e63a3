package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gowheels/internal/entity"
	"gowheels/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWT() *utils.JWTManager {
	return &utils.JWTManager{
		Secret:          []byte("middleware-test-secret"),
		Issuer:          "gowheels-test",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, authorization string) (int, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	if err != nil {
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		return httpErr.Code, c
	}
	return rec.Code, c
}

func TestRequireAuth_ValidToken(t *testing.T) {
	jwt := testJWT()
	userID := uuid.New()
	token, _, err := jwt.IssueAccessToken(userID.String(), "user")
	require.NoError(t, err)

	code, c := runMiddleware(t, AuthMiddleware{JWT: jwt}.RequireAuth, "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)

	gotID, ok := UserIDFromContext(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
	role, ok := RoleFromContext(c)
	require.True(t, ok)
	assert.Equal(t, "user", role)
}

func TestRequireAuth_Rejections(t *testing.T) {
	jwt := testJWT()
	mw := AuthMiddleware{JWT: jwt}.RequireAuth

	code, _ := runMiddleware(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = runMiddleware(t, mw, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = runMiddleware(t, mw, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, code)

	other := testJWT()
	other.Secret = []byte("another-secret")
	token, _, err := other.IssueAccessToken(uuid.NewString(), "user")
	require.NoError(t, err)
	code, _ = runMiddleware(t, mw, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	jwt := testJWT()
	mw := AuthMiddleware{JWT: jwt}.OptionalAuth

	code, c := runMiddleware(t, mw, "")
	assert.Equal(t, http.StatusOK, code)
	_, ok := UserIDFromContext(c)
	assert.False(t, ok)

	// A garbage token is treated the same as no token.
	code, c = runMiddleware(t, mw, "Bearer not-a-token")
	assert.Equal(t, http.StatusOK, code)
	_, ok = UserIDFromContext(c)
	assert.False(t, ok)
}

func TestOptionalAuth_BindsIdentityWhenPresent(t *testing.T) {
	jwt := testJWT()
	userID := uuid.New()
	token, _, err := jwt.IssueAccessToken(userID.String(), "admin")
	require.NoError(t, err)

	code, c := runMiddleware(t, AuthMiddleware{JWT: jwt}.OptionalAuth, "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)

	gotID, ok := UserIDFromContext(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	handler := RequireRole(entity.UserRoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	run := func(role string, set bool) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if set {
			SetAuthContext(c, uuid.New(), role)
		}
		if err := handler(c); err != nil {
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			return httpErr.Code
		}
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run("admin", true))
	assert.Equal(t, http.StatusForbidden, run("user", true))
	assert.Equal(t, http.StatusForbidden, run("", false))
}
