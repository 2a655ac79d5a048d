package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet_api/internal/models"
)

func runRequireAuth(t *testing.T, header string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}

	RequireAuth()(c)
	return c, w
}

func TestRequireAuthRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, models.RoleDispatcher)
	require.NoError(t, err)

	c, _ := runRequireAuth(t, "Bearer "+token)

	assert.False(t, c.IsAborted())
	role, ok := c.Get("role")
	require.True(t, ok)
	assert.Equal(t, models.RoleDispatcher, role)
	userID, ok := c.Get("user_id")
	require.True(t, ok)
	assert.Equal(t, float64(42), userID)
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	c, w := runRequireAuth(t, "")
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsMalformedHeader(t *testing.T) {
	c, w := runRequireAuth(t, "Token abc")
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, models.RoleDispatcher)
	require.NoError(t, err)

	c, w := runRequireAuth(t, "Bearer "+token+"x")
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
