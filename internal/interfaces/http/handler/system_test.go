package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ssteiger/lieferschein-hitscher/internal/interfaces/http/dto"
	"github.com/ssteiger/lieferschein-hitscher/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headerAuth rejects requests without an Authorization header, standing
// in for the JWT middleware in routing tests.
func headerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}
		c.Next()
	}
}

func setupSystemRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	r := router.NewRouter(engine)
	r.Register(SystemRoutes(NewSystemHandler("1.0.0"), headerAuth()))
	r.Setup()

	return engine
}

func TestSystemHandler_Ping(t *testing.T) {
	engine := setupSystemRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/ping", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "ping stays reachable without a token")
	assert.Contains(t, w.Body.String(), "pong")
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	engine := setupSystemRouter(t)

	t.Run("requires authentication", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/system/info", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeUnauthorized)
	})

	t.Run("returns version and uptime", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/system/info", nil)
		req.Header.Set("Authorization", "Bearer token")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Lieferschein API")
		assert.Contains(t, w.Body.String(), "1.0.0")
	})
}
