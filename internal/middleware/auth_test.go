package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrms/internal/middleware"
	"go-hrms/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sessionJSON(t *testing.T, userID, role string) string {
	t.Helper()
	body, err := json.Marshal(session.Session{UserID: userID, Role: role})
	assert.NoError(t, err)
	return string(body)
}

func setupGuardedRouter(t *testing.T) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, redisMock := redismock.NewClientMock()
	sessions := session.NewStore(rdb, time.Hour)

	r := gin.New()
	guarded := r.Group("/")
	guarded.Use(middleware.RequireAuth(sessions))
	guarded.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})
	guarded.GET("/hr-only", middleware.RequireRole("HR"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r, redisMock
}

func TestRequireAuth(t *testing.T) {
	t.Run("success bearer token", func(t *testing.T) {
		r, redisMock := setupGuardedRouter(t)

		token := uuid.NewString()
		userID := uuid.NewString()
		redisMock.ExpectGet("session:" + token).SetVal(sessionJSON(t, userID, "Employee"))
		redisMock.ExpectExpire("session:"+token, time.Hour).SetVal(true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID)
	})

	t.Run("success cookie token", func(t *testing.T) {
		r, redisMock := setupGuardedRouter(t)

		token := uuid.NewString()
		redisMock.ExpectGet("session:" + token).SetVal(sessionJSON(t, uuid.NewString(), "Employee"))
		redisMock.ExpectExpire("session:"+token, time.Hour).SetVal(true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative missing token", func(t *testing.T) {
		r, _ := setupGuardedRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("negative stale token", func(t *testing.T) {
		r, redisMock := setupGuardedRouter(t)

		token := uuid.NewString()
		redisMock.ExpectGet("session:" + token).RedisNil()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("negative employee on hr route", func(t *testing.T) {
		r, redisMock := setupGuardedRouter(t)

		token := uuid.NewString()
		redisMock.ExpectGet("session:" + token).SetVal(sessionJSON(t, uuid.NewString(), "Employee"))
		redisMock.ExpectExpire("session:"+token, time.Hour).SetVal(true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/hr-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success hr on hr route", func(t *testing.T) {
		r, redisMock := setupGuardedRouter(t)

		token := uuid.NewString()
		redisMock.ExpectGet("session:" + token).SetVal(sessionJSON(t, uuid.NewString(), "HR"))
		redisMock.ExpectExpire("session:"+token, time.Hour).SetVal(true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/hr-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
