package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goal-planner/config"
	"goal-planner/pkg/log"
	"goal-planner/pkg/scope"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		sc, _ := GetScope(c)
		c.String(http.StatusOK, sc.UserID)
	})
	r.GET("/", chain...)
	return r
}

func TestAuth(t *testing.T) {
	jwtManager := scope.New("secret")
	mw := New(log.NewNop(), jwtManager, config.AuthConfig{}, config.RateLimitConfig{})
	r := newEngine(mw, mw.Auth())

	token, err := jwtManager.Sign("user-1", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "valid token", header: "Bearer " + token, wantCode: http.StatusOK, wantBody: "user-1"},
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantCode: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	mw := New(log.NewNop(), scope.New("secret"), config.AuthConfig{Disabled: true, DevUserID: "dev"}, config.RateLimitConfig{})
	r := newEngine(mw, mw.Auth())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dev", w.Body.String())
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), scope.New("secret"),
		config.AuthConfig{Disabled: true, DevUserID: "dev"},
		config.RateLimitConfig{RequestsPerMin: 60, Burst: 2})
	r := newEngine(mw, mw.Auth(), mw.RateLimit())

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes[i] = w.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_Off(t *testing.T) {
	mw := New(log.NewNop(), scope.New("secret"), config.AuthConfig{}, config.RateLimitConfig{})
	assert.Nil(t, mw.limiter)

	r := newEngine(mw, mw.RateLimit())
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), scope.New("secret"), config.AuthConfig{}, config.RateLimitConfig{})
	r := gin.New()
	r.GET("/", mw.RequestID(), func(c *gin.Context) {
		id, _ := c.Request.Context().Value(log.RequestIDKey).(string)
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req.WithContext(context.Background()))
	assert.Equal(t, "req-42", w.Body.String())
}
