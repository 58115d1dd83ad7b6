package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealoong/blogserver/middleware"
)

func TestRateLimitAnswersTooManyRequests(t *testing.T) {
	r := gin.New()
	r.POST("/login", middleware.RateLimitMiddleware(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	// default config: 60/min with a burst of 30, far fewer than the burst of
	// requests sent here
	var limited int
	for i := 0; i < 60; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			require.Equal(t, http.StatusTooManyRequests, w.Code)
			assert.Contains(t, w.Body.String(), "rate limit exceeded")
			limited++
		}
	}
	assert.Greater(t, limited, 0)
}
