package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealoong/blogserver/config"
	"github.com/sealoong/blogserver/middleware"
	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func guardedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/private", middleware.AuthRequired(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"userID":   ctx.GetUint(middleware.ContextUserIDKey),
			"username": ctx.GetString(middleware.ContextUsernameKey),
		})
	})
	return r
}

func doGet(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredRejectsBadHeaders(t *testing.T) {
	r := guardedRouter()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"no token", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doGet(r, c.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	cfg := config.Get()
	cfg.JWTExpiresHours = -1
	token, err := utils.GenerateToken(cfg, 7, "tom", nil)
	require.NoError(t, err)

	w := doGet(guardedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsForeignSignature(t *testing.T) {
	token, err := utils.GenerateToken(config.AppConfig{JWTSecret: "other-secret", JWTExpiresHours: 1}, 7, "tom", nil)
	require.NoError(t, err)

	w := doGet(guardedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredAttachesIdentity(t *testing.T) {
	token, err := utils.GenerateToken(config.Get(), 7, "tom", models.Roles{models.RoleUser})
	require.NoError(t, err)

	w := doGet(guardedRouter(), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":7`)
	assert.Contains(t, w.Body.String(), `"username":"tom"`)
}
