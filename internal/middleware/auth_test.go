package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"medscribe-server/internal/config"
	"medscribe-server/internal/models"
	"medscribe-server/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}
}

func identityProbe(captured *Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		*captured = CurrentIdentity(c)
		c.Status(http.StatusOK)
	}
}

func TestOptionalAuth_NoHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	var ident Identity
	router := gin.New()
	router.GET("/probe", OptionalAuth(cfg, zerolog.Nop()), identityProbe(&ident))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, ident.Authenticated)
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	user := &models.User{ID: "usr-12345678", Role: models.RoleDoctor}
	token, err := utils.GenerateAccessToken(user, cfg)
	assert.NoError(t, err)

	var ident Identity
	router := gin.New()
	router.GET("/probe", OptionalAuth(cfg, zerolog.Nop()), identityProbe(&ident))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ident.Authenticated)
	assert.Equal(t, "usr-12345678", ident.UserID)
	assert.Equal(t, models.RoleDoctor, ident.Role)
}

func TestOptionalAuth_InvalidTokenProceedsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	var ident Identity
	router := gin.New()
	router.GET("/probe", OptionalAuth(cfg, zerolog.Nop()), identityProbe(&ident))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, ident.Authenticated)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	router := gin.New()
	router.GET("/probe", RequireAuth(cfg), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	router := gin.New()
	router.GET("/probe", RequireAuth(cfg), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	user := &models.User{ID: "usr-12345678", Role: models.RolePatient}
	token, err := utils.GenerateAccessToken(user, cfg)
	assert.NoError(t, err)

	var ident Identity
	router := gin.New()
	router.GET("/probe", RequireAuth(cfg), identityProbe(&ident))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ident.Authenticated)
	assert.Equal(t, "usr-12345678", ident.UserID)
}

func TestCallerID_AnonymousFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	var caller string
	router := gin.New()
	router.GET("/probe", OptionalAuth(cfg, zerolog.Nop()), func(c *gin.Context) {
		caller = CallerID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, DemoUserID, caller)
}
