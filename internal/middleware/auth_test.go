package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fercho12s/Rutas/internal/middleware"
	"github.com/Fercho12s/Rutas/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func init() { gin.SetMode(gin.TestMode) }

func signToken(t *testing.T, secret, role string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    uuid.NewString(),
		"email": "test@x.com",
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{middleware.JWTAuth(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"role": claims.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	w := doProtected(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	w := doProtected(protectedRouter(), "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, model.RoleCliente, time.Hour)
	w := doProtected(protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cliente")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, model.RoleCliente, -time.Minute)
	w := doProtected(protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "otro_secreto_igual_de_largo_pero_malo", model.RoleCliente, time.Hour)
	w := doProtected(protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_TamperedSignature(t *testing.T) {
	token := signToken(t, testSecret, model.RoleCliente, time.Hour)
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	w := doProtected(protectedRouter(), "Bearer "+tampered)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_UnsignedToken(t *testing.T) {
	// alg=none must never be accepted.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id": uuid.NewString(), "role": model.RoleAdmin,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := doProtected(protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	token := signToken(t, testSecret, model.RoleAdmin, time.Hour)
	w := doProtected(protectedRouter(model.RoleAdmin), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	token := signToken(t, testSecret, model.RoleCliente, time.Hour)
	w := doProtected(protectedRouter(model.RoleAdmin), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
