package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"qrmenu/internal/auth"

	"github.com/gin-gonic/gin"
)

func setupProtectedRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/protected")
	group.Use(AuthMiddleware())
	if role != "" {
		group.Use(RequireRole(role))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := setupProtectedRouter("")

	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	r := setupProtectedRouter("")

	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	token, err := auth.GenerateToken("user-1", "u@example.com", auth.RoleOwner)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	r := setupProtectedRouter("")

	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	token, err := auth.GenerateToken("user-1", "u@example.com", auth.RoleOwner)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	r := setupProtectedRouter(auth.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRole_MatchingRole(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	token, err := auth.GenerateToken("admin-1", "a@example.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	r := setupProtectedRouter(auth.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
