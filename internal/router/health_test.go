package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"qrmenu/internal/auth"

	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := auth.NewInMemoryUserRepository()
	service := auth.NewService(repo)

	// Only /health is exercised, the other handlers stay zero.
	r := New(Handlers{Auth: auth.NewHandler(service)})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := auth.NewInMemoryUserRepository()
	service := auth.NewService(repo)
	r := New(Handlers{Auth: auth.NewHandler(service)})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
