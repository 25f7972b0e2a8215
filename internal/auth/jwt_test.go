package auth

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidateToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	token, err := GenerateToken("user-123", "test@example.com", RoleOwner)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	userID, email, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if userID != "user-123" || email != "test@example.com" || role != RoleOwner {
		t.Errorf("claims mismatch: %s %s %s", userID, email, role)
	}
}

func TestTokenExpiresAfter72Hours(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	token, err := GenerateToken("user-123", "test@example.com", RoleOwner)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var claims Claims
	if _, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 72*time.Hour {
		t.Errorf("expected 72h session, got %v", ttl)
	}
	if claims.Subject != "user-123" {
		t.Errorf("expected subject user-123, got %s", claims.Subject)
	}
}

func TestGenerateTokenRejectsUnknownRole(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	if _, err := GenerateToken("user-123", "x@example.com", "SUPERUSER"); err == nil {
		t.Fatal("expected error for role outside OWNER/ADMIN")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	claims := &Claims{
		Email: "x@example.com",
		Role:  RoleOwner,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-100 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, _, _, err := ValidateToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestGenerateTokenEmptyUserID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	if _, err := GenerateToken("", "x@example.com", RoleOwner); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	if _, _, _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateToken("user-123", "x@example.com", RoleOwner)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	os.Setenv("JWT_SECRET", "secret-b")
	defer os.Unsetenv("JWT_SECRET")

	if _, _, _, err := ValidateToken(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}
