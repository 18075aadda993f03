package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGenerateAndParseTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken(42, "player@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := parseToken(token)
	if err != nil {
		t.Fatalf("parseToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "player@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := parseToken("not.a.token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", JWTMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestOptionalJWTMiddlewarePassesWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/open", OptionalJWTMiddleware(), func(c *gin.Context) {
		if _, ok := GetUserID(c); ok {
			t.Errorf("expected no user id without a token")
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOptionalJWTMiddlewareAttachesUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := GenerateToken(7, "player@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	r := gin.New()
	r.GET("/open", OptionalJWTMiddleware(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		if !ok || id != 7 {
			t.Errorf("expected user id 7, got %d (ok=%v)", id, ok)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
