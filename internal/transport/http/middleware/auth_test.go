package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID uuid.UUID, secret string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(expiresIn).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

// echoUserID records whether the handler ran and which user ID it saw.
type echoUserID struct {
	called bool
	userID uuid.UUID
	found  bool
}

func (e *echoUserID) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.called = true
		e.userID, e.found = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	userID := uuid.New()
	echo := &echoUserID{}
	mw := AuthMiddleware(testSecret)(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID, testSecret, time.Hour))
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !echo.found || echo.userID != userID {
		t.Errorf("context user = %v (found=%v), want %v", echo.userID, echo.found, userID)
	}
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	userID := uuid.New()
	echo := &echoUserID{}
	mw := AuthMiddleware(testSecret)(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, userID, testSecret, time.Hour)})
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if echo.userID != userID {
		t.Errorf("context user = %v, want %v", echo.userID, userID)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	echo := &echoUserID{}
	mw := AuthMiddleware(testSecret)(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if echo.called {
		t.Error("handler should not run without a token")
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	echo := &echoUserID{}
	mw := AuthMiddleware(testSecret)(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New(), "other-secret", time.Hour))
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if echo.called {
		t.Error("handler should not run with a forged token")
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	echo := &echoUserID{}
	mw := AuthMiddleware(testSecret)(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New(), testSecret, -time.Minute))
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	// Expiry gets its own machine code so clients know to refresh
	if body := rec.Body.String(); !strings.Contains(body, `"code":"TOKEN_EXPIRED"`) {
		t.Errorf("body = %s, want code TOKEN_EXPIRED", body)
	}
}

func TestOptionalAuthMiddleware_AnonymousPassthrough(t *testing.T) {
	echo := &echoUserID{}
	mw := OptionalAuthMiddleware(testSecret)(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !echo.called {
		t.Fatal("handler should run for anonymous requests")
	}
	if echo.found {
		t.Error("no user ID should be attached for anonymous requests")
	}
}

func TestOptionalAuthMiddleware_BadTokenIgnored(t *testing.T) {
	echo := &echoUserID{}
	mw := OptionalAuthMiddleware(testSecret)(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if echo.found {
		t.Error("a bad token should fall through to anonymous, not attach a user")
	}
}

func TestOptionalAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	echo := &echoUserID{}
	mw := OptionalAuthMiddleware(testSecret)(echo.handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID, testSecret, time.Hour))
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	if !echo.found || echo.userID != userID {
		t.Errorf("context user = %v (found=%v), want %v", echo.userID, echo.found, userID)
	}
}
