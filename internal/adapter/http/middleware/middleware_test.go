package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, method jwt.SigningMethod, roles []string, exp time.Time) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(exp)},
		Roles:            roles,
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newGuardedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/guarded", Authenticate(testSecret), RequireRole(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(ContextUserIDKey), "roles": RolesFromContext(c)})
	})
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateAndRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	future := time.Now().Add(time.Hour)

	t.Run("missing header", func(t *testing.T) {
		w := doGet(newGuardedRouter(RoleRecepcion), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "UNAUTHORIZED" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		tok := signToken(t, testSecret, jwt.SigningMethodHS256, []string{RoleRecepcion}, future)
		if w := doGet(newGuardedRouter(RoleRecepcion), "Basic "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bad signature", func(t *testing.T) {
		tok := signToken(t, []byte("other"), jwt.SigningMethodHS256, []string{RoleRecepcion}, future)
		if w := doGet(newGuardedRouter(RoleRecepcion), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		tok := signToken(t, testSecret, jwt.SigningMethodHS512, []string{RoleRecepcion}, future)
		if w := doGet(newGuardedRouter(RoleRecepcion), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired", func(t *testing.T) {
		tok := signToken(t, testSecret, jwt.SigningMethodHS256, []string{RoleRecepcion}, time.Now().Add(-time.Minute))
		if w := doGet(newGuardedRouter(RoleRecepcion), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("role not allowed", func(t *testing.T) {
		tok := signToken(t, testSecret, jwt.SigningMethodHS256, []string{RolePaciente}, future)
		w := doGet(newGuardedRouter(RoleRecepcion, RoleLaboratorio), "Bearer "+tok)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "FORBIDDEN") {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("role allowed", func(t *testing.T) {
		tok := signToken(t, testSecret, jwt.SigningMethodHS256, []string{RolePaciente, RoleLaboratorio}, future)
		w := doGet(newGuardedRouter(RoleRecepcion, RoleLaboratorio), "bearer "+tok)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"user":"user-1"`) {
			t.Fatalf("subject not propagated: %s", w.Body.String())
		}
	})

	t.Run("admin passes every guard", func(t *testing.T) {
		tok := signToken(t, testSecret, jwt.SigningMethodHS256, []string{RoleAdmin}, future)
		if w := doGet(newGuardedRouter(RoleEnfermeria), "Bearer "+tok); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDevAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", DevAuth(), RequireRole(RoleLaboratorio), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	if w := doGet(r, ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestID(), Logger(logger), Recovery(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "rid-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get(HeaderRequestID) != "rid-1" {
		t.Fatalf("request id not echoed")
	}
	if !strings.Contains(buf.String(), `"request_id":"rid-1"`) || !strings.Contains(buf.String(), `"status":200`) {
		t.Fatalf("unexpected log %s", buf.String())
	}

	buf.Reset()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Header().Get(HeaderRequestID) == "" {
		t.Fatalf("expected a generated request id")
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("panic not logged: %s", buf.String())
	}
}
