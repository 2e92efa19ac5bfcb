package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"reviewsBack/internal/config"
	"reviewsBack/internal/repositories"
	"reviewsBack/internal/services"
)

type stubVerifier struct {
	calls int
	err   error
	token string
}

func (s *stubVerifier) Verify(ctx context.Context, token string) error {
	s.calls++
	s.token = token
	return s.err
}

func newTestApp(t *testing.T, env string, verifier tokenVerifier) *application {
	t.Helper()
	ctx := context.Background()
	db, err := repositories.OpenDatabase(ctx, "duckdb://")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := repositories.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := config.Config{Env: env}
	return initializeApp(cfg, db, verifier, zerolog.Nop())
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	t.Run("dev skips verification", func(t *testing.T) {
		v := &stubVerifier{}
		app := newTestApp(t, config.EnvDev, v)
		rec := serve(app.routes(), httptest.NewRequest(http.MethodGet, "/v1/user_reviews/reviews", nil))
		if rec.Code != http.StatusOK || v.calls != 0 {
			t.Fatalf("expected 200 without verification, got %d (calls=%d)", rec.Code, v.calls)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		v := &stubVerifier{}
		app := newTestApp(t, config.EnvProd, v)
		rec := serve(app.routes(), httptest.NewRequest(http.MethodGet, "/v1/user_reviews/reviews", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "BookBNB token is missing") {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		v := &stubVerifier{err: services.ErrInvalidToken}
		app := newTestApp(t, config.EnvProd, v)
		req := httptest.NewRequest(http.MethodGet, "/v1/publication_reviews/reviews", nil)
		req.Header.Set(services.AuthHeader, "abc")
		rec := serve(app.routes(), req)
		if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), "Invalid BookBNB token") {
			t.Fatalf("expected 401 invalid token, got %d %s", rec.Code, rec.Body.String())
		}
		if v.token != "abc" {
			t.Fatalf("expected token to be relayed, got %q", v.token)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		v := &stubVerifier{}
		app := newTestApp(t, config.EnvProd, v)
		req := httptest.NewRequest(http.MethodGet, "/v1/user_reviews/score/user/1", nil)
		req.Header.Set(services.AuthHeader, "abc")
		rec := serve(app.routes(), req)
		if rec.Code != http.StatusNoContent || v.calls != 1 {
			t.Fatalf("expected 204 after one verification, got %d (calls=%d)", rec.Code, v.calls)
		}
	})

	t.Run("health is exempt", func(t *testing.T) {
		v := &stubVerifier{}
		app := newTestApp(t, config.EnvProd, v)
		rec := serve(app.routes(), httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != http.StatusOK || v.calls != 0 {
			t.Fatalf("expected 200 without verification, got %d (calls=%d)", rec.Code, v.calls)
		}
	})
}

func TestRequestIDAndHeaders(t *testing.T) {
	app := newTestApp(t, config.EnvDev, &stubVerifier{})
	rec := serve(app.routes(), httptest.NewRequest(http.MethodGet, "/v1/user_reviews/reviews", nil))
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected a request id header")
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}
	if rec.Header().Get("X-Frame-Options") != "deny" {
		t.Fatalf("expected secure headers")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "fixed-id")
	rec = serve(app.routes(), req)
	if got := rec.Header().Get(requestIDHeader); got != "fixed-id" {
		t.Fatalf("expected incoming request id to be kept, got %q", got)
	}
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApp(t, config.EnvDev, &stubVerifier{})
	h := app.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message":"Internal Server Error"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, config.EnvDev, &stubVerifier{})
	rec := serve(app.routes(), httptest.NewRequest(http.MethodGet, "/v2/nothing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
