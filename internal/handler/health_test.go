package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msomdec/job-portal/internal/handler"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func getHealthz(t *testing.T, db handler.Pinger) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	handler.HandleHealthz(db).ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %s", ct)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.StatusCode, body["status"]
}

func TestHandleHealthz(t *testing.T) {
	_, db := newTestUsersManager(t)

	code, status := getHealthz(t, db)
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if status != "ok" {
		t.Fatalf("expected status=ok, got %s", status)
	}
}

func TestHandleHealthz_DatabaseDown(t *testing.T) {
	down := pingerFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	code, status := getHealthz(t, down)
	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", code)
	}
	if status != "unavailable" {
		t.Fatalf("expected status=unavailable, got %s", status)
	}
}

func TestHandleHealthz_ClosedDatabase(t *testing.T) {
	_, db := newTestUsersManager(t)
	db.Close()

	if code, _ := getHealthz(t, db); code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 after close, got %d", code)
	}
}

func TestHandleHealthzRouting(t *testing.T) {
	users, db := newTestUsersManager(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, db, users, nil)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
