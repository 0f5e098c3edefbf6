package authsvc_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roamio/internal/adapters/authsvc"
	"roamio/internal/domain"
)

func TestResolveUser_MapsProviderShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			w.WriteHeader(404)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(401)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		// provider omits aud, role and phone entirely
		_, _ = w.Write([]byte(`{
			"id": "u1",
			"email": "ana@example.com",
			"email_confirmed_at": "2025-01-02T03:04:05Z",
			"created_at": "2024-12-01T00:00:00Z",
			"user_metadata": {"plan": "free"}
		}`))
	}))
	defer ts.Close()

	cl, err := authsvc.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	p, err := cl.ResolveUser(ctx, "tok-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.ID != "u1" || p.Email != "ana@example.com" {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if !p.EmailConfirmed {
		t.Fatalf("email_confirmed_at present must mean confirmed")
	}
	// structurally-required fields get stable defaults
	if p.Phone != "" || p.Audience != "authenticated" || p.Role != "authenticated" {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.Metadata == nil || p.Metadata["plan"] != "free" {
		t.Fatalf("metadata not mapped: %+v", p.Metadata)
	}
}

func TestResolveUser_ExpiredToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
	}))
	defer ts.Close()

	cl, err := authsvc.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err = cl.ResolveUser(context.Background(), "stale")
	if !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}
}

func TestResolveUser_EmptyTokenShortCircuits(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer ts.Close()

	cl, _ := authsvc.New(ts.URL, "test-key", 100)
	if _, err := cl.ResolveUser(context.Background(), ""); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}
	if hits != 0 {
		t.Fatalf("empty token must not hit the service")
	}
}

func TestResolveUser_ServerErrorSurfaces(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 500)
	}))
	defer ts.Close()

	cl, _ := authsvc.New(ts.URL, "test-key", 100)
	_, err := cl.ResolveUser(context.Background(), "tok")
	if err == nil || errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("5xx must surface as a distinct failure, got %v", err)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := authsvc.New("http://localhost", "", 10); err == nil {
		t.Fatalf("expected error for missing key")
	}
}
