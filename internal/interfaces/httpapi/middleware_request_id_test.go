package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/football-hub/internal/platform/id"
)

type failingGenerator struct{}

func (failingGenerator) NewID() (string, error) {
	return "", errors.New("entropy exhausted")
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(headerRequestID)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequestID(id.NewRandomGenerator("req_"), next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	got := rec.Header().Get(headerRequestID)
	if !strings.HasPrefix(got, "req_") {
		t.Fatalf("unexpected generated request id: %q", got)
	}
	if seen != got {
		t.Fatalf("handler saw %q, response carried %q", seen, got)
	}
}

func TestRequestID_EchoesValidIncomingID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(headerRequestID, "abc-123_DEF")
	rec := httptest.NewRecorder()
	RequestID(id.NewRandomGenerator("req_"), next).ServeHTTP(rec, req)

	if got := rec.Header().Get(headerRequestID); got != "abc-123_DEF" {
		t.Fatalf("expected incoming id to be echoed, got %q", got)
	}
}

func TestRequestID_ReplacesMalformedIncomingID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(headerRequestID, "bad id\nwith newline")
	rec := httptest.NewRecorder()
	RequestID(id.NewRandomGenerator("req_"), next).ServeHTTP(rec, req)

	if got := rec.Header().Get(headerRequestID); !strings.HasPrefix(got, "req_") {
		t.Fatalf("expected malformed id to be replaced, got %q", got)
	}
}

func TestRequestID_GeneratorFailureStillServes(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	RequestID(failingGenerator{}, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected downstream status, got %d", rec.Code)
	}
	if got := rec.Header().Get(headerRequestID); got != "" {
		t.Fatalf("expected no request id, got %q", got)
	}
}

func TestRouter_SetsRequestIDHeader(t *testing.T) {
	server := newTestServer(t)

	rec := server.get(t, "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Header().Get(headerRequestID); !strings.HasPrefix(got, "req_") {
		t.Fatalf("expected generated request id, got %q", got)
	}
}
