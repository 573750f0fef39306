package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRobotsCheckerDisallow(t *testing.T) {
	var fetches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fetches.Add(1)
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private\n"))
	}))
	defer srv.Close()

	checker := NewRobotsChecker("crosscheck-test/1.0", 2*time.Second)
	ctx := context.Background()

	if !checker.Allowed(ctx, srv.URL+"/articles/story") {
		t.Error("open path should be allowed")
	}
	if checker.Allowed(ctx, srv.URL+"/private/page") {
		t.Error("disallowed path should be blocked")
	}
	if got := fetches.Load(); got != 1 {
		t.Errorf("robots.txt fetched %d times, want 1", got)
	}
}

func TestRobotsCheckerMissingFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	checker := NewRobotsChecker("crosscheck-test/1.0", 2*time.Second)
	if !checker.Allowed(context.Background(), srv.URL+"/anything") {
		t.Error("missing robots.txt should allow the fetch")
	}
}

func TestRobotsCheckerUnreachableHost(t *testing.T) {
	checker := NewRobotsChecker("crosscheck-test/1.0", 200*time.Millisecond)
	if !checker.Allowed(context.Background(), "http://127.0.0.1:1/page") {
		t.Error("unreachable robots.txt should allow the fetch")
	}
}

func TestRobotsCheckerClear(t *testing.T) {
	var fetches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fetches.Add(1)
		_, _ = w.Write([]byte("User-agent: *\nDisallow:\n"))
	}))
	defer srv.Close()

	checker := NewRobotsChecker("crosscheck-test/1.0", 2*time.Second)
	ctx := context.Background()
	checker.Allowed(ctx, srv.URL+"/a")
	checker.Clear()
	checker.Allowed(ctx, srv.URL+"/b")
	if got := fetches.Load(); got != 2 {
		t.Errorf("robots.txt fetched %d times after clear, want 2", got)
	}
}
