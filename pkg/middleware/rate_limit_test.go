package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"busrent/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestIPRateLimiter_Allow(t *testing.T) {
	limiter := NewIPRateLimiter(3, time.Minute, testLogger())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("request over the limit should be rejected")
	}

	// other addresses keep their own window
	if !limiter.Allow("10.0.0.2") {
		t.Error("different address must not share the window")
	}
}

func TestIPRateLimiter_WindowSlides(t *testing.T) {
	limiter := NewIPRateLimiter(1, 50*time.Millisecond, testLogger())
	defer limiter.Stop()

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("second immediate request should be rejected")
	}

	time.Sleep(60 * time.Millisecond)

	if !limiter.Allow("10.0.0.1") {
		t.Error("request after the window should be allowed")
	}
}

func TestIPRateLimit_KeysOnForwardedClient(t *testing.T) {
	limiter := NewIPRateLimiter(1, time.Minute, testLogger())
	defer limiter.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := IPRateLimit(limiter)(next)

	// all requests arrive through the same proxy address
	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/book", nil)
		req.RemoteAddr = "10.10.10.10:443"
		if forwardedFor != "" {
			req.Header.Set("X-Forwarded-For", forwardedFor)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("198.51.100.1"); code != http.StatusOK {
		t.Fatalf("expected first client through, got %d", code)
	}
	if code := send("198.51.100.2"); code != http.StatusOK {
		t.Errorf("distinct forwarded clients must not share a bucket, got %d", code)
	}
	if code := send("198.51.100.1, 10.10.10.10"); code != http.StatusTooManyRequests {
		t.Errorf("expected first hop to identify the client, got %d", code)
	}
}

func TestIPRateLimit_RejectsWithJSON(t *testing.T) {
	limiter := NewIPRateLimiter(1, time.Minute, testLogger())
	defer limiter.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := IPRateLimit(limiter)(next)

	first := httptest.NewRequest(http.MethodPost, "/api/book", nil)
	first.RemoteAddr = "10.0.0.1:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected first request through, got %d", rec.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/api/book", nil)
	second.RemoteAddr = "10.0.0.1:54322"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected JSON error body, got content type %q", got)
	}
	if rec.Body.String() != `{"success":false,"error":"Rate limit exceeded"}` {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
