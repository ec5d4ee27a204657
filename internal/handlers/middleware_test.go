package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func TestRateLimiterMiddleware(t *testing.T) {
	// Arrange: burst of 2, effectively no refill during the test
	limiter := NewRateLimiter(1, 2)
	handler := limiter.Middleware(okHandler())

	// Act
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/public-config", nil))
		codes = append(codes, w.Code)
	}

	// Assert
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("Expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("Expected third request to be limited, got %d", codes[2])
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS([]string{"https://autoinx.com"}, okHandler())

	req := httptest.NewRequest("OPTIONS", "/admin-config", nil)
	req.Header.Set("Origin", "https://autoinx.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "https://autoinx.com" {
		t.Errorf("Expected allowed origin header, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORSUnknownOrigin(t *testing.T) {
	handler := CORS([]string{"https://autoinx.com"}, okHandler())

	req := httptest.NewRequest("GET", "/public-config", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Errorf("Expected no CORS headers for unknown origin")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected request to pass through, got %d", w.Code)
	}
}

func TestRecoverAndRequestLogger(t *testing.T) {
	// Arrange
	logger := &MockHandlerLogger{}
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	})
	handler := Stack(panicky, logger, NewRateLimiter(100, 20), []string{"*"})

	req := httptest.NewRequest("GET", "/public-config", nil)
	req.Header.Set("X-Request-Id", "req-123")
	w := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(w, req)

	// Assert
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if len(logger.ErrorLogs) == 0 {
		t.Errorf("Expected panic to be logged")
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	logger := &MockHandlerLogger{}
	handler := RequestLogger(logger, okHandler())
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest("GET", "/public-config", nil))

	if w.Header().Get("X-Request-Id") == "" {
		t.Errorf("Expected a generated request id")
	}
	if len(logger.InfoLogs) != 1 {
		t.Errorf("Expected one request log line, got %d", len(logger.InfoLogs))
	}
}
