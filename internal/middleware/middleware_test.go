package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/coin-wallet/pkg/ratelimit"
	"github.com/go-petr/coin-wallet/pkg/web"
	"github.com/rs/zerolog"
)

func TestRequestLogger(t *testing.T) {
	testCases := []struct {
		name          string
		requestID     string
		handlerStatus int
		wantLevel     string
	}{
		{
			name:          "GeneratedID",
			handlerStatus: http.StatusOK,
			wantLevel:     "info",
		},
		{
			name:          "PropagatedID",
			requestID:     "req-1",
			handlerStatus: http.StatusOK,
			wantLevel:     "info",
		},
		{
			name:          "ServerError",
			requestID:     "req-2",
			handlerStatus: http.StatusInternalServerError,
			wantLevel:     "error",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()

			var ctxLoggerFound bool
			server.Use(RequestLogger(logger))
			server.GET("/ping", func(gctx *gin.Context) {
				ctxLoggerFound = zerolog.Ctx(gctx.Request.Context()).GetLevel() != zerolog.Disabled
				gctx.Status(tc.handlerStatus)
			})

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.requestID != "" {
				request.Header.Set(RequestIDHeader, tc.requestID)
			}

			server.ServeHTTP(recorder, request)

			gotID := recorder.Header().Get(RequestIDHeader)
			if gotID == "" {
				t.Fatalf("response header %s is empty", RequestIDHeader)
			}
			if tc.requestID != "" && gotID != tc.requestID {
				t.Errorf("request id = %q, want %q", gotID, tc.requestID)
			}

			if !ctxLoggerFound {
				t.Errorf("request context carries no logger")
			}

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("json.Unmarshal(%q) returned error: %v", buf.String(), err)
			}

			if entry["level"] != tc.wantLevel {
				t.Errorf("level = %v, want %v", entry["level"], tc.wantLevel)
			}
			if entry["request_id"] != gotID {
				t.Errorf("request_id = %v, want %v", entry["request_id"], gotID)
			}
			if entry["path"] != "/ping" {
				t.Errorf("path = %v, want /ping", entry["path"])
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	store := ratelimit.NewStore(0.001, 1, time.Minute)
	server.GET("/limited", RateLimit(store), func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{})
	})

	first := httptest.NewRecorder()
	server.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/limited", nil))

	if first.Code != http.StatusOK {
		t.Fatalf("first request code = %v, want %v", first.Code, http.StatusOK)
	}

	second := httptest.NewRecorder()
	server.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/limited", nil))

	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request code = %v, want %v", second.Code, http.StatusTooManyRequests)
	}

	var got web.JSONError
	if err := json.NewDecoder(second.Body).Decode(&got); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	if got.Message != ErrTooManyRequests.Error() {
		t.Errorf("got.Message = %v, want %v", got.Message, ErrTooManyRequests.Error())
	}
}
