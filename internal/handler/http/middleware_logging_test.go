package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request whose context logger writes to buf.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handler          http.HandlerFunc
		checkLogContains []string
	}{
		{
			name:   "GET 200 with body",
			method: http.MethodGet,
			path:   "/",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("Hello, World!"))
			},
			checkLogContains: []string{`"method":"GET"`, `"uri":"/"`, `"status":200`, `"size":13`, `"duration":`, `"level":"info"`},
		},
		{
			name:   "POST 201",
			method: http.MethodPost,
			path:   "/users",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			},
			checkLogContains: []string{`"method":"POST"`, `"uri":"/users"`, `"status":201`, `"size":0`},
		},
		{
			name:   "401 with empty body",
			method: http.MethodGet,
			path:   "/",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			checkLogContains: []string{`"status":401`, `"size":0`, `"level":"warn"`},
		},
		{
			name:   "500 is logged at error level",
			method: http.MethodGet,
			path:   "/",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			checkLogContains: []string{`"status":500`, `"level":"error"`, `"message":"request served"`},
		},
		{
			name:             "nothing written is logged as 200",
			method:           http.MethodGet,
			path:             "/noop",
			handler:          func(http.ResponseWriter, *http.Request) {},
			checkLogContains: []string{`"status":200`},
		},
		{
			name:   "size accumulates across writes",
			method: http.MethodGet,
			path:   "/big",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(strings.Repeat("a", 512)))
				_, _ = w.Write([]byte(strings.Repeat("b", 512)))
			},
			checkLogContains: []string{`"size":1024`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			h.withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), makeRequest(tt.method, tt.path, &buf))

			for _, expected := range tt.checkLogContains {
				assert.Contains(t, buf.String(), expected)
			}
		})
	}
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))
	})
}

// ---- responseWriter ----

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.statusCode())
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}
