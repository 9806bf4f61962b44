package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fedutinova/regexsmith/internal/config"
	"github.com/fedutinova/regexsmith/internal/regexgen"
	httpapi "github.com/fedutinova/regexsmith/internal/transport/http"
	"github.com/stretchr/testify/assert"
)

func newHandlers(origins []string) *httpapi.Handlers {
	return &httpapi.Handlers{
		Service: regexgen.New(nil, nil),
		Config:  config.Config{CORSAllowedOrigins: origins, MaxPromptLength: 500},
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := NewRouter(newHandlers([]string{"https://app.example"}))

	req := httptest.NewRequest(http.MethodOptions, "/api/test", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouter_CORSRejectsUnknownOrigin(t *testing.T) {
	r := NewRouter(newHandlers([]string{"https://app.example"}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_ServesTest(t *testing.T) {
	r := NewRouter(newHandlers([]string{"*"}))

	req := httptest.NewRequest(http.MethodPost, "/api/test", strings.NewReader(`{"regex":"b+","test_string":"abbcb"}`))
	req.Header.Set("Origin", "https://anywhere.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"match_count":2`)
}
