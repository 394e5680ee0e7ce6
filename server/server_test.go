package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nmeilick/juration/response"
	serverconfig "github.com/nmeilick/juration/server/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := serverconfig.DefaultConfig()
	require.NoError(t, cfg.Normalize())
	return New(cfg, zerolog.Nop())
}

func get(t *testing.T, s *Server, path string, query url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp response.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), resp.Error.RequestID)
	return resp.Error.Message
}

func TestParseEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v1/parse", url.Values{"text": {"1 time og 30 minutter"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "juration/dev", rec.Header().Get("Server"))
	assert.Equal(t, "no-store, max-age=0", rec.Header().Get("Cache-Control"))

	var resp response.ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5400.0, resp.Seconds)
	assert.Equal(t, "1h30m0s", resp.Duration)
	assert.Equal(t, "1 time og 30 minutter", resp.Input)
}

func TestParseEndpointErrors(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v1/parse", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing text parameter", decodeError(t, rec))

	rec = get(t, s, "/api/v1/parse", url.Values{"text": {"abc"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unable to parse: abc", decodeError(t, rec))
}

func TestStringifyEndpoint(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query url.Values
		want  response.StringifyResponse
	}{
		{
			url.Values{"seconds": {"3661"}},
			response.StringifyResponse{Seconds: 3661, Format: "short", Text: "1 tm 1 min 1 sek"},
		},
		{
			url.Values{"seconds": {"3661"}, "format": {"long"}, "units": {"2"}},
			response.StringifyResponse{Seconds: 3661, Format: "long", Text: "1 time 1 minutt"},
		},
		{
			url.Values{"seconds": {"1296000"}, "format": {"micro"}, "weeks": {"true"}},
			response.StringifyResponse{Seconds: 1296000, Format: "micro", Text: "2u 1d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.query.Encode(), func(t *testing.T) {
			for _, path := range []string{"/api/v1/stringify", "/api/v1/humanize"} {
				rec := get(t, s, path, tt.query)
				require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

				var resp response.StringifyResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.want, resp)
			}
		})
	}
}

func TestStringifyEndpointErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query url.Values
		want  string
	}{
		{nil, "missing seconds parameter"},
		{url.Values{"seconds": {"ti"}}, "invalid seconds parameter: ti"},
		{url.Values{"seconds": {"NaN"}}, "unable to stringify a non-numeric value"},
		{url.Values{"seconds": {"5"}, "units": {"x"}}, "invalid units parameter: x"},
		{url.Values{"seconds": {"5"}, "weeks": {"kanskje"}}, "invalid weeks parameter: kanskje"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			rec := get(t, s, "/api/v1/stringify", tt.query)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, decodeError(t, rec))
		})
	}

	rec := get(t, s, "/api/v1/stringify", url.Values{"seconds": {"5"}, "format": {"bogus"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "'bogus'")
}

func TestUnitsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v1/units", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.UnitsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Units, 7)
	assert.Equal(t, "years", resp.Units[0].Name)
	assert.Equal(t, int64(1), resp.Units[6].Seconds)
	assert.Equal(t, "minutt", resp.Units[5].Forms["long"])
	assert.False(t, resp.Units[2].Decompose)
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v2/parse", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeError(t, rec))
}

func TestDisableServerHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := serverconfig.DefaultConfig()
	cfg.Listen.DisableServerHeader = true
	require.NoError(t, cfg.Normalize())

	rec := get(t, New(cfg, zerolog.Nop()), "/api/v1/units", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Server"))
}
