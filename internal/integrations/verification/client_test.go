package verification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_Generate(t *testing.T) {
	var got issueRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/codes", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(issueResponse{URL: "https://codes.example/qr/" + got.Code})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second, nopLogger{})
	c.newCode = func() string { return "code-1" }

	artifact, err := c.Generate(context.Background(), KindFacility, 42)
	require.NoError(t, err)

	assert.Equal(t, "code-1", artifact.Code)
	assert.Equal(t, "https://codes.example/qr/code-1", artifact.URL)
	assert.Equal(t, issueRequest{Code: "code-1", Kind: KindFacility, BookingID: 42}, got)
}

func TestClient_Generate_UniqueCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(issueResponse{URL: "https://codes.example/qr"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nopLogger{})

	a1, err := c.Generate(context.Background(), KindSession, 1)
	require.NoError(t, err)
	a2, err := c.Generate(context.Background(), KindSession, 1)
	require.NoError(t, err)

	assert.NotEqual(t, a1.Code, a2.Code)
}

func TestClient_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusServiceUnavailable, body: "down", wantErr: ErrUnavailable},
		{name: "bad request", status: http.StatusBadRequest, body: `{"code":400,"message":"bad"}`, wantErr: ErrInvalidResponse},
		{name: "empty url", status: http.StatusOK, body: `{"url":""}`, wantErr: ErrInvalidResponse},
		{name: "garbage", status: http.StatusOK, body: `not json`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, nopLogger{})
			_, err := c.Generate(context.Background(), KindFacility, 1)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Generate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, nopLogger{})
	_, err := c.Generate(context.Background(), KindFacility, 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}
