package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-safearea/internal/config"
	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/snapshotfmt"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newRouter(config.Default(), log.New(&bytes.Buffer{})))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServe_Health(t *testing.T) {
	resp := get(t, newTestServer(t), "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestServe_Resolve(t *testing.T) {
	resp := get(t, newTestServer(t), "/v1/resolve?display=1920x1080&mode=auto&epsilon=0.05")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got resolveResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "FIXED_HEIGHT", got.Policy)
	assert.Equal(t, layout.NewRect(0, 0, 1080, 1920), got.View)
}

func TestServe_Snapshot(t *testing.T) {
	srv := newTestServer(t)

	for _, format := range snapshotfmt.Formats {
		t.Run(string(format), func(t *testing.T) {
			resp := get(t, srv, "/v1/snapshot?display=1170x2532&insets=90,0,34,0&format="+string(format))
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, contentTypes[format], resp.Header.Get("Content-Type"))

			doc, err := snapshotfmt.Decode(resp.Body, format)
			require.NoError(t, err)
			assert.Equal(t, layout.NewSize(1170, 2532), doc.DisplaySize)
			assert.InDelta(t, 90/doc.Scale, doc.FinalSafe.Y, 1e-9)
		})
	}
}

func TestServe_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := map[string]string{
		"resolve without display": "/v1/resolve",
		"resolve bad mode":        "/v1/resolve?display=10x10&mode=stretch",
		"resolve bad epsilon":     "/v1/resolve?display=10x10&epsilon=tiny",
		"snapshot bad display":    "/v1/snapshot?display=wide",
		"snapshot bad insets":     "/v1/snapshot?display=10x10&insets=1,2,3",
		"snapshot bad format":     "/v1/snapshot?display=10x10&format=xml",
	}

	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			resp := get(t, srv, path)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	var logs bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, "127.0.0.1:0", http.NotFoundHandler(), log.New(&logs))
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_ListenError(t *testing.T) {
	err := serve(context.Background(), "not-an-address", http.NotFoundHandler(), log.New(&bytes.Buffer{}))
	assert.Error(t, err)
}
