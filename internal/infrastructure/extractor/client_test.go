package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langliu/budgie/internal/pkg/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.ExtractorConfig{
		Endpoint: serverURL,
		Token:    "test-token",
		Timeout:  5 * time.Second,
	})
}

func TestClient_Resolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://v.example.com/share/abc", r.PostFormValue("link"))
		assert.Equal(t, "test-token", r.PostFormValue("token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"0001","data":{"desc":"clip #fun","playAddr":"https://m.example.com/v.mp4","cover":"https://m.example.com/c.jpg","music":""}}`))
	}))
	defer server.Close()

	info, err := newTestClient(server.URL).Resolve(context.Background(), "https://v.example.com/share/abc")
	require.NoError(t, err)
	assert.Equal(t, "clip #fun", info.Desc)
	assert.Equal(t, "https://m.example.com/v.mp4", info.PlayAddr)
	assert.Equal(t, "https://m.example.com/c.jpg", info.Cover)
}

func TestClient_Resolve_ErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"code":"1002","data":{}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Resolve(context.Background(), "https://v.example.com/share/abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `code "1002"`)
}

func TestClient_Resolve_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"code":"0001","data":{}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Resolve(context.Background(), "https://v.example.com/share/abc")
	assert.Error(t, err)
}

func TestClient_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		w.Header().Set("Content-Type", "video/mp4")
		w.Write([]byte("video-bytes"))
	}))
	defer server.Close()

	body, contentType, err := newTestClient(server.URL).Download(context.Background(), server.URL+"/v.mp4")
	require.NoError(t, err)
	assert.Equal(t, []byte("video-bytes"), body)
	assert.Equal(t, "video/mp4", contentType)
}

func TestClient_Download_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := newTestClient(server.URL).Download(context.Background(), server.URL+"/missing.mp4")
	assert.Error(t, err)
}
