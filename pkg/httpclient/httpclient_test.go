package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPost(t *testing.T) {
	var (
		gotPath   string
		gotQuery  string
		gotHeader string
		gotBody   string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath, gotQuery, gotHeader, gotBody = r.URL.Path, r.URL.RawQuery, r.Header.Get("X-Token"), string(body)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client, err := New(server.URL+"/hooks?source=auction", Config{Headers: map[string]string{"X-Token": "secret"}})
	require.NoError(t, err)

	resp, err := client.Post(context.Background(), "events", RequestOptions{Body: []byte(`{"type":"sale.added"}`)})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "/hooks/events", gotPath)
	assert.Equal(t, "source=auction", gotQuery)
	assert.Equal(t, "secret", gotHeader)
	assert.JSONEq(t, `{"type":"sale.added"}`, gotBody)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, resp.UnmarshalBody(&out))
	assert.True(t, out.OK)
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, err := New(server.URL, Config{Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "", RequestOptions{})
	assert.Error(t, err)
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New("/relative")
	assert.Error(t, err)
}
