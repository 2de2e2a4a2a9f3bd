package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gaze-network/auction-network/modules/auction/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierDeliversWithRetry(t *testing.T) {
	var calls atomic.Int32
	received := make(chan Notification, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var notification Notification
		if err := json.Unmarshal(body, &notification); err == nil {
			received <- notification
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n, err := New(config.WebhookConfig{URL: server.URL, MaxRetries: 2})
	require.NoError(t, err)
	n.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- n.Run(ctx) }()

	n.Publish(ctx, TypeSaleAdded, map[string]string{"lotNumber": "7"})

	select {
	case notification := <-received:
		assert.Equal(t, TypeSaleAdded, notification.Type)
		assert.NotEmpty(t, notification.ID)
		assert.Equal(t, map[string]any{"lotNumber": "7"}, notification.Data)
	case <-time.After(5 * time.Second):
		t.Fatal("notification was not delivered")
	}
	assert.EqualValues(t, 2, calls.Load())

	cancel()
	assert.NoError(t, <-done)
}

func TestNotifierGivesUpOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	n, err := New(config.WebhookConfig{URL: server.URL, MaxRetries: 3})
	require.NoError(t, err)
	n.backoff = time.Millisecond

	err = n.deliver(context.Background(), Notification{ID: "1", Type: TypeEventPosted})
	assert.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestNotifierDisabled(t *testing.T) {
	n, err := New(config.WebhookConfig{})
	require.NoError(t, err)
	assert.False(t, n.Enabled())

	n.Publish(context.Background(), TypeEventPosted, nil)
	assert.Empty(t, n.queue)
}

func TestNotifierDropsWhenQueueIsFull(t *testing.T) {
	n, err := New(config.WebhookConfig{URL: "http://127.0.0.1:1", QueueSize: 1})
	require.NoError(t, err)

	n.Publish(context.Background(), TypeSaleAdded, nil)
	n.Publish(context.Background(), TypeSaleDeleted, nil)
	require.Len(t, n.queue, 1)
	assert.Equal(t, TypeSaleAdded, (<-n.queue).Type)
}
