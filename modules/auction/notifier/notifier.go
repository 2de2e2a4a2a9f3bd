// Package notifier delivers auction domain events to an outbound webhook.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/config"
	"github.com/gaze-network/auction-network/pkg/httpclient"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/logger/slogx"
	"github.com/google/uuid"
)

const (
	TypeEventStatusChanged      = "event.status_changed"
	TypeEventPosted             = "event.posted"
	TypeEnrollmentStatusChanged = "enrollment.status_changed"
	TypeSaleAdded               = "sale.added"
	TypeSaleDeleted             = "sale.deleted"
)

const (
	DefaultQueueSize  = 256
	DefaultMaxRetries = 3
	DefaultTimeout    = 5 * time.Second

	retryBackoff = 200 * time.Millisecond
)

type Notification struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

// Notifier queues notifications and posts them to the webhook from Run.
// Publish never blocks: a full queue drops the notification.
type Notifier struct {
	client     *httpclient.Client
	queue      chan Notification
	maxRetries int
	backoff    time.Duration
}

func New(conf config.WebhookConfig) (*Notifier, error) {
	n := &Notifier{
		queue:      make(chan Notification, utils.Default(conf.QueueSize, DefaultQueueSize)),
		maxRetries: utils.Default(conf.MaxRetries, DefaultMaxRetries),
		backoff:    retryBackoff,
	}
	if conf.URL == "" {
		return n, nil
	}
	client, err := httpclient.New(conf.URL, httpclient.Config{
		Timeout: utils.Default(conf.Timeout, DefaultTimeout),
		Headers: map[string]string{"User-Agent": "auction-network-webhook"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid webhook url")
	}
	n.client = client
	return n, nil
}

func (n *Notifier) Enabled() bool {
	return n.client != nil
}

func (n *Notifier) Publish(ctx context.Context, kind string, data any) {
	if !n.Enabled() {
		logger.DebugContext(ctx, "webhook is not configured, notification discarded", slog.String("type", kind))
		return
	}
	notification := Notification{
		ID:         uuid.NewString(),
		Type:       kind,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
	select {
	case n.queue <- notification:
	default:
		logger.WarnContext(ctx, "webhook queue is full, notification dropped", slog.String("type", kind), slog.String("id", notification.ID))
	}
}

// Run delivers queued notifications until ctx is done.
func (n *Notifier) Run(ctx context.Context) error {
	ctx = logger.WithContext(ctx, slogx.Package("notifier"))
	if !n.Enabled() {
		<-ctx.Done()
		return nil
	}
	logger.InfoContext(ctx, "Started webhook notifier", slog.String("url", n.client.BaseURL().String()))
	for {
		select {
		case <-ctx.Done():
			if len(n.queue) > 0 {
				logger.WarnContext(ctx, "notifier stopped with undelivered notifications", slog.Int("pending", len(n.queue)))
			}
			return nil
		case notification := <-n.queue:
			if err := n.deliver(ctx, notification); err != nil && ctx.Err() == nil {
				logger.ErrorContext(ctx, "failed to deliver notification", err,
					slog.String("type", notification.Type),
					slog.String("id", notification.ID),
				)
			}
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, notification Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return errors.Wrap(err, "can't marshal notification")
	}

	var lastErr error
	for attempt := 0; attempt <= n.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			case <-time.After(n.backoff << (attempt - 1)):
			}
		}

		resp, err := n.client.Post(ctx, "", httpclient.RequestOptions{
			Body:   body,
			Header: map[string]string{"X-Notification-Type": notification.Type},
		})
		if err != nil {
			lastErr = err
			logger.DebugContext(ctx, "webhook request failed", slog.Int("attempt", attempt+1), slogx.Error(err))
			continue
		}
		if resp.IsSuccess() {
			return nil
		}
		lastErr = errors.Errorf("webhook responded with status %d", resp.StatusCode())
		if resp.StatusCode() < 500 && resp.StatusCode() != 429 {
			// the receiver rejected the payload, retrying would not help
			return lastErr
		}
	}
	return errors.Wrapf(lastErr, "gave up after %d attempts", n.maxRetries+1)
}
