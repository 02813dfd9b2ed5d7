package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-workflow/internal/events"
	"go-workflow/internal/notification"
)

// RequestLifecycleConsumer turns lifecycle events into user notifications.
// Offsets are committed only after the event is stored, so a crash replays
// rather than loses events.
type RequestLifecycleConsumer struct {
	reader        *kafkago.Reader
	notifications notification.Service
	logger        *zap.Logger
}

func NewRequestLifecycleConsumer(
	brokers []string,
	groupID string,
	notifications notification.Service,
	logger *zap.Logger,
) *RequestLifecycleConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   events.RequestLifecycleTopic,
	})

	return &RequestLifecycleConsumer{
		reader:        reader,
		notifications: notifications,
		logger:        logger.Named("kafka.consumer.lifecycle"),
	}
}

// Run blocks until ctx is cancelled or the reader is closed.
func (c *RequestLifecycleConsumer) Run(ctx context.Context) error {
	c.logger.Info("lifecycle consumer started", zap.String("topic", events.RequestLifecycleTopic))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				c.logger.Info("lifecycle consumer stopped")
				return nil
			}
			return err
		}

		if err := c.handle(ctx, msg); err != nil {
			// Leave the offset uncommitted; the group rebalance or the next
			// fetch delivers it again.
			c.logger.Error("handle lifecycle event failed",
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("commit offset failed", zap.Error(err))
		}
	}
}

func (c *RequestLifecycleConsumer) Close() error {
	return c.reader.Close()
}

func (c *RequestLifecycleConsumer) handle(ctx context.Context, msg kafkago.Message) error {
	var event events.RequestLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// Poison message: log and move on, redelivery will not fix it.
		c.logger.Warn("undecodable lifecycle event",
			zap.String("key", string(msg.Key)),
			zap.Error(err),
		)
		return nil
	}

	c.logger.Debug("lifecycle event received",
		zap.String("event_type", event.EventType),
		zap.String("request_id", event.RequestID),
	)
	return c.notifications.RecordLifecycleEvent(ctx, event)
}
