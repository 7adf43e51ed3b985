package producer

import (
	"context"
	"time"

	"go-encash/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const batchSize = 50

// ProcessOutboxEvents drains due outbox rows into Kafka until ctx is done.
// Rows that fail to publish are marked for retry and picked up again once
// their backoff elapses.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := drainBatch(ctx, repo, writer, log); err != nil {
				log.Error("outbox batch failed", zap.Error(err))
			}
		}
	}
}

func drainBatch(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	log *zap.Logger,
) error {
	due, err := repo.ListDue(ctx, batchSize)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	var sent, failed int
	for _, event := range due {
		if err := publishEvent(ctx, writer, event); err != nil {
			failed++
			log.Error("publish decision event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// Event terkirim tapi status gagal di-update; row akan terkirim
			// ulang. Consumer harus idempotent terhadap duplikat.
			log.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	log.Info("outbox batch drained",
		zap.Int("due", len(due)),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)

	return nil
}
