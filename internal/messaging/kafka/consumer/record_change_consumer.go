package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kotani6053/nakatu.yasumi/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MonthInvalidator drops a cached calendar month. Implemented by the view
// package's day-count cache.
type MonthInvalidator interface {
	Invalidate(ctx context.Context, year, month int) error
}

// ConsumeRecordChanges reads record-changed events and invalidates the cached
// day counts for every month the record touches, so instances that did not
// handle the mutation stop serving stale counts.
func ConsumeRecordChanges(
	ctx context.Context,
	reader *kafkago.Reader,
	cache MonthInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.record_changes")
	log.Info("record change consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("record change consumer stopped")
				return
			}
			log.Error("fetch record change message failed", zap.Error(err))
			continue
		}

		var event events.RecordChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode record change event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		for _, m := range affectedMonths(event) {
			if err := cache.Invalidate(ctx, m.year, m.month); err != nil {
				log.Error("invalidate day counts failed",
					zap.Int("year", m.year),
					zap.Int("month", m.month),
					zap.Error(err),
				)
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit record change message failed", zap.Error(err))
			continue
		}

		log.Debug("record change processed",
			zap.String("event_type", event.EventType),
			zap.String("record_id", event.RecordID),
		)
	}
}

type yearMonth struct {
	year  int
	month int
}

// affectedMonths lists every calendar month the event's day coverage touches.
func affectedMonths(event events.RecordChangedEvent) []yearMonth {
	if event.Date != nil {
		if d, err := time.Parse("2006-01-02", *event.Date); err == nil {
			return []yearMonth{{d.Year(), int(d.Month())}}
		}
		return nil
	}

	if event.StartDate == nil || event.EndDate == nil {
		return nil
	}
	start, err := time.Parse("2006-01-02", *event.StartDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01-02", *event.EndDate)
	if err != nil {
		return nil
	}

	months := make([]yearMonth, 0, 2)
	for d := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !d.After(end); d = d.AddDate(0, 1, 0) {
		months = append(months, yearMonth{d.Year(), int(d.Month())})
	}
	return months
}
