package stream

import (
	"context"

	"github.com/kotani6053/nakatu.yasumi/internal/record"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ChangedChannel carries change pings between instances. The payload is
// irrelevant: receivers reload the snapshot from the database.
const ChangedChannel = "leaveboard.records.changed"

// Bridge connects the write path to the hub. Local mutations publish a ping
// to Redis; every instance (including the one that wrote) receives it,
// reloads the snapshot and broadcasts. Without Redis the bridge degrades to
// in-process reloads.
type Bridge struct {
	rdb    *redis.Client
	repo   record.Repository
	hub    *Hub
	sf     singleflight.Group
	logger *zap.Logger
}

func NewBridge(rdb *redis.Client, repo record.Repository, hub *Hub, logger ...*zap.Logger) *Bridge {
	l := zap.L().Named("stream.bridge")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stream.bridge")
	}
	return &Bridge{rdb: rdb, repo: repo, hub: hub, logger: l}
}

// RecordsChanged implements record.ChangeNotifier. It must return quickly:
// the reload happens on the subscriber side of the pub/sub channel.
func (b *Bridge) RecordsChanged(ctx context.Context) {
	if b.rdb == nil {
		b.reload(ctx)
		return
	}

	if err := b.rdb.Publish(ctx, ChangedChannel, "changed").Err(); err != nil {
		b.logger.Error("publish change ping failed", zap.Error(err))
		// Fall back to a local reload so this instance's subscribers
		// still see the change.
		b.reload(ctx)
	}
}

// Run blocks consuming change pings until the context is cancelled. Call it
// in its own goroutine.
func (b *Bridge) Run(ctx context.Context) {
	if b.rdb == nil {
		<-ctx.Done()
		return
	}

	pubsub := b.rdb.Subscribe(ctx, ChangedChannel)
	defer pubsub.Close()

	b.logger.Info("change bridge started", zap.String("channel", ChangedChannel))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("change bridge stopped")
			return
		case _, ok := <-ch:
			if !ok {
				b.logger.Warn("change channel closed")
				return
			}
			b.reload(ctx)
		}
	}
}

// reload fetches the snapshot once even when pings arrive in bursts.
func (b *Bridge) reload(ctx context.Context) {
	_, err, _ := b.sf.Do("snapshot", func() (interface{}, error) {
		records, err := b.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		b.hub.Broadcast(record.ToResponses(records))
		return nil, nil
	})
	if err != nil {
		b.logger.Error("snapshot reload failed", zap.Error(err))
	}
}
