// Package notify runs the due-soon scanner: on an interval it finds every
// incomplete todo whose deadline falls inside the due window and emits a
// notification for its owner.
package notify

import (
	"context"
	"fmt"
	"time"

	dom "github.com/vedp205/chronos-home/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Message is the fixed notification text for items inside the due window.
const Message = "due in less than an hour"

// Mode controls re-notification inside the window.
type Mode string

const (
	// ModeRepeat emits again on every scan while the item stays in the
	// window (at-least-once, the original dashboard behavior).
	ModeRepeat Mode = "repeat"
	// ModeOnce emits a single notification per todo per deadline.
	ModeOnce Mode = "once"
)

// TodoSource lists todos due inside a window, across all users.
type TodoSource interface {
	DueWithinAll(ctx context.Context, window time.Duration) ([]dom.Todo, error)
}

// Sink receives emitted notifications.
type Sink interface {
	Create(ctx context.Context, n dom.Notification) (dom.Notification, error)
}

// Deduper claims a todo's deadline so ModeOnce emits it only once.
type Deduper interface {
	TryClaim(ctx context.Context, t dom.Todo) (bool, error)
}

// Notifier is the interval scanner.
type Notifier struct {
	source   TodoSource
	sink     Sink
	dedup    Deduper
	mode     Mode
	window   time.Duration
	interval time.Duration
	log      *zap.Logger
}

// New returns a Notifier. dedup may be nil when mode is ModeRepeat.
func New(source TodoSource, sink Sink, dedup Deduper, mode Mode, window, interval time.Duration, log *zap.Logger) *Notifier {
	if window <= 0 {
		window = time.Hour
	}
	if interval <= 0 {
		interval = time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{source: source, sink: sink, dedup: dedup, mode: mode, window: window, interval: interval, log: log}
}

// Run scans on the configured interval until ctx is canceled. Scan failures
// are logged and do not stop the loop.
func (n *Notifier) Run(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()
	n.log.Info("notifier started",
		zap.Duration("interval", n.interval),
		zap.Duration("window", n.window),
		zap.String("mode", string(n.mode)))
	for {
		select {
		case <-ctx.Done():
			n.log.Info("notifier stopped")
			return
		case <-ticker.C:
			if err := n.Scan(ctx); err != nil {
				n.log.Warn("due-soon scan failed", zap.Error(err))
			}
		}
	}
}

// Scan performs one pass: every due-soon todo produces a notification,
// subject to the mode's dedup rule.
func (n *Notifier) Scan(ctx context.Context) error {
	due, err := n.source.DueWithinAll(ctx, n.window)
	if err != nil {
		return fmt.Errorf("list due todos: %w", err)
	}
	var emitted int
	for _, t := range due {
		if n.mode == ModeOnce && n.dedup != nil {
			claimed, err := n.dedup.TryClaim(ctx, t)
			if err != nil {
				n.log.Warn("dedup claim failed", zap.Int64("todo_id", t.ID), zap.Error(err))
				continue
			}
			if !claimed {
				continue
			}
		}
		_, err := n.sink.Create(ctx, dom.Notification{
			UserID:  t.UserID,
			TodoID:  t.ID,
			Title:   t.Title,
			Message: Message,
		})
		if err != nil {
			n.log.Warn("emit notification failed", zap.Int64("todo_id", t.ID), zap.Error(err))
			continue
		}
		emitted++
	}
	if emitted > 0 {
		n.log.Info("due-soon notifications emitted", zap.Int("count", emitted))
	}
	return nil
}

// RedisDeduper claims deadlines with SETNX. The claim key carries the due
// timestamp, so rescheduling a todo's deadline notifies again, and it
// expires once the deadline passes.
type RedisDeduper struct {
	rdb *redis.Client
}

func NewRedisDeduper(rdb *redis.Client) *RedisDeduper {
	return &RedisDeduper{rdb: rdb}
}

func (d *RedisDeduper) TryClaim(ctx context.Context, t dom.Todo) (bool, error) {
	if t.DueAt == nil {
		return false, nil
	}
	key := fmt.Sprintf("notify:once:%d:%d", t.ID, t.DueAt.Unix())
	ttl := time.Until(*t.DueAt)
	if ttl <= 0 {
		return false, nil
	}
	return d.rdb.SetNX(ctx, key, "1", ttl).Result()
}
