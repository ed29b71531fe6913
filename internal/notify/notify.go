package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz-assign/internal/cache"
	"quiz-assign/internal/domain"
	"quiz-assign/internal/logger"

	"go.uber.org/zap"
)

const (
	feedServiceName = "notification"
	feedObjectType  = "feed"

	// FeedSize is the number of notifications kept per teacher.
	FeedSize = 20
	// FeedTTL expires feeds of teachers that stopped using the app.
	FeedTTL = 7 * 24 * time.Hour
)

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify implements domain.Notifier
func (l *LogNotifier) Notify(ctx context.Context, actorID string, n domain.Notification) error {
	fields := []zap.Field{
		zap.String("actor_id", actorID),
		zap.String("severity", string(n.Severity)),
		zap.String("title", n.Title),
		zap.String("description", n.Description),
	}
	if n.Severity == domain.SeverityDestructive {
		logger.Get().Warn("Notification", fields...)
	} else {
		logger.Get().Info("Notification", fields...)
	}
	return nil
}

// CacheNotifier keeps the most recent notifications of each teacher in a cache list.
type CacheNotifier struct {
	cache domain.Cache
}

// NewCacheNotifier creates a CacheNotifier backed by c.
func NewCacheNotifier(c domain.Cache) *CacheNotifier {
	return &CacheNotifier{cache: c}
}

func feedKey(actorID string) string {
	return cache.GenerateCacheKey(feedServiceName, feedObjectType, actorID)
}

// Notify implements domain.Notifier
func (c *CacheNotifier) Notify(ctx context.Context, actorID string, n domain.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	key := feedKey(actorID)
	if err := c.cache.LPush(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}
	if err := c.cache.LTrim(ctx, key, 0, FeedSize-1); err != nil {
		return fmt.Errorf("failed to trim notification feed: %w", err)
	}
	if err := c.cache.Expire(ctx, key, FeedTTL); err != nil {
		return fmt.Errorf("failed to set notification feed expiry: %w", err)
	}
	return nil
}

// Recent returns the teacher's notifications, newest first. Entries that cannot be
// decoded are skipped.
func (c *CacheNotifier) Recent(ctx context.Context, actorID string) ([]domain.Notification, error) {
	values, err := c.cache.LRange(ctx, feedKey(actorID), 0, FeedSize-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read notification feed: %w", err)
	}

	out := make([]domain.Notification, 0, len(values))
	for _, v := range values {
		var n domain.Notification
		if err := json.Unmarshal([]byte(v), &n); err != nil {
			logger.Get().Warn("Skipping malformed notification", zap.String("actor_id", actorID), zap.Error(err))
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

// MultiNotifier delivers each notification to every wrapped notifier.
type MultiNotifier struct {
	notifiers []domain.Notifier
}

// NewMultiNotifier fans out to notifiers in order.
func NewMultiNotifier(notifiers ...domain.Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

// Notify implements domain.Notifier. Every notifier is called even when an earlier
// one fails; the failures are joined.
func (m *MultiNotifier) Notify(ctx context.Context, actorID string, n domain.Notification) error {
	var errs []error
	for _, notifier := range m.notifiers {
		if err := notifier.Notify(ctx, actorID, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
