package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz-assign/internal/cache"
	"quiz-assign/internal/domain"
)

const (
	sessionServiceName = "assignment"
	sessionObjectType  = "session"
	lockObjectType     = "lock"

	// DefaultSessionTTL bounds how long an abandoned session survives.
	DefaultSessionTTL = 2 * time.Hour
	// submitLockTTL releases the loading flag if a process dies mid-submit.
	submitLockTTL = 5 * time.Minute
)

// CacheSessionStore implements domain.SessionStore on top of domain.Cache.
type CacheSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewCacheSessionStore creates a session store; a non-positive ttl uses DefaultSessionTTL.
func NewCacheSessionStore(c domain.Cache, ttl time.Duration) domain.SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &CacheSessionStore{cache: c, ttl: ttl}
}

func sessionKey(id string) string {
	return cache.GenerateCacheKey(sessionServiceName, sessionObjectType, id)
}

func lockKey(id string) string {
	return cache.GenerateCacheKey(sessionServiceName, lockObjectType, id)
}

// Save implements domain.SessionStore
func (s *CacheSessionStore) Save(ctx context.Context, session *domain.AssignmentSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal assignment session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKey(session.ID), string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to save assignment session %s: %w", session.ID, err)
	}
	return nil
}

// Get implements domain.SessionStore
func (s *CacheSessionStore) Get(ctx context.Context, id string) (*domain.AssignmentSession, error) {
	data, err := s.cache.Get(ctx, sessionKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load assignment session %s: %w", id, err)
	}

	var session domain.AssignmentSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignment session %s: %w", id, err)
	}
	return &session, nil
}

// Delete implements domain.SessionStore
func (s *CacheSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("failed to delete assignment session %s: %w", id, err)
	}
	return nil
}

// AcquireSubmitLock implements domain.SessionStore
func (s *CacheSessionStore) AcquireSubmitLock(ctx context.Context, id string) (bool, error) {
	ok, err := s.cache.SetNX(ctx, lockKey(id), "1", submitLockTTL)
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit lock for session %s: %w", id, err)
	}
	return ok, nil
}

// ReleaseSubmitLock implements domain.SessionStore
func (s *CacheSessionStore) ReleaseSubmitLock(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, lockKey(id)); err != nil {
		return fmt.Errorf("failed to release submit lock for session %s: %w", id, err)
	}
	return nil
}
