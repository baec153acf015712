package lock

import (
	"context"
	"sync"
	"time"

	"florist/internal/domain/service"
)

type localEntry struct {
	token     uint64
	expiresAt time.Time
}

// localLocker is an in-process lock used when Redis is not configured.
// It only serialises callers within one replica.
type localLocker struct {
	mu      sync.Mutex
	entries map[string]localEntry
	next    uint64
	now     func() time.Time
}

// NewLocalLocker creates an in-process locker with TTL expiry.
func NewLocalLocker() service.IntentLocker {
	return &localLocker{
		entries: make(map[string]localEntry),
		now:     time.Now,
	}
}

func (l *localLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if entry, held := l.entries[key]; held && now.Before(entry.expiresAt) {
		return nil, false, nil
	}

	l.next++
	token := l.next
	l.entries[key] = localEntry{token: token, expiresAt: now.Add(ttl)}

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if entry, held := l.entries[key]; held && entry.token == token {
			delete(l.entries, key)
		}

		return nil
	}

	return release, true, nil
}
