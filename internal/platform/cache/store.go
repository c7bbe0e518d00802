package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Recorder observes lookups. The metrics package satisfies it.
type Recorder interface {
	RecordCacheLookup(store string, hit bool)
}

type Option func(*Store)

// WithName labels the store in recorded lookups.
func WithName(name string) Option {
	return func(s *Store) {
		if strings.TrimSpace(name) != "" {
			s.name = name
		}
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(s *Store) {
		s.recorder = recorder
	}
}

// WithMaxEntries bounds the store. When full, expired entries are dropped
// first and then the entry closest to expiry.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is an in-process TTL cache with per-key load deduplication.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	name       string
	recorder   Recorder
	flight     singleflight.Group
	now        func() time.Time
	// generations counts invalidations per prefix. A load only stores its
	// result when no invalidation covering its key ran while it was loading.
	generations map[string]uint64
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		entries:     make(map[string]entry),
		ttl:         ttl,
		name:        "default",
		now:         time.Now,
		generations: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(e, s.now()) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && s.expired(current, s.now()) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.setLocked(key, value)
	s.mu.Unlock()
}

func (s *Store) setLocked(key string, value any) {
	now := s.now()
	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = now.Add(s.ttl)
	}
	if _, exists := s.entries[key]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.evictLocked(now)
	}
	s.entries[key] = entry{value: value, expiresAt: expiresAt}
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.generations[key]++
	s.mu.Unlock()
}

// DeletePrefix drops every key starting with one of prefixes. Loads of those
// keys already in flight still return to their callers but are not stored.
func (s *Store) DeletePrefix(_ context.Context, prefixes ...string) {
	s.mu.Lock()
	for _, prefix := range prefixes {
		if prefix != "" {
			s.generations[prefix]++
		}
	}
	for key := range s.entries {
		for _, prefix := range prefixes {
			if prefix != "" && strings.HasPrefix(key, prefix) {
				delete(s.entries, key)
				break
			}
		}
	}
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value for key, calling loader at most once
// per key across concurrent callers on a miss. Loader errors are not cached.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		s.record(true)
		return value, nil
	}
	s.record(false)

	s.mu.RLock()
	gen := s.generationLocked(key)
	s.mu.RUnlock()

	// Callers arriving after an invalidation must not join a load that
	// started before it.
	flightKey := key + "@" + strconv.FormatUint(gen, 10)
	value, err, _ := s.flight.Do(flightKey, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.storeIfCurrent(key, loaded, gen)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) storeIfCurrent(key string, value any, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generationLocked(key) != gen {
		return
	}
	s.setLocked(key, value)
}

// generationLocked sums the counters of every invalidated prefix of key. The
// counters only grow, so any invalidation changes the sum.
func (s *Store) generationLocked(key string) uint64 {
	var gen uint64
	for prefix, n := range s.generations {
		if strings.HasPrefix(key, prefix) {
			gen += n
		}
	}
	return gen
}

func (s *Store) expired(e entry, now time.Time) bool {
	return s.ttl > 0 && !e.expiresAt.After(now)
}

func (s *Store) evictLocked(now time.Time) {
	for key, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, key)
		}
	}
	if len(s.entries) < s.maxEntries {
		return
	}

	var (
		victim string
		oldest time.Time
	)
	for key, e := range s.entries {
		if victim == "" || e.expiresAt.Before(oldest) {
			victim = key
			oldest = e.expiresAt
		}
	}
	delete(s.entries, victim)
}

func (s *Store) record(hit bool) {
	if s.recorder != nil {
		s.recorder.RecordCacheLookup(s.name, hit)
	}
}
