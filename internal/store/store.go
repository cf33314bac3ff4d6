// Package store is an in-memory key-value backend standing in for the
// external store connection the console administers. It is safe for
// concurrent use by multiple request handlers.
package store

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strconv"
	"sync"
	"time"
)

var (
	ErrNoSuchKey    = errors.New("no such key")
	ErrNotInteger   = errors.New("value is not an integer")
	ErrEmptyStore   = errors.New("store is empty")
	ErrNotSupported = errors.New("not supported on an open connection")
)

type item struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// Store holds string values keyed by name, with optional expiry
// evaluated lazily against an injectable clock.
type Store struct {
	mu       sync.RWMutex
	data     map[string]item
	channels map[string]int
	now      func() time.Time
}

func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock injects the expiry clock; tests use a fake.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		data:     make(map[string]item),
		channels: make(map[string]int),
		now:      now,
	}
}

// live reports the value at key, dropping it first when expired.
// Callers must hold the write lock.
func (s *Store) live(key string) (item, bool) {
	it, ok := s.data[key]
	if !ok {
		return item{}, false
	}
	if !it.expiresAt.IsZero() && !s.now().Before(it.expiresAt) {
		delete(s.data, key)
		return item{}, false
	}
	return it, true
}

func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = item{value: value}
}

func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.live(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoSuchKey, key)
	}
	return it.value, nil
}

// Delete removes keys and reports how many existed.
func (s *Store) Delete(keys ...string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for _, key := range keys {
		if _, ok := s.live(key); ok {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}

func (s *Store) Exists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live(key)
	return ok
}

// Keys returns every live key matching the glob pattern, sorted.
func (s *Store) Keys(pattern string) ([]string, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]string, 0, len(s.data))
	for key := range s.data {
		if _, ok := s.live(key); !ok {
			continue
		}
		if ok, _ := path.Match(pattern, key); ok {
			matched = append(matched, key)
		}
	}
	sort.Strings(matched)
	return matched, nil
}

func (s *Store) Type(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.live(key); !ok {
		return "", fmt.Errorf("%w: %s", ErrNoSuchKey, key)
	}
	return "string", nil
}

// TTL reports remaining seconds, -1 when the key has no expiry and
// -2 when the key does not exist.
func (s *Store) TTL(key string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.live(key)
	if !ok {
		return -2
	}
	if it.expiresAt.IsZero() {
		return -1
	}
	return int64(it.expiresAt.Sub(s.now()) / time.Second)
}

func (s *Store) Expire(key string, seconds int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.live(key)
	if !ok {
		return false
	}
	it.expiresAt = s.now().Add(time.Duration(seconds) * time.Second)
	s.data[key] = it
	return true
}

func (s *Store) Persist(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.live(key)
	if !ok || it.expiresAt.IsZero() {
		return false
	}
	it.expiresAt = time.Time{}
	s.data[key] = it
	return true
}

func (s *Store) IncrBy(key string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, _ := s.live(key)
	if it.value == "" {
		it.value = "0"
	}
	n, err := strconv.ParseInt(it.value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrNotInteger, key)
	}
	n += delta
	it.value = strconv.FormatInt(n, 10)
	s.data[key] = it
	return n, nil
}

// Append concatenates value onto key and reports the new length.
func (s *Store) Append(key, value string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, _ := s.live(key)
	it.value += value
	s.data[key] = it
	return len(it.value)
}

func (s *Store) Strlen(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, _ := s.live(key)
	return len(it.value)
}

func (s *Store) Rename(oldKey, newKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.live(oldKey)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchKey, oldKey)
	}
	delete(s.data, oldKey)
	s.data[newKey] = it
	return nil
}

func (s *Store) RandomKey() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.data {
		if _, ok := s.live(key); ok {
			return key, nil
		}
	}
	return "", ErrEmptyStore
}

func (s *Store) DBSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for key := range s.data {
		if _, ok := s.live(key); ok {
			count++
		}
	}
	return count
}

func (s *Store) FlushAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]item)
}

// Dump returns the raw bytes stored at key.
func (s *Store) Dump(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.live(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchKey, key)
	}
	return []byte(it.value), nil
}

// Info reports deterministic counters about the store contents.
func (s *Store) Info() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys, volatile := 0, 0
	for key := range s.data {
		it, ok := s.live(key)
		if !ok {
			continue
		}
		keys++
		if !it.expiresAt.IsZero() {
			volatile++
		}
	}
	return map[string]string{
		"keys":     strconv.Itoa(keys),
		"volatile": strconv.Itoa(volatile),
		"channels": strconv.Itoa(len(s.channels)),
	}
}

// Subscribe registers interest in a channel. It exists so the console's
// exclusion set has a real pub/sub control to forbid.
func (s *Store) Subscribe(channel string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels[channel]++
	return s.channels[channel]
}

// Publish reports how many subscribers a message would reach.
func (s *Store) Publish(channel, _ string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.channels[channel]
}

// Channels lists channels with at least one subscriber.
func (s *Store) Channels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.channels))
	for name, count := range s.channels {
		if count > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// FromURL is the connection-factory operation. Opening further
// connections from inside the console is refused unconditionally.
func (s *Store) FromURL(string) error {
	return ErrNotSupported
}
