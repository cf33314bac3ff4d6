package store

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func newClockedStore() (*Store, *time.Time) {
	now := time.Unix(1700000000, 0)
	s := NewWithClock(func() time.Time { return now })
	return s, &now
}

func TestSetGetDelete(t *testing.T) {
	s := New()
	s.Set("key1", "value1")

	got, err := s.Get("key1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "value1" {
		t.Fatalf("unexpected value: %q", got)
	}

	if removed := s.Delete("key1", "missing"); removed != 1 {
		t.Fatalf("expected 1 removal, got %d", removed)
	}
	if _, err := s.Get("key1"); !errors.Is(err, ErrNoSuchKey) {
		t.Fatalf("expected ErrNoSuchKey, got %v", err)
	}
}

func TestExistsAndType(t *testing.T) {
	s := New()
	s.Set("key1", "value1")

	if !s.Exists("key1") {
		t.Fatalf("key1 should exist")
	}
	if s.Exists("missing") {
		t.Fatalf("missing should not exist")
	}

	kind, err := s.Type("key1")
	if err != nil {
		t.Fatalf("type failed: %v", err)
	}
	if kind != "string" {
		t.Fatalf("unexpected type: %q", kind)
	}
	if _, err := s.Type("missing"); !errors.Is(err, ErrNoSuchKey) {
		t.Fatalf("expected ErrNoSuchKey, got %v", err)
	}
}

func TestKeysGlob(t *testing.T) {
	s := New()
	s.Set("user:1", "a")
	s.Set("user:2", "b")
	s.Set("session:1", "c")

	got, err := s.Keys("user:*")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"user:1", "user:2"}) {
		t.Fatalf("unexpected keys: %v", got)
	}

	if _, err := s.Keys("[bad"); err == nil {
		t.Fatalf("expected error for malformed pattern")
	}
}

func TestExpiryLifecycle(t *testing.T) {
	s, now := newClockedStore()
	s.Set("key1", "value1")

	if ttl := s.TTL("key1"); ttl != -1 {
		t.Fatalf("expected -1 without expiry, got %d", ttl)
	}
	if ttl := s.TTL("missing"); ttl != -2 {
		t.Fatalf("expected -2 for missing key, got %d", ttl)
	}

	if !s.Expire("key1", 60) {
		t.Fatalf("expire should succeed")
	}
	if ttl := s.TTL("key1"); ttl != 60 {
		t.Fatalf("expected 60s ttl, got %d", ttl)
	}

	*now = now.Add(61 * time.Second)
	if s.Exists("key1") {
		t.Fatalf("key1 should have expired")
	}
	if ttl := s.TTL("key1"); ttl != -2 {
		t.Fatalf("expired key should report -2, got %d", ttl)
	}
}

func TestPersistRemovesExpiry(t *testing.T) {
	s, now := newClockedStore()
	s.Set("key1", "value1")
	s.Expire("key1", 60)

	if !s.Persist("key1") {
		t.Fatalf("persist should succeed")
	}
	*now = now.Add(2 * time.Hour)
	if !s.Exists("key1") {
		t.Fatalf("persisted key must not expire")
	}
	if s.Persist("key1") {
		t.Fatalf("persist without expiry should report false")
	}
}

func TestIncrBy(t *testing.T) {
	s := New()

	n, err := s.IncrBy("counter", 1)
	if err != nil {
		t.Fatalf("incr on missing key failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}

	if n, _ = s.IncrBy("counter", -3); n != -2 {
		t.Fatalf("expected -2, got %d", n)
	}

	s.Set("text", "not-a-number")
	if _, err := s.IncrBy("text", 1); !errors.Is(err, ErrNotInteger) {
		t.Fatalf("expected ErrNotInteger, got %v", err)
	}
}

func TestAppendStrlenRename(t *testing.T) {
	s := New()

	if n := s.Append("key1", "abc"); n != 3 {
		t.Fatalf("expected length 3, got %d", n)
	}
	if n := s.Append("key1", "def"); n != 6 {
		t.Fatalf("expected length 6, got %d", n)
	}
	if n := s.Strlen("key1"); n != 6 {
		t.Fatalf("expected strlen 6, got %d", n)
	}

	if err := s.Rename("key1", "key2"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if s.Exists("key1") {
		t.Fatalf("old key should be gone")
	}
	got, _ := s.Get("key2")
	if got != "abcdef" {
		t.Fatalf("unexpected value after rename: %q", got)
	}
	if err := s.Rename("missing", "x"); !errors.Is(err, ErrNoSuchKey) {
		t.Fatalf("expected ErrNoSuchKey, got %v", err)
	}
}

func TestDBSizeFlushAllRandomKey(t *testing.T) {
	s := New()
	if _, err := s.RandomKey(); !errors.Is(err, ErrEmptyStore) {
		t.Fatalf("expected ErrEmptyStore, got %v", err)
	}

	s.Set("key1", "a")
	s.Set("key2", "b")
	if n := s.DBSize(); n != 2 {
		t.Fatalf("expected 2 keys, got %d", n)
	}

	key, err := s.RandomKey()
	if err != nil {
		t.Fatalf("randomkey failed: %v", err)
	}
	if !s.Exists(key) {
		t.Fatalf("randomkey returned missing key %q", key)
	}

	s.FlushAll()
	if n := s.DBSize(); n != 0 {
		t.Fatalf("expected empty store, got %d keys", n)
	}
}

func TestDumpAndInfo(t *testing.T) {
	s, _ := newClockedStore()
	s.Set("key1", "value1")
	s.Set("key2", "value2")
	s.Expire("key2", 60)

	raw, err := s.Dump("key1")
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if string(raw) != "value1" {
		t.Fatalf("unexpected dump payload: %q", raw)
	}
	if _, err := s.Dump("missing"); !errors.Is(err, ErrNoSuchKey) {
		t.Fatalf("expected ErrNoSuchKey, got %v", err)
	}

	info := s.Info()
	want := map[string]string{"keys": "2", "volatile": "1", "channels": "0"}
	if !reflect.DeepEqual(info, want) {
		t.Fatalf("unexpected info: %v", info)
	}
}

func TestPubSubSurface(t *testing.T) {
	s := New()

	if n := s.Publish("events", "msg"); n != 0 {
		t.Fatalf("expected no subscribers, got %d", n)
	}
	if n := s.Subscribe("events"); n != 1 {
		t.Fatalf("expected 1 subscriber, got %d", n)
	}
	if n := s.Publish("events", "msg"); n != 1 {
		t.Fatalf("expected 1 delivery, got %d", n)
	}
	if got := s.Channels(); !reflect.DeepEqual(got, []string{"events"}) {
		t.Fatalf("unexpected channels: %v", got)
	}
}

func TestFromURLRefused(t *testing.T) {
	s := New()
	if err := s.FromURL("kv://localhost:6379/0"); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
}
