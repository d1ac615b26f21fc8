package cache

import (
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	got := Key("u1", "personalized", "g1", "10", "")
	want := "u1|personalized|g1|10|"
	if got != want {
		t.Errorf("Key = %q, want %q", got, want)
	}
}

func TestMemory_SetGet(t *testing.T) {
	c := NewMemory()
	c.Set("u1|k", 42, time.Minute)

	v, ok := c.Get("u1|k")
	if !ok {
		t.Fatal("expected hit")
	}
	if v.(int) != 42 {
		t.Errorf("value = %v, want 42", v)
	}

	if _, ok := c.Get("u1|missing"); ok {
		t.Error("unexpected hit for missing key")
	}
}

func TestMemory_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewMemoryAt(clock)

	c.Set("u1|k", "v", 5*time.Minute)
	if _, ok := c.Get("u1|k"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(5*time.Minute + time.Second)
	if _, ok := c.Get("u1|k"); ok {
		t.Error("expected miss after expiry")
	}
}

func TestMemory_ZeroTTLNotStored(t *testing.T) {
	c := NewMemory()
	c.Set("u1|k", "v", 0)
	if _, ok := c.Get("u1|k"); ok {
		t.Error("zero-TTL entry should not be stored")
	}
}

func TestMemory_InvalidateUser(t *testing.T) {
	c := NewMemory()
	c.Set(Key("u1", "personalized"), 1, time.Minute)
	c.Set(Key("u1", "reviews"), 2, time.Minute)
	c.Set(Key("u2", "personalized"), 3, time.Minute)

	c.InvalidateUser("u1")

	if _, ok := c.Get(Key("u1", "personalized")); ok {
		t.Error("u1 entry survived invalidation")
	}
	if _, ok := c.Get(Key("u1", "reviews")); ok {
		t.Error("u1 entry survived invalidation")
	}
	if _, ok := c.Get(Key("u2", "personalized")); !ok {
		t.Error("u2 entry dropped by u1 invalidation")
	}
}

func TestMemory_InvalidateUserPrefixBoundary(t *testing.T) {
	c := NewMemory()
	c.Set(Key("u1", "personalized"), 1, time.Minute)
	c.Set(Key("u12", "personalized"), 2, time.Minute)

	c.InvalidateUser("u1")

	if _, ok := c.Get(Key("u12", "personalized")); !ok {
		t.Error("u12 entry dropped by u1 invalidation")
	}
}

func TestMemory_Purge(t *testing.T) {
	c := NewMemory()
	c.Set(Key("u1", "a"), 1, time.Minute)
	c.Set(Key("u2", "b"), 2, time.Minute)

	c.Purge()

	if _, ok := c.Get(Key("u1", "a")); ok {
		t.Error("entry survived purge")
	}
	if _, ok := c.Get(Key("u2", "b")); ok {
		t.Error("entry survived purge")
	}
}

func TestMemory_SweepOnSet(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewMemoryAt(clock)

	c.Set("u1|old", "v", time.Minute)
	now = now.Add(2 * time.Minute)
	c.Set("u1|new", "v", time.Minute)

	c.mu.RLock()
	_, oldPresent := c.entries["u1|old"]
	c.mu.RUnlock()
	if oldPresent {
		t.Error("expired entry not swept on write")
	}
}
