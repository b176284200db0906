package cache

import (
	"net/url"
	"testing"
	"time"
)

func TestKeySortsParams(t *testing.T) {
	a := url.Values{"b": []string{"2"}, "a": []string{"1"}}
	b := url.Values{"a": []string{"1"}, "b": []string{"2"}}
	if Key("games", a) != Key("games", b) {
		t.Fatal("expected identical keys for equivalent params")
	}
	if Key("games", nil) != "games" {
		t.Fatalf("unexpected key without params: %q", Key("games", nil))
	}
}

func TestGetReturnsFreshPayload(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", map[string]any{"v": 1})

	payload, ok := c.Get("k")
	if !ok || payload["v"] != 1 {
		t.Fatalf("expected cached payload, got %v ok=%v", payload, ok)
	}
}

func TestGetExpiresAfterTTL(t *testing.T) {
	c := New(time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("k", map[string]any{"v": 1})

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected entry to have expired")
	}
}

func TestGetMissesUnknownKey(t *testing.T) {
	c := New(time.Minute)
	if _, ok := c.Get("absent"); ok {
		t.Fatal("expected miss")
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	c.Set("k", map[string]any{})
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss on nil cache")
	}
}
