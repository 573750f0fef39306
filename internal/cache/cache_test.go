package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	a := Key("wikidata", "Q937")
	b := Key("wikidata", "Q937")
	c := Key("wikipedia", "Q937")

	if a != b {
		t.Error("same inputs should produce the same key")
	}
	if a == c {
		t.Error("different kinds should produce different keys")
	}
	if len(a) == 0 {
		t.Error("key must not be empty")
	}
}

func testCacheRoundTrip(t *testing.T, c Cache) {
	t.Helper()

	if _, found := c.Get("missing"); found {
		t.Error("Get on empty cache should miss")
	}

	value := []byte(`{"title":"Albert Einstein"}`)
	if err := c.Set("k", value, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, found := c.Get("k")
	if !found {
		t.Fatal("Get after Set should hit")
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get = %q, want %q", got, value)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Get after Delete should miss")
	}

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Get after Clear should miss")
	}
}

func TestMemory(t *testing.T) {
	testCacheRoundTrip(t, NewMemory(time.Minute, time.Minute))
}

func TestDisk(t *testing.T) {
	testCacheRoundTrip(t, NewDisk(t.TempDir(), time.Minute))
}

func TestDiskExpiry(t *testing.T) {
	d := NewDisk(t.TempDir(), time.Minute)
	if err := d.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := d.Get("k"); found {
		t.Error("expired entry should miss")
	}
}

func TestDiskSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	first := NewDisk(dir, time.Minute)
	if err := first.Set("k", []byte("persisted"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	second := NewDisk(dir, time.Minute)
	got, found := second.Get("k")
	if !found || string(got) != "persisted" {
		t.Errorf("reopened cache Get = %q, %v", got, found)
	}
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("nop cache should never hit")
	}
}
