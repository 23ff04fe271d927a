package cache

import (
	"testing"
	"time"
)

func TestSetGetAndExpire(t *testing.T) {
	c := New(10)
	key := "what is the refund policy?"

	if _, ok := c.Get(key); ok {
		t.Fatalf("expected no value initially")
	}

	// sub-second TTLs must be honored, not rounded to whole seconds
	c.Set(key, "30 days, no questions asked", 50*time.Millisecond)
	if v, ok := c.Get(key); !ok || v != "30 days, no questions asked" {
		t.Fatalf("expected cached answer, got %q ok=%v", v, ok)
	}

	time.Sleep(80 * time.Millisecond)
	if _, ok := c.Get(key); ok {
		t.Fatalf("expected expired answer to be gone")
	}
}

func TestEntryServedUntilDeadline(t *testing.T) {
	c := New(10)
	c.Set("q", "a", 500*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	if _, ok := c.Get("q"); !ok {
		t.Fatalf("entry expired before its deadline")
	}
}

func TestDelete(t *testing.T) {
	c := New(10)
	key := "to be deleted"
	c.Set(key, "answer", time.Second)
	if _, ok := c.Get(key); !ok {
		t.Fatalf("expected answer present before delete")
	}
	c.Delete(key)
	if _, ok := c.Get(key); ok {
		t.Fatalf("expected deleted answer to be absent")
	}
}

func TestLRUEviction(t *testing.T) {
	c := New(2)
	c.Set("a", "1", 0)
	c.Set("b", "2", 0)

	// touch "a" so "b" becomes the LRU entry
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a present")
	}
	c.Set("c", "3", 0)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected LRU entry b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected recently used a to survive")
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
}

func TestDistinctQuestionsNeverShareAnswers(t *testing.T) {
	c := New(10)
	c.Set("what is the refund window?", "30 days", 0)
	c.Set("what is the return address?", "PO Box 7", 0)

	if v, ok := c.Get("what is the refund window?"); !ok || v != "30 days" {
		t.Fatalf("refund question got %q ok=%v", v, ok)
	}
	if v, ok := c.Get("what is the return address?"); !ok || v != "PO Box 7" {
		t.Fatalf("address question got %q ok=%v", v, ok)
	}
	if _, ok := c.Get("what is the refund policy?"); ok {
		t.Fatalf("unstored question must miss, not borrow another answer")
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *AnswerCache
	c.Set("k", "v", time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("nil cache must not return values")
	}
	c.Delete("k")
	if c.Len() != 0 {
		t.Fatalf("nil cache has no entries")
	}
}
