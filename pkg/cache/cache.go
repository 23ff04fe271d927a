package cache

import (
	"container/list"
	"sync"
	"time"
)

// AnswerCache holds recent collaborator answers keyed by the question text so
// repeated questions skip the round-trip to the AI engine. Sound because the
// engine answers every question independently of session state. LRU with TTL,
// safe for concurrent use. Questions are short, so the verbatim key costs
// little and cannot collide the way a hash could.
type AnswerCache struct {
	mu       sync.Mutex
	items    map[string]*entry
	order    *list.List // MRU at front, LRU at back
	maxItems int        // 0 = unlimited
}

type entry struct {
	key    string
	answer string
	exp    time.Time // zero = no expiry
	elem   *list.Element
}

func New(maxItems int) *AnswerCache {
	if maxItems < 0 {
		maxItems = 0
	}
	return &AnswerCache{
		items:    make(map[string]*entry),
		order:    list.New(),
		maxItems: maxItems,
	}
}

// Get returns the cached answer and whether it exists and is not expired.
func (c *AnswerCache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[key]
	if !ok {
		return "", false
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		c.removeLocked(e)
		return "", false
	}
	c.order.MoveToFront(e.elem)
	return e.answer, true
}

// Set stores an answer with a TTL. ttl <= 0 means no expiry.
func (c *AnswerCache) Set(key, answer string, ttl time.Duration) {
	if c == nil {
		return
	}
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[key]; ok {
		e.answer = answer
		e.exp = exp
		c.order.MoveToFront(e.elem)
		return
	}
	e := &entry{key: key, answer: answer, exp: exp}
	e.elem = c.order.PushFront(e)
	c.items[key] = e
	if c.maxItems > 0 && c.order.Len() > c.maxItems {
		c.evictLocked()
	}
}

func (c *AnswerCache) Delete(key string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[key]; ok {
		c.removeLocked(e)
	}
}

// Len reports the number of cached entries, expired or not.
func (c *AnswerCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// removeLocked unlinks an entry; caller must hold c.mu.
func (c *AnswerCache) removeLocked(e *entry) {
	c.order.Remove(e.elem)
	delete(c.items, e.key)
}

// evictLocked drops the LRU entry; caller must hold c.mu.
func (c *AnswerCache) evictLocked() {
	back := c.order.Back()
	if back == nil {
		return
	}
	c.removeLocked(back.Value.(*entry))
}
