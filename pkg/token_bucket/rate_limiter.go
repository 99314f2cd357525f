package token_bucket

import (
	"sync"
	"time"
)

/*
алгоритм простой: Allow возвращает true/false, то есть запрос либо принимаем, либо отклоняем.
Токены копятся дробно, поэтому медленная скорость пополнения не теряется на округлении.
*/

type Limiter interface {
	Allow() bool
}

// KeyedLimiter ограничивает поток отдельно для каждого ключа (клиент, IP, вебхук).
type KeyedLimiter interface {
	AllowKey(key string) bool
}

type Clock func() time.Time

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, time.Now)
}

func NewTokenBucketWithClock(capacity int, refillRate float64, now Clock) *TokenBucket {
	if capacity < 0 {
		capacity = 0
	}
	if refillRate < 0 {
		refillRate = 0
	}

	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

// Buckets хранит по ведру на ключ. Ведра, которые простояли полными дольше idleTTL,
// удаляются при следующем обращении, чтобы карта не росла бесконечно.
type Buckets struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	now        Clock

	mu        sync.Mutex
	buckets   map[string]*keyedBucket
	lastSweep time.Time
}

type keyedBucket struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewBuckets(capacity int, refillRate float64, idleTTL time.Duration) *Buckets {
	return NewBucketsWithClock(capacity, refillRate, idleTTL, time.Now)
}

func NewBucketsWithClock(capacity int, refillRate float64, idleTTL time.Duration, now Clock) *Buckets {
	return &Buckets{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		now:        now,
		buckets:    make(map[string]*keyedBucket),
		lastSweep:  now(),
	}
}

func (b *Buckets) AllowKey(key string) bool {
	b.mu.Lock()
	now := b.now()
	b.sweep(now)

	kb, ok := b.buckets[key]
	if !ok {
		kb = &keyedBucket{bucket: NewTokenBucketWithClock(b.capacity, b.refillRate, b.now)}
		b.buckets[key] = kb
	}
	kb.lastSeen = now
	b.mu.Unlock()

	return kb.bucket.Allow()
}

// Len количество отслеживаемых ключей.
func (b *Buckets) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buckets)
}

func (b *Buckets) sweep(now time.Time) {
	if b.idleTTL <= 0 || now.Sub(b.lastSweep) < b.idleTTL {
		return
	}
	for key, kb := range b.buckets {
		if now.Sub(kb.lastSeen) >= b.idleTTL {
			delete(b.buckets, key)
		}
	}
	b.lastSweep = now
}
