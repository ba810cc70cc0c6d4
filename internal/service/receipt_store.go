package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/guttosm/laundry-pricing/internal/metrics"
	"github.com/guttosm/laundry-pricing/internal/service/cache"
	"github.com/rs/zerolog/log"
)

// Receipt store defaults.
const (
	DefaultReceiptTTL      = 30 * time.Minute
	DefaultSweepInterval   = 5 * time.Minute
	DefaultReceiptCapacity = 1000
	defaultReceiptShards   = 16
)

// ReceiptStore is a sharded in-memory receipt cache with LRU eviction and
// a periodic sweep of expired entries.
type ReceiptStore struct {
	shards    []*receiptShard
	shardMask uint32
	ttl       time.Duration
	now       func() time.Time
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewReceiptStore creates a store holding up to capacity receipts, each kept
// for ttl unless the receipt carries its own expiry. Expired receipts are
// swept every sweepInterval; a non-positive interval disables the sweeper.
func NewReceiptStore(capacity int, ttl, sweepInterval time.Duration, numShards int) *ReceiptStore {
	if capacity <= 0 {
		capacity = DefaultReceiptCapacity
	}
	if ttl <= 0 {
		ttl = DefaultReceiptTTL
	}
	if numShards <= 0 {
		numShards = defaultReceiptShards
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	s := &ReceiptStore{
		shards:    make([]*receiptShard, n),
		shardMask: uint32(n - 1),
		ttl:       ttl,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
	for i := range s.shards {
		s.shards[i] = &receiptShard{
			capacity: perShard,
			items:    make(map[string]*receiptEntry, perShard),
		}
	}

	if sweepInterval > 0 {
		go s.sweepLoop(sweepInterval)
	}
	return s
}

func (s *ReceiptStore) shard(id string) *receiptShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return s.shards[h.Sum32()&s.shardMask]
}

// Get returns the receipt stored under id if it has not expired.
func (s *ReceiptStore) Get(id string) (*model.Receipt, bool) {
	r, result := s.shard(id).get(id, s.now())
	metrics.RecordReceiptOperation("get", result)
	return r, result == "hit"
}

// Set stores receipt under id. A receipt without ExpiresAt gets the store TTL.
func (s *ReceiptStore) Set(id string, receipt *model.Receipt) {
	expiresAt := receipt.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = s.now().Add(s.ttl)
	}
	if s.shard(id).set(id, receipt, expiresAt) {
		metrics.RecordReceiptOperation("evict", "capacity")
	}
	metrics.RecordReceiptOperation("set", "success")
	metrics.UpdateReceiptStoreSize(s.Len())
}

// Invalidate removes the receipt stored under id.
func (s *ReceiptStore) Invalidate(id string) {
	if s.shard(id).remove(id) {
		metrics.RecordReceiptOperation("invalidate", "success")
	}
}

// Clear removes every receipt and resets counters.
func (s *ReceiptStore) Clear() {
	for _, sh := range s.shards {
		sh.clear()
	}
	metrics.RecordReceiptOperation("clear", "success")
	metrics.UpdateReceiptStoreSize(0)
}

// Stop ends the background sweeper. It is safe to call more than once.
func (s *ReceiptStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// TTL returns the default receipt lifetime.
func (s *ReceiptStore) TTL() time.Duration {
	return s.ttl
}

// Len returns the number of stored receipts, expired ones included until swept.
func (s *ReceiptStore) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		total += len(sh.items)
		sh.mu.Unlock()
	}
	return total
}

// Metrics aggregates counters across shards.
func (s *ReceiptStore) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, sh := range s.shards {
		sh.mu.Lock()
		total.Size += len(sh.items)
		total.Capacity += sh.capacity
		sh.mu.Unlock()
		total.Hits += atomic.LoadInt64(&sh.hits)
		total.Misses += atomic.LoadInt64(&sh.misses)
		total.Evictions += atomic.LoadInt64(&sh.evictions)
		total.Expired += atomic.LoadInt64(&sh.expired)
	}
	return total
}

// Sweep removes expired receipts and returns how many were dropped.
func (s *ReceiptStore) Sweep() int {
	removed := 0
	t := s.now()
	for _, sh := range s.shards {
		removed += sh.sweep(t)
	}
	if removed > 0 {
		metrics.RecordReceiptOperation("sweep", "expired")
	}
	metrics.UpdateReceiptStoreSize(s.Len())
	return removed
}

func (s *ReceiptStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Info().Int("removed", n).Int("remaining", s.Len()).Msg("Expired receipts swept")
			}
		case <-s.stopCh:
			return
		}
	}
}

// receiptShard is one LRU list guarded by its own mutex.
type receiptShard struct {
	mu        sync.Mutex
	capacity  int
	items     map[string]*receiptEntry
	head      *receiptEntry
	tail      *receiptEntry
	hits      int64
	misses    int64
	evictions int64
	expired   int64
}

type receiptEntry struct {
	id        string
	receipt   *model.Receipt
	expiresAt time.Time
	prev      *receiptEntry
	next      *receiptEntry
}

// get returns the receipt and one of "hit", "miss" or "expired".
func (sh *receiptShard) get(id string, t time.Time) (*model.Receipt, string) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	entry, ok := sh.items[id]
	if !ok {
		atomic.AddInt64(&sh.misses, 1)
		return nil, "miss"
	}
	if t.After(entry.expiresAt) {
		sh.unlink(entry)
		delete(sh.items, id)
		atomic.AddInt64(&sh.misses, 1)
		atomic.AddInt64(&sh.expired, 1)
		return nil, "expired"
	}

	sh.moveToFront(entry)
	atomic.AddInt64(&sh.hits, 1)
	return entry.receipt, "hit"
}

// set stores a receipt and reports whether another entry was evicted.
func (sh *receiptShard) set(id string, r *model.Receipt, expiresAt time.Time) bool {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if entry, ok := sh.items[id]; ok {
		entry.receipt = r
		entry.expiresAt = expiresAt
		sh.moveToFront(entry)
		return false
	}

	entry := &receiptEntry{id: id, receipt: r, expiresAt: expiresAt}
	sh.items[id] = entry
	sh.pushFront(entry)

	if len(sh.items) <= sh.capacity || sh.tail == nil {
		return false
	}
	lru := sh.tail
	sh.unlink(lru)
	delete(sh.items, lru.id)
	atomic.AddInt64(&sh.evictions, 1)
	return true
}

func (sh *receiptShard) remove(id string) bool {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	entry, ok := sh.items[id]
	if !ok {
		return false
	}
	sh.unlink(entry)
	delete(sh.items, id)
	return true
}

func (sh *receiptShard) clear() {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.items = make(map[string]*receiptEntry, sh.capacity)
	sh.head, sh.tail = nil, nil
	atomic.StoreInt64(&sh.hits, 0)
	atomic.StoreInt64(&sh.misses, 0)
	atomic.StoreInt64(&sh.evictions, 0)
	atomic.StoreInt64(&sh.expired, 0)
}

func (sh *receiptShard) sweep(t time.Time) int {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	removed := 0
	for id, entry := range sh.items {
		if t.After(entry.expiresAt) {
			sh.unlink(entry)
			delete(sh.items, id)
			removed++
		}
	}
	atomic.AddInt64(&sh.expired, int64(removed))
	return removed
}

func (sh *receiptShard) moveToFront(entry *receiptEntry) {
	if entry == sh.head {
		return
	}
	sh.unlink(entry)
	sh.pushFront(entry)
}

func (sh *receiptShard) pushFront(entry *receiptEntry) {
	entry.prev = nil
	entry.next = sh.head
	if sh.head != nil {
		sh.head.prev = entry
	}
	sh.head = entry
	if sh.tail == nil {
		sh.tail = entry
	}
}

func (sh *receiptShard) unlink(entry *receiptEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		sh.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		sh.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}
