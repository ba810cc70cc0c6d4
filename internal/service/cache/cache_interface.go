// Package cache defines the storage contract for short-lived receipts.
package cache

import "github.com/guttosm/laundry-pricing/internal/domain/model"

// ReceiptCache stores receipts by id until they expire.
type ReceiptCache interface {
	Get(id string) (*model.Receipt, bool)
	Set(id string, receipt *model.Receipt)
	Invalidate(id string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Expired   int64
	Size      int
	Capacity  int
}

// ReceiptCacheWithMetrics extends ReceiptCache with metrics reporting.
type ReceiptCacheWithMetrics interface {
	ReceiptCache
	Metrics() Metrics
}
