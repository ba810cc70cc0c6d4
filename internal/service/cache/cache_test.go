//go:build !integration

package cache

import (
	"testing"

	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

type mapCache struct {
	items map[string]*model.Receipt
}

func (m *mapCache) Get(id string) (*model.Receipt, bool) {
	r, ok := m.items[id]
	return r, ok
}

func (m *mapCache) Set(id string, r *model.Receipt) { m.items[id] = r }
func (m *mapCache) Invalidate(id string)             { delete(m.items, id) }
func (m *mapCache) Clear()                           { m.items = map[string]*model.Receipt{} }
func (m *mapCache) Stop()                            {}
func (m *mapCache) Metrics() Metrics                 { return Metrics{Size: len(m.items)} }

func TestReceiptCacheContract(t *testing.T) {
	var c ReceiptCacheWithMetrics = &mapCache{items: map[string]*model.Receipt{}}

	_, found := c.Get("r-1")
	assert.False(t, found)

	c.Set("r-1", &model.Receipt{ID: "r-1", ClientName: "Ana"})
	got, found := c.Get("r-1")
	assert.True(t, found)
	assert.Equal(t, "Ana", got.ClientName)
	assert.Equal(t, 1, c.Metrics().Size)

	c.Invalidate("r-1")
	_, found = c.Get("r-1")
	assert.False(t, found)

	c.Set("r-2", &model.Receipt{ID: "r-2"})
	c.Clear()
	assert.Equal(t, Metrics{}, c.Metrics())
	c.Stop()
}
