// Package model defines the core domain entities for the laundry pricing service.
package model

import (
	"fmt"
	"sort"
)

// ItemKey identifies an item type in the catalog, e.g. "shirt".
type ItemKey string

// TierID identifies a pack tier within its family, e.g. "20".
type TierID string

const (
	// ItemVariablePiece is the generic garment that mixed packs are sized in.
	ItemVariablePiece ItemKey = "variable_piece"
	// ItemShirt is the garment that mixed packs may host up to a limit and
	// single-category packs cover.
	ItemShirt ItemKey = "shirt"
)

// OptimizableItems are the keys whose cost is decided by the solver.
var OptimizableItems = []ItemKey{ItemVariablePiece, ItemShirt}

// MixedPackTier is a pack holding up to Capacity garments, at most
// ShirtLimit of which may be shirts.
type MixedPackTier struct {
	ID         TierID `json:"id" example:"20"`
	Capacity   int    `json:"capacity" example:"20"`
	ShirtLimit int    `json:"shirt_limit" example:"5"`
	Price      Money  `json:"price" swaggertype:"number" example:"16.00"`
}

// SingleCategoryPackTier is a pack of Capacity shirts.
type SingleCategoryPackTier struct {
	ID       TierID `json:"id" example:"5"`
	Capacity int    `json:"capacity" example:"5"`
	Price    Money  `json:"price" swaggertype:"number" example:"6.50"`
}

// PricingCatalog is the immutable price list used by the optimizer.
// It is built once at startup and shared read-only.
type PricingCatalog struct {
	Version                 string
	Currency                string
	FixedPrices             map[ItemKey]Money
	Labels                  map[ItemKey]string
	Aliases                 map[string]ItemKey
	MixedPackTiers          []MixedPackTier
	SingleCategoryPackTiers []SingleCategoryPackTier
}

// CatalogError describes the first invariant a catalog violates.
type CatalogError struct {
	Field  string
	Reason string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog: %s: %s", e.Field, e.Reason)
}

// Keys returns every item key in the catalog, sorted.
func (c *PricingCatalog) Keys() []ItemKey {
	keys := make([]ItemKey, 0, len(c.FixedPrices))
	for k := range c.FixedPrices {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// FixedKeys returns the sorted keys priced per unit only.
func (c *PricingCatalog) FixedKeys() []ItemKey {
	all := c.Keys()
	keys := all[:0:0]
	for _, k := range all {
		if !IsOptimizable(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// UnitPrice returns the per-unit price of key.
func (c *PricingCatalog) UnitPrice(key ItemKey) (Money, bool) {
	p, ok := c.FixedPrices[key]
	return p, ok
}

// Label returns the display name of key, falling back to the key itself.
func (c *PricingCatalog) Label(key ItemKey) string {
	if l, ok := c.Labels[key]; ok && l != "" {
		return l
	}
	return string(key)
}

// Resolve maps a client-supplied item name to its canonical key.
func (c *PricingCatalog) Resolve(name string) (ItemKey, bool) {
	if _, ok := c.FixedPrices[ItemKey(name)]; ok {
		return ItemKey(name), true
	}
	if k, ok := c.Aliases[name]; ok {
		return k, true
	}
	return "", false
}

// MixedTier returns the mixed pack tier with the given id.
func (c *PricingCatalog) MixedTier(id TierID) (MixedPackTier, bool) {
	for _, t := range c.MixedPackTiers {
		if t.ID == id {
			return t, true
		}
	}
	return MixedPackTier{}, false
}

// SingleCategoryTier returns the shirt pack tier with the given id.
func (c *PricingCatalog) SingleCategoryTier(id TierID) (SingleCategoryPackTier, bool) {
	for _, t := range c.SingleCategoryPackTiers {
		if t.ID == id {
			return t, true
		}
	}
	return SingleCategoryPackTier{}, false
}

// CapacityCeiling is the largest optimizable quantity (pieces plus shirts)
// an order may carry: ten times the summed capacity of every tier.
func (c *PricingCatalog) CapacityCeiling() int {
	total := 0
	for _, t := range c.MixedPackTiers {
		total += t.Capacity
	}
	for _, t := range c.SingleCategoryPackTiers {
		total += t.Capacity
	}
	return total * 10
}

// IsOptimizable reports whether key is priced by the solver.
func IsOptimizable(key ItemKey) bool {
	return key == ItemVariablePiece || key == ItemShirt
}

// Validate checks the catalog invariants.
func (c *PricingCatalog) Validate() error {
	if len(c.FixedPrices) == 0 {
		return &CatalogError{Field: "fixed_prices", Reason: "must not be empty"}
	}
	for _, k := range c.Keys() {
		if c.FixedPrices[k] <= 0 {
			return &CatalogError{Field: "fixed_prices." + string(k), Reason: "price must be positive"}
		}
	}
	for _, k := range OptimizableItems {
		if _, ok := c.FixedPrices[k]; !ok {
			return &CatalogError{Field: "fixed_prices." + string(k), Reason: "optimizable item needs a unit price"}
		}
	}
	for alias, k := range c.Aliases {
		if _, ok := c.FixedPrices[k]; !ok {
			return &CatalogError{Field: "aliases." + alias, Reason: fmt.Sprintf("points to unknown item %q", k)}
		}
		if _, clash := c.FixedPrices[ItemKey(alias)]; clash {
			return &CatalogError{Field: "aliases." + alias, Reason: "shadows a catalog key"}
		}
	}

	seen := make(map[TierID]bool, len(c.MixedPackTiers))
	for _, t := range c.MixedPackTiers {
		field := "mixed_packs." + string(t.ID)
		switch {
		case t.ID == "":
			return &CatalogError{Field: "mixed_packs", Reason: "tier id is required"}
		case seen[t.ID]:
			return &CatalogError{Field: field, Reason: "duplicate tier id"}
		case t.Capacity <= 0:
			return &CatalogError{Field: field, Reason: "capacity must be positive"}
		case t.Price <= 0:
			return &CatalogError{Field: field, Reason: "price must be positive"}
		case t.ShirtLimit < 0 || t.ShirtLimit > t.Capacity:
			return &CatalogError{Field: field, Reason: "shirt limit must be between 0 and capacity"}
		}
		seen[t.ID] = true
	}

	seen = make(map[TierID]bool, len(c.SingleCategoryPackTiers))
	for _, t := range c.SingleCategoryPackTiers {
		field := "shirt_packs." + string(t.ID)
		switch {
		case t.ID == "":
			return &CatalogError{Field: "shirt_packs", Reason: "tier id is required"}
		case seen[t.ID]:
			return &CatalogError{Field: field, Reason: "duplicate tier id"}
		case t.Capacity <= 0:
			return &CatalogError{Field: field, Reason: "capacity must be positive"}
		case t.Price <= 0:
			return &CatalogError{Field: field, Reason: "price must be positive"}
		}
		seen[t.ID] = true
	}
	return nil
}
