package service

import (
	"encoding/json"
	"math"
	"sort"
	"strings"

	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/shopspring/decimal"
)

// MaxItemQuantity bounds a single quantity so sums cannot overflow.
const MaxItemQuantity = math.MaxInt32

var maxQuantityDecimal = decimal.NewFromInt(MaxItemQuantity)

// OrderNormalizer turns a raw client order into a model.Order carrying
// every catalog key.
type OrderNormalizer struct {
	catalog *model.PricingCatalog
}

// NewOrderNormalizer creates a normalizer bound to catalog.
func NewOrderNormalizer(catalog *model.PricingCatalog) *OrderNormalizer {
	return &OrderNormalizer{catalog: catalog}
}

// Normalize validates raw and fills missing keys with zero. Alias keys are
// folded into their canonical key, summing quantities.
//
// Unknown keys are reported together before any quantity is examined.
func (n *OrderNormalizer) Normalize(raw map[string]any) (model.Order, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	var unknown []string
	for _, name := range names {
		if _, ok := n.catalog.Resolve(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, &UnknownItemError{Keys: unknown}
	}

	order := make(model.Order, len(n.catalog.FixedPrices))
	for key := range n.catalog.FixedPrices {
		order[key] = 0
	}

	for _, name := range names {
		qty, reason := toQuantity(raw[name])
		if reason != "" {
			return nil, &InvalidQuantityError{Key: name, Value: raw[name], Reason: reason}
		}
		key, _ := n.catalog.Resolve(name)
		total := order[key] + qty
		if total > MaxItemQuantity {
			return nil, &InvalidQuantityError{Key: name, Value: raw[name], Reason: "quantity too large"}
		}
		order[key] = total
	}

	return order, nil
}

// toQuantity converts a decoded JSON value into a non-negative integer.
// A non-empty reason means the value was rejected.
func toQuantity(v any) (int, string) {
	switch val := v.(type) {
	case nil:
		return 0, "value is required"
	case bool:
		return 0, "must be a number"
	case int:
		return fromInt64(int64(val))
	case int8:
		return fromInt64(int64(val))
	case int16:
		return fromInt64(int64(val))
	case int32:
		return fromInt64(int64(val))
	case int64:
		return fromInt64(val)
	case uint:
		return fromUint64(uint64(val))
	case uint8:
		return fromUint64(uint64(val))
	case uint16:
		return fromUint64(uint64(val))
	case uint32:
		return fromUint64(uint64(val))
	case uint64:
		return fromUint64(val)
	case float32:
		return fromFloat(float64(val))
	case float64:
		return fromFloat(val)
	case json.Number:
		return fromDecimalString(string(val))
	case string:
		return fromDecimalString(val)
	default:
		return 0, "must be a number"
	}
}

func fromInt64(v int64) (int, string) {
	if v < 0 {
		return 0, "must not be negative"
	}
	if v > MaxItemQuantity {
		return 0, "quantity too large"
	}
	return int(v), ""
}

func fromUint64(v uint64) (int, string) {
	if v > MaxItemQuantity {
		return 0, "quantity too large"
	}
	return int(v), ""
}

func fromFloat(f float64) (int, string) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, "must be a finite number"
	}
	if f != math.Trunc(f) {
		return 0, "must be a whole number"
	}
	if f < 0 {
		return 0, "must not be negative"
	}
	if f > MaxItemQuantity {
		return 0, "quantity too large"
	}
	return int(f), ""
}

func fromDecimalString(s string) (int, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "must be a number"
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, "must be a number"
	}
	if !d.IsInteger() {
		return 0, "must be a whole number"
	}
	if d.IsNegative() {
		return 0, "must not be negative"
	}
	if d.GreaterThan(maxQuantityDecimal) {
		return 0, "quantity too large"
	}
	return int(d.IntPart()), ""
}
