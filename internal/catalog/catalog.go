// Package catalog loads the pricing catalog used by the quote optimizer.
//
// The built-in price list is embedded in the binary. A replacement can be
// supplied as a YAML, JSON or TOML file with the same layout.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/spf13/viper"
)

//go:embed default_catalog.yaml
var defaultDocument []byte

// ErrInvalidCatalog wraps every failure to read or validate a catalog.
var ErrInvalidCatalog = errors.New("invalid pricing catalog")

type document struct {
	Version    string      `mapstructure:"version"`
	Currency   string      `mapstructure:"currency"`
	Items      []itemDoc   `mapstructure:"items"`
	MixedPacks []mixedDoc  `mapstructure:"mixed_packs"`
	ShirtPacks []singleDoc `mapstructure:"shirt_packs"`
}

type itemDoc struct {
	Key     string   `mapstructure:"key"`
	Label   string   `mapstructure:"label"`
	Price   string   `mapstructure:"price"`
	Aliases []string `mapstructure:"aliases"`
}

type mixedDoc struct {
	ID         string `mapstructure:"id"`
	Capacity   int    `mapstructure:"capacity"`
	ShirtLimit int    `mapstructure:"shirt_limit"`
	Price      string `mapstructure:"price"`
}

type singleDoc struct {
	ID       string `mapstructure:"id"`
	Capacity int    `mapstructure:"capacity"`
	Price    string `mapstructure:"price"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *model.PricingCatalog
)

// Default returns the embedded price list. It panics if the embedded
// document is invalid, which only a broken build can cause.
func Default() *model.PricingCatalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultDocument, "yaml")
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads the catalog file at path, or returns the embedded default
// when path is empty.
func Load(path string) (*model.PricingCatalog, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidCatalog, path, err)
	}
	return decode(v)
}

// Parse decodes a catalog document in the given format ("yaml", "json", "toml").
func Parse(data []byte, format string) (*model.PricingCatalog, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*model.PricingCatalog, error) {
	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c, err := doc.build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return c, nil
}

func (d document) build() (*model.PricingCatalog, error) {
	c := &model.PricingCatalog{
		Version:                 d.Version,
		Currency:                strings.ToUpper(d.Currency),
		FixedPrices:             make(map[model.ItemKey]model.Money, len(d.Items)),
		Labels:                  make(map[model.ItemKey]string, len(d.Items)),
		Aliases:                 make(map[string]model.ItemKey),
		MixedPackTiers:          make([]model.MixedPackTier, 0, len(d.MixedPacks)),
		SingleCategoryPackTiers: make([]model.SingleCategoryPackTier, 0, len(d.ShirtPacks)),
	}
	if c.Currency == "" {
		c.Currency = "EUR"
	}

	for _, it := range d.Items {
		key := model.ItemKey(strings.TrimSpace(it.Key))
		if key == "" {
			return nil, errors.New("item without key")
		}
		if _, dup := c.FixedPrices[key]; dup {
			return nil, fmt.Errorf("duplicate item %q", key)
		}
		price, err := model.ParseMoney(it.Price)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", key, err)
		}
		c.FixedPrices[key] = price
		if it.Label != "" {
			c.Labels[key] = it.Label
		}
		for _, a := range it.Aliases {
			if prev, dup := c.Aliases[a]; dup && prev != key {
				return nil, fmt.Errorf("alias %q used by %q and %q", a, prev, key)
			}
			c.Aliases[a] = key
		}
	}

	for _, p := range d.MixedPacks {
		price, err := model.ParseMoney(p.Price)
		if err != nil {
			return nil, fmt.Errorf("mixed pack %q: %w", p.ID, err)
		}
		c.MixedPackTiers = append(c.MixedPackTiers, model.MixedPackTier{
			ID:         model.TierID(p.ID),
			Capacity:   p.Capacity,
			ShirtLimit: p.ShirtLimit,
			Price:      price,
		})
	}

	for _, p := range d.ShirtPacks {
		price, err := model.ParseMoney(p.Price)
		if err != nil {
			return nil, fmt.Errorf("shirt pack %q: %w", p.ID, err)
		}
		c.SingleCategoryPackTiers = append(c.SingleCategoryPackTiers, model.SingleCategoryPackTier{
			ID:       model.TierID(p.ID),
			Capacity: p.Capacity,
			Price:    price,
		})
	}

	return c, nil
}
