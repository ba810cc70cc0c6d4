package service

import (
	"testing"

	"github.com/guttosm/laundry-pricing/internal/catalog"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildBreakdown(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name     string
		order    model.Order
		sol      *Solution
		validate func(*testing.T, model.Breakdown)
	}{
		{
			name:  "fixed items only",
			order: model.Order{"premium_dress": 1, "blazer": 0},
			sol:   nil,
			validate: func(t *testing.T, b model.Breakdown) {
				assert.Equal(t, map[model.ItemKey]int{"premium_dress": 1}, b.FixedItems)
				assert.Empty(t, b.MixedPacksUsed)
				assert.Empty(t, b.SingleCategoryPacksUsed)
				assert.Empty(t, b.LooseUnits)
				assert.Empty(t, b.ShirtsInsideMixedPacks)
				assert.Equal(t, "100.00", b.Costs.Fixed.String())
				assert.Equal(t, model.ZeroMoney, b.Costs.VariableTotal)
				assert.Equal(t, "100.00", b.Costs.Total.String())
			},
		},
		{
			name:  "packs and loose units",
			order: model.Order{model.ItemVariablePiece: 15, model.ItemShirt: 8, "towel_or_sheet": 5, "duvet_cover": 2},
			sol: &Solution{
				MixedPacks:    map[model.TierID]int{"20": 1, "40": 0},
				ShirtsInMixed: map[model.TierID]int{"20": 5, "40": 0},
				ShirtPacks:    map[model.TierID]int{"5": 0},
				LooseShirts:   3,
				Cost:          2140,
			},
			validate: func(t *testing.T, b model.Breakdown) {
				assert.Equal(t, map[model.ItemKey]int{"towel_or_sheet": 5, "duvet_cover": 2}, b.FixedItems)
				assert.Equal(t, map[model.TierID]int{"20": 1}, b.MixedPacksUsed)
				assert.Equal(t, map[model.TierID]int{"20": 5}, b.ShirtsInsideMixedPacks)
				assert.Empty(t, b.SingleCategoryPacksUsed)
				assert.Equal(t, map[model.ItemKey]int{model.ItemShirt: 3}, b.LooseUnits)
				assert.Equal(t, "14.50", b.Costs.Fixed.String())
				assert.Equal(t, "16.00", b.Costs.MixedPacks.String())
				assert.Equal(t, "0.00", b.Costs.SingleCategoryPacks.String())
				assert.Equal(t, "5.40", b.Costs.LooseUnits.String())
				assert.Equal(t, "21.40", b.Costs.VariableTotal.String())
				assert.Equal(t, "35.90", b.Costs.Total.String())
			},
		},
		{
			name:  "shirt packs and loose pieces",
			order: model.Order{model.ItemVariablePiece: 2, model.ItemShirt: 10},
			sol: &Solution{
				ShirtPacks:  map[model.TierID]int{"10": 1},
				LoosePieces: 2,
				Cost:        1380,
			},
			validate: func(t *testing.T, b model.Breakdown) {
				assert.Empty(t, b.FixedItems)
				assert.Equal(t, map[model.TierID]int{"10": 1}, b.SingleCategoryPacksUsed)
				assert.Equal(t, map[model.ItemKey]int{model.ItemVariablePiece: 2}, b.LooseUnits)
				assert.Equal(t, "12.00", b.Costs.SingleCategoryPacks.String())
				assert.Equal(t, "1.80", b.Costs.LooseUnits.String())
				assert.Equal(t, "13.80", b.Costs.Total.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BuildBreakdown(tt.order, tt.sol, c)
			assert.Equal(t, b.Costs.Total, b.Costs.Fixed+b.Costs.VariableTotal)
			assert.Equal(t, b.Costs.VariableTotal, b.Costs.MixedPacks+b.Costs.SingleCategoryPacks+b.Costs.LooseUnits)
			tt.validate(t, b)
		})
	}
}
