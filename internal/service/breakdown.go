package service

import (
	"github.com/guttosm/laundry-pricing/internal/domain/model"
)

// BuildBreakdown itemizes a quote from the normalized order and the solver
// result. sol is nil when the order has no optimizable items.
// Zero counts are omitted and every map is non-nil.
func BuildBreakdown(order model.Order, sol *Solution, catalog *model.PricingCatalog) model.Breakdown {
	b := model.EmptyBreakdown()

	for _, key := range catalog.FixedKeys() {
		qty := order.Quantity(key)
		if qty == 0 {
			continue
		}
		b.FixedItems[key] = qty
		price, _ := catalog.UnitPrice(key)
		b.Costs.Fixed += price.Times(qty)
	}

	if sol != nil {
		for _, tier := range catalog.MixedPackTiers {
			if n := sol.MixedPacks[tier.ID]; n > 0 {
				b.MixedPacksUsed[tier.ID] = n
				b.Costs.MixedPacks += tier.Price.Times(n)
			}
			if s := sol.ShirtsInMixed[tier.ID]; s > 0 {
				b.ShirtsInsideMixedPacks[tier.ID] = s
			}
		}

		for _, tier := range catalog.SingleCategoryPackTiers {
			if n := sol.ShirtPacks[tier.ID]; n > 0 {
				b.SingleCategoryPacksUsed[tier.ID] = n
				b.Costs.SingleCategoryPacks += tier.Price.Times(n)
			}
		}

		loose := map[model.ItemKey]int{
			model.ItemVariablePiece: sol.LoosePieces,
			model.ItemShirt:         sol.LooseShirts,
		}
		for key, n := range loose {
			if n == 0 {
				continue
			}
			b.LooseUnits[key] = n
			price, _ := catalog.UnitPrice(key)
			b.Costs.LooseUnits += price.Times(n)
		}
	}

	b.Costs.VariableTotal = b.Costs.MixedPacks + b.Costs.SingleCategoryPacks + b.Costs.LooseUnits
	b.Costs.Total = b.Costs.Fixed + b.Costs.VariableTotal
	return b
}
