package model

// Order is a normalized order holding every catalog key with a
// non-negative quantity.
type Order map[ItemKey]int

// Quantity returns the quantity ordered for key.
func (o Order) Quantity(key ItemKey) int { return o[key] }

// IsEmpty reports whether every quantity is zero.
func (o Order) IsEmpty() bool {
	for _, q := range o {
		if q != 0 {
			return false
		}
	}
	return true
}

// Pieces returns the variable piece quantity.
func (o Order) Pieces() int { return o[ItemVariablePiece] }

// Shirts returns the shirt quantity.
func (o Order) Shirts() int { return o[ItemShirt] }

// CostDetail splits the total cost of a quote by source.
// Total = Fixed + VariableTotal and
// VariableTotal = MixedPacks + SingleCategoryPacks + LooseUnits, exactly.
//
// @Description Cost components of a quote
type CostDetail struct {
	Fixed               Money `json:"fixed" swaggertype:"number" example:"12.50"`
	MixedPacks          Money `json:"mixed_packs" swaggertype:"number" example:"16.00"`
	SingleCategoryPacks Money `json:"shirt_packs" swaggertype:"number" example:"6.50"`
	LooseUnits          Money `json:"loose_units" swaggertype:"number" example:"5.40"`
	VariableTotal       Money `json:"variable_total" swaggertype:"number" example:"27.90"`
	Total               Money `json:"total" swaggertype:"number" example:"40.40"`
}

// Breakdown is the itemized allocation behind a quote.
// Zero-count entries are never present and maps are never nil.
//
// @Description Itemized allocation of an order to packs and loose units
type Breakdown struct {
	FixedItems              map[ItemKey]int `json:"fixed_items"`
	MixedPacksUsed          map[TierID]int  `json:"mixed_packs_used"`
	SingleCategoryPacksUsed map[TierID]int  `json:"shirt_packs_used"`
	LooseUnits              map[ItemKey]int `json:"loose_units"`
	ShirtsInsideMixedPacks  map[TierID]int  `json:"shirts_inside_mixed_packs"`
	Costs                   CostDetail      `json:"costs"`
}

// EmptyBreakdown returns a breakdown with empty maps and zero costs.
func EmptyBreakdown() Breakdown {
	return Breakdown{
		FixedItems:              map[ItemKey]int{},
		MixedPacksUsed:          map[TierID]int{},
		SingleCategoryPacksUsed: map[TierID]int{},
		LooseUnits:              map[ItemKey]int{},
		ShirtsInsideMixedPacks:  map[TierID]int{},
	}
}

// Quote is the result of optimizing an order.
//
// @Description Minimal total cost of an order and its breakdown
type Quote struct {
	TotalCost Money     `json:"total_cost" swaggertype:"number" example:"11.90"`
	Breakdown Breakdown `json:"breakdown"`
}

// EmptyQuote returns the zero-cost quote of an empty order.
func EmptyQuote() *Quote {
	return &Quote{Breakdown: EmptyBreakdown()}
}
