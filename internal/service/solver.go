package service

import (
	"fmt"
	"math"
	"sync"

	"github.com/guttosm/laundry-pricing/internal/domain/model"
)

// Problem is a single optimization instance: cover Pieces variable pieces
// and Shirts shirts at minimal cost.
type Problem struct {
	Pieces     int
	Shirts     int
	PiecePrice model.Money
	ShirtPrice model.Money
	MixedTiers []model.MixedPackTier
	ShirtTiers []model.SingleCategoryPackTier
}

// Solution is an optimal integer assignment for a Problem.
type Solution struct {
	MixedPacks    map[model.TierID]int
	ShirtsInMixed map[model.TierID]int
	ShirtPacks    map[model.TierID]int
	LoosePieces   int
	LooseShirts   int
	Cost          model.Money
}

// Solver finds a minimal-cost assignment for a Problem.
type Solver interface {
	Solve(p Problem) (*Solution, error)
}

const costInf = int64(math.MaxInt64 / 4)

// noChoice marks a DP cell with no recorded decision.
const noChoice = int32(-2)

// looseChoice marks a shirt-side cell reached by buying one loose shirt.
const looseChoice = int32(-1)

// dpState holds the DP tables for reuse via sync.Pool.
type dpState struct {
	cost    []int64
	tier    []int32
	shirts  []int32
	h       []int64
	hChoice []int32
}

var dpPool = sync.Pool{
	New: func() interface{} {
		return &dpState{}
	},
}

// getDPState returns pooled tables sized for a (cells) grid and a
// shirt-side table of hSize entries, all reset.
func getDPState(cells, hSize int) *dpState {
	state, _ := dpPool.Get().(*dpState)
	if state == nil {
		state = &dpState{}
	}

	if cap(state.cost) < cells {
		state.cost = make([]int64, cells)
		state.tier = make([]int32, cells)
		state.shirts = make([]int32, cells)
	} else {
		state.cost = state.cost[:cells]
		state.tier = state.tier[:cells]
		state.shirts = state.shirts[:cells]
	}
	if cap(state.h) < hSize {
		state.h = make([]int64, hSize)
		state.hChoice = make([]int32, hSize)
	} else {
		state.h = state.h[:hSize]
		state.hChoice = state.hChoice[:hSize]
	}

	for i := range state.cost {
		state.cost[i] = costInf
		state.tier[i] = noChoice
		state.shirts[i] = 0
	}
	for i := range state.h {
		state.h[i] = costInf
		state.hChoice[i] = noChoice
	}
	return state
}

// putDPState returns a dpState to the pool, dropping oversized tables.
func putDPState(state *dpState) {
	if cap(state.cost) > 1<<20 {
		*state = dpState{}
	}
	dpPool.Put(state)
}

// DPSolver solves Problems exactly by dynamic programming over integer cents.
//
// The shirt side h(r) is the cheapest way to cover r shirts with shirt packs
// and loose shirts. The mixed side g(a,b) is the cheapest set of mixed packs
// hosting exactly b shirts with room for at least a pieces; a pack of tier t
// hosting j <= min(limit_t, b) shirts leaves cap_t-j piece slots. The optimum
// is the minimum over a <= Pieces, b <= Shirts of
// g(a,b) + piecePrice*(Pieces-a) + h(Shirts-b).
type DPSolver struct{}

// NewDPSolver creates a DPSolver.
func NewDPSolver() *DPSolver {
	return &DPSolver{}
}

// Solve returns an optimal Solution for p.
func (s *DPSolver) Solve(p Problem) (*Solution, error) {
	if p.Pieces < 0 || p.Shirts < 0 {
		return nil, &InfeasibleError{Pieces: p.Pieces, Shirts: p.Shirts}
	}

	width := p.Shirts + 1
	state := getDPState((p.Pieces+1)*width, width)
	defer putDPState(state)

	fillShirtSide(p, state)
	fillMixedSide(p, state)

	bestCost := costInf
	bestA, bestB := -1, -1
	piecePrice := int64(p.PiecePrice)
	for a := 0; a <= p.Pieces; a++ {
		for b := 0; b <= p.Shirts; b++ {
			g := state.cost[a*width+b]
			h := state.h[p.Shirts-b]
			if g >= costInf || h >= costInf {
				continue
			}
			total := g + piecePrice*int64(p.Pieces-a) + h
			if total < bestCost {
				bestCost = total
				bestA, bestB = a, b
			}
		}
	}
	if bestA < 0 {
		return nil, &InfeasibleError{Pieces: p.Pieces, Shirts: p.Shirts}
	}

	sol, err := reconstruct(p, state, bestA, bestB)
	if err != nil {
		return nil, err
	}
	sol.Cost = model.Money(bestCost)

	if err := verify(p, sol); err != nil {
		return nil, err
	}
	return sol, nil
}

func fillShirtSide(p Problem, state *dpState) {
	h, choice := state.h, state.hChoice
	h[0] = 0
	choice[0] = looseChoice
	shirtPrice := int64(p.ShirtPrice)
	for r := 1; r <= p.Shirts; r++ {
		if h[r-1] < costInf {
			h[r] = h[r-1] + shirtPrice
			choice[r] = looseChoice
		}
		for u, tier := range p.ShirtTiers {
			prev := r - tier.Capacity
			if prev < 0 {
				prev = 0
			}
			if h[prev] >= costInf {
				continue
			}
			if c := int64(tier.Price) + h[prev]; c < h[r] {
				h[r] = c
				choice[r] = int32(u)
			}
		}
	}
}

func fillMixedSide(p Problem, state *dpState) {
	width := p.Shirts + 1
	cost, tierOf, shirtsOf := state.cost, state.tier, state.shirts
	cost[0] = 0

	for a := 0; a <= p.Pieces; a++ {
		for b := 0; b <= p.Shirts; b++ {
			if a == 0 && b == 0 {
				continue
			}
			idx := a*width + b
			for t, tier := range p.MixedTiers {
				maxJ := tier.ShirtLimit
				if maxJ > b {
					maxJ = b
				}
				price := int64(tier.Price)
				for j := 0; j <= maxJ; j++ {
					if j == 0 && a == 0 {
						continue
					}
					prevA := a - (tier.Capacity - j)
					if prevA < 0 {
						prevA = 0
					}
					prev := cost[prevA*width+(b-j)]
					if prev >= costInf {
						continue
					}
					if c := price + prev; c < cost[idx] {
						cost[idx] = c
						tierOf[idx] = int32(t)
						shirtsOf[idx] = int32(j)
					}
				}
			}
		}
	}
}

func reconstruct(p Problem, state *dpState, a, b int) (*Solution, error) {
	sol := &Solution{
		MixedPacks:    make(map[model.TierID]int),
		ShirtsInMixed: make(map[model.TierID]int),
		ShirtPacks:    make(map[model.TierID]int),
		LoosePieces:   p.Pieces - a,
	}

	width := p.Shirts + 1
	for a > 0 || b > 0 {
		idx := a*width + b
		t := state.tier[idx]
		if t < 0 || int(t) >= len(p.MixedTiers) {
			return nil, &SolverDataError{Detail: fmt.Sprintf("no mixed pack decision at (%d, %d)", a, b)}
		}
		tier := p.MixedTiers[t]
		j := int(state.shirts[idx])
		sol.MixedPacks[tier.ID]++
		sol.ShirtsInMixed[tier.ID] += j
		a -= tier.Capacity - j
		if a < 0 {
			a = 0
		}
		b -= j
	}

	for r := p.Shirts - sumValues(sol.ShirtsInMixed); r > 0; {
		c := state.hChoice[r]
		switch {
		case c == looseChoice:
			sol.LooseShirts++
			r--
		case c >= 0 && int(c) < len(p.ShirtTiers):
			tier := p.ShirtTiers[c]
			sol.ShirtPacks[tier.ID]++
			r -= tier.Capacity
		default:
			return nil, &SolverDataError{Detail: fmt.Sprintf("no shirt decision for %d shirts", r)}
		}
	}

	return sol, nil
}

// verify recomputes the cost of sol and checks every constraint.
func verify(p Problem, sol *Solution) error {
	var cost model.Money
	pieceRoom, shirtCover := sol.LoosePieces, sol.LooseShirts

	for _, t := range p.MixedTiers {
		x, s := sol.MixedPacks[t.ID], sol.ShirtsInMixed[t.ID]
		if s > t.ShirtLimit*x {
			return &SolverDataError{Detail: fmt.Sprintf("tier %s hosts %d shirts in %d packs", t.ID, s, x)}
		}
		cost += t.Price.Times(x)
		pieceRoom += t.Capacity*x - s
		shirtCover += s
	}
	for _, u := range p.ShirtTiers {
		y := sol.ShirtPacks[u.ID]
		cost += u.Price.Times(y)
		shirtCover += u.Capacity * y
	}
	cost += p.PiecePrice.Times(sol.LoosePieces) + p.ShirtPrice.Times(sol.LooseShirts)

	switch {
	case pieceRoom < p.Pieces:
		return &SolverDataError{Detail: fmt.Sprintf("assignment covers %d of %d pieces", pieceRoom, p.Pieces)}
	case shirtCover < p.Shirts:
		return &SolverDataError{Detail: fmt.Sprintf("assignment covers %d of %d shirts", shirtCover, p.Shirts)}
	case cost != sol.Cost:
		return &SolverDataError{Detail: fmt.Sprintf("assignment costs %s, optimum is %s", cost, sol.Cost)}
	}
	return nil
}

func sumValues(m map[model.TierID]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}
