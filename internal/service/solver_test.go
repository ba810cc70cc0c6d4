package service

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/guttosm/laundry-pricing/internal/catalog"
	"github.com/guttosm/laundry-pricing/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultProblem(pieces, shirts int) Problem {
	c := catalog.Default()
	return Problem{
		Pieces:     pieces,
		Shirts:     shirts,
		PiecePrice: c.FixedPrices[model.ItemVariablePiece],
		ShirtPrice: c.FixedPrices[model.ItemShirt],
		MixedTiers: c.MixedPackTiers,
		ShirtTiers: c.SingleCategoryPackTiers,
	}
}

// bruteForceCost prices p by plain enumeration over the tiers it carries.
// A pack that covers nothing can be dropped from an optimum, so at most
// Pieces+Shirts mixed packs and Shirts shirt packs are tried. The two sides
// only meet in how many shirts sit in mixed packs; that count is tried
// exhaustively and everything left over is bought loose.
func bruteForceCost(p Problem) model.Money {
	shirtSide := make([]model.Money, p.Shirts+1)
	for r := range shirtSide {
		shirtSide[r] = -1
	}
	shirtPacks := make([]int, len(p.ShirtTiers))
	var walkShirts func(u, left int)
	walkShirts = func(u, left int) {
		if u == len(shirtPacks) {
			var base model.Money
			covered := 0
			for i, y := range shirtPacks {
				base += p.ShirtTiers[i].Price.Times(y)
				covered += p.ShirtTiers[i].Capacity * y
			}
			for r := range shirtSide {
				c := base + p.ShirtPrice.Times(max(0, r-covered))
				if shirtSide[r] < 0 || c < shirtSide[r] {
					shirtSide[r] = c
				}
			}
			return
		}
		for n := 0; n <= left; n++ {
			shirtPacks[u] = n
			walkShirts(u+1, left-n)
		}
		shirtPacks[u] = 0
	}
	walkShirts(0, p.Shirts)

	best := model.Money(-1)
	mixed := make([]int, len(p.MixedTiers))
	var walkMixed func(t, left int)
	walkMixed = func(t, left int) {
		if t == len(mixed) {
			var base model.Money
			room, hostable := 0, 0
			for i, x := range mixed {
				base += p.MixedTiers[i].Price.Times(x)
				room += p.MixedTiers[i].Capacity * x
				hostable += p.MixedTiers[i].ShirtLimit * x
			}
			for s := 0; s <= min(hostable, p.Shirts); s++ {
				c := base + p.PiecePrice.Times(max(0, p.Pieces-(room-s))) + shirtSide[p.Shirts-s]
				if best < 0 || c < best {
					best = c
				}
			}
			return
		}
		for n := 0; n <= left; n++ {
			mixed[t] = n
			walkMixed(t+1, left-n)
		}
		mixed[t] = 0
	}
	walkMixed(0, p.Pieces+p.Shirts)

	return best
}

// randomProblem draws a small order over one to three mixed tiers and up to
// two shirt tiers. Prices straddle the loose price so some packs never pay.
func randomProblem(rng *rand.Rand) Problem {
	p := Problem{
		Pieces:     rng.IntN(9),
		Shirts:     rng.IntN(9),
		PiecePrice: model.Money(50 + rng.IntN(101)),
		ShirtPrice: model.Money(100 + rng.IntN(201)),
	}
	for i, n := 0, 1+rng.IntN(3); i < n; i++ {
		capacity := 2 + rng.IntN(7)
		p.MixedTiers = append(p.MixedTiers, model.MixedPackTier{
			ID:         model.TierID(fmt.Sprintf("m%d", i)),
			Capacity:   capacity,
			ShirtLimit: rng.IntN(capacity + 1),
			Price:      model.Money(1 + rng.IntN(capacity*int(p.PiecePrice)+int(p.PiecePrice))),
		})
	}
	for i, n := 0, rng.IntN(3); i < n; i++ {
		capacity := 2 + rng.IntN(5)
		p.ShirtTiers = append(p.ShirtTiers, model.SingleCategoryPackTier{
			ID:       model.TierID(fmt.Sprintf("s%d", i)),
			Capacity: capacity,
			Price:    model.Money(1 + rng.IntN(capacity*int(p.ShirtPrice)+int(p.ShirtPrice))),
		})
	}
	return p
}

func TestDPSolver_KnownOrders(t *testing.T) {
	solver := NewDPSolver()

	tests := []struct {
		name          string
		pieces        int
		shirts        int
		expectedCost  string
		expectedMixed map[model.TierID]int
		expectedShirt map[model.TierID]int
		loosePieces   int
		looseShirts   int
	}{
		{
			name:          "eight shirts use one shirt pack and three loose",
			shirts:        8,
			expectedCost:  "11.90",
			expectedMixed: map[model.TierID]int{},
			expectedShirt: map[model.TierID]int{"5": 1},
			looseShirts:   3,
		},
		{
			name:          "ten shirts use the large shirt pack",
			shirts:        10,
			expectedCost:  "12.00",
			expectedMixed: map[model.TierID]int{},
			expectedShirt: map[model.TierID]int{"10": 1},
		},
		{
			name:          "one piece is loose",
			pieces:        1,
			expectedCost:  "0.90",
			expectedMixed: map[model.TierID]int{},
			expectedShirt: map[model.TierID]int{},
			loosePieces:   1,
		},
		{
			name:          "twenty pieces fill a small mixed pack",
			pieces:        20,
			expectedCost:  "16.00",
			expectedMixed: map[model.TierID]int{"20": 1},
			expectedShirt: map[model.TierID]int{},
		},
		{
			name:          "fifteen pieces and five shirts share a small mixed pack",
			pieces:        15,
			shirts:        5,
			expectedCost:  "16.00",
			expectedMixed: map[model.TierID]int{"20": 1},
			expectedShirt: map[model.TierID]int{},
		},
		{
			name:          "fifteen pieces and eight shirts",
			pieces:        15,
			shirts:        8,
			expectedCost:  "21.40",
			expectedMixed: map[model.TierID]int{"20": 1},
			expectedShirt: map[model.TierID]int{},
			looseShirts:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, err := solver.Solve(defaultProblem(tt.pieces, tt.shirts))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCost, sol.Cost.String())
			assert.Equal(t, tt.expectedMixed, sol.MixedPacks)
			assert.Equal(t, tt.expectedShirt, sol.ShirtPacks)
			assert.Equal(t, tt.loosePieces, sol.LoosePieces)
			assert.Equal(t, tt.looseShirts, sol.LooseShirts)
		})
	}
}

func TestDPSolver_MatchesBruteForce(t *testing.T) {
	solver := NewDPSolver()

	for pieces := 0; pieces <= 12; pieces++ {
		for shirts := 0; shirts <= 12; shirts++ {
			p := defaultProblem(pieces, shirts)
			sol, err := solver.Solve(p)
			require.NoError(t, err)
			assert.Equal(t, bruteForceCost(p), sol.Cost, "pieces=%d shirts=%d", pieces, shirts)
		}
	}
}

func TestDPSolver_MatchesBruteForceOnRandomTiers(t *testing.T) {
	solver := NewDPSolver()
	rng := rand.New(rand.NewPCG(20250714, 1350))

	for i := 0; i < 300; i++ {
		p := randomProblem(rng)
		sol, err := solver.Solve(p)
		require.NoError(t, err, "problem %d: %+v", i, p)
		require.NoError(t, verify(p, sol), "problem %d: %+v", i, p)
		assert.Equal(t, bruteForceCost(p), sol.Cost, "problem %d: %+v", i, p)
	}
}

func TestBruteForceCost_KnownOrders(t *testing.T) {
	assert.Equal(t, model.MustParseMoney("11.90"), bruteForceCost(defaultProblem(0, 8)))
	assert.Equal(t, model.MustParseMoney("21.40"), bruteForceCost(defaultProblem(15, 8)))
	assert.Equal(t, model.MustParseMoney("5.00"), bruteForceCost(Problem{
		Pieces:     7,
		Shirts:     3,
		PiecePrice: 100,
		ShirtPrice: 300,
		MixedTiers: []model.MixedPackTier{{ID: "big", Capacity: 10, ShirtLimit: 3, Price: 500}},
	}))
}

func TestDPSolver_Properties(t *testing.T) {
	solver := NewDPSolver()
	const limit = 40

	costs := make([][]model.Money, limit+1)
	for pieces := 0; pieces <= limit; pieces++ {
		costs[pieces] = make([]model.Money, limit+1)
		for shirts := 0; shirts <= limit; shirts++ {
			p := defaultProblem(pieces, shirts)
			sol, err := solver.Solve(p)
			require.NoError(t, err)
			costs[pieces][shirts] = sol.Cost

			allLoose := p.PiecePrice.Times(pieces) + p.ShirtPrice.Times(shirts)
			assert.LessOrEqual(t, sol.Cost, allLoose, "pieces=%d shirts=%d", pieces, shirts)
			require.NoError(t, verify(p, sol))
		}
	}

	for pieces := 0; pieces <= limit; pieces++ {
		for shirts := 0; shirts <= limit; shirts++ {
			if pieces < limit {
				assert.LessOrEqual(t, costs[pieces][shirts], costs[pieces+1][shirts])
			}
			if shirts < limit {
				assert.LessOrEqual(t, costs[pieces][shirts], costs[pieces][shirts+1])
			}
		}
	}
}

func TestDPSolver_Ceiling(t *testing.T) {
	if testing.Short() {
		t.Skip("large grid")
	}
	solver := NewDPSolver()

	tests := []struct {
		pieces int
		shirts int
	}{
		{pieces: 1350, shirts: 0},
		{pieces: 0, shirts: 1350},
		{pieces: 675, shirts: 675},
	}
	for _, tt := range tests {
		p := defaultProblem(tt.pieces, tt.shirts)
		sol, err := solver.Solve(p)
		require.NoError(t, err)
		assert.NoError(t, verify(p, sol))
		assert.Positive(t, sol.Cost)
	}
}

func TestDPSolver_Errors(t *testing.T) {
	t.Run("negative demand is infeasible", func(t *testing.T) {
		_, err := NewDPSolver().Solve(defaultProblem(-1, 0))
		var infeasible *InfeasibleError
		assert.ErrorAs(t, err, &infeasible)
		assert.Equal(t, KindInfeasible, ErrorKind(err))
	})

	t.Run("missing decision is a data error", func(t *testing.T) {
		p := defaultProblem(3, 0)
		state := getDPState(4, 1)
		defer putDPState(state)

		_, err := reconstruct(p, state, 3, 0)
		var dataErr *SolverDataError
		assert.ErrorAs(t, err, &dataErr)
		assert.ErrorIs(t, err, ErrSolverData)
	})

	t.Run("uncovered demand fails verification", func(t *testing.T) {
		p := defaultProblem(5, 5)
		sol := &Solution{
			MixedPacks:    map[model.TierID]int{},
			ShirtsInMixed: map[model.TierID]int{},
			ShirtPacks:    map[model.TierID]int{"5": 1},
			Cost:          650,
		}
		assert.ErrorIs(t, verify(p, sol), ErrSolverData)
	})

	t.Run("shirt limit breach fails verification", func(t *testing.T) {
		p := defaultProblem(0, 6)
		sol := &Solution{
			MixedPacks:    map[model.TierID]int{"20": 1},
			ShirtsInMixed: map[model.TierID]int{"20": 6},
			ShirtPacks:    map[model.TierID]int{},
			Cost:          1600,
		}
		assert.ErrorIs(t, verify(p, sol), ErrSolverData)
	})

	t.Run("cost mismatch fails verification", func(t *testing.T) {
		p := defaultProblem(1, 0)
		sol := &Solution{LoosePieces: 1, Cost: 1}
		assert.ErrorIs(t, verify(p, sol), ErrSolverData)
	})
}

func TestDPSolver_CustomTiers(t *testing.T) {
	p := Problem{
		Pieces:     7,
		Shirts:     3,
		PiecePrice: 100,
		ShirtPrice: 300,
		MixedTiers: []model.MixedPackTier{{ID: "big", Capacity: 10, ShirtLimit: 3, Price: 500}},
	}
	sol, err := NewDPSolver().Solve(p)
	require.NoError(t, err)
	assert.Equal(t, model.Money(500), sol.Cost)
	assert.Equal(t, map[model.TierID]int{"big": 1}, sol.MixedPacks)
	assert.Equal(t, map[model.TierID]int{"big": 3}, sol.ShirtsInMixed)
}

func BenchmarkDPSolver_Ceiling(b *testing.B) {
	solver := NewDPSolver()
	p := defaultProblem(675, 675)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solver.Solve(p)
	}
}
