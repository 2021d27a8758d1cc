package algebra_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/katalvlaran/kirbytri/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarkedInvariants pins the isomorphism type of small hand-computed complexes.
func TestMarkedInvariants(t *testing.T) {
	cases := []struct {
		name string
		m, n [][]int
		nc   int // columns of N when the literal cannot express it
		p    int64
		rank int
		inv  []int64
		str  string
	}{
		{"free circle", [][]int{{0}}, [][]int{{0}}, 0, 0, 1, nil, "Z"},
		{"rp2 H1", [][]int{{0}}, [][]int{{2}}, 0, 0, 0, []int64{2}, "Z_2"},
		{"kernel of x2 is zero", [][]int{{2}}, [][]int{{}}, 0, 0, 0, nil, "0"},
		{"torus H1", [][]int{{0, 0}}, [][]int{{0}, {0}}, 0, 0, 2, nil, "2 Z"},
		{"mixed", [][]int{{0, 0, 0}}, [][]int{{2, 0}, {0, 3}, {0, 0}}, 0, 0, 1, []int64{6}, "Z + Z_6"},
		{"boundary of interval", [][]int{{1, 1}}, [][]int{{}, {}}, 0, 0, 1, nil, "Z"},
		{"torus mod 2", [][]int{{0, 0}}, [][]int{{0}, {0}}, 0, 2, 0, []int64{2, 2}, "2 Z_2"},
		{"rp2 H1 mod 2", [][]int{{0}}, [][]int{{2}}, 0, 2, 0, []int64{2}, "Z_2"},
		{"rp2 H1 mod 3", [][]int{{0}}, [][]int{{2}}, 0, 3, 0, nil, "0"},
		{"rp2 H2 mod 2", [][]int{{2}}, [][]int{{}}, 0, 2, 0, []int64{2}, "Z_2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustMarked(t, mustInts(t, tc.m), mustInts(t, tc.n), tc.p)
			assert.Equal(t, tc.rank, g.Rank())
			assert.Equal(t, len(tc.inv), g.CountInvariantFactors())
			if len(tc.inv) > 0 {
				assert.Equal(t, tc.inv, toInt64s(g.InvariantFactors()))
			}
			assert.Equal(t, tc.str, g.String())
			assert.Equal(t, len(tc.inv)+tc.rank, g.SNFRank())
			assert.True(t, g.IsChainComplex())
		})
	}
}

// TestMarkedScenarioSix is the 1×1 zero complex: one free generator.
func TestMarkedScenarioSix(t *testing.T) {
	g := mustMarked(t, mustInts(t, [][]int{{0}}), mustInts(t, [][]int{{0}}), 0)
	require.Equal(t, 1, g.Rank())
	require.Zero(t, g.CountInvariantFactors())
	require.True(t, g.IsZ())
	require.Equal(t, 1, g.CCRank())
}

// TestMarkedTriangleCircle is H₁ of a triangulated circle: three vertices,
// three edges, ker ∂₁ = Z.
func TestMarkedTriangleCircle(t *testing.T) {
	boundary := mustInts(t, [][]int{{-1, 1, 0}, {0, -1, 1}, {1, 0, -1}})
	g, err := algebra.NewMarkedAbelianGroup(boundary, zeros(t, 3, 0))
	require.NoError(t, err)
	require.True(t, g.IsZ())
	require.Equal(t, "Z", g.String())

	gen, err := g.FreeRep(0)
	require.NoError(t, err)
	require.True(t, g.IsCycle(gen))
	require.False(t, g.IsBoundary(gen))
}

// TestMarkedConstructorErrors covers shape, sign and nil checks.
func TestMarkedConstructorErrors(t *testing.T) {
	_, err := algebra.NewMarkedAbelianGroup(zeros(t, 1, 2), zeros(t, 1, 1))
	require.ErrorIs(t, err, algebra.ErrShapeMismatch)
	require.ErrorIs(t, err, algebra.ErrInvalidArgument)

	_, err = algebra.NewMarkedAbelianGroupMod(zeros(t, 1, 1), zeros(t, 1, 1), big.NewInt(-2))
	require.ErrorIs(t, err, algebra.ErrNegativeCoefficient)

	_, err = algebra.NewMarkedAbelianGroup(nil, zeros(t, 1, 1))
	require.ErrorIs(t, err, algebra.ErrNilArgument)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = algebra.NewMarkedAbelianGroupContext(ctx, zeros(t, 1, 1), zeros(t, 1, 1), nil)
	require.ErrorIs(t, err, context.Canceled)
}

// TestMarkedDoesNotAliasInputs mutates the inputs after construction.
func TestMarkedDoesNotAliasInputs(t *testing.T) {
	n := mustInts(t, [][]int{{2}})
	g := mustMarked(t, mustInts(t, [][]int{{0}}), n, 0)
	n.Entry(0, 0).SetInt64(5)
	assert.Equal(t, "Z_2", g.String())
	assert.Equal(t, int64(2), g.N().Entry(0, 0).Int64())
}

// TestMarkedRoundTrip lifts every SNF generator and reads it back.
func TestMarkedRoundTrip(t *testing.T) {
	groups := map[string]*algebra.MarkedAbelianGroup{
		"circle":      circle(t),
		"z6":          zMod(t, 6),
		"z+z6":        zPlusZ6(t),
		"torus mod 2": mustMarked(t, zeros(t, 1, 2), zeros(t, 2, 1), 2),
		"rp2 H2 mod2": mustMarked(t, mustInts(t, [][]int{{2}}), zeros(t, 1, 0), 2),
	}
	for name, g := range groups {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < g.SNFRank(); i++ {
				cc, err := g.CCRepIndex(i)
				require.NoError(t, err)
				require.True(t, g.IsCycle(cc), "generator %d is not a cycle", i)

				snf, err := g.SNFRep(cc)
				require.NoError(t, err)
				want := make([]int64, g.SNFRank())
				want[i] = 1
				require.Equal(t, want, toInt64s(snf), "generator %d", i)
			}
		})
	}
}

// TestMarkedReps checks FreeRep/TorsionRep against CCRep and index bounds.
func TestMarkedReps(t *testing.T) {
	g := zPlusZ6(t)

	tor, err := g.TorsionRep(0)
	require.NoError(t, err)
	viaCC, err := g.CCRep(vec(1, 0))
	require.NoError(t, err)
	require.Equal(t, toInt64s(viaCC), toInt64s(tor))

	free, err := g.FreeRep(0)
	require.NoError(t, err)
	snf, err := g.SNFRep(free)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1}, toInt64s(snf))

	_, err = g.FreeRep(1)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)
	_, err = g.TorsionRep(-1)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)
	_, err = g.CCRep(vec(1))
	require.ErrorIs(t, err, algebra.ErrWrongLength)

	// torsion coordinates come back reduced
	lifted, err := g.CCRep(vec(7, 2))
	require.NoError(t, err)
	snf, err = g.SNFRep(lifted)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, toInt64s(snf))
}

// TestMarkedCyclesAndBoundaries exercises the ker(M) side.
func TestMarkedCyclesAndBoundaries(t *testing.T) {
	seg := mustMarked(t, mustInts(t, [][]int{{1, 1}}), zeros(t, 2, 0), 0)

	assert.True(t, seg.IsCycle(vec(1, -1)))
	assert.False(t, seg.IsCycle(vec(1, 0)))
	assert.False(t, seg.IsCycle(vec(1))) // wrong length is never a cycle

	_, err := seg.SNFRep(vec(1, 0))
	require.ErrorIs(t, err, algebra.ErrNotCycle)
	_, err = seg.SNFRep(vec(1))
	require.ErrorIs(t, err, algebra.ErrWrongLength)

	bd, err := seg.BoundaryOf(vec(3, 4))
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, toInt64s(bd))

	require.Equal(t, 1, seg.CycleRank())
	gen, err := seg.CycleGen(0)
	require.NoError(t, err)
	assert.True(t, seg.IsCycle(gen))

	proj, err := seg.CycleProjection(vec(5, 2))
	require.NoError(t, err)
	assert.True(t, seg.IsCycle(proj))
	proj, err = seg.CycleProjection(vec(4, -4))
	require.NoError(t, err)
	assert.Equal(t, []int64{4, -4}, toInt64s(proj)) // cycles are fixed
	for i := 0; i < seg.CCRank(); i++ {
		p, err := seg.CycleProjectionIndex(i)
		require.NoError(t, err)
		assert.True(t, seg.IsCycle(p))
	}
}

// TestMarkedAsBoundary solves N·x = v on Z ⊕ Z_6.
func TestMarkedAsBoundary(t *testing.T) {
	g := zPlusZ6(t)
	n := g.N()

	for _, v := range [][]int64{{2, 0, 0}, {4, -3, 0}, {0, 0, 0}} {
		assert.True(t, g.IsBoundary(vec(v...)), "%v", v)
		x, err := g.AsBoundary(vec(v...))
		require.NoError(t, err)
		img := make([]int64, n.Rows())
		for i := 0; i < n.Rows(); i++ {
			acc := new(big.Int)
			for j := 0; j < n.Cols(); j++ {
				acc.Add(acc, new(big.Int).Mul(n.Entry(i, j), x[j]))
			}
			img[i] = acc.Int64()
		}
		assert.Equal(t, v, img)
	}

	assert.False(t, g.IsBoundary(vec(1, 0, 0)))
	_, err := g.AsBoundary(vec(0, 0, 1))
	require.ErrorIs(t, err, algebra.ErrNotBoundary)

	// 6·(1,0,0) is trivial in homology even though (1,0,0) is not
	snf, err := g.SNFRep(vec(6, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, toInt64s(snf))
}

// TestMarkedModTwoBoundaryReduction checks BoundaryOf reduces mod p.
func TestMarkedModTwoBoundaryReduction(t *testing.T) {
	g := mustMarked(t, mustInts(t, [][]int{{2}}), zeros(t, 1, 0), 2)
	bd, err := g.BoundaryOf(vec(3))
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, toInt64s(bd))
	assert.True(t, g.IsCycle(vec(1)))
	assert.Equal(t, int64(2), g.Coefficients().Int64())
}

// TestMarkedComparisons separates presentation equality from isomorphism.
func TestMarkedComparisons(t *testing.T) {
	a := zMod(t, 2)
	b := mustMarked(t, zeros(t, 1, 2), mustInts(t, [][]int{{2}, {0}}), 0) // Z ⊕ Z_2
	c := mustMarked(t, mustInts(t, [][]int{{0}}), mustInts(t, [][]int{{-2}}), 0)

	assert.True(t, a.Equal(zMod(t, 2)))
	assert.False(t, a.Equal(c))
	assert.True(t, a.IsIsomorphicTo(c))
	assert.False(t, a.IsIsomorphicTo(b))
	assert.True(t, b.Unmarked().Equal(algebra.NewAbelianGroup(1, big.NewInt(2))))
}

// TestMarkedTorsion covers the torsion helpers.
func TestMarkedTorsion(t *testing.T) {
	g := zPlusZ6(t)
	assert.Equal(t, 1, g.TorsionRank(big.NewInt(2)))
	assert.Equal(t, 1, g.TorsionRank(big.NewInt(3)))
	assert.Equal(t, 0, g.TorsionRank(big.NewInt(4)))

	ts := g.TorsionSubgroup()
	assert.Equal(t, "Z_6", ts.String())

	inc := g.TorsionInclusion()
	assert.True(t, inc.IsMonic())
	assert.Equal(t, "Z", inc.Cokernel().String())
	assert.Equal(t, "monic, with cokernel Z", inc.Summary())

	d, err := g.InvariantFactor(0)
	require.NoError(t, err)
	assert.Equal(t, int64(6), d.Int64())
	_, err = g.InvariantFactor(1)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)
}

// TestTrivialPresentation builds Z_p^r and Z^r directly.
func TestTrivialPresentation(t *testing.T) {
	g, err := algebra.NewTrivialPresentation(3, big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, "3 Z_5", g.String())

	g, err = algebra.NewTrivialPresentation(2, nil)
	require.NoError(t, err)
	assert.Equal(t, "2 Z", g.String())

	_, err = algebra.NewTrivialPresentation(1, big.NewInt(-1))
	require.ErrorIs(t, err, algebra.ErrNegativeCoefficient)
}
