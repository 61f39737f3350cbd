package ec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// NIST P-256 domain parameters, as quoted in the scenario vectors this
// file exercises (S1-S6).
const (
	p256Modulus = "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"
	p256B       = "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"
	p256Order   = "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"
	p256Gx      = "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
	p256Gy      = "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"

	p256TwoGx = "7cf27b188d034f7e8a52380304b51ac3c08969e277f21b35a60b48fc47669978"
	p256TwoGy = "07775510db8ed040293d9ac69f7430dbba7dade63ce982299e04b79d227873d1"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func p256Context(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext(mustHex(t, p256Modulus), mustHex(t, p256B), mustHex(t, p256Order))
	require.NoError(t, err)
	return ctx
}

func p256BasePoint(t *testing.T, ctx *Context) *Point {
	t.Helper()
	g, err := NewPoint(mustHex(t, p256Gx), mustHex(t, p256Gy), ctx)
	require.NoError(t, err)
	return g
}

// S1: new_point(G.x, G.y, ctx) succeeds; get_xy returns G.
func TestScenario_S1_NewPointRoundTrips(t *testing.T) {
	t.Parallel()
	ctx := p256Context(t)
	g := p256BasePoint(t, ctx)

	x, y := g.GetXY()
	require.Equal(t, mustHex(t, p256Gx), x)
	require.Equal(t, mustHex(t, p256Gy), y)
}

// S2: scalar_multiply(G, [0x02], seed=0) then get_xy yields 2G.
func TestScenario_S2_DoubleBaseline(t *testing.T) {
	t.Parallel()
	ctx := p256Context(t)
	g := p256BasePoint(t, ctx)

	require.NoError(t, ctx.ScalarMultiply(g, []byte{0x02}, 0))

	x, y := g.GetXY()
	require.Equal(t, mustHex(t, p256TwoGx), x)
	require.Equal(t, mustHex(t, p256TwoGy), y)
}

// S3: scalar_multiply(G, n, seed=0) yields the identity; get_xy returns (0, 0).
func TestScenario_S3_OrderTimesGIsIdentity(t *testing.T) {
	t.Parallel()
	ctx := p256Context(t)
	g := p256BasePoint(t, ctx)

	order := mustHex(t, p256Order)
	require.NoError(t, ctx.ScalarMultiply(g, order, 0))

	x, y := g.GetXY()
	zero := make([]byte, len(x))
	require.Equal(t, zero, x)
	require.Equal(t, zero, y)
}

// S4: scalar_multiply(G, n-1, seed=0) then add(result, G) yields the identity.
func TestScenario_S4_OrderMinusOneThenAddG(t *testing.T) {
	t.Parallel()
	ctx := p256Context(t)
	g := p256BasePoint(t, ctx)
	gForAdd := p256BasePoint(t, ctx)

	orderMinusOne := decrementBigEndian(mustHex(t, p256Order))
	require.NoError(t, ctx.ScalarMultiply(g, orderMinusOne, 0))
	require.NoError(t, g.Add(gForAdd))

	x, y := g.GetXY()
	zero := make([]byte, len(x))
	require.Equal(t, zero, x)
	require.Equal(t, zero, y)
}

// S5: scalar_multiply(G, k, seed=1) equals scalar_multiply(G, k, seed=0) for any k.
func TestScenario_S5_BlindingDoesNotChangeResult(t *testing.T) {
	t.Parallel()
	ctx := p256Context(t)

	for _, k := range [][]byte{{0x02}, {0x03}, mustHex(t, p256Order)} {
		unblinded := p256BasePoint(t, ctx)
		blinded := p256BasePoint(t, ctx)

		require.NoError(t, ctx.ScalarMultiply(unblinded, k, 0))
		require.NoError(t, ctx.ScalarMultiply(blinded, k, 1))

		cmp, err := unblinded.Cmp(blinded)
		require.NoError(t, err)
		require.Zero(t, cmp)
	}
}

// S6: new_point((0,0), ctx) succeeds (identity) and cmp with
// scalar_multiply(G, n, ...) returns 0.
func TestScenario_S6_ZeroPointIsIdentity(t *testing.T) {
	t.Parallel()
	ctx := p256Context(t)

	zero := make([]byte, ctx.FieldContext().Bytes())
	infinity, err := NewPoint(zero, zero, ctx)
	require.NoError(t, err)

	g := p256BasePoint(t, ctx)
	require.NoError(t, ctx.ScalarMultiply(g, mustHex(t, p256Order), 0))

	cmp, err := infinity.Cmp(g)
	require.NoError(t, err)
	require.Zero(t, cmp)
}

func TestNewPoint_rejectsOffCurvePoint(t *testing.T) {
	t.Parallel()
	ctx := p256Context(t)

	x := mustHex(t, p256Gx)
	y := mustHex(t, p256Gy)
	y[len(y)-1] ^= 0x01 // perturb Y so (x,y) no longer satisfies the curve equation

	_, err := NewPoint(x, y, ctx)
	require.Error(t, err)
}

func TestPoint_NegIsInverse(t *testing.T) {
	t.Parallel()
	ctx := p256Context(t)
	g := p256BasePoint(t, ctx)
	negG := p256BasePoint(t, ctx)
	negG.Neg()

	require.NoError(t, g.Add(negG))
	x, y := g.GetXY()
	zero := make([]byte, len(x))
	require.Equal(t, zero, x)
	require.Equal(t, zero, y)
}

// decrementBigEndian computes b-1 on a big-endian byte slice, used only
// to derive n-1 for scenario S4.
func decrementBigEndian(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] != 0 {
			out[i]--
			break
		}
		out[i] = 0xff
	}
	return out
}
