package montgomery

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// p256ModulusHex is the NIST P-256 prime, used throughout as a realistic
// 256-bit modulus.
const p256ModulusHex = "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"

func p256Modulus(t *testing.T) []byte {
	t.Helper()
	n, ok := new(big.Int).SetString(p256ModulusHex, 16)
	require.True(t, ok)
	return n.Bytes()
}

func bigN(t *testing.T, ctx *Context) *big.Int {
	t.Helper()
	n := new(big.Int).SetBytes(wordsToBytes(ctx.modulus, ctx.bytesLen))
	return n
}

func TestNewContext_rejectsBadModuli(t *testing.T) {
	t.Parallel()

	cases := map[string][]byte{
		"nil":              nil,
		"empty":            {},
		"even":             {0x04},
		"too small (is 1)": {0x01},
	}
	for name, mod := range cases {
		mod := mod
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := NewContext(mod)
			require.Error(t, err)
		})
	}
}

func TestContext_MulMatchesBigInt(t *testing.T) {
	t.Parallel()

	ctx, err := NewContext(p256Modulus(t))
	require.NoError(t, err)
	N := bigN(t, ctx)

	tests := []struct {
		name string
		x, y *big.Int
	}{
		{"small values", big.NewInt(7), big.NewInt(11)},
		{"x is zero", big.NewInt(0), big.NewInt(12345)},
		{"y is zero", big.NewInt(12345), big.NewInt(0)},
		{"both zero", big.NewInt(0), big.NewInt(0)},
		{"x is one", big.NewInt(1), big.NewInt(0x123456789abcdef)},
		{"y is one", big.NewInt(0x123456789abcdef), big.NewInt(1)},
		{"x near N", new(big.Int).Sub(N, big.NewInt(1)), big.NewInt(2)},
		{"y near N", big.NewInt(2), new(big.Int).Sub(N, big.NewInt(1))},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			xBytes := make([]byte, ctx.Bytes())
			tc.x.FillBytes(xBytes)
			yBytes := make([]byte, ctx.Bytes())
			tc.y.FillBytes(yBytes)

			xm, err := ctx.FromBytes(xBytes)
			require.NoError(t, err)
			ym, err := ctx.FromBytes(yBytes)
			require.NoError(t, err)

			got := ctx.ToBytes(ctx.Mul(xm, ym))
			want := new(big.Int).Mod(new(big.Int).Mul(tc.x, tc.y), N)
			wantBytes := make([]byte, ctx.Bytes())
			want.FillBytes(wantBytes)

			require.Equal(t, wantBytes, got)
		})
	}
}

func TestContext_MulProperty(t *testing.T) {
	t.Parallel()

	ctx, err := NewContext(p256Modulus(t))
	require.NoError(t, err)
	N := bigN(t, ctx)

	err = quick.Check(func(xBytes, yBytes []byte) bool {
		x := new(big.Int).SetBytes(xBytes)
		y := new(big.Int).SetBytes(yBytes)
		x.Mod(x, N)
		y.Mod(y, N)

		xb := make([]byte, ctx.Bytes())
		x.FillBytes(xb)
		yb := make([]byte, ctx.Bytes())
		y.FillBytes(yb)

		xm, err := ctx.FromBytes(xb)
		if err != nil {
			return false
		}
		ym, err := ctx.FromBytes(yb)
		if err != nil {
			return false
		}

		got := new(big.Int).SetBytes(ctx.ToBytes(ctx.Mul(xm, ym)))
		want := new(big.Int).Mod(new(big.Int).Mul(x, y), N)

		return got.Cmp(want) == 0
	}, &quick.Config{MaxCount: 200})

	require.NoError(t, err)
}

func TestContext_InvPrime(t *testing.T) {
	t.Parallel()

	ctx, err := NewContext(p256Modulus(t))
	require.NoError(t, err)
	N := bigN(t, ctx)

	a := big.NewInt(123456789)
	ab := make([]byte, ctx.Bytes())
	a.FillBytes(ab)
	am, err := ctx.FromBytes(ab)
	require.NoError(t, err)

	inv := ctx.InvPrime(am)
	one := ctx.Mul(am, inv)

	require.True(t, ctx.IsOne(one))

	wantInv := new(big.Int).ModInverse(a, N)
	gotInv := new(big.Int).SetBytes(ctx.ToBytes(inv))
	require.Equal(t, 0, wantInv.Cmp(gotInv))
}

func Test_inverse64(t *testing.T) {
	t.Parallel()

	n := uint64(0xffffffffffffffff)
	require.Equal(t, uint64(1), inverse64(-n))

	n2 := uint64(0xabcdef0123456789)
	ni := inverse64(-n2)
	require.Equal(t, uint64(0), n2*ni+1)
}

func TestContext_RoundTripBytes(t *testing.T) {
	t.Parallel()

	ctx, err := NewContext(p256Modulus(t))
	require.NoError(t, err)

	err = quick.Check(func(b []byte) bool {
		N := bigN(t, ctx)
		x := new(big.Int).SetBytes(b)
		x.Mod(x, N)
		xb := make([]byte, ctx.Bytes())
		x.FillBytes(xb)

		xm, err := ctx.FromBytes(xb)
		if err != nil {
			return false
		}
		back := ctx.ToBytes(xm)
		return new(big.Int).SetBytes(back).Cmp(x) == 0
	}, &quick.Config{MaxCount: 100})

	require.NoError(t, err)
}
