package ec

import (
	"math/bits"

	"github.com/blck-snwmn/ecweier/ecerr"
	"github.com/blck-snwmn/ecweier/internal/scatter"
	"github.com/blck-snwmn/ecweier/internal/seed"
	"github.com/blck-snwmn/ecweier/montgomery"
)

const windowSizeBits = 4
const windowSizeItems = 1 << windowSizeBits

// ScalarMultiply replaces p in place with k*p, where k is a big-endian
// scalar. If blindSeed is non-zero, both the scalar and the point's
// coordinates are randomized before the ladder runs (scalar blinding via
// k+R*order, coordinate blinding via a random Jacobian factor lambda)
// and the scattered-table windowed ladder additionally randomizes its
// table layout from the same seed; the mathematical result is identical
// for any blindSeed, including 0.
func (ctx *Context) ScalarMultiply(p *Point, k []byte, blindSeed uint64) error {
	if p == nil || k == nil {
		return ecerr.New(ecerr.Null, "ec: nil argument")
	}
	if len(k) == 0 {
		return ecerr.New(ecerr.NotEnoughData, "ec: empty scalar")
	}
	mctx := ctx.mont
	wp1 := newWorkspace(mctx)
	wp2 := newWorkspace(mctx)

	if blindSeed == 0 {
		return scalarLadder(p.x, p.y, p.z, p.x, p.y, p.z, k, blindSeed+1, wp1, wp2, mctx)
	}

	factor := seed.Expand(blindSeed, mctx.Bytes())
	factor[0] &^= 0x80 // clear the top bit: below any modulus whose top bit is set, such as P-256
	lambda, err := mctx.FromBytes(factor)
	if err != nil {
		// A seed expansion that still lands >= modulus after clamping is
		// astronomically rare for a 256-bit field; fall back to lambda=1
		// (no coordinate blinding this round) rather than fail the call.
		lambda = mctx.NewWord()
		mctx.Set(lambda, 1)
	}
	lambdaPow := mctx.NewWord()

	mctx.MulInto(p.z, p.z, lambda, wp1.scratch)
	mctx.MulInto(lambdaPow, lambda, lambda, wp1.scratch)
	mctx.MulInto(p.x, p.x, lambdaPow, wp1.scratch)
	mctx.MulInto(lambdaPow, lambdaPow, lambda, wp1.scratch)
	mctx.MulInto(p.y, p.y, lambdaPow, wp1.scratch)

	blindScalar := blindScalarFactor(k, uint32(blindSeed), ctx.order, mctx.Words())

	return scalarLadder(p.x, p.y, p.z, p.x, p.y, p.z, blindScalar, blindSeed+1, wp1, wp2, mctx)
}

// blindScalarFactor returns k + R*order as a big-endian byte slice, where
// R is the low 32 bits of rSeed. The result is widened beyond both k and
// order by two extra words so the addition can never overflow the
// allocated width.
func blindScalarFactor(k []byte, rSeed uint32, order []uint64, orderWords int) []byte {
	scalarWords := (len(k) + 7) / 8
	width := orderWords + 2
	if scalarWords+2 > width {
		width = scalarWords + 2
	}

	acc := make([]uint64, width)
	copy(acc, bigEndianToWords(k, width))
	addScaled(acc, order, uint64(rSeed))

	return wordsToBigEndian(acc, width*8)
}

// addScaled computes t += a*k, propagating carry across the full width
// of t. len(a) may be shorter than len(t); the carry chain continues
// through the remaining words of t.
func addScaled(t []uint64, a []uint64, k uint64) {
	var carry uint64
	i := 0
	for ; i < len(a); i++ {
		hi, lo := bits.Mul64(a[i], k)
		lo, c1 := bits.Add64(lo, carry, 0)
		hi += c1
		sum, c2 := bits.Add64(t[i], lo, 0)
		t[i] = sum
		carry = hi + c2
	}
	for ; carry != 0 && i < len(t); i++ {
		sum, c := bits.Add64(t[i], carry, 0)
		t[i] = sum
		carry = c
	}
}

func bigEndianToWords(b []byte, words int) []uint64 {
	out := make([]uint64, words)
	idx := len(b)
	for w := 0; w < words && idx > 0; w++ {
		var v uint64
		for shift := 0; shift < 64 && idx > 0; shift += 8 {
			idx--
			v |= uint64(b[idx]) << shift
		}
		out[w] = v
	}
	return out
}

func wordsToBigEndian(words []uint64, outLen int) []byte {
	out := make([]byte, outLen)
	idx := outLen
	for w := 0; w < len(words) && idx > 0; w++ {
		v := words[w]
		for shift := 0; shift < 64 && idx > 0; shift += 8 {
			idx--
			out[idx] = byte(v >> shift)
		}
	}
	return out
}

// scalarLadder computes (x3,y3,z3) = k*(x1,y1,z1) using a 4-bit
// left-to-right windowed ladder over a scattered table, so the memory
// access pattern used to fetch each window digit's point does not
// depend on the digit's value.
// wp2 mirrors the C ladder's second workspace parameter; the reference
// implementation allocates it but never uses it inside ec_exp, and this
// port keeps the same (unused) parameter for call-site symmetry with
// ScalarMultiply's two-workspace setup.
func scalarLadder(x3, y3, z3, x1, y1, z1 []uint64, k []byte, tableSeed uint64, wp1, wp2 *workspace, mctx *montgomery.Context) error {
	z1IsOne := mctx.IsOne(z1)

	windowX := make([][]uint64, windowSizeItems)
	windowY := make([][]uint64, windowSizeItems)
	windowZ := make([][]uint64, windowSizeItems)
	for i := range windowX {
		windowX[i] = mctx.NewWord()
		windowY[i] = mctx.NewWord()
		windowZ[i] = mctx.NewWord()
	}

	mctx.Set(windowX[0], 1)
	mctx.Set(windowY[0], 1)
	mctx.Set(windowZ[0], 0)

	copy(windowX[1], x1)
	copy(windowY[1], y1)
	copy(windowZ[1], z1)

	for i := 2; i < windowSizeItems; i++ {
		if z1IsOne {
			mixedAdd(windowX[i], windowY[i], windowZ[i],
				windowX[i-1], windowY[i-1], windowZ[i-1],
				x1, y1, wp1, mctx)
		} else {
			fullAdd(windowX[i], windowY[i], windowZ[i],
				windowX[i-1], windowY[i-1], windowZ[i-1],
				x1, y1, z1, wp1, mctx)
		}
	}

	entryBytes := mctx.Bytes()
	toEntries := func(words [][]uint64) [][]byte {
		entries := make([][]byte, windowSizeItems)
		for i, w := range words {
			entries[i] = montgomery.WordsToBytesRaw(w, entryBytes)
		}
		return entries
	}

	tableX, err := scatter.New(tableSeed, toEntries(windowX))
	if err != nil {
		return err
	}
	tableY, err := scatter.New(tableSeed, toEntries(windowY))
	if err != nil {
		return err
	}
	tableZ, err := scatter.New(tableSeed, toEntries(windowZ))
	if err != nil {
		return err
	}

	mctx.Set(x3, 1)
	mctx.Set(y3, 1)
	mctx.Set(z3, 0)

	exp := k
	for len(exp) > 1 && exp[0] == 0 {
		exp = exp[1:]
	}

	xwBytes := make([]byte, entryBytes)
	ywBytes := make([]byte, entryBytes)
	zwBytes := make([]byte, entryBytes)
	xw := mctx.NewWord()
	yw := mctx.NewWord()
	zw := mctx.NewWord()

	for _, b := range exp {
		for _, nibble := range [2]byte{b >> 4, b & 0x0f} {
			for j := 0; j < windowSizeBits; j++ {
				doubleJacobian(x3, y3, z3, x3, y3, z3, wp1, mctx)
			}
			tableX.Gather(xwBytes, int(nibble))
			tableY.Gather(ywBytes, int(nibble))
			tableZ.Gather(zwBytes, int(nibble))
			montgomery.BytesToWordsRaw(xw, xwBytes)
			montgomery.BytesToWordsRaw(yw, ywBytes)
			montgomery.BytesToWordsRaw(zw, zwBytes)
			fullAdd(x3, y3, z3, x3, y3, z3, xw, yw, zw, wp1, mctx)
		}
	}

	return nil
}
