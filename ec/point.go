package ec

import (
	"github.com/blck-snwmn/ecweier/ecerr"
	"github.com/blck-snwmn/ecweier/montgomery"
)

// Point is an EC point in Jacobian projective coordinates (X, Y, Z),
// representing the affine point (X/Z^2, Y/Z^3). The point at infinity is
// canonically (1, 1, 0) in Montgomery form. A Point is only valid
// relative to the Context that produced it; do not mix points from
// different contexts.
type Point struct {
	ctx     *Context
	x, y, z []uint64
}

// NewPoint builds a Point from affine (x, y) coordinates, big-endian
// encoded and exactly ctx.FieldContext().Bytes() long. The all-zero pair
// (0, 0) is accepted as a conventional encoding of the point at infinity
// and canonicalized to Jacobian (1, 1, 0); any other pair is checked
// against the curve equation y^2 = x^3 - 3x + b and rejected with
// ecerr.ECPoint if it does not lie on the curve.
func NewPoint(x, y []byte, ctx *Context) (*Point, error) {
	if x == nil || y == nil || ctx == nil {
		return nil, ecerr.New(ecerr.Null, "ec: nil argument")
	}
	mctx := ctx.mont
	if len(x) != mctx.Bytes() || len(y) != mctx.Bytes() {
		return nil, ecerr.New(ecerr.Value, "ec: coordinate length must match field length")
	}

	xw, err := mctx.FromBytes(x)
	if err != nil {
		return nil, err
	}
	yw, err := mctx.FromBytes(y)
	if err != nil {
		return nil, err
	}
	zw := mctx.NewWord()
	mctx.Set(zw, 1)

	p := &Point{ctx: ctx, x: xw, y: yw, z: zw}

	if mctx.IsZero(xw) && mctx.IsZero(yw) {
		mctx.Set(p.x, 1)
		mctx.Set(p.y, 1)
		mctx.Set(p.z, 0)
		return p, nil
	}

	wp := newWorkspace(mctx)
	mctx.MulInto(wp.a, yw, yw, wp.scratch)
	mctx.MulInto(wp.c, xw, xw, wp.scratch)
	mctx.MulInto(wp.c, wp.c, xw, wp.scratch)
	mctx.Sub(wp.c, wp.c, xw)
	mctx.Sub(wp.c, wp.c, xw)
	mctx.Sub(wp.c, wp.c, xw)
	mctx.Add(wp.c, wp.c, ctx.b)

	if !mctx.Equal(wp.a, wp.c) {
		return nil, ecerr.New(ecerr.ECPoint, "ec: point not on curve")
	}
	return p, nil
}

// GetXY renders the point's affine coordinates as big-endian byte
// slices of ctx.FieldContext().Bytes() length each. The point at
// infinity normalizes to (0, 0).
func (p *Point) GetXY() (x, y []byte) {
	mctx := p.ctx.mont
	xw := mctx.NewWord()
	yw := mctx.NewWord()
	wp := newWorkspace(mctx)
	normalize(xw, yw, p.x, p.y, p.z, wp, mctx)
	return mctx.ToBytes(xw), mctx.ToBytes(yw)
}

// normalize converts Jacobian (x1, y1, z1) to affine (x3, y3), writing
// (0, 0) for the point at infinity.
func normalize(x3, y3, x1, y1, z1 []uint64, tmp *workspace, mctx *montgomery.Context) {
	if mctx.IsZero(z1) {
		mctx.Set(x3, 0)
		mctx.Set(y3, 0)
		return
	}

	a := mctx.InvPrime(z1)
	b := mctx.NewWord()
	mctx.MulInto(b, a, a, tmp.scratch)
	c := mctx.NewWord()
	mctx.MulInto(c, b, a, tmp.scratch)
	mctx.MulInto(x3, x1, b, tmp.scratch)
	mctx.MulInto(y3, y1, c, tmp.scratch)
}
