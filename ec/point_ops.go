package ec

import "github.com/blck-snwmn/ecweier/ecerr"

// Clone returns an independent copy of p.
func (p *Point) Clone() *Point {
	mctx := p.ctx.mont
	q := &Point{ctx: p.ctx, x: mctx.NewWord(), y: mctx.NewWord(), z: mctx.NewWord()}
	copy(q.x, p.x)
	copy(q.y, p.y)
	copy(q.z, p.z)
	return q
}

// Double replaces p in place with 2*p.
func (p *Point) Double() {
	mctx := p.ctx.mont
	wp := newWorkspace(mctx)
	doubleJacobian(p.x, p.y, p.z, p.x, p.y, p.z, wp, mctx)
}

// Add replaces p in place with p+other. p and other must belong to the
// same Context.
func (p *Point) Add(other *Point) error {
	if other == nil {
		return ecerr.New(ecerr.Null, "ec: nil argument")
	}
	if p.ctx != other.ctx {
		return ecerr.New(ecerr.ECCurve, "ec: points belong to different curves")
	}
	mctx := p.ctx.mont
	wp := newWorkspace(mctx)
	fullAdd(p.x, p.y, p.z, p.x, p.y, p.z, other.x, other.y, other.z, wp, mctx)
	return nil
}

// Neg replaces p in place with its inverse, -p = (x, N-y).
func (p *Point) Neg() {
	mctx := p.ctx.mont
	mctx.Sub(p.y, mctx.ModulusWords(), p.y)
}

// Cmp reports whether p and other represent the same affine point: 0 if
// equal, a non-zero value otherwise. p and other must belong to the same
// Context.
func (p *Point) Cmp(other *Point) (int, error) {
	if other == nil {
		return 0, ecerr.New(ecerr.Null, "ec: nil argument")
	}
	if p.ctx != other.ctx {
		return 0, ecerr.New(ecerr.ECCurve, "ec: points belong to different curves")
	}
	mctx := p.ctx.mont

	if mctx.IsZero(p.z) && mctx.IsZero(other.z) {
		return 0, nil
	}

	if mctx.Equal(p.z, other.z) {
		if !mctx.Equal(p.x, other.x) || !mctx.Equal(p.y, other.y) {
			return 1, nil
		}
		return 0, nil
	}

	wp := newWorkspace(mctx)
	mctx.MulInto(wp.a, other.z, other.z, wp.scratch)
	mctx.MulInto(wp.b, p.x, wp.a, wp.scratch) // b = X1*Z2^2

	mctx.MulInto(wp.c, p.z, p.z, wp.scratch)
	mctx.MulInto(wp.d, other.x, wp.c, wp.scratch) // d = X2*Z1^2

	if !mctx.Equal(wp.b, wp.d) {
		return -1, nil
	}

	mctx.MulInto(wp.a, other.z, wp.a, wp.scratch)
	mctx.MulInto(wp.e, p.y, wp.a, wp.scratch) // e = Y1*Z2^3

	mctx.MulInto(wp.c, p.z, wp.c, wp.scratch)
	mctx.MulInto(wp.f, other.y, wp.c, wp.scratch) // f = Y2*Z1^3

	if !mctx.Equal(wp.e, wp.f) {
		return -2, nil
	}

	return 0, nil
}
