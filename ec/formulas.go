package ec

import "github.com/blck-snwmn/ecweier/montgomery"

// doubleJacobian computes (x3,y3,z3) = 2*(x1,y1,z1) on a curve with
// a = -3, using the doubling formula that needs only one field
// multiplication by the curve parameter a implicitly folded into the
// "alpha" term below. Inputs and outputs may alias.
func doubleJacobian(x3, y3, z3, x1, y1, z1 []uint64, tmp *workspace, mctx *montgomery.Context) {
	a, b, c, d, e, s := tmp.a, tmp.b, tmp.c, tmp.d, tmp.e, tmp.scratch

	if mctx.IsZero(z1) {
		mctx.Set(x3, 1)
		mctx.Set(y3, 1)
		mctx.Set(z3, 0)
		return
	}

	mctx.MulInto(a, z1, z1, s) // a = delta = Z1^2
	mctx.MulInto(b, y1, y1, s) // b = gamma = Y1^2
	mctx.MulInto(c, x1, b, s)  // c = beta = X1*gamma
	mctx.Sub(d, x1, a)
	mctx.Add(e, x1, a)
	mctx.MulInto(d, d, e, s)
	mctx.Add(e, d, d)
	mctx.Add(d, d, e) // d = alpha = 3*(X1-delta)*(X1+delta)

	mctx.Add(z3, y1, z1)
	mctx.MulInto(z3, z3, z3, s)
	mctx.Sub(z3, z3, b)
	mctx.Sub(z3, z3, a) // Z3 = (Y1+Z1)^2-gamma-delta

	mctx.MulInto(x3, d, d, s)
	mctx.Add(e, c, c)
	mctx.Add(e, e, e)
	mctx.Add(e, e, e)
	mctx.Sub(x3, x3, e) // X3 = alpha^2-8*beta

	mctx.Add(e, c, c)
	mctx.Add(y3, e, e)
	mctx.Sub(y3, y3, x3)
	mctx.MulInto(y3, d, y3, s)
	mctx.MulInto(e, b, b, s)
	mctx.Add(e, e, e)
	mctx.Add(e, e, e)
	mctx.Add(e, e, e)
	mctx.Sub(y3, y3, e) // Y3 = alpha*(4*beta-X3)-8*gamma^2
}

// mixedAdd computes (x3,y3,z3) = (x1,y1,z1) + (x2,y2,1), where the
// second point is affine (its Z coordinate is implicitly 1). Inputs and
// outputs may alias.
func mixedAdd(x3, y3, z3, x1, y1, z1, x2, y2 []uint64, tmp *workspace, mctx *montgomery.Context) {
	a, b, c, d, e, f, s := tmp.a, tmp.b, tmp.c, tmp.d, tmp.e, tmp.f, tmp.scratch

	if mctx.IsZero(z1) {
		copy(x3, x2)
		copy(y3, y2)
		mctx.Set(z3, 1)
		return
	}

	if mctx.IsZero(x2) && mctx.IsZero(y2) {
		copy(x3, x1)
		copy(y3, y1)
		copy(z3, z1)
		return
	}

	mctx.MulInto(a, z1, z1, s) // a = Z1Z1 = Z1^2
	mctx.MulInto(b, x2, a, s)  // b = U2 = X2*Z1Z1
	mctx.MulInto(c, y2, z1, s)
	mctx.MulInto(c, c, a, s) // c = S2 = Y2*Z1*Z1Z1

	if mctx.Equal(x1, b) {
		if mctx.Equal(y1, c) {
			doubleJacobian(x3, y3, z3, x1, y1, z1, tmp, mctx)
			return
		}
		mctx.Set(x3, 1)
		mctx.Set(y3, 1)
		mctx.Set(z3, 0)
		return
	}

	mctx.Sub(b, b, x1) // b = H = U2-X1
	mctx.MulInto(d, b, b, s)
	mctx.Add(e, d, d)
	mctx.Add(e, e, e) // e = I = 4*HH
	mctx.MulInto(f, b, e, s)

	mctx.Sub(c, c, y1)
	mctx.Add(c, c, c) // c = r = 2*(S2-Y1)
	mctx.MulInto(e, x1, e, s)

	mctx.MulInto(x3, c, c, s)
	mctx.Sub(x3, x3, f)
	mctx.Sub(x3, x3, e)
	mctx.Sub(x3, x3, e) // X3 = r^2-J-2*V

	mctx.MulInto(f, y1, f, s)
	mctx.Add(f, f, f)
	mctx.Sub(y3, e, x3)
	mctx.MulInto(y3, c, y3, s)
	mctx.Sub(y3, y3, f) // Y3 = r*(V-X3)-2*Y1*J

	mctx.Add(z3, z1, b)
	mctx.MulInto(z3, z3, z3, s)
	mctx.Sub(z3, z3, a)
	mctx.Sub(z3, z3, d) // Z3 = (Z1+H)^2-Z1Z1-HH
}

// constSelect sets dst = whenTrue if cond == 1, dst = whenFalse if
// cond == 0, without branching on cond. cond must be 0 or 1.
func constSelect(dst, whenTrue, whenFalse []uint64, cond uint64) {
	mask := uint64(0) - cond
	for i := range dst {
		dst[i] = (whenTrue[i] & mask) | (whenFalse[i] &^ mask)
	}
}

// fullAdd computes (x3,y3,z3) = (x1,y1,z1) + (x2,y2,z2), both operands
// in Jacobian coordinates. Inputs and outputs may alias. Whether the
// second operand is the point at infinity is checked (p2IsPai) but both
// branches' arithmetic is always carried out, with the result picked by
// constant-time select at the end, so the control flow taken does not
// depend on that secret-adjacent property.
func fullAdd(x3, y3, z3, x1, y1, z1, x2, y2, z2 []uint64, tmp *workspace, mctx *montgomery.Context) {
	a, b, c, d, e, f, g, h, s := tmp.a, tmp.b, tmp.c, tmp.d, tmp.e, tmp.f, tmp.g, tmp.h, tmp.scratch

	if mctx.IsZero(z1) {
		copy(x3, x2)
		copy(y3, y2)
		copy(z3, z2)
		return
	}

	p2IsPai := uint64(0)
	if mctx.IsZero(z2) {
		p2IsPai = 1
	}

	mctx.MulInto(a, z1, z1, s) // a = Z1Z1 = Z1^2
	mctx.MulInto(b, z2, z2, s) // b = Z2Z2 = Z2^2
	mctx.MulInto(c, x1, b, s)  // c = U1 = X1*Z2Z2
	mctx.MulInto(d, x2, a, s)  // d = U2 = X2*Z1Z1
	mctx.MulInto(e, y1, z2, s)
	mctx.MulInto(e, e, b, s) // e = S1 = Y1*Z2*Z2Z2
	mctx.MulInto(f, y2, z1, s)
	mctx.MulInto(f, f, a, s) // f = S2 = Y2*Z1*Z1Z1

	if mctx.Equal(c, d) {
		if mctx.Equal(e, f) {
			doubleJacobian(x3, y3, z3, x1, y1, z1, tmp, mctx)
		} else {
			mctx.Set(x3, 1)
			mctx.Set(y3, 1)
			mctx.Set(z3, 0)
		}
		return
	}

	mctx.Sub(d, d, c) // d = H = U2-U1
	mctx.Add(g, d, d)
	mctx.MulInto(g, g, g, s) // g = I = (2*H)^2
	mctx.MulInto(h, d, g, s) // h = J = H*I
	mctx.Sub(f, f, e)
	mctx.Add(f, f, f)        // f = r = 2*(S2-S1)
	mctx.MulInto(c, c, g, s) // c = V = U1*I

	mctx.MulInto(g, f, f, s)
	mctx.Sub(g, g, h)
	mctx.Sub(g, g, c)
	mctx.Sub(g, g, c) // g = X3' = r^2-J-2*V
	constSelect(x3, x1, g, p2IsPai)

	mctx.Sub(g, c, g)
	mctx.MulInto(g, f, g, s)
	mctx.MulInto(c, e, h, s)
	mctx.Add(c, c, c)
	mctx.Sub(g, g, c) // g = Y3' = r*(V-X3)-2*S1*J
	constSelect(y3, y1, g, p2IsPai)

	mctx.Add(g, z1, z2)
	mctx.MulInto(g, g, g, s)
	mctx.Sub(g, g, a)
	mctx.Sub(g, g, b)
	mctx.MulInto(g, g, d, s) // g = Z3' = ((Z1+Z2)^2-Z1Z1-Z2Z2)*H
	constSelect(z3, z1, g, p2IsPai)
}
