// Package ec implements scalar multiplication on short Weierstrass
// curves y^2 = x^3 - 3x + b over a prime field, using Jacobian
// projective coordinates and the Montgomery-form arithmetic engine from
// package montgomery. It is built for curves such as NIST P-256.
package ec

import (
	"github.com/blck-snwmn/ecweier/ecerr"
	"github.com/blck-snwmn/ecweier/montgomery"
)

// Context describes a short Weierstrass curve: its field modulus (via
// an embedded Montgomery context), the curve constant b (in Montgomery
// form), and the group order. A Context is immutable after NewContext
// returns and may be shared across goroutines without synchronization;
// points referencing it must not outlive it.
type Context struct {
	mont  *montgomery.Context
	b     []uint64
	order []uint64
}

// NewContext builds a curve context for y^2 = x^3 - 3x + b over the
// given prime modulus. modulus, bParam, and order must all have the same
// length, big-endian encoded.
func NewContext(modulus, bParam, order []byte) (*Context, error) {
	if modulus == nil || bParam == nil || order == nil {
		return nil, ecerr.New(ecerr.Null, "ec: nil argument")
	}
	if len(modulus) == 0 {
		return nil, ecerr.New(ecerr.NotEnoughData, "ec: empty modulus")
	}

	mctx, err := montgomery.NewContext(modulus)
	if err != nil {
		return nil, err
	}

	bMont, err := mctx.FromBytes(bParam)
	if err != nil {
		return nil, err
	}

	if len(bParam) != len(modulus) || len(order) != len(modulus) {
		return nil, ecerr.New(ecerr.Value, "ec: b and order lengths must match modulus length")
	}
	orderW := mctx.WordsFromBytes(order)

	return &Context{mont: mctx, b: bMont, order: orderW}, nil
}

// FieldContext returns the curve's underlying Montgomery field context.
func (ctx *Context) FieldContext() *montgomery.Context { return ctx.mont }

// B returns the curve constant b in Montgomery form.
func (ctx *Context) B() []uint64 { return ctx.b }

// Order returns the group order as a plain (non-Montgomery) word array.
func (ctx *Context) Order() []uint64 { return ctx.order }
