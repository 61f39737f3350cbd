package montgomery

import (
	"github.com/blck-snwmn/ecweier/ecerr"
)

// Context captures a modulus N and the constants derived from it that
// every Montgomery-form operation needs: R mod N, R^2 mod N, the REDC
// constant m0 = -N^-1 mod 2^64, the Montgomery encoding of 1, and N-2
// (the Fermat-inversion exponent). A Context is immutable once
// NewContext returns successfully, and may be shared across goroutines
// without synchronization.
type Context struct {
	words       int
	bytesLen    int
	modulus     []uint64
	r2ModN      []uint64
	rModN       []uint64
	m0          uint64
	one         []uint64
	modulusMin2 []uint64
}

// Words returns the number of 64-bit words used to represent any number
// reduced modulo this context's modulus.
func (c *Context) Words() int { return c.words }

// Bytes returns the byte length of the context's modulus, rounded up to
// a whole number of 64-bit words (words*8).
func (c *Context) Bytes() int { return c.bytesLen }

// NewContext builds a Montgomery context for the given odd modulus
// (at least 3), encoded big-endian.
func NewContext(modulus []byte) (*Context, error) {
	if modulus == nil {
		return nil, ecerr.New(ecerr.Null, "montgomery: nil modulus")
	}
	modLen := len(modulus)
	if modLen == 0 {
		return nil, ecerr.New(ecerr.NotEnoughData, "montgomery: empty modulus")
	}
	if modulus[modLen-1]&1 == 0 {
		return nil, ecerr.New(ecerr.Value, "montgomery: modulus must be odd")
	}
	if modulus[modLen-1] < 3 {
		allZero := true
		for _, b := range modulus[:modLen-1] {
			if b != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			return nil, ecerr.New(ecerr.Value, "montgomery: modulus must be >= 3")
		}
	}

	words := (modLen + 7) / 8
	ctx := &Context{
		words:    words,
		bytesLen: words * 8,
	}

	ctx.modulus = bytesToWords(words, modulus)
	ctx.r2ModN = rsquare(ctx.modulus)
	ctx.m0 = inverse64(-ctx.modulus[0])

	ctx.one = make([]uint64, words)
	ctx.one[0] = 1

	scratch := make([]uint64, 3*words+1)
	ctx.rModN = make([]uint64, words)
	montMultInternal(ctx.rModN, ctx.one, ctx.r2ModN, ctx.modulus, ctx.m0, scratch, words)

	ctx.modulusMin2 = make([]uint64, words)
	sub(ctx.modulusMin2, ctx.modulus, ctx.one)
	sub(ctx.modulusMin2, ctx.modulusMin2, ctx.one)

	return ctx, nil
}

// IsZero reports whether a represents the integer 0 (in either
// Montgomery or plain form — the all-zero word pattern is unique to 0
// in both).
func (c *Context) IsZero(a []uint64) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether a equals the Montgomery encoding of 1, i.e.
// a == R mod N.
func (c *Context) IsOne(a []uint64) bool {
	return c.Equal(a, c.rModN)
}

// Equal reports whether two Montgomery numbers are identical word for
// word.
func (c *Context) Equal(a, b []uint64) bool {
	var diff uint64
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// Set writes the small constant v (0 or 1) into out in Montgomery
// form: 0 is the all-zero word pattern, and 1 is rModN. v must be 0
// or 1.
func (c *Context) Set(out []uint64, v uint64) {
	for i := range out {
		out[i] = 0
	}
	if v == 0 {
		return
	}
	copy(out, c.rModN)
}

// ModulusWords returns the context's modulus as a read-only little-endian
// word array. Callers must not mutate the returned slice.
func (c *Context) ModulusWords() []uint64 { return c.modulus }

// NewWord allocates a zeroed context-width word array.
func (c *Context) NewWord() []uint64 {
	return make([]uint64, c.words)
}

// NewScratch allocates a scratchpad sized for montMultInternal
// (3*words+1 words), matching the C library's Workplace.scratch
// sizing.
func (c *Context) NewScratch() []uint64 {
	return make([]uint64, 3*c.words+1)
}
