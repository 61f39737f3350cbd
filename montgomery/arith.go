package montgomery

import (
	"math/bits"

	"github.com/blck-snwmn/ecweier/ecerr"
)

// Mul computes a*b*R^-1 mod N (standard Montgomery multiplication),
// allocating its own scratch buffer. Use MulInto when calling
// repeatedly (e.g. from the EC ladder) to reuse a caller-owned scratch
// buffer instead.
func (c *Context) Mul(a, b []uint64) []uint64 {
	out := c.NewWord()
	c.MulInto(out, a, b, c.NewScratch())
	return out
}

// MulInto computes out = a*b*R^-1 mod N using a caller-supplied scratch
// buffer of at least 3*Words()+1 words. out may alias a or b.
func (c *Context) MulInto(out, a, b []uint64, scratch []uint64) {
	montMultInternal(out, a, b, c.modulus, c.m0, scratch, c.words)
}

// Add computes out = a+b mod N for a, b in [0, N). The sum is reduced
// by subtracting N once when it carried out of the top word or is
// still >= N; that subtraction uses a mask rather than a branch, so the
// result is canonical and comparable word for word with Equal.
func (c *Context) Add(out, a, b []uint64) {
	var carry uint64
	for i := 0; i < c.words; i++ {
		s := a[i] + carry
		carry = boolToWord(s < carry)
		s2 := s + b[i]
		carry += boolToWord(s2 < b[i])
		out[i] = s2
	}
	mask := -(carry | ge(out, c.modulus))
	var borrow uint64
	for i := 0; i < c.words; i++ {
		out[i], borrow = bits.Sub64(out[i], c.modulus[i]&mask, borrow)
	}
}

// Sub computes out = a-b mod N for a, b in [0, N), adding N back
// (masked, not branched on) when the subtraction borrows.
func (c *Context) Sub(out, a, b []uint64) {
	mask := -sub(out, a, b)
	var carry uint64
	for i := 0; i < c.words; i++ {
		out[i], carry = bits.Add64(out[i], c.modulus[i]&mask, carry)
	}
}

// MulScalar computes out = a*k for a 64-bit scalar k, truncated to
// Words() words (carry beyond the top word is discarded). Used by
// scalar blinding, where only a bounded-width result is needed.
func (c *Context) MulScalar(out, a []uint64, k uint64) {
	var carry uint64
	for i := 0; i < c.words; i++ {
		hi, lo := bits.Mul64(a[i], k)
		lo2, c1 := bits.Add64(lo, carry, 0)
		hi += c1
		out[i] = lo2
		carry = hi
	}
}

// FromBytes parses a big-endian byte encoding of a number strictly
// smaller than the modulus and returns its Montgomery form (x*R mod N).
func (c *Context) FromBytes(number []byte) ([]uint64, error) {
	if number == nil {
		return nil, ecerr.New(ecerr.Null, "montgomery: nil number")
	}
	if len(number) == 0 {
		return nil, ecerr.New(ecerr.NotEnoughData, "montgomery: empty number")
	}
	if len(number) > c.bytesLen {
		return nil, ecerr.New(ecerr.Value, "montgomery: number longer than modulus")
	}

	plain := bytesToWords(c.words, number)
	if ge(plain, c.modulus) == 1 {
		return nil, ecerr.New(ecerr.Value, "montgomery: number >= modulus")
	}

	out := c.NewWord()
	c.MulInto(out, plain, c.r2ModN, c.NewScratch())
	return out, nil
}

// WordsFromBytes parses a big-endian byte slice into a plain (not
// Montgomery-encoded) little-endian word array sized to this context's
// Words(), without any range check against the modulus. It exists for
// callers that need a non-reduced quantity of the same width as field
// elements — e.g. the curve order, which need not itself be less than
// the field modulus.
func (c *Context) WordsFromBytes(b []byte) []uint64 {
	return bytesToWords(c.words, b)
}

// WordsToBytesRaw serializes a little-endian word array into a
// big-endian byte slice of exactly outLen bytes, with no Montgomery
// decoding — a plain radix-2^64 rendering. Used by callers (such as the
// EC scalar ladder's scattered table) that need to move word arrays
// across a byte-oriented API without implying any field encoding.
func WordsToBytesRaw(words []uint64, outLen int) []byte {
	return wordsToBytes(words, outLen)
}

// BytesToWordsRaw parses a big-endian byte slice into dst, a
// little-endian word array, with no Montgomery encoding implied. len(dst)
// determines the word count; b is zero-padded on the left as needed.
func BytesToWordsRaw(dst []uint64, b []byte) {
	copy(dst, bytesToWords(len(dst), b))
}

// ToBytes renders a Montgomery-form number back to its big-endian plain
// encoding, zero-padded on the left to Bytes() bytes.
func (c *Context) ToBytes(montNumber []uint64) []byte {
	plain := c.NewWord()
	c.MulInto(plain, montNumber, c.one, c.NewScratch())
	return wordsToBytes(plain, c.bytesLen)
}
