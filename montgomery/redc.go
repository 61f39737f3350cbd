package montgomery

import "math/bits"

// montMultInternal computes out = a*b*R^-1 mod N using the CIOS
// (Coarsely Integrated Operand Scanning) reduction. a and b must
// already be in Montgomery form (or any values with a*b < R*N, which is
// all the final single subtraction needs); n is the modulus in plain form, m0 is
// -n^-1 mod 2^64, and scratch is a caller-supplied buffer of at least
// 3*words+1 words (avoiding a per-call allocation when this is invoked
// from the EC formulas' inner loop).
//
// The algorithm:
//  1. Compute the full product T = a*b (2*words words), using the
//     dedicated squaring routine when a and b are the same slice.
//  2. Reduce T two words at a time: for each pair (i, i+1), derive the
//     two REDC multipliers k0, k1 that zero T[i] and T[i+1], and fold
//     k0*N + k1*N*2^64 into T via addmul128.
//  3. After reduction, T[2*words] is 0 or 1. Compute T[words:] - N and
//     select, in constant time, between that and T[words:] directly —
//     never branching on whether the subtraction was needed.
func montMultInternal(out, a, b, n []uint64, m0 uint64, scratch []uint64, words int) {
	t := scratch[:2*words+1]
	t2 := scratch[2*words+1 : 3*words+1]

	if sameSlice(a, b) {
		squareWords(t[:2*words], a)
	} else {
		product(t[:2*words], a, b)
	}
	t[2*words] = 0

	paired := words &^ 1
	for i := 0; i < paired; i += 2 {
		k0 := t[i] * m0

		// Simulate one digit of t[i:] += k0*n to learn the correct
		// updated t[i+1] before deriving k1 from it.
		prodHi, prodLo := bits.Mul64(k0, n[0])
		prodLo, c := bits.Add64(prodLo, t[i], 0)
		prodHi += c
		_ = prodLo
		ti1 := t[i+1] + n[1]*k0 + prodHi

		k1 := ti1 * m0

		addmul128(t[i:], n, k0, k1)
	}
	if words&1 == 1 {
		addmul(t[words-1:], n, t[words-1]*m0)
	}

	sub(t2, t[words:2*words], n)
	mask := boolToWord(t[2*words] == 1 || ge(t[words:2*words], n) == 1) - 1
	for i := 0; i < words; i++ {
		out[i] = (t[words+i] & mask) ^ (t2[i] & ^mask)
	}
}

func sameSlice(a, b []uint64) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return &a[0] == &b[0]
}
