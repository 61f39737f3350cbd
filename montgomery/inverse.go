package montgomery

// InvPrime computes the modular inverse of a (already in Montgomery
// form) via Fermat's little theorem: a^(N-2) mod N. N must be a
// non-secret prime, which it is by construction (it is the curve's
// field modulus). The exponent N-2 is likewise non-secret, so the
// left-to-right binary exponentiation below may branch on its bits
// without leaking anything about the secret value a.
func (c *Context) InvPrime(a []uint64) []uint64 {
	exponent := c.modulusMin2
	scratch := c.NewScratch()

	idxWord := c.words - 1
	for exponent[idxWord] == 0 && idxWord > 0 {
		idxWord--
	}
	var bit uint64 = 1 << 63
	for exponent[idxWord]&bit == 0 {
		bit >>= 1
	}

	out := c.NewWord()
	copy(out, c.rModN)

	tmp := c.NewWord()
	for {
		for {
			c.MulInto(tmp, out, out, scratch)
			if exponent[idxWord]&bit != 0 {
				c.MulInto(out, tmp, a, scratch)
			} else {
				copy(out, tmp)
			}
			if bit == 1 {
				break
			}
			bit >>= 1
		}
		if idxWord == 0 {
			break
		}
		idxWord--
		bit = 1 << 63
	}

	return out
}
