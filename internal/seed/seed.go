// Package seed derives deterministic pseudorandom byte streams from a
// 64-bit seed, used by package ec to generate scalar- and
// coordinate-blinding factors and the scattered table's permutation key.
// It is a deterministic expansion, not an entropy source: callers supply
// the seed and are responsible for its unpredictability.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

var info = []byte("ecweier-blinding-v1")

// Expand derives n pseudorandom bytes from seed via HKDF-SHA256, using
// seed's 8-byte big-endian encoding as the input keying material. Equal
// seeds always produce equal output; the stream has no dependency on
// process state or time.
func Expand(seed uint64, n int) []byte {
	var ikm [8]byte
	binary.BigEndian.PutUint64(ikm[:], seed)

	r := hkdf.New(sha256.New, ikm[:], nil, info)
	out := make([]byte, n)
	if _, err := io.ReadFull(r, out); err != nil {
		// HKDF-SHA256 can only fail this way past 255 output blocks
		// (255*32 = 8160 bytes); every caller in this module requests a few
		// field-element widths at most.
		panic(err)
	}
	return out
}
