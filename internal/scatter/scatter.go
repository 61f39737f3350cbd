// Package scatter implements a side-channel-resistant lookup table: a
// fixed set of equal-length entries, stored in a seed-permuted order, and
// read back through a gather that touches every entry on every lookup so
// the set of memory locations accessed does not depend on the requested
// index.
package scatter

import (
	"crypto/subtle"
	"encoding/binary"
	"math/rand"

	"github.com/blck-snwmn/ecweier/ecerr"
	"github.com/blck-snwmn/ecweier/internal/seed"
)

// slot pairs a physically-stored entry with the logical index it was
// inserted under, so Gather can find it by scanning rather than by
// dereferencing a secret-indexed lookup table.
type slot struct {
	logical int
	data    []byte
}

// Table holds n equal-length entries, physically stored in a
// seed-derived permuted order. The permutation protects against a
// cache-timing attacker inferring which logical index was requested by
// observing which physical slot was touched — but only if Gather (not a
// direct slice index) is always used to read it.
type Table struct {
	entryLen int
	slots    []slot // slots[permuted position]
}

// New builds a Table from entries, all of which must share the same
// length, permuted using a Fisher-Yates shuffle keyed off seed. The
// permutation itself need not be secret: what must be index-independent
// is Gather's access pattern, not the table's layout.
func New(seedVal uint64, entries [][]byte) (*Table, error) {
	if len(entries) == 0 {
		return nil, ecerr.New(ecerr.NotEnoughData, "scatter: no entries")
	}
	entryLen := len(entries[0])
	for _, e := range entries {
		if len(e) != entryLen {
			return nil, ecerr.New(ecerr.Value, "scatter: entries must share one length")
		}
	}

	n := len(entries)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	randBytes := seed.Expand(seedVal, 8)
	rng := rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(randBytes))))
	rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	slots := make([]slot, n)
	for logical, pos := range perm {
		data := make([]byte, entryLen)
		copy(data, entries[logical])
		slots[pos] = slot{logical: logical, data: data}
	}

	return &Table{entryLen: entryLen, slots: slots}, nil
}

// Gather copies the entry at logical index into dst, which must be
// exactly the table's entry length. Every call scans the full table,
// comparing each slot's own stored logical index against the requested
// one and using subtle.ConstantTimeCopy to select on match, so no
// secret-indexed dereference ever happens and the set of slots touched
// is the same regardless of index.
func (t *Table) Gather(dst []byte, index int) {
	for _, s := range t.slots {
		subtle.ConstantTimeCopy(subtle.ConstantTimeEq(int32(s.logical), int32(index)), dst, s.data)
	}
}
