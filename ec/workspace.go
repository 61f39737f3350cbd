package ec

import "github.com/blck-snwmn/ecweier/montgomery"

// workspace is a scratch bundle carrying eight labelled scratch word
// arrays plus a larger scratchpad for montgomery.Context.MulInto, so the
// EC formulas below never allocate per call. It mirrors the C library's
// Workplace struct (fields a..h plus a shared scratchpad).
type workspace struct {
	a, b, c, d, e, f, g, h []uint64
	scratch                []uint64
}

func newWorkspace(mctx *montgomery.Context) *workspace {
	words := mctx.Words()
	mk := func() []uint64 { return make([]uint64, words) }
	return &workspace{
		a: mk(), b: mk(), c: mk(), d: mk(), e: mk(), f: mk(), g: mk(), h: mk(),
		scratch: make([]uint64, 3*words+1),
	}
}
