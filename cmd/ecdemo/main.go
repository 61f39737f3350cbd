// Command ecdemo exercises the ec package's public surface against the
// standard NIST P-256 curve parameters and base point.
package main

import (
	"encoding/hex"
	"os"

	"go.uber.org/zap"

	"github.com/blck-snwmn/ecweier/ec"
)

const (
	p256Modulus = "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"
	p256B       = "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"
	p256Order   = "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"
	p256Gx      = "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
	p256Gy      = "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"
)

func decode(logger *zap.SugaredLogger, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		logger.Fatalw("invalid hex constant", "value", s, "error", err)
	}
	return b
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, err := ec.NewContext(decode(sugar, p256Modulus), decode(sugar, p256B), decode(sugar, p256Order))
	if err != nil {
		sugar.Fatalw("failed to build curve context", "error", err)
	}
	sugar.Infow("curve context ready", "field_bytes", ctx.FieldContext().Bytes())

	g, err := ec.NewPoint(decode(sugar, p256Gx), decode(sugar, p256Gy), ctx)
	if err != nil {
		sugar.Fatalw("failed to build base point", "error", err)
	}

	q := g.Clone()
	if err := ctx.ScalarMultiply(q, []byte{0x02}, 0); err != nil {
		sugar.Fatalw("scalar multiply failed", "error", err)
	}
	x, y := q.GetXY()
	sugar.Infow("2G computed", "x", hex.EncodeToString(x), "y", hex.EncodeToString(y))

	blinded := g.Clone()
	if err := ctx.ScalarMultiply(blinded, []byte{0x02}, 0xFFF); err != nil {
		sugar.Fatalw("blinded scalar multiply failed", "error", err)
	}
	cmp, err := q.Cmp(blinded)
	if err != nil {
		sugar.Fatalw("compare failed", "error", err)
	}
	sugar.Infow("blinded result matches unblinded", "equal", cmp == 0)

	if cmp != 0 {
		os.Exit(1)
	}
}
