package ecerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs_matchesWrappedKind(t *testing.T) {
	t.Parallel()

	err := Wrap(ECPoint, errors.New("not on curve"), "new point failed")
	require.True(t, Is(err, ECPoint))
	require.False(t, Is(err, Value))
}

func TestError_messageIncludesCause(t *testing.T) {
	t.Parallel()

	err := New(Value, "modulus must be odd")
	require.Equal(t, "invalid value: modulus must be odd", err.Error())
}

func TestUnwrap_exposesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := Wrap(Memory, cause, "allocation")

	require.ErrorIs(t, err, cause)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	cases := map[Kind]string{
		Null:          "null argument",
		NotEnoughData: "not enough data",
		Value:         "invalid value",
		Memory:        "allocation failure",
		ECPoint:       "point not on curve",
		ECCurve:       "points belong to different curves",
		Kind(999):     "unknown error",
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}
}
