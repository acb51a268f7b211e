package signer

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k256.mleku.dev"
)

func hexInt(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "bad hex %q", s)
	return n
}

func TestRFC6979Nonce(t *testing.T) {
	tests := []struct {
		name  string
		sec   string
		msg   string
		nonce string
	}{
		{
			"key one",
			"1",
			"Satoshi Nakamoto",
			"8f8a276c19f4149656b280621e358cce24f5f52542772691ee69063b74f15d15",
		},
		{
			"key N-1",
			"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
			"Satoshi Nakamoto",
			"33a19b60e25fb6f4435af53a3d42d493644827367e6453928554f43e49aa6f90",
		},
		{
			"long message",
			"1",
			"All those moments will be lost in time, like tears in rain. Time to die...",
			"38aa22d72376b4dbc472e06c3ba403ee0a394da63fc58d88686c611aba98d6b3",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := newRFC6979(hexInt(t, tc.sec), Digest([]byte(tc.msg)))
			defer rng.clear()
			assert.Equal(t, 0, rng.next().Cmp(hexInt(t, tc.nonce)))
		})
	}
}

func TestRFC6979NextDiffers(t *testing.T) {
	rng := newRFC6979(big.NewInt(1), Digest([]byte("retry")))
	first, second := rng.next(), rng.next()
	assert.NotEqual(t, 0, first.Cmp(second), "retry should yield a new nonce")
	assert.True(t, k256.IsValidScalar(second))
}

func TestK256Signer_DeterministicVector(t *testing.T) {
	s := NewK256SignerDeterministic()
	require.NoError(t, s.InitSec(scalar32(big.NewInt(1))))
	defer s.Zero()

	sig, err := s.Sign([]byte("Satoshi Nakamoto"))
	require.NoError(t, err)
	assert.Equal(t, 0, sig.R().Cmp(hexInt(t,
		"934b1ea10a4b3c1757e2b0c017d0b6143ce3c9a7e6a4a49860d7a6ab210ee3d8")))
	// S is not normalized, btcec reports N - s here.
	assert.Equal(t, 0, sig.S().Cmp(hexInt(t,
		"dbbd3162d46e9f9bef7feb87c16dc13b4f6568a87f4e83f728e2443ba586675c")))

	again, err := s.Sign([]byte("Satoshi Nakamoto"))
	require.NoError(t, err)
	assert.True(t, sig.IsEqual(again), "signatures should be reproducible")
}

// TestK256Signer_DeterministicMatchesBtcec checks the RFC 6979 nonces agree
// with btcec for random keys and messages. btcec always returns the low S
// form, so s may differ by negation.
func TestK256Signer_DeterministicMatchesBtcec(t *testing.T) {
	for i := 0; i < 8; i++ {
		sec := make([]byte, 32)
		_, err := rand.Read(sec)
		require.NoError(t, err)
		msg := make([]byte, 40)
		_, err = rand.Read(msg)
		require.NoError(t, err)

		ks := NewK256SignerDeterministic()
		if err := ks.InitSec(sec); err != nil {
			// out of range, vanishingly rare
			continue
		}
		bs := NewBtcecSigner()
		require.NoError(t, bs.InitSec(sec))

		got, err := ks.Sign(msg)
		require.NoError(t, err)
		want, err := bs.Sign(msg)
		require.NoError(t, err)

		assert.Equal(t, 0, got.R().Cmp(want.R()), "r mismatch")
		negS := new(big.Int).Sub(k256.Order(), got.S())
		assert.True(t, got.S().Cmp(want.S()) == 0 || negS.Cmp(want.S()) == 0,
			"s mismatch")

		ks.Zero()
		bs.Zero()
	}
}
