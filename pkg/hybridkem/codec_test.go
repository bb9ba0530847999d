package hybridkem_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pqxlab/hybridkem-go/pkg/hybridkem"
)

func TestCompositeKeyRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		kem  []byte
		kex  []byte
	}{
		{"typical", []byte("kem-public-key-material"), []byte("kex-material")},
		{"single bytes", []byte{0x01}, []byte{0x02}},
		{"empty kem", nil, []byte("kex-only")},
		{"empty kex", []byte("kem-only"), nil},
		{"both empty", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := hybridkem.EncodeCompositeKey(tc.kem, tc.kex)
			require.Len(t, buf, 8+len(tc.kem)+len(tc.kex))

			kemPart, kexPart, err := hybridkem.DecodeCompositeKey(buf)
			require.NoError(t, err)
			require.Equal(t, len(tc.kem), len(kemPart))
			require.Equal(t, len(tc.kex), len(kexPart))
			if len(tc.kem) > 0 {
				require.Equal(t, tc.kem, kemPart)
			}
			if len(tc.kex) > 0 {
				require.Equal(t, tc.kex, kexPart)
			}
		})
	}
}

func TestDecodeCompositeKeyViews(t *testing.T) {
	// Decoding must not copy: the returned slices alias the input buffer.
	buf := hybridkem.EncodeCompositeKey([]byte{0xAA, 0xBB}, []byte{0xCC})
	kemPart, kexPart, err := hybridkem.DecodeCompositeKey(buf)
	require.NoError(t, err)

	buf[4] = 0x11 // first kem byte
	require.Equal(t, byte(0x11), kemPart[0])
	buf[len(buf)-1] = 0x22 // last kex byte
	require.Equal(t, byte(0x22), kexPart[0])
}

func TestDecodeCompositeKeyBoundsChecks(t *testing.T) {
	valid := hybridkem.EncodeCompositeKey([]byte("kem"), []byte("kex"))

	corrupt := func(mutate func(b []byte)) []byte {
		b := append([]byte(nil), valid...)
		mutate(b)
		return b
	}

	cases := []struct {
		name string
		buf  []byte
	}{
		{"empty buffer", nil},
		{"short of first prefix", []byte{0x00, 0x00, 0x01}},
		{"kem length exceeds buffer", corrupt(func(b []byte) {
			binary.BigEndian.PutUint32(b, 1<<30)
		})},
		{"kem length swallows kex prefix", corrupt(func(b []byte) {
			binary.BigEndian.PutUint32(b, uint32(len(b)-4))
		})},
		{"kex length exceeds buffer", corrupt(func(b []byte) {
			binary.BigEndian.PutUint32(b[7:], 1<<30)
		})},
		{"kex length under-declares", corrupt(func(b []byte) {
			binary.BigEndian.PutUint32(b[7:], 1)
		})},
		{"truncated tail", valid[:len(valid)-1]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := hybridkem.DecodeCompositeKey(tc.buf)
			require.ErrorIs(t, err, hybridkem.ErrEncodingMismatch)
		})
	}
}

func TestSplitCiphertext(t *testing.T) {
	ct := []byte{1, 2, 3, 4, 5, 6, 7}

	p1, p2, err := hybridkem.SplitCiphertext(ct, 3, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, p1)
	require.Equal(t, []byte{4, 5, 6, 7}, p2)

	_, _, err = hybridkem.SplitCiphertext(ct, 3, 3)
	require.ErrorIs(t, err, hybridkem.ErrEncodingMismatch)

	_, _, err = hybridkem.SplitCiphertext(ct, 8, 4)
	require.ErrorIs(t, err, hybridkem.ErrEncodingMismatch)

	_, _, err = hybridkem.SplitCiphertext(nil, 0, 1)
	require.ErrorIs(t, err, hybridkem.ErrEncodingMismatch)

	// Zero-length components are legal when the total matches.
	p1, p2, err = hybridkem.SplitCiphertext(ct, 0, 7)
	require.NoError(t, err)
	require.Len(t, p1, 0)
	require.Len(t, p2, 7)
}
