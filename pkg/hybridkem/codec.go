package hybridkem

import "encoding/binary"

// Composite key layout:
//
//	kemLen:uint32(BE) || kemBytes[kemLen] || kexLen:uint32(BE) || kexBytes[kexLen]
//
// Hybrid ciphertext layout (no prefixes, both components algorithm-fixed):
//
//	ctKem[kemCtLen] || ctKex[kexPubLen]

const lenPrefixSize = 4

// DecodeCompositeKey parses a composite key buffer into its KEM and
// key-exchange portions. The returned slices are views into buf, not copies.
//
// Every declared length is validated against the enclosing buffer before any
// read; a buffer whose declared lengths do not exactly account for its total
// size fails with ErrEncodingMismatch.
func DecodeCompositeKey(buf []byte) (kemPart, kexPart []byte, err error) {
	const op = "DecodeCompositeKey"

	if len(buf) < lenPrefixSize {
		return nil, nil, opErrf(op, ErrEncodingMismatch, "buffer too short for kem length prefix: %d bytes", len(buf))
	}
	kemLen := int(binary.BigEndian.Uint32(buf))
	rest := buf[lenPrefixSize:]
	if kemLen < 0 || kemLen > len(rest) {
		return nil, nil, opErrf(op, ErrEncodingMismatch, "declared kem length %d exceeds buffer", kemLen)
	}
	kemPart = rest[:kemLen]
	rest = rest[kemLen:]

	if len(rest) < lenPrefixSize {
		return nil, nil, opErrf(op, ErrEncodingMismatch, "buffer too short for kex length prefix")
	}
	kexLen := int(binary.BigEndian.Uint32(rest))
	rest = rest[lenPrefixSize:]
	if kexLen != len(rest) {
		return nil, nil, opErrf(op, ErrEncodingMismatch, "declared kex length %d, have %d trailing bytes", kexLen, len(rest))
	}
	kexPart = rest

	return kemPart, kexPart, nil
}

// EncodeCompositeKey assembles the length-prefixed composite key layout from
// a KEM portion and a key-exchange portion. The inputs are copied.
func EncodeCompositeKey(kemPart, kexPart []byte) []byte {
	out := make([]byte, 2*lenPrefixSize+len(kemPart)+len(kexPart))
	binary.BigEndian.PutUint32(out, uint32(len(kemPart)))
	n := lenPrefixSize
	n += copy(out[n:], kemPart)
	binary.BigEndian.PutUint32(out[n:], uint32(len(kexPart)))
	n += lenPrefixSize
	copy(out[n:], kexPart)
	return out
}

// SplitCiphertext splits a hybrid ciphertext into its KEM and key-exchange
// portions. Fails with ErrEncodingMismatch unless len(ct) == len1+len2. The
// returned slices are non-overlapping views into ct.
func SplitCiphertext(ct []byte, len1, len2 int) (part1, part2 []byte, err error) {
	const op = "SplitCiphertext"

	if len1 < 0 || len2 < 0 {
		return nil, nil, opErrf(op, ErrEncodingMismatch, "negative component length")
	}
	if len(ct) != len1+len2 {
		return nil, nil, opErrf(op, ErrEncodingMismatch, "ciphertext length %d, expected %d+%d", len(ct), len1, len2)
	}
	return ct[:len1:len1], ct[len1:], nil
}

// assembleSecret writes the two shared secret halves into out at the
// documented offsets: the KEM half at offset 0, the key-exchange half
// immediately after. Order is part of the wire contract and must be bit-exact.
func assembleSecret(out, ssKem, ssKex []byte) error {
	const op = "assembleSecret"

	if len(out) != len(ssKem)+len(ssKex) {
		return opErrf(op, ErrEncodingMismatch, "secret buffer length %d, expected %d+%d", len(out), len(ssKem), len(ssKex))
	}
	n := copy(out, ssKem)
	copy(out[n:], ssKex)
	return nil
}
