package hybridkem

import "context"

// Decapsulate recovers the hybrid shared secret from a ciphertext using the
// bound composite private key.
//
// Two-phase contract mirrors Encapsulate: a nil secret slice triggers a pure
// length query. In the compute phase the ciphertext length must equal
// kemCtLen+kexPubLen exactly or the call fails with ErrEncodingMismatch
// before anything is written.
//
// Atomicity: if either primitive fails, the call fails and no partial secret
// is left in the output buffer. A secret derived from only one of the two
// primitives is never observable.
func (c *Context) Decapsulate(ctx context.Context, secret, ciphertext []byte) (secretLen int, err error) {
	const op = "Decapsulate"

	if c == nil {
		return 0, opErrf(op, ErrInvalidKeyState, "nil context")
	}
	if c.mode != modeDecaps || c.key == nil {
		return 0, opErrf(op, ErrInvalidKeyState, "context not bound for decapsulation (state %s)", c.mode)
	}

	d := c.key.desc
	secretLen = d.SharedSecretSize()

	if secret == nil {
		c.log.Debug(ctx, "decapsulate size query", "secret_len", secretLen)
		return secretLen, nil
	}
	if len(secret) < secretLen {
		return secretLen, opErrf(op, ErrEncodingMismatch, "secret buffer %d bytes, need %d", len(secret), secretLen)
	}
	if !c.key.HasPrivate() {
		return secretLen, opErrf(op, ErrInvalidKeyState, "bound key has no private half")
	}

	kemPriv, kexPriv, err := DecodeCompositeKey(c.key.private)
	if err != nil {
		return secretLen, err
	}

	ctKem, ctKex, err := SplitCiphertext(ciphertext, d.KEMCiphertextLen, d.KEXPublicKeyLen)
	if err != nil {
		return secretLen, err
	}

	c.log.Debug(ctx, "decapsulate", "kem", d.KEM.Name(), "kex", d.KEX.Name(),
		"ct_len", len(ciphertext), "raw_key", d.RawKeySupport)

	// Raw vs structured decoding is the group's capability; the descriptor
	// flag only mirrors it for callers.
	sk, err := d.KEX.DecodePrivateKey(kexPriv)
	if err != nil {
		return secretLen, opErrf(op, ErrInvalidKeyState, "key-exchange private key decode: %v", err)
	}
	defer sk.Zeroize()

	ssKex, err := sk.Derive(ctKex)
	if err != nil {
		return secretLen, opErrf(op, ErrPrimitiveFailure, "key-exchange derive: %v", err)
	}
	defer ZeroizeBytes(ssKex)
	if len(ssKex) != d.KEXSecretLen {
		return secretLen, opErrf(op, ErrPrimitiveFailure, "key-exchange secret %d bytes, expected %d", len(ssKex), d.KEXSecretLen)
	}

	ssKem, err := d.KEM.Decapsulate(kemPriv, ctKem)
	if err != nil {
		return secretLen, opErrf(op, ErrPrimitiveFailure, "kem decapsulate: %v", err)
	}
	defer ZeroizeBytes(ssKem)
	if len(ssKem) != d.KEMSecretLen {
		return secretLen, opErrf(op, ErrPrimitiveFailure, "kem secret %d bytes, expected %d", len(ssKem), d.KEMSecretLen)
	}

	// Both halves derived; commit in fixed KEM-then-KEX order.
	if err := assembleSecret(secret[:secretLen], ssKem, ssKex); err != nil {
		return secretLen, err
	}

	return secretLen, nil
}
