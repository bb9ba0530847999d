package hybridkem

import "context"

// Encapsulate runs the hybrid encapsulation against the bound composite
// public key.
//
// Two-phase contract: if either output slice is nil, no cryptographic work is
// performed and the call only reports the required lengths. The size query is
// pure and side-effect-free. In the compute phase both slices must be at
// least the reported lengths; the hybrid ciphertext and shared secret are
// written at offset 0 of their respective buffers.
//
// Layout written on success:
//
//	ciphertext = ctKem[kemCtLen] || ephemeralKexPub[kexPubLen]
//	secret     = ssKem[kemSecretLen] || ssKex[kexSecretLen]
//
// On failure nothing usable is left in the output buffers. The ephemeral
// key-exchange private key is zeroized on every exit path.
func (c *Context) Encapsulate(ctx context.Context, ciphertext, secret []byte) (ctLen, secretLen int, err error) {
	const op = "Encapsulate"

	if c == nil {
		return 0, 0, opErrf(op, ErrInvalidKeyState, "nil context")
	}
	if c.mode != modeEncaps || c.key == nil {
		return 0, 0, opErrf(op, ErrInvalidKeyState, "context not bound for encapsulation (state %s)", c.mode)
	}

	d := c.key.desc
	ctLen = d.CiphertextSize()
	secretLen = d.SharedSecretSize()

	// Size query: either buffer absent means no work is performed.
	if ciphertext == nil || secret == nil {
		c.log.Debug(ctx, "encapsulate size query", "ct_len", ctLen, "secret_len", secretLen)
		return ctLen, secretLen, nil
	}
	if len(ciphertext) < ctLen {
		return ctLen, secretLen, opErrf(op, ErrEncodingMismatch, "ciphertext buffer %d bytes, need %d", len(ciphertext), ctLen)
	}
	if len(secret) < secretLen {
		return ctLen, secretLen, opErrf(op, ErrEncodingMismatch, "secret buffer %d bytes, need %d", len(secret), secretLen)
	}

	pub := c.key.PublicBytes()
	if len(pub) == 0 {
		return ctLen, secretLen, opErrf(op, ErrInvalidKeyState, "bound key has no public half")
	}
	kemPub, kexPub, err := DecodeCompositeKey(pub)
	if err != nil {
		return ctLen, secretLen, err
	}

	c.log.Debug(ctx, "encapsulate", "kem", d.KEM.Name(), "kex", d.KEX.Name(), "ct_len", ctLen, "secret_len", secretLen)

	// Fresh ephemeral keypair in the peer's key-exchange group, erased on
	// every exit path.
	eph, err := d.KEX.GenerateKey()
	if err != nil {
		return ctLen, secretLen, opErrf(op, ErrPrimitiveFailure, "ephemeral keygen: %v", err)
	}
	defer eph.Zeroize()

	// The classical secret is computed first but occupies the slot after
	// the KEM secret.
	ssKex, err := eph.Derive(kexPub)
	if err != nil {
		return ctLen, secretLen, opErrf(op, ErrPrimitiveFailure, "key-exchange derive: %v", err)
	}
	defer ZeroizeBytes(ssKex)
	if len(ssKex) != d.KEXSecretLen {
		return ctLen, secretLen, opErrf(op, ErrPrimitiveFailure, "key-exchange secret %d bytes, expected %d", len(ssKex), d.KEXSecretLen)
	}

	ctKem, ssKem, err := d.KEM.Encapsulate(kemPub)
	if err != nil {
		return ctLen, secretLen, opErrf(op, ErrPrimitiveFailure, "kem encapsulate: %v", err)
	}
	defer ZeroizeBytes(ssKem)
	if len(ctKem) != d.KEMCiphertextLen || len(ssKem) != d.KEMSecretLen {
		return ctLen, secretLen, opErrf(op, ErrPrimitiveFailure, "kem output sizes %d/%d, expected %d/%d",
			len(ctKem), len(ssKem), d.KEMCiphertextLen, d.KEMSecretLen)
	}

	// Re-encode the ephemeral public key for the ciphertext tail. A length
	// other than the descriptor's fixed size would silently corrupt the
	// wire layout, so it is a distinct failure.
	ephPub, err := eph.PublicBytes()
	if err != nil {
		return ctLen, secretLen, opErrf(op, ErrParameterCopy, "ephemeral public key encode: %v", err)
	}
	if len(ephPub) != d.KEXPublicKeyLen {
		return ctLen, secretLen, opErrf(op, ErrParameterCopy, "ephemeral public key %d bytes, expected %d", len(ephPub), d.KEXPublicKeyLen)
	}

	// All primitive outcomes are in; commit to the caller's buffers.
	copy(ciphertext[:d.KEMCiphertextLen], ctKem)
	copy(ciphertext[d.KEMCiphertextLen:ctLen], ephPub)
	if err := assembleSecret(secret[:secretLen], ssKem, ssKex); err != nil {
		return ctLen, secretLen, err
	}

	return ctLen, secretLen, nil
}
