package hybridkem

import (
	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kem"
	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kex"
)

// Descriptor captures the negotiated algorithm pair's fixed sizes and
// capabilities. It is immutable after construction and safe to read from any
// number of goroutines; a Key shares one Descriptor with every Context bound
// to it.
type Descriptor struct {
	// KEMCiphertextLen is the fixed KEM ciphertext length.
	KEMCiphertextLen int

	// KEMSecretLen is the fixed KEM shared secret length.
	KEMSecretLen int

	// KEXPublicKeyLen is the fixed key-exchange public key encoding length.
	// The key-exchange portion of a hybrid ciphertext has this length.
	KEXPublicKeyLen int

	// KEXSecretLen is the fixed key-exchange shared secret length.
	KEXSecretLen int

	// RawKeySupport reports whether key-exchange private keys use a raw
	// fixed-size encoding rather than PKCS#8 DER.
	RawKeySupport bool

	// KEM is the post-quantum primitive capability.
	KEM kem.Scheme

	// KEX is the classical key-exchange group capability.
	KEX kex.Group
}

// NewDescriptor derives a Descriptor from a KEM scheme and key-exchange
// group. Returns ErrInvalidKeyState if either capability is nil.
func NewDescriptor(s kem.Scheme, g kex.Group) (Descriptor, error) {
	if s == nil || g == nil {
		return Descriptor{}, opErrf("NewDescriptor", ErrInvalidKeyState, "nil primitive capability")
	}
	return Descriptor{
		KEMCiphertextLen: s.CiphertextSize(),
		KEMSecretLen:     s.SharedSecretSize(),
		KEXPublicKeyLen:  g.PublicKeySize(),
		KEXSecretLen:     g.SharedSecretSize(),
		RawKeySupport:    g.RawKeySupport(),
		KEM:              s,
		KEX:              g,
	}, nil
}

// CiphertextSize returns the total hybrid ciphertext length,
// kemCtLen + kexPubLen.
func (d Descriptor) CiphertextSize() int {
	return d.KEMCiphertextLen + d.KEXPublicKeyLen
}

// SharedSecretSize returns the total hybrid shared secret length,
// kemSecretLen + kexSecretLen.
func (d Descriptor) SharedSecretSize() int {
	return d.KEMSecretLen + d.KEXSecretLen
}
