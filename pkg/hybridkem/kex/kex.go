package kex

// Group is the interface for the classical key-exchange half of the hybrid
// combiner (elliptic-curve or finite-field Diffie-Hellman family). The
// combiner treats it as an opaque capability: derive(privA, pubB) -> secret.
//
// Public keys use a fixed-size encoding of PublicKeySize bytes. Private keys
// use either a raw fixed-size encoding (RawKeySupport true) or a structured
// DER/PKCS#8 encoding of variable length (RawKeySupport false); the composite
// key layout's length prefix absorbs the difference.
type Group interface {
	// Name returns the group identifier, e.g. "X25519" or "P-256".
	Name() string

	// PublicKeySize returns the fixed encoded public key length in bytes.
	PublicKeySize() int

	// SharedSecretSize returns the derived shared secret length in bytes.
	SharedSecretSize() int

	// RawKeySupport reports whether private keys use a raw fixed-size
	// encoding rather than a structured (PKCS#8 DER) one.
	RawKeySupport() bool

	// GenerateKey generates a fresh keypair. Used both for static keys at
	// key-generation time and for the per-encapsulation ephemeral key.
	GenerateKey() (PrivateKey, error)

	// DecodePrivateKey reconstructs a private key from its encoded form,
	// raw or structured per RawKeySupport.
	DecodePrivateKey(encoded []byte) (PrivateKey, error)
}

// PrivateKey is a decoded key-exchange private key. Implementations hold
// sensitive material; callers must Zeroize when done, on every exit path.
type PrivateKey interface {
	// PublicBytes returns the fixed-size public key encoding. The length
	// must equal the owning Group's PublicKeySize.
	PublicBytes() ([]byte, error)

	// Encode returns the private key encoding, raw or structured per the
	// owning Group's RawKeySupport.
	Encode() ([]byte, error)

	// Derive computes the shared secret against an encoded peer public
	// key. The result length must equal the Group's SharedSecretSize.
	Derive(peerPublic []byte) ([]byte, error)

	// Zeroize erases the private key material. The key must not be used
	// afterwards.
	Zeroize()
}
