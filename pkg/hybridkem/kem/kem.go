package kem

// Scheme is the interface for the post-quantum Key Encapsulation Mechanism
// half of the hybrid combiner. The combiner treats implementations as opaque
// capabilities: it never inspects key material, only moves bytes.
//
// All sizes are fixed per scheme. Encapsulate and Decapsulate must return
// byte slices of exactly CiphertextSize and SharedSecretSize; the combiner
// rejects anything else.
type Scheme interface {
	// Name returns the scheme identifier, e.g. "ML-KEM-768".
	Name() string

	// PublicKeySize returns the encoded public key length in bytes.
	PublicKeySize() int

	// CiphertextSize returns the encapsulation ciphertext length in bytes.
	CiphertextSize() int

	// SharedSecretSize returns the shared secret length in bytes.
	SharedSecretSize() int

	// GenerateKeyPair generates a fresh keypair in the scheme's canonical
	// byte encodings. Used by key management, not by the combiner core.
	GenerateKeyPair() (pub, priv []byte, err error)

	// Encapsulate generates a ciphertext and shared secret for the given
	// encoded public key.
	Encapsulate(pub []byte) (ct, ss []byte, err error)

	// Decapsulate recovers the shared secret from a ciphertext using the
	// encoded private key.
	Decapsulate(priv, ct []byte) (ss []byte, err error)
}
