// Package rsa provides a randomized RSA-OAEP KEM for the hybrid combiner.
//
// It exists mainly to demonstrate that the combiner is scheme-agnostic and to
// give interop tests a classical KEM with very different size characteristics
// from ML-KEM. For production hybrids prefer the mlkem package.
package rsa

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"
	"runtime"

	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kem"
)

const sharedSecretSize = 32

// spkiOverhead is the DER framing around the modulus in a PKIX encoding of
// an RSA public key with exponent 65537 (the only exponent crypto/rsa
// generates).
const spkiOverhead = 38

// KEM is a randomized RSA-OAEP key encapsulation mechanism: the shared
// secret is a fresh 32-byte random value encrypted under OAEP/SHA-256.
//
// The OAEP label binds every ciphertext to the SHA-256 hash of the recipient
// public key, so a ciphertext is never valid under a different key.
//
// Recommended key sizes:
//   - 2048 bits: minimum for current use
//   - 3072 bits: recommended for long-term security
//   - 4096 bits: high security applications
type KEM struct {
	keySize int
}

// New creates an RSA-OAEP KEM with the given modulus size in bits.
func New(keySize int) (*KEM, error) {
	if keySize < 2048 {
		return nil, errors.New("key size must be at least 2048 bits")
	}
	if keySize%1024 != 0 {
		return nil, errors.New("key size must be a multiple of 1024")
	}
	return &KEM{keySize: keySize}, nil
}

var _ kem.Scheme = (*KEM)(nil)

func (k *KEM) Name() string          { return fmt.Sprintf("RSA-OAEP-%d", k.keySize) }
func (k *KEM) PublicKeySize() int    { return k.keySize/8 + spkiOverhead }
func (k *KEM) CiphertextSize() int   { return k.keySize / 8 }
func (k *KEM) SharedSecretSize() int { return sharedSecretSize }

// GenerateKeyPair generates an RSA keypair.
// The public key uses PKIX DER, the private key PKCS#8 DER.
func (k *KEM) GenerateKeyPair() (pub, priv []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, k.keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key: %w", err)
	}

	priv, err = x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	pub, err = x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return pub, priv, nil
}

// Encapsulate encrypts a fresh 32-byte shared secret to the given PKIX DER
// public key using RSA-OAEP with SHA-256 and a key-bound label.
func (k *KEM) Encapsulate(pub []byte) (ct, ss []byte, err error) {
	pubKeyInterface, err := x509.ParsePKIXPublicKey(pub)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
	if !ok {
		return nil, nil, errors.New("not an RSA public key")
	}
	if publicKey.Size() != k.keySize/8 {
		return nil, nil, fmt.Errorf("public key is %d bytes, expected %d", publicKey.Size(), k.keySize/8)
	}

	ss = make([]byte, sharedSecretSize)
	if _, err := rand.Read(ss); err != nil {
		return nil, nil, fmt.Errorf("failed to draw shared secret: %w", err)
	}

	ct, err = rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, ss, oaepLabel(pub))
	if err != nil {
		zeroizeBytes(ss)
		return nil, nil, fmt.Errorf("RSA-OAEP encapsulation failed: %w", err)
	}
	return ct, ss, nil
}

// Decapsulate recovers the shared secret from a ciphertext using a PKCS#8
// DER private key.
func (k *KEM) Decapsulate(priv, ct []byte) (ss []byte, err error) {
	keyInterface, err := x509.ParsePKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	privateKey, ok := keyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}

	pub, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	ss, err = rsa.DecryptOAEP(sha256.New(), rand.Reader, privateKey, ct, oaepLabel(pub))
	if err != nil {
		return nil, fmt.Errorf("RSA-OAEP decapsulation failed: %w", err)
	}
	return ss, nil
}

// oaepLabel binds ciphertexts to the recipient key: "hybridkem/rsa-oaep:"
// followed by the SHA-256 hash of the PKIX public key bytes.
func oaepLabel(pub []byte) []byte {
	pubHash := sha256.Sum256(pub)
	return append([]byte("hybridkem/rsa-oaep:"), pubHash[:]...)
}

// zeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
// Local duplicate to avoid importing the parent package.
func zeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
