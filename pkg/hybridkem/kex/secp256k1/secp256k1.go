// Package secp256k1 provides the secp256k1 key-exchange group for the hybrid
// combiner, backed by btcsuite/btcd/btcec. Private keys use the raw 32-byte
// encoding; public keys the 33-byte compressed SEC1 encoding. The shared
// secret is the x coordinate of the ECDH point per RFC 5903.
package secp256k1

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kex"
)

const (
	privateKeySize   = 32
	publicKeySize    = 33 // compressed SEC1 point
	sharedSecretSize = 32
)

// Group returns the secp256k1 key-exchange group.
func Group() kex.Group {
	return group{}
}

type group struct{}

func (group) Name() string          { return "secp256k1" }
func (group) PublicKeySize() int    { return publicKeySize }
func (group) SharedSecretSize() int { return sharedSecretSize }
func (group) RawKeySupport() bool   { return true }

func (group) GenerateKey() (kex.PrivateKey, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("secp256k1 keygen: %w", err)
	}
	return &privateKey{key: key}, nil
}

func (group) DecodePrivateKey(encoded []byte) (kex.PrivateKey, error) {
	if len(encoded) != privateKeySize {
		return nil, fmt.Errorf("secp256k1 private key is %d bytes, expected %d", len(encoded), privateKeySize)
	}
	key, _ := btcec.PrivKeyFromBytes(encoded)
	if key.Key.IsZero() {
		return nil, fmt.Errorf("secp256k1 private key is zero")
	}
	return &privateKey{key: key}, nil
}

type privateKey struct {
	key *btcec.PrivateKey
}

func (p *privateKey) PublicBytes() ([]byte, error) {
	return p.key.PubKey().SerializeCompressed(), nil
}

func (p *privateKey) Encode() ([]byte, error) {
	return p.key.Serialize(), nil
}

func (p *privateKey) Derive(peerPublic []byte) ([]byte, error) {
	peer, err := btcec.ParsePubKey(peerPublic)
	if err != nil {
		return nil, fmt.Errorf("secp256k1 peer public key: %w", err)
	}
	return btcec.GenerateSharedSecret(p.key, peer), nil
}

func (p *privateKey) Zeroize() {
	p.key.Zero()
}
