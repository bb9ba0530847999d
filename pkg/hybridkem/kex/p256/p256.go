// Package p256 provides the NIST P-256 key-exchange group for the hybrid
// combiner, backed by crypto/ecdh. Private keys use the structured PKCS#8 DER
// encoding, so the group reports RawKeySupport false and exercises the
// combiner's structured-decode path.
package p256

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/x509"
	"fmt"

	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kex"
)

const (
	publicKeySize    = 65 // uncompressed SEC1 point
	sharedSecretSize = 32
)

// Group returns the P-256 key-exchange group.
func Group() kex.Group {
	return group{}
}

type group struct{}

func (group) Name() string          { return "P-256" }
func (group) PublicKeySize() int    { return publicKeySize }
func (group) SharedSecretSize() int { return sharedSecretSize }
func (group) RawKeySupport() bool   { return false }

func (group) GenerateKey() (kex.PrivateKey, error) {
	key, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("p256 keygen: %w", err)
	}
	return &privateKey{key: key}, nil
}

// DecodePrivateKey parses a PKCS#8 DER private key. Both EC and ECDH PKCS#8
// payloads are accepted; anything that is not a P-256 key is rejected.
func (group) DecodePrivateKey(encoded []byte) (kex.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(encoded)
	if err != nil {
		return nil, fmt.Errorf("p256 private key parse: %w", err)
	}

	var key *ecdh.PrivateKey
	switch k := parsed.(type) {
	case *ecdh.PrivateKey:
		key = k
	case *ecdsa.PrivateKey:
		key, err = k.ECDH()
		if err != nil {
			return nil, fmt.Errorf("p256 private key convert: %w", err)
		}
	default:
		return nil, fmt.Errorf("p256 private key parse: unexpected type %T", parsed)
	}
	if key.Curve() != ecdh.P256() {
		return nil, fmt.Errorf("private key is not on P-256")
	}
	return &privateKey{key: key}, nil
}

type privateKey struct {
	key *ecdh.PrivateKey
}

func (p *privateKey) PublicBytes() ([]byte, error) {
	return p.key.PublicKey().Bytes(), nil
}

func (p *privateKey) Encode() ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(p.key)
	if err != nil {
		return nil, fmt.Errorf("p256 private key encode: %w", err)
	}
	return der, nil
}

func (p *privateKey) Derive(peerPublic []byte) ([]byte, error) {
	peer, err := ecdh.P256().NewPublicKey(peerPublic)
	if err != nil {
		return nil, fmt.Errorf("p256 peer public key: %w", err)
	}
	ss, err := p.key.ECDH(peer)
	if err != nil {
		return nil, fmt.Errorf("p256 derive: %w", err)
	}
	return ss, nil
}

// Zeroize drops the key reference. crypto/ecdh keeps the scalar in memory it
// does not expose, so erasure is left to the garbage collector.
func (p *privateKey) Zeroize() {
	p.key = nil
}
