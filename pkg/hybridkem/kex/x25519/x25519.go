// Package x25519 provides the Curve25519 key-exchange group for the hybrid
// combiner, backed by cloudflare/circl. Private keys use the raw 32-byte
// encoding.
package x25519

import (
	"crypto/rand"
	"fmt"
	"runtime"

	"github.com/cloudflare/circl/dh/x25519"

	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kex"
)

// Group returns the X25519 key-exchange group.
func Group() kex.Group {
	return group{}
}

type group struct{}

func (group) Name() string          { return "X25519" }
func (group) PublicKeySize() int    { return x25519.Size }
func (group) SharedSecretSize() int { return x25519.Size }
func (group) RawKeySupport() bool   { return true }

func (group) GenerateKey() (kex.PrivateKey, error) {
	sk := &privateKey{}
	if _, err := rand.Read(sk.secret[:]); err != nil {
		return nil, fmt.Errorf("x25519 keygen: %w", err)
	}
	return sk, nil
}

func (group) DecodePrivateKey(encoded []byte) (kex.PrivateKey, error) {
	if len(encoded) != x25519.Size {
		return nil, fmt.Errorf("x25519 private key is %d bytes, expected %d", len(encoded), x25519.Size)
	}
	sk := &privateKey{}
	copy(sk.secret[:], encoded)
	return sk, nil
}

type privateKey struct {
	secret x25519.Key
}

func (p *privateKey) PublicBytes() ([]byte, error) {
	var pub x25519.Key
	x25519.KeyGen(&pub, &p.secret)
	return append([]byte(nil), pub[:]...), nil
}

func (p *privateKey) Encode() ([]byte, error) {
	return append([]byte(nil), p.secret[:]...), nil
}

func (p *privateKey) Derive(peerPublic []byte) ([]byte, error) {
	if len(peerPublic) != x25519.Size {
		return nil, fmt.Errorf("x25519 peer public key is %d bytes, expected %d", len(peerPublic), x25519.Size)
	}
	var peer, shared x25519.Key
	copy(peer[:], peerPublic)
	// circl reports low-order inputs through a boolean; normalize to an
	// error so every primitive outcome reaches the combiner the same way.
	if !x25519.Shared(&shared, &p.secret, &peer) {
		return nil, fmt.Errorf("x25519 derive: low-order peer public key")
	}
	return append([]byte(nil), shared[:]...), nil
}

func (p *privateKey) Zeroize() {
	for i := range p.secret {
		p.secret[i] = 0
	}
	runtime.KeepAlive(p)
}
