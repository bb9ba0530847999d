// Package testkem provides primitive test doubles for the combiner tests: a
// tiny deterministic KEM with conveniently small sizes and wrappers that
// force either primitive to fail so the no-partial-secret property can be
// exercised.
//
// Nothing in this package is cryptographically secure. Test use only.
package testkem

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kem"
	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kex"
)

const size = 32

// Scheme is a toy KEM: the private key doubles as the public key and the
// shared secret is a hash of the key and a random ciphertext. Round-trips
// correctly, sizes are all 32 bytes.
type Scheme struct{}

var _ kem.Scheme = Scheme{}

func (Scheme) Name() string          { return "test-kem" }
func (Scheme) PublicKeySize() int    { return size }
func (Scheme) CiphertextSize() int   { return size }
func (Scheme) SharedSecretSize() int { return size }

func (Scheme) GenerateKeyPair() (pub, priv []byte, err error) {
	priv = make([]byte, size)
	if _, err := rand.Read(priv); err != nil {
		return nil, nil, err
	}
	pub = append([]byte(nil), priv...)
	return pub, priv, nil
}

func (Scheme) Encapsulate(pub []byte) (ct, ss []byte, err error) {
	if len(pub) != size {
		return nil, nil, fmt.Errorf("test-kem public key is %d bytes", len(pub))
	}
	ct = make([]byte, size)
	if _, err := rand.Read(ct); err != nil {
		return nil, nil, err
	}
	return ct, secret(pub, ct), nil
}

func (Scheme) Decapsulate(priv, ct []byte) (ss []byte, err error) {
	if len(priv) != size {
		return nil, fmt.Errorf("test-kem private key is %d bytes", len(priv))
	}
	if len(ct) != size {
		return nil, fmt.Errorf("test-kem ciphertext is %d bytes", len(ct))
	}
	return secret(priv, ct), nil
}

func secret(key, ct []byte) []byte {
	h := sha256.New()
	h.Write(key)
	h.Write(ct)
	return h.Sum(nil)
}

// ErrForced is returned by the failure-injecting wrappers.
var ErrForced = errors.New("testkem: forced failure")

// FailingKEM wraps a KEM scheme and fails the selected operations.
type FailingKEM struct {
	kem.Scheme
	FailEncapsulate bool
	FailDecapsulate bool
}

func (f FailingKEM) Encapsulate(pub []byte) (ct, ss []byte, err error) {
	if f.FailEncapsulate {
		return nil, nil, ErrForced
	}
	return f.Scheme.Encapsulate(pub)
}

func (f FailingKEM) Decapsulate(priv, ct []byte) (ss []byte, err error) {
	if f.FailDecapsulate {
		return nil, ErrForced
	}
	return f.Scheme.Decapsulate(priv, ct)
}

// FailingGroup wraps a key-exchange group so every Derive on keys it hands
// out fails. Key generation and encoding succeed, which lets a decapsulation
// reach the derivation step before the injected failure fires.
type FailingGroup struct {
	kex.Group
	FailDerive bool
}

func (f FailingGroup) GenerateKey() (kex.PrivateKey, error) {
	sk, err := f.Group.GenerateKey()
	if err != nil {
		return nil, err
	}
	return failingKey{PrivateKey: sk, failDerive: f.FailDerive}, nil
}

func (f FailingGroup) DecodePrivateKey(encoded []byte) (kex.PrivateKey, error) {
	sk, err := f.Group.DecodePrivateKey(encoded)
	if err != nil {
		return nil, err
	}
	return failingKey{PrivateKey: sk, failDerive: f.FailDerive}, nil
}

type failingKey struct {
	kex.PrivateKey
	failDerive bool
}

func (k failingKey) Derive(peerPublic []byte) ([]byte, error) {
	if k.failDerive {
		return nil, ErrForced
	}
	return k.PrivateKey.Derive(peerPublic)
}
