// Package keygen generates composite hybrid keypairs and wraps them in
// hybridkem key handles. It plays the key-management collaborator role: the
// combiner core consumes handles this package produces and never generates
// keys itself.
package keygen

import (
	"fmt"

	"github.com/pqxlab/hybridkem-go/pkg/hybridkem"
	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kem"
	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kex"
)

// Generate creates a fresh hybrid keypair for the given algorithm pair and
// returns a key handle populated with both composite halves and the derived
// descriptor. The handle starts with one reference owned by the caller.
func Generate(s kem.Scheme, g kex.Group) (*hybridkem.Key, error) {
	desc, err := hybridkem.NewDescriptor(s, g)
	if err != nil {
		return nil, err
	}

	kemPub, kemPriv, err := s.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("kem keygen: %w", err)
	}
	defer hybridkem.ZeroizeBytes(kemPriv)

	kexKey, err := g.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("key-exchange keygen: %w", err)
	}
	defer kexKey.Zeroize()

	kexPub, err := kexKey.PublicBytes()
	if err != nil {
		return nil, fmt.Errorf("key-exchange public key encode: %w", err)
	}
	if len(kexPub) != g.PublicKeySize() {
		return nil, fmt.Errorf("key-exchange public key is %d bytes, expected %d", len(kexPub), g.PublicKeySize())
	}
	kexPriv, err := kexKey.Encode()
	if err != nil {
		return nil, fmt.Errorf("key-exchange private key encode: %w", err)
	}
	defer hybridkem.ZeroizeBytes(kexPriv)

	public := hybridkem.EncodeCompositeKey(kemPub, kexPub)
	private := hybridkem.EncodeCompositeKey(kemPriv, kexPriv)
	defer hybridkem.ZeroizeBytes(private)

	return hybridkem.NewKey(public, private, desc)
}

// PublicOnly derives an encapsulation-only handle carrying just the
// composite public half of key. The returned handle has its own reference
// count, independent of key's.
func PublicOnly(key *hybridkem.Key) (*hybridkem.Key, error) {
	if key == nil {
		return nil, fmt.Errorf("nil key handle")
	}
	pub := key.PublicBytes()
	if len(pub) == 0 {
		return nil, fmt.Errorf("key handle has no public half")
	}
	return hybridkem.NewKey(pub, nil, key.Descriptor())
}
