// Package mlkem adapts the ML-KEM (FIPS 203) implementations from
// cloudflare/circl to the combiner's kem.Scheme capability.
package mlkem

import (
	"fmt"

	circlkem "github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"

	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kem"
)

// Scheme768 returns ML-KEM-768, the recommended parameter set for hybrid
// key exchange.
func Scheme768() kem.Scheme {
	return &scheme{inner: mlkem768.Scheme()}
}

// Scheme1024 returns ML-KEM-1024 for high-security applications.
func Scheme1024() kem.Scheme {
	return &scheme{inner: mlkem1024.Scheme()}
}

type scheme struct {
	inner circlkem.Scheme
}

func (s *scheme) Name() string          { return s.inner.Name() }
func (s *scheme) PublicKeySize() int    { return s.inner.PublicKeySize() }
func (s *scheme) CiphertextSize() int   { return s.inner.CiphertextSize() }
func (s *scheme) SharedSecretSize() int { return s.inner.SharedKeySize() }

func (s *scheme) GenerateKeyPair() (pub, priv []byte, err error) {
	pk, sk, err := s.inner.GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("%s keygen: %w", s.inner.Name(), err)
	}
	pub, err = pk.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%s public key encode: %w", s.inner.Name(), err)
	}
	priv, err = sk.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%s private key encode: %w", s.inner.Name(), err)
	}
	return pub, priv, nil
}

func (s *scheme) Encapsulate(pub []byte) (ct, ss []byte, err error) {
	pk, err := s.inner.UnmarshalBinaryPublicKey(pub)
	if err != nil {
		return nil, nil, fmt.Errorf("%s public key decode: %w", s.inner.Name(), err)
	}
	ct, ss, err = s.inner.Encapsulate(pk)
	if err != nil {
		return nil, nil, fmt.Errorf("%s encapsulate: %w", s.inner.Name(), err)
	}
	return ct, ss, nil
}

func (s *scheme) Decapsulate(priv, ct []byte) (ss []byte, err error) {
	sk, err := s.inner.UnmarshalBinaryPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%s private key decode: %w", s.inner.Name(), err)
	}
	ss, err = s.inner.Decapsulate(sk, ct)
	if err != nil {
		return nil, fmt.Errorf("%s decapsulate: %w", s.inner.Name(), err)
	}
	return ss, nil
}
