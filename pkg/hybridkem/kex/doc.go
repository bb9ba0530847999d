// Package kex defines the classical key-exchange capability consumed by the
// hybrid combiner.
//
// # Available Implementations
//
//   - x25519:    Curve25519 via cloudflare/circl (raw 32-byte private keys)
//   - p256:      NIST P-256 via crypto/ecdh (PKCS#8 DER private keys)
//   - secp256k1: secp256k1 via btcsuite/btcd/btcec (raw 32-byte private keys)
//
// The RawKeySupport capability controls how the combiner's decapsulation path
// interprets the key-exchange portion of a composite private key: raw bytes
// for x25519 and secp256k1, a structured DER decode for p256.
package kex
