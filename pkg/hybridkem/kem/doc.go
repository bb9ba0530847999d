// Package kem defines the Key Encapsulation Mechanism capability consumed by
// the hybrid combiner.
//
// The combiner never performs KEM arithmetic itself; it invokes a Scheme with
// byte views into the composite key and ciphertext layouts. Any scheme with
// fixed ciphertext and shared-secret sizes can be plugged in.
//
// # Available Implementations
//
//   - mlkem: ML-KEM-768 (FIPS 203) backed by cloudflare/circl
//   - rsa:   randomized RSA-OAEP KEM (for interop testing and as a
//     demonstration that the combiner is scheme-agnostic)
//
// # Usage
//
//	scheme := mlkem.Scheme768()
//	pub, priv, err := scheme.GenerateKeyPair()
//	ct, ss, err := scheme.Encapsulate(pub)
//	ss2, err := scheme.Decapsulate(priv, ct)
package kem
