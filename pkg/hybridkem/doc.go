// Package hybridkem implements a hybrid key-encapsulation combiner: one
// post-quantum KEM and one classical key-exchange group are composed into a
// single encapsulation operation yielding one ciphertext and one shared
// secret. The combined scheme remains secure as long as either underlying
// primitive is secure.
//
// # Wire Layout
//
// The byte layouts follow the TLS hybrid-design draft convention and are
// interoperability-critical:
//
//	composite key   = kemLen:uint32(BE) || kemBytes || kexLen:uint32(BE) || kexBytes
//	ciphertext      = ctKem[kemCtLen]   || ctKex[kexPubLen]
//	shared secret   = ssKem[kemSSLen]   || ssKex[kexSSLen]
//
// The KEM-derived half of the shared secret always precedes the classical
// half, regardless of the order in which the two primitives are invoked.
//
// # Usage
//
//	key, _ := keygen.Generate(mlkem.Scheme768(), x25519.Group())
//	defer key.Release()
//
//	ctx := hybridkem.NewContext()
//	defer ctx.Release()
//
//	if err := ctx.InitEncapsulate(key); err != nil { ... }
//	ctLen, ssLen, _ := ctx.Encapsulate(context.Background(), nil, nil) // size query
//	ct := make([]byte, ctLen)
//	ss := make([]byte, ssLen)
//	_, _, err := ctx.Encapsulate(context.Background(), ct, ss)
//
// A Context is exclusively owned by one caller at a time. A Key may be shared
// by any number of contexts across goroutines; Retain and Release maintain an
// atomic reference count and the private half is zeroized when the last
// reference is dropped.
//
// The underlying primitives are opaque capabilities behind the kem.Scheme and
// kex.Group interfaces; see the kem/ and kex/ subpackages for the provided
// implementations.
package hybridkem
