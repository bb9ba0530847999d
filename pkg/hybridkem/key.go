package hybridkem

import "sync/atomic"

// Key is a reference-counted handle over a composite hybrid key and its
// algorithm descriptor. The same Key may be bound into any number of
// contexts on any number of goroutines: the descriptor and key bytes are
// immutable after construction, and only the reference count mutates, via
// atomic operations.
//
// Lifetime equals the longest-lived holder. Every bind retains the handle and
// every unbind releases it; when the count reaches zero the private composite
// bytes are zeroized and the handle becomes unusable.
type Key struct {
	refs    atomic.Int64
	public  []byte
	private []byte
	desc    Descriptor
}

// NewKey wraps pre-decoded composite key material in a handle with an initial
// reference count of one. public may be nil for a decapsulation-only key and
// private may be nil for an encapsulation-only key, but not both. Both
// present halves must decode under the composite layout.
//
// The inputs are defensively copied; the caller remains responsible for
// zeroizing its own copies.
func NewKey(public, private []byte, desc Descriptor) (*Key, error) {
	const op = "NewKey"

	if len(public) == 0 && len(private) == 0 {
		return nil, opErrf(op, ErrInvalidKeyState, "no key material")
	}
	if len(public) > 0 {
		if _, _, err := DecodeCompositeKey(public); err != nil {
			return nil, err
		}
	}
	if len(private) > 0 {
		if _, _, err := DecodeCompositeKey(private); err != nil {
			return nil, err
		}
	}

	k := &Key{desc: desc}
	if len(public) > 0 {
		k.public = make([]byte, len(public))
		copy(k.public, public)
	}
	if len(private) > 0 {
		k.private = make([]byte, len(private))
		copy(k.private, private)
	}
	k.refs.Store(1)
	return k, nil
}

// Retain atomically increments the reference count and returns the same
// handle as a new owning reference. It fails with ErrInvalidKeyState if the
// handle has already been destroyed (count already at zero), which closes the
// retain/destroy race instead of resurrecting freed key material.
func (k *Key) Retain() (*Key, error) {
	const op = "Retain"

	if k == nil {
		return nil, opErrf(op, ErrInvalidKeyState, "nil key handle")
	}
	for {
		n := k.refs.Load()
		if n <= 0 {
			return nil, opErrf(op, ErrInvalidKeyState, "key handle already destroyed")
		}
		if k.refs.CompareAndSwap(n, n+1) {
			return k, nil
		}
	}
}

// Release atomically decrements the reference count. When the count reaches
// zero the private composite bytes are zeroized, not merely dropped, and the
// handle must not be used again. Releasing a nil handle is a no-op.
func (k *Key) Release() {
	if k == nil {
		return
	}
	if k.refs.Add(-1) == 0 {
		ZeroizeBytes(k.private)
		k.private = nil
		k.public = nil
	}
}

// Descriptor returns the algorithm size/capability descriptor. Read-only and
// side-effect-free; safe to call concurrently on a shared handle.
func (k *Key) Descriptor() Descriptor {
	return k.desc
}

// PublicBytes returns the composite public key bytes, or nil for a
// decapsulation-only handle. The returned slice must not be mutated.
func (k *Key) PublicBytes() []byte {
	return k.public
}

// HasPrivate reports whether the handle carries a private half.
func (k *Key) HasPrivate() bool {
	return len(k.private) > 0
}

// refCount exposes the current count for lifecycle tests.
func (k *Key) refCount() int64 {
	return k.refs.Load()
}
