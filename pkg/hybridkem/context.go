package hybridkem

import (
	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/logging"
)

// mode tracks the context state machine:
// Uninitialized -> Bound(Encaps|Decaps) -> Released.
type mode int

const (
	modeUninitialized mode = iota
	modeEncaps
	modeDecaps
	modeReleased
)

func (m mode) String() string {
	switch m {
	case modeUninitialized:
		return "uninitialized"
	case modeEncaps:
		return "encapsulate"
	case modeDecaps:
		return "decapsulate"
	case modeReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Context is a session object driving one encapsulation or decapsulation
// operation against a bound Key. It is exclusively owned by its caller and is
// not safe for concurrent use; a Key, by contrast, may be shared by many
// contexts at once.
//
// A Context holds at most one key reference. Re-initialization is legal at
// any time before Release and supersedes the prior binding: the new key is
// retained first, then the old reference is dropped.
type Context struct {
	mode mode
	key  *Key
	log  logging.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithLogger injects a structured logger used for operation tracing. Secrets
// are never logged; only operation names and public lengths appear.
func WithLogger(l logging.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// NewContext creates an empty, uninitialized context.
func NewContext(opts ...Option) *Context {
	c := &Context{log: logging.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// InitEncapsulate binds key into the context for encapsulation. A previously
// bound key loses one reference; the new key gains one.
func (c *Context) InitEncapsulate(key *Key) error {
	return c.initKey("InitEncapsulate", key, modeEncaps)
}

// InitDecapsulate binds key into the context for decapsulation. A previously
// bound key loses one reference; the new key gains one.
func (c *Context) InitDecapsulate(key *Key) error {
	return c.initKey("InitDecapsulate", key, modeDecaps)
}

func (c *Context) initKey(op string, key *Key, m mode) error {
	if c == nil {
		return opErrf(op, ErrInvalidKeyState, "nil context")
	}
	if c.mode == modeReleased {
		return opErrf(op, ErrInvalidKeyState, "context already released")
	}
	if key == nil {
		return opErrf(op, ErrInvalidKeyState, "nil key handle")
	}

	// Retain the new key before dropping the old reference so that
	// rebinding the same key never transits through zero.
	retained, err := key.Retain()
	if err != nil {
		return err
	}
	if c.key != nil {
		c.key.Release()
	}
	c.key = retained
	c.mode = m
	return nil
}

// Release drops the held key reference, if any, and transitions the context
// to its terminal state. Idempotent.
func (c *Context) Release() {
	if c == nil || c.mode == modeReleased {
		return
	}
	if c.key != nil {
		c.key.Release()
		c.key = nil
	}
	c.mode = modeReleased
}

// Key returns the currently bound key handle without affecting its reference
// count, or nil if the context is unbound.
func (c *Context) Key() *Key {
	if c == nil {
		return nil
	}
	return c.key
}
