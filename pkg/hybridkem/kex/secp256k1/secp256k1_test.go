package secp256k1_test

import (
	"bytes"
	"testing"

	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kex/secp256k1"
)

func TestGroupProperties(t *testing.T) {
	g := secp256k1.Group()
	if g.Name() != "secp256k1" {
		t.Fatalf("name = %q", g.Name())
	}
	if g.PublicKeySize() != 33 || g.SharedSecretSize() != 32 {
		t.Fatalf("sizes = %d/%d, want 33/32", g.PublicKeySize(), g.SharedSecretSize())
	}
	if !g.RawKeySupport() {
		t.Fatal("secp256k1 must report raw key support")
	}
}

func TestDeriveCommutes(t *testing.T) {
	g := secp256k1.Group()

	a, err := g.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	defer a.Zeroize()
	b, err := g.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	defer b.Zeroize()

	aPub, _ := a.PublicBytes()
	bPub, _ := b.PublicBytes()
	if len(aPub) != 33 || aPub[0] != 0x02 && aPub[0] != 0x03 {
		t.Fatalf("unexpected compressed point encoding: %d bytes, tag %#x", len(aPub), aPub[0])
	}

	ab, err := a.Derive(bPub)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	ba, err := b.Derive(aPub)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if !bytes.Equal(ab, ba) {
		t.Fatal("shared secrets disagree")
	}
	if len(ab) != 32 {
		t.Fatalf("secret is %d bytes, want 32", len(ab))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := secp256k1.Group()

	a, err := g.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	defer a.Zeroize()

	raw, err := a.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(raw) != 32 {
		t.Fatalf("raw encoding is %d bytes, want 32", len(raw))
	}

	decoded, err := g.DecodePrivateKey(raw)
	if err != nil {
		t.Fatalf("DecodePrivateKey: %v", err)
	}
	defer decoded.Zeroize()

	aPub, _ := a.PublicBytes()
	dPub, _ := decoded.PublicBytes()
	if !bytes.Equal(aPub, dPub) {
		t.Fatal("decoded key derives a different public key")
	}
}

func TestRejectsInvalidKeys(t *testing.T) {
	g := secp256k1.Group()

	if _, err := g.DecodePrivateKey(make([]byte, 16)); err == nil {
		t.Fatal("short private key accepted")
	}
	if _, err := g.DecodePrivateKey(make([]byte, 32)); err == nil {
		t.Fatal("zero private key accepted")
	}

	a, err := g.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	defer a.Zeroize()
	if _, err := a.Derive(make([]byte, 33)); err == nil {
		t.Fatal("invalid peer point accepted")
	}
}
