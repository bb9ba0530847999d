// Command hybridkem-go prints the library version and runs a hybrid
// encapsulation self-check with ML-KEM-768 and X25519.
package main

import (
	"bytes"
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/pqxlab/hybridkem-go/pkg/hybridkem"
	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kem/mlkem"
	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/kex/x25519"
	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/keygen"
	"github.com/pqxlab/hybridkem-go/pkg/hybridkem/logging"
)

func main() {
	log.Printf("hybridkem-go version: %s", hybridkem.Version)

	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	key, err := keygen.Generate(mlkem.Scheme768(), x25519.Group())
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	defer key.Release()

	ctx := context.Background()

	enc := hybridkem.NewContext(hybridkem.WithLogger(logger))
	defer enc.Release()
	if err := enc.InitEncapsulate(key); err != nil {
		log.Fatalf("init encapsulate: %v", err)
	}

	ctLen, ssLen, err := enc.Encapsulate(ctx, nil, nil)
	if err != nil {
		log.Fatalf("size query: %v", err)
	}
	ct := make([]byte, ctLen)
	ssEnc := make([]byte, ssLen)
	if _, _, err := enc.Encapsulate(ctx, ct, ssEnc); err != nil {
		log.Fatalf("encapsulate: %v", err)
	}

	dec := hybridkem.NewContext(hybridkem.WithLogger(logger))
	defer dec.Release()
	if err := dec.InitDecapsulate(key); err != nil {
		log.Fatalf("init decapsulate: %v", err)
	}
	ssDec := make([]byte, ssLen)
	if _, err := dec.Decapsulate(ctx, ssDec, ct); err != nil {
		log.Fatalf("decapsulate: %v", err)
	}

	defer hybridkem.ZeroizeBytes(ssEnc)
	defer hybridkem.ZeroizeBytes(ssDec)
	if !bytes.Equal(ssEnc, ssDec) {
		log.Fatal("self-check failed: shared secrets disagree")
	}
	log.Printf("self-check ok: ciphertext %d bytes, shared secret %d bytes", ctLen, ssLen)
}
