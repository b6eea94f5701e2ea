package guid

import (
	"crypto/rand"
	"io"
)

// Generator produces random GUIDs from a configurable entropy source.
// All 16 bytes are drawn from the source; no version or variant bits are
// stamped, so the output is uniform over the full 128-bit space.
type Generator struct {
	randReader io.Reader
}

// NewGenerator creates a new generator with crypto/rand as the random source
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
	}
}

// NewGeneratorWithReader creates a new generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
// The reader must be safe for concurrent use if the generator is shared
// across goroutines; crypto/rand.Reader is.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
	}
}

// New generates a new random GUID. Each call yields an independent value;
// collisions are as likely as two uniform 128-bit values colliding, with
// no further mitigation.
func (g *Generator) New() (GUID, error) {
	var id GUID
	if _, err := io.ReadFull(g.randReader, id[:]); err != nil {
		return Nil, err
	}
	return id, nil
}

// Must is a helper that wraps a call to a function returning (GUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guid.Must(guid.New())
func Must(id GUID, err error) GUID {
	if err != nil {
		panic(err)
	}
	return id
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// New generates a new random GUID using the default generator.
// This is a convenience function that uses the package-level generator
// and is safe to call concurrently from multiple goroutines.
func New() (GUID, error) {
	return defaultGenerator.New()
}

// NewRandom is an alias for New() for explicit naming at call sites
func NewRandom() (GUID, error) {
	return defaultGenerator.New()
}
