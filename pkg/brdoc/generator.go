package brdoc

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rezonia/brdoc/internal/checksum"
)

// Generator produces random valid documents. The random source is not
// cryptographically secure; generated values are meant for test and sample
// data. A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator)

// WithSeed makes the generator deterministic
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// NewGenerator creates a new generator seeded from the runtime's random source
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CPF returns a random valid CPF
func (g *Generator) CPF() CPF {
	digits := g.digits(checksum.CPF)
	return newCPF(digits, digits)
}

// CNPJ returns a random valid CNPJ
func (g *Generator) CNPJ() CNPJ {
	digits := g.digits(checksum.CNPJ)
	return newCNPJ(digits, digits)
}

// Generate returns a random valid document of the given kind
func (g *Generator) Generate(kind Kind) (Document, error) {
	switch kind {
	case KindCPF:
		return g.CPF(), nil
	case KindCNPJ:
		return g.CNPJ(), nil
	default:
		return nil, fmt.Errorf("unsupported document kind: %q", kind)
	}
}

// digits draws a uniform payload and appends its check digits. A draw that
// completes to a single repeated digit is discarded.
func (g *Generator) digits(s checksum.Scheme) string {
	payload := make([]int, s.PayloadLength())
	for {
		for i := range payload {
			payload[i] = g.rng.IntN(10)
		}
		if d := s.Complete(payload); !checksum.Repeated(d) {
			return d
		}
	}
}

var defaultGenerator = struct {
	sync.Mutex
	g *Generator
}{g: NewGenerator()}

// GenerateCPF returns a random valid CPF from the package generator
func GenerateCPF() CPF {
	defaultGenerator.Lock()
	defer defaultGenerator.Unlock()
	return defaultGenerator.g.CPF()
}

// GenerateCNPJ returns a random valid CNPJ from the package generator
func GenerateCNPJ() CNPJ {
	defaultGenerator.Lock()
	defer defaultGenerator.Unlock()
	return defaultGenerator.g.CNPJ()
}
