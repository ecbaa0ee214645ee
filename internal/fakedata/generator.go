// Package fakedata generates synthetic user records (a fake email address and
// a plausible password) and writes them as CSV rows.
package fakedata

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sethvargo/go-password/password"
)

// Symbolen voor de "symbolic" strategie, zonder komma of aanhalingsteken
const passwordSymbols = "!@#$%^&*()_+"

// Record is one generated row.
type Record struct {
	Identifier string
	Secret     string
	Strategy   Strategy
}

// Generator produces records from a single injected randomness source.
// It is not safe for concurrent use.
type Generator struct {
	faker   *gofakeit.Faker
	symbols *password.Generator
}

// New creates a generator. A seed of 0 picks a random seed; any other value
// makes the produced sequence reproducible.
func New(seed uint64) (*Generator, error) {
	return NewWithFaker(gofakeit.New(seed))
}

// NewWithFaker creates a generator drawing all randomness from f.
func NewWithFaker(f *gofakeit.Faker) (*Generator, error) {
	var chachaSeed [32]byte
	for i := 0; i < len(chachaSeed); i += 8 {
		binary.LittleEndian.PutUint64(chachaSeed[i:], f.Uint64())
	}

	symbols, err := password.NewGenerator(&password.GeneratorInput{
		Symbols: passwordSymbols,
		Reader:  rand.NewChaCha8(chachaSeed),
	})
	if err != nil {
		return nil, fmt.Errorf("create password generator: %w", err)
	}

	return &Generator{faker: f, symbols: symbols}, nil
}

// Next produces a fresh record.
func (g *Generator) Next() Record {
	id := g.Identifier()
	strategy := g.pickStrategy()
	return Record{
		Identifier: id,
		Secret:     g.SecretWith(strategy),
		Strategy:   strategy,
	}
}

// Identifier returns an address of the form fake+<username>@<domain>.
func (g *Generator) Identifier() string {
	domain := Domains[g.faker.Number(0, len(Domains)-1)]
	return IdentifierPrefix + g.username() + "@" + domain
}

// username keeps only lowercase ASCII letters and digits.
func (g *Generator) username() string {
	var b strings.Builder
	for _, r := range strings.ToLower(g.faker.Username()) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fmt.Sprintf("user%04d", g.faker.Number(0, 9999))
	}
	return b.String()
}
