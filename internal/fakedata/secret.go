package fakedata

import (
	"strconv"
	"strings"
)

// Strategy selects how a secret is built.
type Strategy int

const (
	WordDigits Strategy = iota
	NameDigits
	ColorDigits
	MonthYear
	WordPunctuation
	Alphanumeric
	Symbolic

	strategyCount
)

// Strategies lists every strategy in declaration order.
var Strategies = [strategyCount]Strategy{
	WordDigits, NameDigits, ColorDigits, MonthYear, WordPunctuation, Alphanumeric, Symbolic,
}

// Lengtegrenzen voor de willekeurige wachtwoorden
const (
	MinAlphanumericLen = 6
	MaxAlphanumericLen = 12
	MinSymbolicLen     = 8
	MaxSymbolicLen     = 16
)

func (s Strategy) String() string {
	switch s {
	case WordDigits:
		return "word+digits"
	case NameDigits:
		return "name+digits"
	case ColorDigits:
		return "color+digits"
	case MonthYear:
		return "month+year"
	case WordPunctuation:
		return "word+punctuation"
	case Alphanumeric:
		return "alphanumeric"
	case Symbolic:
		return "symbolic"
	default:
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

// Secret returns a password-like string from a uniformly chosen strategy.
func (g *Generator) Secret() string {
	return g.SecretWith(g.pickStrategy())
}

func (g *Generator) pickStrategy() Strategy {
	return Strategies[g.faker.Number(0, len(Strategies)-1)]
}

// SecretWith returns a secret built by strategy s. Unknown strategies fall
// back to Alphanumeric.
func (g *Generator) SecretWith(s Strategy) string {
	f := g.faker
	switch s {
	case WordDigits:
		return f.LoremIpsumWord() + strconv.Itoa(f.Number(1, 9999))
	case NameDigits:
		return strings.ToLower(f.FirstName()) + strconv.Itoa(f.Number(10, 99))
	case ColorDigits:
		return capitalize(f.Color()) + strconv.Itoa(f.Number(100, 999))
	case MonthYear:
		return f.MonthString() + strconv.Itoa(f.Number(1900, 2025))
	case WordPunctuation:
		return capitalize(f.LoremIpsumWord()) + "!" + strconv.Itoa(f.Number(10, 99))
	case Symbolic:
		return g.symbolic()
	default:
		return g.alphanumeric()
	}
}

func (g *Generator) alphanumeric() string {
	length := g.faker.Number(MinAlphanumericLen, MaxAlphanumericLen)
	return g.faker.Password(true, true, true, false, false, length)
}

// symbolic mixes letters with at least one digit and one symbol.
func (g *Generator) symbolic() string {
	length := g.faker.Number(MinSymbolicLen, MaxSymbolicLen)
	secret, err := g.symbols.Generate(length, 1, 1, false, true)
	if err != nil {
		// alleen mogelijk als de reader faalt
		return g.alphanumeric()
	}
	return secret
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
