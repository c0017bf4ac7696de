package slug

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Generator derives identifiers from free text under a fixed policy.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	policy    string
	separator string
}

// New creates a Generator for the given configuration.
// An empty policy falls back to alphanumeric; an empty separator falls back to "-".
func New(cfg Config) (*Generator, error) {
	if cfg.Policy == "" {
		cfg.Policy = PolicyAlphanumeric
	}
	if !cfg.IsValidPolicy() {
		return nil, fmt.Errorf("unknown slug policy %q", cfg.Policy)
	}
	if cfg.Separator == "" {
		cfg.Separator = "-"
	}
	return &Generator{policy: cfg.Policy, separator: cfg.Separator}, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(cfg Config) *Generator {
	g, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// Policy returns the keep alphabet in use.
func (g *Generator) Policy() string {
	return g.policy
}

// Slug lowercases title and replaces every rune outside the keep alphabet with the separator.
// Runs of separators are not collapsed and nothing is trimmed, so "Goa Trip!" becomes "goa-trip-".
func (g *Generator) Slug(title string) string {
	// cases.Caser is stateful, one per call
	lower := cases.Lower(language.Und).String(title)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if g.keep(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteString(g.separator)
	}
	return b.String()
}

func (g *Generator) keep(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	return g.policy == PolicyAlphanumeric && r >= '0' && r <= '9'
}
