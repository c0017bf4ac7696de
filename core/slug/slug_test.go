package slug_test

import (
	"testing"

	"travel-admin/core/slug"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Slug(t *testing.T) {
	alnum := slug.MustNew(slug.Config{Policy: slug.PolicyAlphanumeric})
	alpha := slug.MustNew(slug.Config{Policy: slug.PolicyAlphabetic})

	tests := []struct {
		name  string
		gen   *slug.Generator
		input string
		want  string
	}{
		{"Simple", alnum, "Goa Trip", "goa-trip"},
		{"Digits kept", alnum, "Top 10 Beaches", "top-10-beaches"},
		{"Digits replaced", alpha, "Top 10 Beaches", "top----beaches"},
		{"Punctuation", alnum, "Hello, World!", "hello--world-"},
		{"Accents", alnum, "Café", "caf-"},
		{"Empty", alnum, "", ""},
		{"Only separators", alpha, "123", "---"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gen.Slug(tt.input))
		})
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	gen := slug.MustNew(slug.Config{})
	first := gen.Slug("Kerala Backwaters 5D/4N")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, gen.Slug("Kerala Backwaters 5D/4N"))
	}
	assert.Equal(t, slug.PolicyAlphanumeric, gen.Policy())
}

func TestGenerator_CustomSeparator(t *testing.T) {
	gen, err := slug.New(slug.Config{Policy: slug.PolicyAlphanumeric, Separator: "_"})
	require.NoError(t, err)
	assert.Equal(t, "goa_trip", gen.Slug("Goa Trip"))
}

func TestNew_InvalidPolicy(t *testing.T) {
	gen, err := slug.New(slug.Config{Policy: "emoji"})
	assert.Error(t, err)
	assert.Nil(t, gen)
	assert.Panics(t, func() { slug.MustNew(slug.Config{Policy: "emoji"}) })
}
