package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"HORECA":   "HoReCa",
		"horeca":   "HoReCa",
		"HoReCa":   "HoReCa",
		" horeca ": "HoReCa",
		"MT":       "MT",
		"mt":       "MT",
		"":         "MT",
		"XYZ":      "MT",
	}

	for input, want := range cases {
		assert.Equal(t, want, NormalizeCategory(input), "input %q", input)
	}

	// Idempotent: normalizing a normalized value is a no-op.
	for _, v := range []string{"MT", "HoReCa"} {
		assert.Equal(t, v, NormalizeCategory(NormalizeCategory(v)))
	}
}

func TestMapsURL(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps?q=12.34,56.78", MapsURL(12.34, 56.78))
	assert.Equal(t, "https://www.google.com/maps?q=-22.9068,-43.1729", MapsURL(-22.9068, -43.1729))
}

func TestProductsRoundTrip(t *testing.T) {
	csv := JoinProducts([]string{"CIGARETTE", "ZIPPO LIGHTERS"})
	assert.Equal(t, "CIGARETTE, ZIPPO LIGHTERS", csv)
	assert.Equal(t, []string{"CIGARETTE", "ZIPPO LIGHTERS"}, SplitProducts(csv))

	assert.Nil(t, SplitProducts(""))
	assert.Nil(t, SplitProducts("  "))
}

func TestLeadStatusAndCatalog(t *testing.T) {
	for _, s := range []string{"HOT", "WARM", "COLD", "DEAD"} {
		assert.True(t, IsValidLeadStatus(s))
	}
	assert.False(t, IsValidLeadStatus("LUKEWARM"))
	assert.False(t, IsValidLeadStatus("hot"))

	assert.True(t, IsCatalogProduct("ROLLING PAPERS"))
	assert.False(t, IsCatalogProduct("VAPES"))
}
