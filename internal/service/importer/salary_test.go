package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"75000", "75000"},
		{"75,000", "75000"},
		{"1,20,000.50", "120000.5"},
		{"$7,500", "7500"},
		{"-500", "-500"},
	}
	for _, c := range cases {
		got, err := parseAmount(c.raw)
		require.NoError(t, err, "parseAmount(%q)", c.raw)
		want, _ := decimal.NewFromString(c.want)
		assert.True(t, got.Equal(want), "parseAmount(%q) = %s, want %s", c.raw, got, want)
	}
}

func TestParseAmountRejectsNonNumeric(t *testing.T) {
	for _, raw := range []string{"", "N/A", "--"} {
		_, err := parseAmount(raw)
		assert.Error(t, err, "parseAmount(%q)", raw)
	}
}
