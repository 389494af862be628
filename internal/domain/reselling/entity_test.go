package reselling

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeAllocatedAmount(t *testing.T) {
	cases := []struct {
		base string
		pct  string
		want string
	}{
		{"1000", "30", "300"},
		{"1000", "20", "200"},
		{"1500.50", "50", "750.25"},
		{"1000", "0", "0"},
	}
	for _, c := range cases {
		got := ComputeAllocatedAmount(dec(c.base), dec(c.pct))
		assert.True(t, got.Equal(dec(c.want)), "ComputeAllocatedAmount(%s, %s) = %s, want %s", c.base, c.pct, got, c.want)
	}
}

func TestRecomputeTotals(t *testing.T) {
	inv := ResellingInvoice{
		InvoiceAmount: dec("1000"),
		ResourceCost:  dec("50"),
		OtherExpenses: dec("50"),
	}

	inv.RecomputeTotals([]decimal.Decimal{dec("300"), dec("200")})

	assert.True(t, inv.TotalOEMCost.Equal(dec("500")))
	assert.True(t, inv.TotalCost.Equal(dec("600")))
	assert.True(t, inv.GrossProfit.Equal(dec("400")))
	assert.True(t, inv.ProfitMarginPct.Equal(dec("40")))
}

func TestRecomputeTotalsNoAllocations(t *testing.T) {
	inv := ResellingInvoice{InvoiceAmount: dec("1000")}

	inv.RecomputeTotals(nil)

	assert.True(t, inv.TotalOEMCost.IsZero())
	assert.True(t, inv.TotalCost.IsZero())
	assert.True(t, inv.GrossProfit.Equal(dec("1000")))
	assert.True(t, inv.ProfitMarginPct.Equal(dec("100")))
}

func TestRecomputeTotalsZeroInvoiceAmount(t *testing.T) {
	inv := ResellingInvoice{ResourceCost: dec("100")}

	inv.RecomputeTotals([]decimal.Decimal{dec("50")})

	assert.True(t, inv.GrossProfit.Equal(dec("-150")))
	assert.True(t, inv.ProfitMarginPct.IsZero())
}
