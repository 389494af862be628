package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAllocatableAmountPrefersSubTotal(t *testing.T) {
	subTotal := decimal.NewFromInt(900)
	b := Bill{
		SubTotal: &subTotal,
		Total:    decimal.NewFromInt(1062),
	}

	assert.True(t, b.AllocatableAmount().Equal(subTotal))
}

func TestAllocatableAmountFallsBackToTotal(t *testing.T) {
	b := Bill{Total: decimal.NewFromInt(1062)}

	assert.True(t, b.AllocatableAmount().Equal(decimal.NewFromInt(1062)))
}
