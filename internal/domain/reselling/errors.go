package reselling

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceNotFound    = errors.New("Reselling invoice not found")
	ErrAllocationNotFound = errors.New("Bill allocation not found")
	ErrAllocationExists   = errors.New("Bill is already allocated to this invoice")
)

// OverAllocationError rejects a write that would push a bill's total
// allocation past 100%, reporting the current total and the attempted
// increment.
type OverAllocationError struct {
	BillID       string
	CurrentTotal decimal.Decimal
	Attempted    decimal.Decimal
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("bill %s is already %s%% allocated; adding %s%% would exceed 100%%",
		e.BillID, e.CurrentTotal.String(), e.Attempted.String())
}
