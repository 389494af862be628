package finance

import "errors"

var (
	ErrBillNotFound     = errors.New("Bill not found")
	ErrBillNumberExists = errors.New("Bill number already exists for this vendor")
	ErrExpenseNotFound  = errors.New("Expense not found")
)
