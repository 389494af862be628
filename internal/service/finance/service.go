package finance

import (
	"context"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/finance"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
)

type FinanceServiceImpl struct {
	billRepo    finance.BillRepository
	expenseRepo finance.ExpenseRepository
}

func NewFinanceService(billRepo finance.BillRepository, expenseRepo finance.ExpenseRepository) finance.FinanceService {
	return &FinanceServiceImpl{
		billRepo:    billRepo,
		expenseRepo: expenseRepo,
	}
}

// CreateBill implements finance.FinanceService.
func (s *FinanceServiceImpl) CreateBill(ctx context.Context, req finance.CreateBillRequest) (finance.Bill, error) {
	if err := req.Validate(); err != nil {
		return finance.Bill{}, err
	}

	billDate, _ := validator.IsValidDate(req.BillDate)
	b := finance.Bill{
		VendorName:           req.VendorName,
		BillNumber:           req.BillNumber,
		BillDate:             billDate,
		SubTotal:             req.SubTotal,
		Total:                req.Total,
		IncludeInCalculation: true,
	}
	if req.BilledForMonth != nil {
		month, _ := validator.IsValidMonth(*req.BilledForMonth)
		b.BilledForMonth = &month
	}
	if req.IncludeInCalculation != nil {
		b.IncludeInCalculation = *req.IncludeInCalculation
	}
	for _, li := range req.LineItems {
		b.LineItems = append(b.LineItems, finance.BillLineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			Amount:      li.Amount,
		})
	}

	return s.billRepo.Create(ctx, b)
}

// GetBill implements finance.FinanceService.
func (s *FinanceServiceImpl) GetBill(ctx context.Context, id string) (finance.Bill, error) {
	return s.billRepo.GetByID(ctx, id)
}

// ListBills implements finance.FinanceService.
func (s *FinanceServiceImpl) ListBills(ctx context.Context, filter finance.BillFilter) ([]finance.Bill, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 25
	}
	return s.billRepo.List(ctx, filter)
}

// UpdateBill implements finance.FinanceService.
func (s *FinanceServiceImpl) UpdateBill(ctx context.Context, req finance.UpdateBillRequest) (finance.Bill, error) {
	b, err := s.billRepo.GetByID(ctx, req.ID)
	if err != nil {
		return finance.Bill{}, err
	}

	if req.BilledForMonth != nil {
		month, ok := validator.IsValidMonth(*req.BilledForMonth)
		if !ok {
			return finance.Bill{}, validator.ValidationErrors{
				{Field: "billed_for_month", Message: "must be YYYY-MM"},
			}
		}
		b.BilledForMonth = &month
	}
	if req.SubTotal != nil {
		b.SubTotal = req.SubTotal
	}
	if req.Total != nil {
		b.Total = *req.Total
	}
	if req.IncludeInCalculation != nil {
		b.IncludeInCalculation = *req.IncludeInCalculation
	}

	if err := s.billRepo.Update(ctx, b); err != nil {
		return finance.Bill{}, err
	}
	return b, nil
}

// DeleteBill implements finance.FinanceService.
func (s *FinanceServiceImpl) DeleteBill(ctx context.Context, id string) error {
	return s.billRepo.Delete(ctx, id)
}

// CreateExpense implements finance.FinanceService.
func (s *FinanceServiceImpl) CreateExpense(ctx context.Context, req finance.CreateExpenseRequest) (finance.Expense, error) {
	if err := req.Validate(); err != nil {
		return finance.Expense{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	e := finance.Expense{
		Description:          req.Description,
		Category:             req.Category,
		Date:                 date,
		Amount:               req.Amount,
		IncludeInCalculation: true,
	}
	if req.IncludeInCalculation != nil {
		e.IncludeInCalculation = *req.IncludeInCalculation
	}

	return s.expenseRepo.Create(ctx, e)
}

// ListExpenses implements finance.FinanceService.
func (s *FinanceServiceImpl) ListExpenses(ctx context.Context, from, to time.Time) ([]finance.Expense, error) {
	return s.expenseRepo.ListByRange(ctx, from, to)
}

// UpdateExpense implements finance.FinanceService.
func (s *FinanceServiceImpl) UpdateExpense(ctx context.Context, req finance.UpdateExpenseRequest) (finance.Expense, error) {
	e, err := s.expenseRepo.GetByID(ctx, req.ID)
	if err != nil {
		return finance.Expense{}, err
	}

	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Date != nil {
		date, ok := validator.IsValidDate(*req.Date)
		if !ok {
			return finance.Expense{}, validator.ValidationErrors{
				{Field: "date", Message: "must be YYYY-MM-DD"},
			}
		}
		e.Date = date
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return finance.Expense{}, validator.ValidationErrors{
				{Field: "amount", Message: "must be non-negative"},
			}
		}
		e.Amount = *req.Amount
	}
	if req.IncludeInCalculation != nil {
		e.IncludeInCalculation = *req.IncludeInCalculation
	}

	if err := s.expenseRepo.Update(ctx, e); err != nil {
		return finance.Expense{}, err
	}
	return e, nil
}

// DeleteExpense implements finance.FinanceService.
func (s *FinanceServiceImpl) DeleteExpense(ctx context.Context, id string) error {
	return s.expenseRepo.Delete(ctx, id)
}
