package report

import (
	"context"
	"fmt"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/finance"
	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/domain/project"
	"github.com/dataprecision/margindesk-sub001/internal/domain/report"
	"github.com/dataprecision/margindesk-sub001/internal/domain/reselling"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	salaryRepo  person.SalaryRepository
	expenseRepo finance.ExpenseRepository
	billRepo    finance.BillRepository
	costRepo    project.CostRepository
	invoiceRepo reselling.InvoiceRepository
}

func NewReportService(
	salaryRepo person.SalaryRepository,
	expenseRepo finance.ExpenseRepository,
	billRepo finance.BillRepository,
	costRepo project.CostRepository,
	invoiceRepo reselling.InvoiceRepository,
) report.Service {
	return &ReportServiceImpl{
		salaryRepo:  salaryRepo,
		expenseRepo: expenseRepo,
		billRepo:    billRepo,
		costRepo:    costRepo,
		invoiceRepo: invoiceRepo,
	}
}

// BuildProfitLoss implements report.Service.
//
// Cost buckets: overheads = support salaries + expenses + bills;
// total costs = overheads + operational salaries + reselling costs.
// Revenue = project revenue + reselling revenue. Bills count against their
// billed-for-month attribution, not their issue date.
func (s *ReportServiceImpl) BuildProfitLoss(ctx context.Context, month time.Time) (report.ProfitLossResponse, error) {
	firstDay := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	salaries, err := s.salaryRepo.ListByMonth(ctx, firstDay)
	if err != nil {
		return report.ProfitLossResponse{}, fmt.Errorf("failed to load salaries: %w", err)
	}

	var operationalSalaries, supportSalaries decimal.Decimal
	for _, sal := range salaries {
		if sal.IsSupportStaff {
			supportSalaries = supportSalaries.Add(sal.Amount)
		} else {
			operationalSalaries = operationalSalaries.Add(sal.Amount)
		}
	}

	expenses, err := s.expenseRepo.ListByRange(ctx, firstDay, lastDay)
	if err != nil {
		return report.ProfitLossResponse{}, fmt.Errorf("failed to load expenses: %w", err)
	}

	var expenseTotal decimal.Decimal
	for _, e := range expenses {
		if e.IncludeInCalculation {
			expenseTotal = expenseTotal.Add(e.Amount)
		}
	}

	bills, err := s.billRepo.ListByBilledForMonth(ctx, firstDay)
	if err != nil {
		return report.ProfitLossResponse{}, fmt.Errorf("failed to load bills: %w", err)
	}

	var billTotal decimal.Decimal
	for _, b := range bills {
		if b.IncludeInCalculation {
			billTotal = billTotal.Add(b.AllocatableAmount())
		}
	}

	costs, err := s.costRepo.ListByMonth(ctx, firstDay)
	if err != nil {
		return report.ProfitLossResponse{}, fmt.Errorf("failed to load project costs: %w", err)
	}

	var projectRevenue decimal.Decimal
	for _, c := range costs {
		projectRevenue = projectRevenue.Add(c.Amount)
	}

	invoices, err := s.invoiceRepo.ListByMonth(ctx, firstDay)
	if err != nil {
		return report.ProfitLossResponse{}, fmt.Errorf("failed to load reselling invoices: %w", err)
	}

	resellingBreakdown := buildResellingBreakdown(invoices)

	overheads := supportSalaries.Add(expenseTotal).Add(billTotal)
	resellingCosts := resellingBreakdown.OEMCost.
		Add(resellingBreakdown.ResourceCost).
		Add(resellingBreakdown.OtherCost)
	totalCosts := overheads.Add(operationalSalaries).Add(resellingCosts)
	revenue := projectRevenue.Add(resellingBreakdown.Revenue)
	profitLoss := revenue.Sub(totalCosts)

	margin := decimal.Zero
	if !revenue.IsZero() {
		margin = profitLoss.Div(revenue).Mul(decimal.NewFromInt(100))
	}

	return report.ProfitLossResponse{
		Month: firstDay.Format("2006-01"),
		Summary: report.ProfitLossSummary{
			Revenue:         revenue,
			TotalCosts:      totalCosts,
			Overheads:       overheads,
			ProfitLoss:      profitLoss,
			ProfitMarginPct: margin,
		},
		Breakdown: report.ProfitLossBreakdown{
			OperationalSalaries: operationalSalaries,
			SupportSalaries:     supportSalaries,
			Expenses:            expenseTotal,
			Bills:               billTotal,
			ProjectRevenue:      projectRevenue,
			Reselling:           resellingBreakdown,
		},
	}, nil
}

func buildResellingBreakdown(invoices []reselling.ResellingInvoice) report.ResellingBreakdown {
	var breakdown report.ResellingBreakdown

	byProduct := make(map[string]*report.ProductProfitBreakdown)
	var order []string

	for _, inv := range invoices {
		breakdown.Revenue = breakdown.Revenue.Add(inv.InvoiceAmount)
		breakdown.OEMCost = breakdown.OEMCost.Add(inv.TotalOEMCost)
		breakdown.ResourceCost = breakdown.ResourceCost.Add(inv.ResourceCost)
		breakdown.OtherCost = breakdown.OtherCost.Add(inv.OtherExpenses)
		breakdown.GrossProfit = breakdown.GrossProfit.Add(inv.GrossProfit)

		p, ok := byProduct[inv.ProductName]
		if !ok {
			p = &report.ProductProfitBreakdown{ProductName: inv.ProductName}
			byProduct[inv.ProductName] = p
			order = append(order, inv.ProductName)
		}
		p.Revenue = p.Revenue.Add(inv.InvoiceAmount)
		p.TotalCost = p.TotalCost.Add(inv.TotalCost)
		p.GrossProfit = p.GrossProfit.Add(inv.GrossProfit)
	}

	for _, name := range order {
		breakdown.ByProduct = append(breakdown.ByProduct, *byProduct[name])
	}

	return breakdown
}
