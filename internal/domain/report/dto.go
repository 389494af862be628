package report

import "github.com/shopspring/decimal"

// ProfitLossResponse is the monthly P&L report. Pure read-side aggregation;
// nothing in here is persisted.
type ProfitLossResponse struct {
	Month     string              `json:"month"`
	Summary   ProfitLossSummary   `json:"summary"`
	Breakdown ProfitLossBreakdown `json:"breakdown"`
}

type ProfitLossSummary struct {
	Revenue         decimal.Decimal `json:"revenue"`
	TotalCosts      decimal.Decimal `json:"total_costs"`
	Overheads       decimal.Decimal `json:"overheads"`
	ProfitLoss      decimal.Decimal `json:"profit_loss"`
	ProfitMarginPct decimal.Decimal `json:"profit_margin_percentage"`
}

type ProfitLossBreakdown struct {
	OperationalSalaries decimal.Decimal    `json:"operational_salaries"`
	SupportSalaries     decimal.Decimal    `json:"support_salaries"`
	Expenses            decimal.Decimal    `json:"expenses"`
	Bills               decimal.Decimal    `json:"bills"`
	ProjectRevenue      decimal.Decimal    `json:"project_revenue"`
	Reselling           ResellingBreakdown `json:"reselling"`
}

type ResellingBreakdown struct {
	Revenue      decimal.Decimal          `json:"revenue"`
	OEMCost      decimal.Decimal          `json:"oem_cost"`
	ResourceCost decimal.Decimal          `json:"resource_cost"`
	OtherCost    decimal.Decimal          `json:"other_cost"`
	GrossProfit  decimal.Decimal          `json:"gross_profit"`
	ByProduct    []ProductProfitBreakdown `json:"by_product"`
}

type ProductProfitBreakdown struct {
	ProductName string          `json:"product_name"`
	Revenue     decimal.Decimal `json:"revenue"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
}
