package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/reselling"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type resellingInvoiceRepository struct {
	db *database.DB
}

func NewResellingInvoiceRepository(db *database.DB) reselling.InvoiceRepository {
	return &resellingInvoiceRepository{db: db}
}

const invoiceColumns = `id, client_id, product_name, invoice_number, month,
	invoice_amount, resource_cost, other_expenses, total_oem_cost, total_cost,
	gross_profit, profit_margin_pct, created_at, updated_at`

func scanInvoice(row pgx.Row) (reselling.ResellingInvoice, error) {
	var inv reselling.ResellingInvoice
	err := row.Scan(
		&inv.ID, &inv.ClientID, &inv.ProductName, &inv.InvoiceNumber, &inv.Month,
		&inv.InvoiceAmount, &inv.ResourceCost, &inv.OtherExpenses,
		&inv.TotalOEMCost, &inv.TotalCost, &inv.GrossProfit,
		&inv.ProfitMarginPct, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

func (r *resellingInvoiceRepository) Create(ctx context.Context, inv reselling.ResellingInvoice) (reselling.ResellingInvoice, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO reselling_invoices (id, client_id, product_name, invoice_number,
			month, invoice_amount, resource_cost, other_expenses, total_oem_cost,
			total_cost, gross_profit, profit_margin_pct)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s
	`, invoiceColumns)

	created, err := scanInvoice(q.QueryRow(ctx, query,
		uuid.NewString(), inv.ClientID, inv.ProductName, inv.InvoiceNumber,
		inv.Month, inv.InvoiceAmount, inv.ResourceCost, inv.OtherExpenses,
		inv.TotalOEMCost, inv.TotalCost, inv.GrossProfit, inv.ProfitMarginPct,
	))
	if err != nil {
		return reselling.ResellingInvoice{}, fmt.Errorf("failed to create reselling invoice: %w", err)
	}

	return created, nil
}

func (r *resellingInvoiceRepository) GetByID(ctx context.Context, id string) (reselling.ResellingInvoice, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM reselling_invoices WHERE id = $1`, invoiceColumns)

	inv, err := scanInvoice(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return reselling.ResellingInvoice{}, reselling.ErrInvoiceNotFound
		}
		return reselling.ResellingInvoice{}, fmt.Errorf("failed to get reselling invoice: %w", err)
	}

	return inv, nil
}

func (r *resellingInvoiceRepository) ListByMonth(ctx context.Context, month time.Time) ([]reselling.ResellingInvoice, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM reselling_invoices WHERE month = $1 ORDER BY product_name`, invoiceColumns)

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list reselling invoices: %w", err)
	}
	defer rows.Close()

	var invoices []reselling.ResellingInvoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reselling invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

func (r *resellingInvoiceRepository) Update(ctx context.Context, inv reselling.ResellingInvoice) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reselling_invoices
		SET client_id = $2, product_name = $3, invoice_number = $4,
			invoice_amount = $5, resource_cost = $6, other_expenses = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		inv.ID, inv.ClientID, inv.ProductName, inv.InvoiceNumber,
		inv.InvoiceAmount, inv.ResourceCost, inv.OtherExpenses,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return reselling.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to update reselling invoice: %w", err)
	}

	return nil
}

func (r *resellingInvoiceRepository) UpdateTotals(ctx context.Context, inv reselling.ResellingInvoice) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reselling_invoices
		SET total_oem_cost = $2, total_cost = $3, gross_profit = $4,
			profit_margin_pct = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		inv.ID, inv.TotalOEMCost, inv.TotalCost, inv.GrossProfit, inv.ProfitMarginPct,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return reselling.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to update reselling invoice totals: %w", err)
	}

	return nil
}

func (r *resellingInvoiceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM reselling_invoices WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return reselling.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to delete reselling invoice: %w", err)
	}

	return nil
}

// ========== BILL ALLOCATIONS ==========

type resellingAllocationRepository struct {
	db *database.DB
}

func NewResellingAllocationRepository(db *database.DB) reselling.AllocationRepository {
	return &resellingAllocationRepository{db: db}
}

const resellingAllocationColumns = `id, reselling_invoice_id, bill_id, product_id,
	allocation_percentage, allocated_amount, created_at, updated_at`

func scanResellingAllocation(row pgx.Row) (reselling.BillAllocation, error) {
	var a reselling.BillAllocation
	err := row.Scan(
		&a.ID, &a.ResellingInvoiceID, &a.BillID, &a.ProductID,
		&a.AllocationPercentage, &a.AllocatedAmount, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *resellingAllocationRepository) Create(ctx context.Context, a reselling.BillAllocation) (reselling.BillAllocation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO reselling_bill_allocations (id, reselling_invoice_id, bill_id,
			product_id, allocation_percentage, allocated_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, resellingAllocationColumns)

	created, err := scanResellingAllocation(q.QueryRow(ctx, query,
		uuid.NewString(), a.ResellingInvoiceID, a.BillID, a.ProductID,
		a.AllocationPercentage, a.AllocatedAmount,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_reselling_allocations_invoice_bill") {
			return reselling.BillAllocation{}, reselling.ErrAllocationExists
		}
		return reselling.BillAllocation{}, fmt.Errorf("failed to create bill allocation: %w", err)
	}

	return created, nil
}

func (r *resellingAllocationRepository) GetByID(ctx context.Context, id string) (reselling.BillAllocation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM reselling_bill_allocations WHERE id = $1`, resellingAllocationColumns)

	a, err := scanResellingAllocation(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return reselling.BillAllocation{}, reselling.ErrAllocationNotFound
		}
		return reselling.BillAllocation{}, fmt.Errorf("failed to get bill allocation: %w", err)
	}

	return a, nil
}

func (r *resellingAllocationRepository) GetByInvoiceAndBill(ctx context.Context, invoiceID, billID string) (reselling.BillAllocation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM reselling_bill_allocations
		WHERE reselling_invoice_id = $1 AND bill_id = $2
	`, resellingAllocationColumns)

	a, err := scanResellingAllocation(q.QueryRow(ctx, query, invoiceID, billID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return reselling.BillAllocation{}, reselling.ErrAllocationNotFound
		}
		return reselling.BillAllocation{}, fmt.Errorf("failed to get bill allocation: %w", err)
	}

	return a, nil
}

func (r *resellingAllocationRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]reselling.BillAllocation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM reselling_bill_allocations
		WHERE reselling_invoice_id = $1
		ORDER BY created_at
	`, resellingAllocationColumns)

	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bill allocations: %w", err)
	}
	defer rows.Close()

	var allocations []reselling.BillAllocation
	for rows.Next() {
		a, err := scanResellingAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill allocation: %w", err)
		}
		allocations = append(allocations, a)
	}

	return allocations, nil
}

func (r *resellingAllocationRepository) SumPercentageForBill(ctx context.Context, billID string, excludeID *string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(allocation_percentage), 0)
		FROM reselling_bill_allocations
		WHERE bill_id = $1
	`
	args := []interface{}{billID}
	if excludeID != nil {
		query += " AND id <> $2"
		args = append(args, *excludeID)
	}

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum allocation percentage: %w", err)
	}

	return total, nil
}

func (r *resellingAllocationRepository) Update(ctx context.Context, a reselling.BillAllocation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reselling_bill_allocations
		SET allocation_percentage = $2, allocated_amount = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, a.ID, a.AllocationPercentage, a.AllocatedAmount).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return reselling.ErrAllocationNotFound
		}
		return fmt.Errorf("failed to update bill allocation: %w", err)
	}

	return nil
}

func (r *resellingAllocationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM reselling_bill_allocations WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return reselling.ErrAllocationNotFound
		}
		return fmt.Errorf("failed to delete bill allocation: %w", err)
	}

	return nil
}
