package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/finance"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type billRepository struct {
	db *database.DB
}

func NewBillRepository(db *database.DB) finance.BillRepository {
	return &billRepository{db: db}
}

const billColumns = `id, vendor_name, bill_number, bill_date, billed_for_month,
	sub_total, total, include_in_calculation, external_id, created_at, updated_at`

func scanBill(row pgx.Row) (finance.Bill, error) {
	var b finance.Bill
	err := row.Scan(
		&b.ID, &b.VendorName, &b.BillNumber, &b.BillDate, &b.BilledForMonth,
		&b.SubTotal, &b.Total, &b.IncludeInCalculation, &b.ExternalID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *billRepository) Create(ctx context.Context, b finance.Bill) (finance.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO bills (id, vendor_name, bill_number, bill_date, billed_for_month,
			sub_total, total, include_in_calculation, external_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, billColumns)

	created, err := scanBill(q.QueryRow(ctx, query,
		uuid.NewString(), b.VendorName, b.BillNumber, b.BillDate,
		b.BilledForMonth, b.SubTotal, b.Total, b.IncludeInCalculation, b.ExternalID,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_bills_vendor_number") {
			return finance.Bill{}, finance.ErrBillNumberExists
		}
		return finance.Bill{}, fmt.Errorf("failed to create bill: %w", err)
	}

	for _, li := range b.LineItems {
		_, err := q.Exec(ctx, `
			INSERT INTO bill_line_items (id, bill_id, description, quantity, rate, amount)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.NewString(), created.ID, li.Description, li.Quantity, li.Rate, li.Amount)
		if err != nil {
			return finance.Bill{}, fmt.Errorf("failed to insert bill line item: %w", err)
		}
	}

	return created, nil
}

func (r *billRepository) GetByID(ctx context.Context, id string) (finance.Bill, error) {
	return r.getByID(ctx, id, false)
}

func (r *billRepository) GetByIDForUpdate(ctx context.Context, id string) (finance.Bill, error) {
	return r.getByID(ctx, id, true)
}

func (r *billRepository) getByID(ctx context.Context, id string, forUpdate bool) (finance.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM bills WHERE id = $1`, billColumns)
	if forUpdate {
		query += " FOR UPDATE"
	}

	b, err := scanBill(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return finance.Bill{}, finance.ErrBillNotFound
		}
		return finance.Bill{}, fmt.Errorf("failed to get bill: %w", err)
	}

	items, err := r.lineItems(ctx, b.ID)
	if err != nil {
		return finance.Bill{}, err
	}
	b.LineItems = items

	return b, nil
}

func (r *billRepository) GetByExternalID(ctx context.Context, externalID string) (finance.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM bills WHERE external_id = $1`, billColumns)

	b, err := scanBill(q.QueryRow(ctx, query, externalID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return finance.Bill{}, finance.ErrBillNotFound
		}
		return finance.Bill{}, fmt.Errorf("failed to get bill: %w", err)
	}

	return b, nil
}

func (r *billRepository) lineItems(ctx context.Context, billID string) ([]finance.BillLineItem, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, bill_id, description, quantity, rate, amount
		FROM bill_line_items
		WHERE bill_id = $1
	`, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bill line items: %w", err)
	}
	defer rows.Close()

	var items []finance.BillLineItem
	for rows.Next() {
		var li finance.BillLineItem
		if err := rows.Scan(&li.ID, &li.BillID, &li.Description, &li.Quantity, &li.Rate, &li.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan bill line item: %w", err)
		}
		items = append(items, li)
	}

	return items, nil
}

func (r *billRepository) ListByBilledForMonth(ctx context.Context, month time.Time) ([]finance.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM bills WHERE billed_for_month = $1 ORDER BY vendor_name`, billColumns)

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []finance.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}

	return bills, nil
}

func (r *billRepository) List(ctx context.Context, filter finance.BillFilter) ([]finance.Bill, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM bills WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.VendorName != nil {
		baseQuery += fmt.Sprintf(" AND vendor_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.VendorName+"%")
		argIdx++
	}
	if filter.From != nil {
		baseQuery += fmt.Sprintf(" AND bill_date >= $%d", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		baseQuery += fmt.Sprintf(" AND bill_date <= $%d", argIdx)
		args = append(args, *filter.To)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf("SELECT %s%s ORDER BY bill_date DESC LIMIT $%d OFFSET $%d",
		billColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []finance.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}

	return bills, totalCount, nil
}

func (r *billRepository) Update(ctx context.Context, b finance.Bill) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bills
		SET billed_for_month = $2, sub_total = $3, total = $4,
			include_in_calculation = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, b.ID, b.BilledForMonth, b.SubTotal, b.Total, b.IncludeInCalculation).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return finance.ErrBillNotFound
		}
		return fmt.Errorf("failed to update bill: %w", err)
	}

	return nil
}

func (r *billRepository) UpsertByExternalID(ctx context.Context, b finance.Bill) (finance.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO bills (id, vendor_name, bill_number, bill_date, billed_for_month,
			sub_total, total, include_in_calculation, external_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (external_id) DO UPDATE SET
			vendor_name = EXCLUDED.vendor_name,
			bill_number = EXCLUDED.bill_number,
			bill_date = EXCLUDED.bill_date,
			billed_for_month = EXCLUDED.billed_for_month,
			sub_total = EXCLUDED.sub_total,
			total = EXCLUDED.total,
			updated_at = NOW()
		RETURNING %s
	`, billColumns)

	out, err := scanBill(q.QueryRow(ctx, query,
		uuid.NewString(), b.VendorName, b.BillNumber, b.BillDate,
		b.BilledForMonth, b.SubTotal, b.Total, b.IncludeInCalculation, b.ExternalID,
	))
	if err != nil {
		return finance.Bill{}, fmt.Errorf("failed to upsert bill: %w", err)
	}

	return out, nil
}

func (r *billRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM bills WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return finance.ErrBillNotFound
		}
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	return nil
}
