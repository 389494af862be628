package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

// salaryMonthLayout matches the amount column's header, e.g. "Sep-25".
const salaryMonthLayout = "Jan-06"

// ImportSalaries implements ImportService.
//
// The CSV carries Emp Code, Name and one amount column whose header names
// the target month. All salary rows for that month are deleted and replaced
// in one transaction. Support-staff bucketing comes from the person's stored
// classification, fixed at write time.
func (s *ImportServiceImpl) ImportSalaries(ctx context.Context, r io.Reader) (Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	codeIdx, amountIdx := -1, -1
	var month time.Time
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "Emp Code" {
			codeIdx = i
			continue
		}
		if m, parseErr := time.Parse(salaryMonthLayout, name); parseErr == nil {
			amountIdx = i
			month = time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
	}
	if codeIdx < 0 {
		return Summary{}, fmt.Errorf("missing required column %q", "Emp Code")
	}
	if amountIdx < 0 {
		return Summary{}, fmt.Errorf("no month-labelled amount column found in header")
	}

	var summary Summary
	var salaries []person.PersonSalary
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}

		code := ""
		if codeIdx < len(record) {
			code = strings.TrimSpace(record[codeIdx])
		}
		if code == "" {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: missing Emp Code", line))
			continue
		}

		raw := ""
		if amountIdx < len(record) {
			raw = record[amountIdx]
		}
		amount, err := parseAmount(raw)
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: invalid amount %q", line, raw))
			continue
		}

		p, err := s.personRepo.GetByEmployeeCode(ctx, code)
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: unknown employee code %s", line, code))
			continue
		}

		salaries = append(salaries, person.PersonSalary{
			PersonID:       p.ID,
			Month:          month,
			Amount:         amount,
			IsSupportStaff: p.Classification == person.ClassificationSupport,
		})
	}

	if len(salaries) == 0 {
		return summary, nil
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.salaryRepo.DeleteByMonth(txCtx, month); err != nil {
			return err
		}
		for _, sal := range salaries {
			if _, err := s.salaryRepo.Upsert(txCtx, sal); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	summary.Imported = len(salaries)
	s.audit(ctx, "import.salaries", summary)

	return summary, nil
}

// parseAmount strips currency symbols and thousands separators before
// parsing, e.g. "₹1,20,000.50" or "$7,500".
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("no numeric content")
	}
	return decimal.NewFromString(cleaned)
}
