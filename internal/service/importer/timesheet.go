package importer

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/allocation"
	"github.com/dataprecision/margindesk-sub001/internal/domain/client"
	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/domain/project"
	"github.com/dataprecision/margindesk-sub001/internal/repository/postgresql"
)

const timesheetDateLayout = "02/01/06"

// timesheetRow is one parsed CSV line, before entity resolution.
type timesheetRow struct {
	line       int
	date       time.Time
	email      string
	userName   string
	empCode    string
	clientName string
	project    string
	taskType   string
	hours      float64
	notes      string
}

// ImportTimesheet implements ImportService.
//
// The import replaces existing entries inside the file's date range: all
// entries in [min date, max date] are deleted and the parsed rows inserted,
// in one transaction. People, clients and projects referenced by the file
// but missing from the database are created on the fly.
func (s *ImportServiceImpl) ImportTimesheet(ctx context.Context, r io.Reader) (Summary, error) {
	rows, summary, err := parseTimesheetCSV(r)
	if err != nil {
		return Summary{}, err
	}
	if len(rows) == 0 {
		return summary, nil
	}

	minDate, maxDate := rows[0].date, rows[0].date
	for _, row := range rows[1:] {
		if row.date.Before(minDate) {
			minDate = row.date
		}
		if row.date.After(maxDate) {
			maxDate = row.date
		}
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		people := map[string]person.Person{}
		projects := map[string]project.Project{}

		entries := make([]allocation.TimesheetEntry, 0, len(rows))
		for _, row := range rows {
			p, err := s.resolvePerson(txCtx, people, row)
			if err != nil {
				return err
			}
			pr, err := s.resolveProject(txCtx, projects, row)
			if err != nil {
				return err
			}

			entry := allocation.TimesheetEntry{
				PersonID:  p.ID,
				ProjectID: pr.ID,
				Date:      row.date,
				Hours:     row.hours,
				RowHash:   timesheetRowHash(row),
			}
			if row.taskType != "" {
				entry.TaskType = &row.taskType
			}
			if row.notes != "" {
				entry.Notes = &row.notes
			}
			entries = append(entries, entry)
		}

		if _, err := s.timesheetRepo.DeleteRange(txCtx, minDate, maxDate); err != nil {
			return err
		}

		inserted, err := s.timesheetRepo.InsertBatch(txCtx, entries)
		if err != nil {
			return err
		}
		summary.Imported = int(inserted)
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	s.audit(ctx, "import.timesheet", summary)

	return summary, nil
}

func parseTimesheetCSV(r io.Reader) ([]timesheetRow, Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, Summary{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Date", "Email Id", "Project", "Hours(For Calculation)"} {
		if _, ok := cols[required]; !ok {
			return nil, Summary{}, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []timesheetRow
	var summary Summary
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

		row := timesheetRow{
			line:       line,
			email:      field(record, "Email Id"),
			userName:   field(record, "User Name"),
			empCode:    field(record, "Employee Code"),
			clientName: field(record, "Client"),
			project:    field(record, "Project"),
			taskType:   field(record, "Task Type"),
			notes:      field(record, "Notes"),
		}

		dateStr := field(record, "Date")
		if dateStr == "" {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: missing Date", line))
			continue
		}
		if row.email == "" {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: missing Email Id", line))
			continue
		}
		if row.project == "" {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: missing Project", line))
			continue
		}

		row.date, err = time.Parse(timesheetDateLayout, dateStr)
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: invalid Date %q", line, dateStr))
			continue
		}

		row.hours, err = strconv.ParseFloat(field(record, "Hours(For Calculation)"), 64)
		if err != nil || row.hours < 0 {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: invalid Hours(For Calculation)", line))
			continue
		}

		rows = append(rows, row)
	}

	return rows, summary, nil
}

// timesheetRowHash identifies a row across imports. Hashed on the fields
// that make a row logically distinct, not on formatting.
func timesheetRowHash(row timesheetRow) string {
	key := strings.Join([]string{
		row.date.Format("2006-01-02"),
		strings.ToLower(row.email),
		row.project,
		row.taskType,
		strconv.FormatFloat(row.hours, 'f', -1, 64),
		row.notes,
	}, "|")
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func (s *ImportServiceImpl) resolvePerson(ctx context.Context, cache map[string]person.Person, row timesheetRow) (person.Person, error) {
	key := strings.ToLower(row.email)
	if p, ok := cache[key]; ok {
		return p, nil
	}

	p, err := s.personRepo.GetByEmail(ctx, row.email)
	if errors.Is(err, person.ErrPersonNotFound) {
		p, err = s.personRepo.Create(ctx, person.Person{
			FullName:       row.userName,
			Email:          row.email,
			EmployeeCode:   row.empCode,
			Classification: person.ClassificationOperational,
			Billable:       true,
			StartDate:      row.date,
		})
	}
	if err != nil {
		return person.Person{}, fmt.Errorf("row %d: failed to resolve person %s: %w", row.line, row.email, err)
	}

	cache[key] = p
	return p, nil
}

func (s *ImportServiceImpl) resolveProject(ctx context.Context, cache map[string]project.Project, row timesheetRow) (project.Project, error) {
	clientName := row.clientName
	if clientName == "" {
		clientName = "Unassigned"
	}
	key := clientName + "/" + row.project
	if pr, ok := cache[key]; ok {
		return pr, nil
	}

	c, err := s.clientRepo.GetByName(ctx, clientName)
	if errors.Is(err, client.ErrClientNotFound) {
		c, err = s.clientRepo.Create(ctx, client.Client{Name: clientName, IsActive: true})
	}
	if err != nil {
		return project.Project{}, fmt.Errorf("row %d: failed to resolve client %s: %w", row.line, clientName, err)
	}

	pr, err := s.projectRepo.GetByClientAndName(ctx, c.ID, row.project)
	if errors.Is(err, project.ErrProjectNotFound) {
		pr, err = s.projectRepo.Create(ctx, project.Project{
			ClientID: c.ID,
			Name:     row.project,
			IsActive: true,
		})
	}
	if err != nil {
		return project.Project{}, fmt.Errorf("row %d: failed to resolve project %s: %w", row.line, row.project, err)
	}

	cache[key] = pr
	return pr, nil
}
