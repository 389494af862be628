package reselling

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/finance"
	"github.com/dataprecision/margindesk-sub001/internal/domain/integration"
	"github.com/dataprecision/margindesk-sub001/internal/domain/reselling"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/dataprecision/margindesk-sub001/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

var maxAllocationPct = decimal.NewFromInt(100)

type ResellingServiceImpl struct {
	db             *database.DB
	invoiceRepo    reselling.InvoiceRepository
	allocationRepo reselling.AllocationRepository
	billRepo       finance.BillRepository
	auditRepo      integration.AuditRepository
}

func NewResellingService(
	db *database.DB,
	invoiceRepo reselling.InvoiceRepository,
	allocationRepo reselling.AllocationRepository,
	billRepo finance.BillRepository,
	auditRepo integration.AuditRepository,
) reselling.Service {
	return &ResellingServiceImpl{
		db:             db,
		invoiceRepo:    invoiceRepo,
		allocationRepo: allocationRepo,
		billRepo:       billRepo,
		auditRepo:      auditRepo,
	}
}

// audit records a mutating operation. Failures are logged, never returned.
func (s *ResellingServiceImpl) audit(ctx context.Context, action, entityID string, detail map[string]interface{}) {
	entry := integration.AuditLog{
		Action:   action,
		Entity:   "reselling_allocation",
		EntityID: entityID,
		Detail:   detail,
	}
	if err := s.auditRepo.Insert(ctx, entry); err != nil {
		slog.Error("Audit log write failed", "action", action, "entity_id", entityID, "error", err)
	}
}

// CreateInvoice implements reselling.Service.
func (s *ResellingServiceImpl) CreateInvoice(ctx context.Context, req reselling.CreateInvoiceRequest) (reselling.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return reselling.InvoiceResponse{}, err
	}

	month, _ := validator.IsValidMonth(req.Month)

	inv := reselling.ResellingInvoice{
		ClientID:      req.ClientID,
		ProductName:   req.ProductName,
		InvoiceNumber: req.InvoiceNumber,
		Month:         month,
		InvoiceAmount: req.InvoiceAmount,
		ResourceCost:  req.ResourceCost,
		OtherExpenses: req.OtherExpenses,
	}
	inv.RecomputeTotals(nil)

	created, err := s.invoiceRepo.Create(ctx, inv)
	if err != nil {
		return reselling.InvoiceResponse{}, err
	}

	return reselling.ToInvoiceResponse(created), nil
}

// GetInvoice implements reselling.Service.
func (s *ResellingServiceImpl) GetInvoice(ctx context.Context, id string) (reselling.InvoiceResponse, error) {
	inv, err := s.loadInvoiceWithAllocations(ctx, id)
	if err != nil {
		return reselling.InvoiceResponse{}, err
	}
	return reselling.ToInvoiceResponse(inv), nil
}

// ListInvoicesByMonth implements reselling.Service.
func (s *ResellingServiceImpl) ListInvoicesByMonth(ctx context.Context, month time.Time) ([]reselling.InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	responses := make([]reselling.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, reselling.ToInvoiceResponse(inv))
	}
	return responses, nil
}

// UpdateInvoice implements reselling.Service. Changing the invoice amount or
// internal costs shifts the derived totals, so they are recomputed inside
// the same transaction as the update.
func (s *ResellingServiceImpl) UpdateInvoice(ctx context.Context, id string, req reselling.CreateInvoiceRequest) (reselling.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return reselling.InvoiceResponse{}, err
	}

	month, _ := validator.IsValidMonth(req.Month)

	var updated reselling.ResellingInvoice
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		inv, err := s.invoiceRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		inv.ClientID = req.ClientID
		inv.ProductName = req.ProductName
		inv.InvoiceNumber = req.InvoiceNumber
		inv.Month = month
		inv.InvoiceAmount = req.InvoiceAmount
		inv.ResourceCost = req.ResourceCost
		inv.OtherExpenses = req.OtherExpenses

		if err := s.invoiceRepo.Update(txCtx, inv); err != nil {
			return err
		}

		updated, err = s.recomputeInvoice(txCtx, inv)
		return err
	})
	if err != nil {
		return reselling.InvoiceResponse{}, err
	}

	return reselling.ToInvoiceResponse(updated), nil
}

// DeleteInvoice implements reselling.Service. Allocations are removed by the
// foreign key cascade.
func (s *ResellingServiceImpl) DeleteInvoice(ctx context.Context, id string) error {
	return s.invoiceRepo.Delete(ctx, id)
}

// AddAllocation implements reselling.Service. The bill row is locked before
// the current allocation total is read, so concurrent writes against the
// same bill serialize on the headroom check.
func (s *ResellingServiceImpl) AddAllocation(ctx context.Context, req reselling.AddAllocationRequest) (reselling.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return reselling.InvoiceResponse{}, err
	}

	var result reselling.ResellingInvoice
	var createdID string
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		inv, err := s.invoiceRepo.GetByID(txCtx, req.ResellingInvoiceID)
		if err != nil {
			return err
		}

		bill, err := s.billRepo.GetByIDForUpdate(txCtx, req.BillID)
		if err != nil {
			return err
		}

		if _, err := s.allocationRepo.GetByInvoiceAndBill(txCtx, inv.ID, bill.ID); err == nil {
			return reselling.ErrAllocationExists
		} else if !errors.Is(err, reselling.ErrAllocationNotFound) {
			return err
		}

		current, err := s.allocationRepo.SumPercentageForBill(txCtx, bill.ID, nil)
		if err != nil {
			return err
		}
		if current.Add(req.AllocationPercentage).GreaterThan(maxAllocationPct) {
			return &reselling.OverAllocationError{
				BillID:       bill.ID,
				CurrentTotal: current,
				Attempted:    req.AllocationPercentage,
			}
		}

		a := reselling.BillAllocation{
			ResellingInvoiceID:   inv.ID,
			BillID:               bill.ID,
			ProductID:            req.ProductID,
			AllocationPercentage: req.AllocationPercentage,
			AllocatedAmount:      reselling.ComputeAllocatedAmount(bill.AllocatableAmount(), req.AllocationPercentage),
		}
		created, err := s.allocationRepo.Create(txCtx, a)
		if err != nil {
			return err
		}
		createdID = created.ID

		result, err = s.recomputeInvoice(txCtx, inv)
		return err
	})
	if err != nil {
		return reselling.InvoiceResponse{}, err
	}

	s.audit(ctx, "allocation.create", createdID, map[string]interface{}{
		"bill_id":               req.BillID,
		"reselling_invoice_id":  req.ResellingInvoiceID,
		"allocation_percentage": req.AllocationPercentage.String(),
	})

	return reselling.ToInvoiceResponse(result), nil
}

// UpdateAllocation implements reselling.Service. The headroom check excludes
// the allocation being edited so lowering a percentage always succeeds.
func (s *ResellingServiceImpl) UpdateAllocation(ctx context.Context, req reselling.UpdateAllocationRequest) (reselling.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return reselling.InvoiceResponse{}, err
	}

	var result reselling.ResellingInvoice
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		a, err := s.allocationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		bill, err := s.billRepo.GetByIDForUpdate(txCtx, a.BillID)
		if err != nil {
			return err
		}

		others, err := s.allocationRepo.SumPercentageForBill(txCtx, bill.ID, &a.ID)
		if err != nil {
			return err
		}
		if others.Add(req.AllocationPercentage).GreaterThan(maxAllocationPct) {
			return &reselling.OverAllocationError{
				BillID:       bill.ID,
				CurrentTotal: others,
				Attempted:    req.AllocationPercentage,
			}
		}

		a.AllocationPercentage = req.AllocationPercentage
		a.AllocatedAmount = reselling.ComputeAllocatedAmount(bill.AllocatableAmount(), req.AllocationPercentage)
		if err := s.allocationRepo.Update(txCtx, a); err != nil {
			return err
		}

		inv, err := s.invoiceRepo.GetByID(txCtx, a.ResellingInvoiceID)
		if err != nil {
			return err
		}

		result, err = s.recomputeInvoice(txCtx, inv)
		return err
	})
	if err != nil {
		return reselling.InvoiceResponse{}, err
	}

	s.audit(ctx, "allocation.update", req.ID, map[string]interface{}{
		"allocation_percentage": req.AllocationPercentage.String(),
	})

	return reselling.ToInvoiceResponse(result), nil
}

// DeleteAllocation implements reselling.Service.
func (s *ResellingServiceImpl) DeleteAllocation(ctx context.Context, id string) (reselling.InvoiceResponse, error) {
	var result reselling.ResellingInvoice
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		a, err := s.allocationRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.allocationRepo.Delete(txCtx, a.ID); err != nil {
			return err
		}

		inv, err := s.invoiceRepo.GetByID(txCtx, a.ResellingInvoiceID)
		if err != nil {
			return err
		}

		result, err = s.recomputeInvoice(txCtx, inv)
		return err
	})
	if err != nil {
		return reselling.InvoiceResponse{}, err
	}

	s.audit(ctx, "allocation.delete", id, nil)

	return reselling.ToInvoiceResponse(result), nil
}

// recomputeInvoice rebuilds the invoice's derived totals from its current
// allocations and persists them. Callers run it inside the transaction that
// changed the allocations.
func (s *ResellingServiceImpl) recomputeInvoice(ctx context.Context, inv reselling.ResellingInvoice) (reselling.ResellingInvoice, error) {
	allocations, err := s.allocationRepo.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return reselling.ResellingInvoice{}, err
	}

	amounts := make([]decimal.Decimal, 0, len(allocations))
	for _, a := range allocations {
		amounts = append(amounts, a.AllocatedAmount)
	}

	inv.RecomputeTotals(amounts)
	if err := s.invoiceRepo.UpdateTotals(ctx, inv); err != nil {
		return reselling.ResellingInvoice{}, err
	}

	inv.Allocations = allocations
	return inv, nil
}

func (s *ResellingServiceImpl) loadInvoiceWithAllocations(ctx context.Context, id string) (reselling.ResellingInvoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return reselling.ResellingInvoice{}, err
	}

	allocations, err := s.allocationRepo.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return reselling.ResellingInvoice{}, err
	}
	inv.Allocations = allocations

	return inv, nil
}
