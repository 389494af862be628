package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/peoplehub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPersonRepo overrides only the lookups the sync path touches.
type stubPersonRepo struct {
	person.PersonRepository
	getErr      error
	existing    person.Person
	createCalls int
	updateCalls int
}

func (r *stubPersonRepo) GetByEmployeeCode(ctx context.Context, code string) (person.Person, error) {
	if r.getErr != nil {
		return person.Person{}, r.getErr
	}
	return r.existing, nil
}

func (r *stubPersonRepo) Create(ctx context.Context, p person.Person) (person.Person, error) {
	r.createCalls++
	return p, nil
}

func (r *stubPersonRepo) Update(ctx context.Context, p person.Person) error {
	r.updateCalls++
	return nil
}

func syncTestEmployee() peoplehub.Employee {
	return peoplehub.Employee{
		FirstName:    "Ravi",
		LastName:     "Menon",
		EmailID:      "ravi@margindesk.test",
		EmployeeCode: "ENG-101",
		Designation:  "Engineer",
		Department:   "Delivery",
		DateOfJoin:   "15-Mar-2022",
	}
}

func TestUpsertEmployee_CreatesWhenNotFound(t *testing.T) {
	repo := &stubPersonRepo{getErr: person.ErrPersonNotFound}
	svc := &IntegrationServiceImpl{personRepo: repo}

	err := svc.upsertEmployee(context.Background(), syncTestEmployee())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUpsertEmployee_UpdatesExisting(t *testing.T) {
	repo := &stubPersonRepo{existing: person.Person{ID: "p1", EmployeeCode: "ENG-101"}}
	svc := &IntegrationServiceImpl{personRepo: repo}

	err := svc.upsertEmployee(context.Background(), syncTestEmployee())
	require.NoError(t, err)
	assert.Equal(t, 0, repo.createCalls)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestUpsertEmployee_PropagatesLookupFailure(t *testing.T) {
	lookupErr := errors.New("connection reset by peer")
	repo := &stubPersonRepo{getErr: lookupErr}
	svc := &IntegrationServiceImpl{personRepo: repo}

	err := svc.upsertEmployee(context.Background(), syncTestEmployee())
	require.ErrorIs(t, err, lookupErr)
	assert.Equal(t, 0, repo.createCalls, "a failed lookup must not create a duplicate")
}

func TestUpsertEmployee_RejectsMissingIdentity(t *testing.T) {
	repo := &stubPersonRepo{}
	svc := &IntegrationServiceImpl{personRepo: repo}

	e := syncTestEmployee()
	e.EmployeeCode = ""
	err := svc.upsertEmployee(context.Background(), e)
	require.Error(t, err)
	assert.Equal(t, 0, repo.createCalls)
}
