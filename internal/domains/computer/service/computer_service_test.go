package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/computer/model"
	"catalog-backend/internal/shared/fault"
)

type fakeRepository struct {
	mu        sync.Mutex
	computers map[uuid.UUID]model.Computer
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{computers: make(map[uuid.UUID]model.Computer)}
}

func (r *fakeRepository) Insert(ctx context.Context, computer *model.Computer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.computers[computer.ID] = *computer
	return nil
}

func (r *fakeRepository) Update(ctx context.Context, computer *model.Computer) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.computers[computer.ID]
	if !ok || stored.Version != computer.Version {
		return 0, &fault.VersionOutdated{ID: computer.ID.String(), Version: computer.Version}
	}

	updated := *computer
	updated.Version = stored.Version + 1
	r.computers[computer.ID] = updated
	return updated.Version, nil
}

func (r *fakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Computer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	computer, ok := r.computers[id]
	if !ok {
		return nil, nil
	}
	return &computer, nil
}

func (r *fakeRepository) FindByField(ctx context.Context, field, value string) ([]model.Computer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []model.Computer
	for _, computer := range r.computers {
		switch field {
		case "manufacturer":
			if computer.Manufacturer == value {
				result = append(result, computer)
			}
		case "serial":
			if computer.Serial == value {
				result = append(result, computer)
			}
		}
	}
	return result, nil
}

func (r *fakeRepository) Find(ctx context.Context, filter model.ComputerFilter) ([]model.Computer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []model.Computer
	for _, computer := range r.computers {
		if filter.Manufacturer != "" && !strings.Contains(strings.ToLower(computer.Manufacturer), strings.ToLower(filter.Manufacturer)) {
			continue
		}
		if filter.Serial != "" && computer.Serial != filter.Serial {
			continue
		}
		result = append(result, computer)
	}
	return result, nil
}

func (r *fakeRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.computers[id]; !ok {
		return 0, nil
	}
	delete(r.computers, id)
	return 1, nil
}

type fakeNotifier struct{}

func (fakeNotifier) Notify(ctx context.Context, subject, body string) error {
	return nil
}

func validComputer() model.Computer {
	price := decimal.RequireFromString("899.99")
	return model.Computer{
		Manufacturer: "ACME",
		Price:        &price,
		Serial:       "PC-84XY7A",
	}
}

func newTestService() (ServiceInterface, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, fakeNotifier{}), repo
}

func TestCreateStoresVersionZero(t *testing.T) {
	svc, repo := newTestService()

	computer := validComputer()
	id, err := svc.Create(context.Background(), &computer)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 0, stored.Version)
}

func TestCreateRejectsInvalidComputer(t *testing.T) {
	svc, _ := newTestService()

	computer := validComputer()
	computer.Serial = "nope"

	_, err := svc.Create(context.Background(), &computer)
	var violations *fault.ConstraintViolations
	require.ErrorAs(t, err, &violations)
	assert.Equal(t, []string{"the serial number is not valid"}, violations.Messages)
}

// When both natural-key fields collide, the manufacturer conflict is the one
// reported.
func TestCreateManufacturerConflictReportedFirst(t *testing.T) {
	svc, _ := newTestService()

	first := validComputer()
	firstID, err := svc.Create(context.Background(), &first)
	require.NoError(t, err)

	second := validComputer()
	_, err = svc.Create(context.Background(), &second)
	var exists *fault.NaturalKeyExists
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "manufacturer", exists.Field)
	assert.Equal(t, "ACME", exists.Value)
	assert.Equal(t, firstID.String(), exists.ID)
}

func TestCreateDuplicateSerial(t *testing.T) {
	svc, _ := newTestService()

	first := validComputer()
	_, err := svc.Create(context.Background(), &first)
	require.NoError(t, err)

	second := validComputer()
	second.Manufacturer = "Globex"

	_, err = svc.Create(context.Background(), &second)
	var exists *fault.NaturalKeyExists
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "serial", exists.Field)
	assert.Equal(t, "PC-84XY7A", exists.Value)
}

func TestUpdateHappyPath(t *testing.T) {
	svc, repo := newTestService()

	computer := validComputer()
	id, err := svc.Create(context.Background(), &computer)
	require.NoError(t, err)

	in := validComputer()
	color := model.ColorBlack
	in.Color = &color

	newVersion, err := svc.Update(context.Background(), id.String(), &in, `"0"`)
	require.NoError(t, err)
	assert.Equal(t, 1, newVersion)

	stored, _ := repo.FindByID(context.Background(), id)
	assert.Equal(t, 1, stored.Version)
	assert.Equal(t, model.ColorBlack, *stored.Color)
}

func TestUpdateStaleToken(t *testing.T) {
	svc, _ := newTestService()

	computer := validComputer()
	id, err := svc.Create(context.Background(), &computer)
	require.NoError(t, err)

	in := validComputer()
	_, err = svc.Update(context.Background(), id.String(), &in, `"0"`)
	require.NoError(t, err)

	again := validComputer()
	_, err = svc.Update(context.Background(), id.String(), &again, `"0"`)
	var outdated *fault.VersionOutdated
	require.ErrorAs(t, err, &outdated)
	assert.Equal(t, 0, outdated.Version)
}

func TestUpdateMissingToken(t *testing.T) {
	svc, _ := newTestService()

	computer := validComputer()
	id, err := svc.Create(context.Background(), &computer)
	require.NoError(t, err)

	in := validComputer()
	_, err = svc.Update(context.Background(), id.String(), &in, "")
	var invalid *fault.VersionInvalid
	assert.ErrorAs(t, err, &invalid)
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _ := newTestService()

	in := validComputer()
	_, err := svc.Update(context.Background(), uuid.NewString(), &in, `"0"`)
	var notExists *fault.EntityNotExists
	assert.ErrorAs(t, err, &notExists)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc, _ := newTestService()

	computer := validComputer()
	id, err := svc.Create(context.Background(), &computer)
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), id.String())
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(context.Background(), id.String())
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.Delete(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFindFiltersByManufacturerSubstring(t *testing.T) {
	svc, _ := newTestService()

	first := validComputer()
	_, err := svc.Create(context.Background(), &first)
	require.NoError(t, err)

	second := validComputer()
	second.Manufacturer = "Globex"
	second.Serial = "PC-01AB2C"
	_, err = svc.Create(context.Background(), &second)
	require.NoError(t, err)

	result, err := svc.Find(context.Background(), model.ComputerFilter{Manufacturer: "glo"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Globex", result[0].Manufacturer)
}
