package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetregistry/src/core/domain"
	"assetregistry/src/core/dto"
)

type fakeSystemRepo struct {
	byID  map[uuid.UUID]domain.System
	order []uuid.UUID
}

func newFakeSystemRepo() *fakeSystemRepo {
	return &fakeSystemRepo{byID: make(map[uuid.UUID]domain.System)}
}

func (f *fakeSystemRepo) Health(ctx context.Context) error { return nil }

func (f *fakeSystemRepo) Insert(ctx context.Context, s domain.System) (*domain.System, error) {
	for _, existing := range f.byID {
		if existing.Name == s.Name {
			return nil, domain.NewDuplicateNameError("system name already taken")
		}
	}
	s.UpdatedAt = s.CreatedAt
	f.byID[s.ID] = s
	f.order = append(f.order, s.ID)
	return &s, nil
}

func (f *fakeSystemRepo) Update(ctx context.Context, s domain.System) (*domain.System, error) {
	existing, ok := f.byID[s.ID]
	if !ok {
		return nil, domain.NewNotFoundError("system")
	}
	for id, other := range f.byID {
		if id != s.ID && other.Name == s.Name {
			return nil, domain.NewDuplicateNameError("system name already taken")
		}
	}
	s.CreatedAt = existing.CreatedAt
	f.byID[s.ID] = s
	return &s, nil
}

func (f *fakeSystemRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.System, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("system")
	}
	return &s, nil
}

func (f *fakeSystemRepo) FindByName(ctx context.Context, name string) (*domain.System, error) {
	for _, s := range f.byID {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, domain.NewNotFoundError("system")
}

func (f *fakeSystemRepo) FindPage(ctx context.Context, page, size int) ([]domain.System, int64, error) {
	total := int64(len(f.order))
	start := page * size
	if start >= len(f.order) {
		return nil, total, nil
	}
	end := start + size
	if end > len(f.order) {
		end = len(f.order)
	}
	var out []domain.System
	for _, id := range f.order[start:end] {
		out = append(out, f.byID[id])
	}
	return out, total, nil
}

func (f *fakeSystemRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return domain.NewNotFoundError("system")
	}
	delete(f.byID, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeSystemRepo) DeleteAll(ctx context.Context) (int64, error) {
	removed := int64(len(f.byID))
	f.byID = make(map[uuid.UUID]domain.System)
	f.order = nil
	return removed, nil
}

func newSystemFixture() (*SystemService, *fakeSystemRepo) {
	repo := newFakeSystemRepo()
	return NewSystemService(repo, testLogger()), repo
}

func TestSystemCreateRejectsUnbalancedLocation(t *testing.T) {
	svc, repo := newSystemFixture()
	w := svc.Create(context.Background(), &dto.SystemRequest{
		Name:        "plc-7",
		Description: "line controller",
		Location: &dto.LocationDTO{
			Latitude:        52.52,
			Longitude:       13.405,
			VirtualLocation: "vpc-3/subnet-9",
		},
	})
	assert.Equal(t, domain.ResultBadRequest, w.Code)
	assert.Equal(t, domain.ErrCodeInvalidLocation, w.ErrorCode)
	assert.Empty(t, repo.byID, "a failed validation must not touch the store")
}

func TestSystemCreateRejectsDuplicateParameters(t *testing.T) {
	svc, repo := newSystemFixture()
	w := svc.Create(context.Background(), &dto.SystemRequest{
		Name:        "plc-7",
		Description: "line controller",
		Attributes: []dto.KvAttribute{{
			Name: "network",
			Parameters: []dto.ParameterValue{
				{Name: "vlan", Value: domain.NumberValue(12)},
				{Name: "vlan", Value: domain.NumberValue(13)},
			},
		}},
	})
	assert.Equal(t, domain.ResultBadRequest, w.Code)
	assert.Equal(t, domain.ErrCodeDuplicateParameterValue, w.ErrorCode)
	assert.Empty(t, repo.byID)
}

func TestSystemCreateRetainsLocationAndOrganization(t *testing.T) {
	svc, _ := newSystemFixture()
	created := svc.Create(context.Background(), &dto.SystemRequest{
		Name:         "plc-7",
		Description:  "line controller",
		Organization: "acme industries",
		Location:     &dto.LocationDTO{VirtualLocation: "vpc-3/subnet-9"},
	})
	require.True(t, created.IsSuccess())
	require.NotNil(t, created.Payload)

	got := svc.RetrieveByID(context.Background(), created.Payload.ID)
	require.True(t, got.IsSuccess())
	require.NotNil(t, got.Payload)
	assert.Equal(t, "acme industries", got.Payload.Organization)
	require.NotNil(t, got.Payload.Location)
	assert.Equal(t, "vpc-3/subnet-9", got.Payload.Location.VirtualLocation)
}

func TestSystemCreateDuplicateNameConflicts(t *testing.T) {
	svc, _ := newSystemFixture()
	first := svc.Create(context.Background(), &dto.SystemRequest{Name: "plc-7", Description: "a"})
	require.True(t, first.IsSuccess())

	second := svc.Create(context.Background(), &dto.SystemRequest{Name: "plc-7", Description: "b"})
	assert.Equal(t, domain.ResultConflict, second.Code)
	assert.Equal(t, domain.ErrCodeSystemNameConflict, second.ErrorCode)
}

func TestSystemUpdateNonexistentNotFound(t *testing.T) {
	svc, repo := newSystemFixture()
	w := svc.Update(context.Background(), &dto.SystemRequest{Name: "plc-7", Description: "a"}, uuid.NewString())
	assert.Equal(t, domain.ResultNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeSystemNotFound, w.ErrorCode)
	assert.Empty(t, repo.byID)
}

func TestSystemRetrieveAllEmptyStore(t *testing.T) {
	svc, _ := newSystemFixture()
	w := svc.RetrieveAll(context.Background(), 0, 10)
	assert.Equal(t, domain.ResultNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeNoSystemsFound, w.ErrorCode)
}

func TestSystemDeleteAllEmptyStore(t *testing.T) {
	svc, _ := newSystemFixture()
	w := svc.DeleteAll(context.Background())
	assert.Equal(t, domain.ResultNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeNoSystemsFound, w.ErrorCode)
}

func TestSystemDeleteAllRemovesEverything(t *testing.T) {
	svc, repo := newSystemFixture()
	for _, name := range []string{"plc-7", "plc-8"} {
		created := svc.Create(context.Background(), &dto.SystemRequest{Name: name, Description: "ctrl"})
		require.True(t, created.IsSuccess())
	}

	cleared := svc.DeleteAll(context.Background())
	assert.True(t, cleared.IsSuccess())
	assert.Empty(t, repo.byID)
}
