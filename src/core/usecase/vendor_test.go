package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetregistry/src/core/domain"
	"assetregistry/src/core/dto"
)

// fakeVendorRepo is an in-memory ports.VendorRepository preserving insertion
// order for deterministic pagination.
type fakeVendorRepo struct {
	byID  map[uuid.UUID]domain.Vendor
	order []uuid.UUID
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{byID: make(map[uuid.UUID]domain.Vendor)}
}

func (f *fakeVendorRepo) Health(ctx context.Context) error { return nil }

func (f *fakeVendorRepo) Insert(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	for _, existing := range f.byID {
		if existing.Name == v.Name {
			return nil, domain.NewDuplicateNameError("vendor name already taken")
		}
	}
	v.UpdatedAt = v.CreatedAt
	f.byID[v.ID] = v
	f.order = append(f.order, v.ID)
	return &v, nil
}

func (f *fakeVendorRepo) Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	existing, ok := f.byID[v.ID]
	if !ok {
		return nil, domain.NewNotFoundError("vendor")
	}
	for id, other := range f.byID {
		if id != v.ID && other.Name == v.Name {
			return nil, domain.NewDuplicateNameError("vendor name already taken")
		}
	}
	v.CreatedAt = existing.CreatedAt
	v.UpdatedAt = time.Now().UTC()
	f.byID[v.ID] = v
	return &v, nil
}

func (f *fakeVendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("vendor")
	}
	return &v, nil
}

func (f *fakeVendorRepo) FindByName(ctx context.Context, name string) (*domain.Vendor, error) {
	for _, v := range f.byID {
		if v.Name == name {
			return &v, nil
		}
	}
	return nil, domain.NewNotFoundError("vendor")
}

func (f *fakeVendorRepo) FindPage(ctx context.Context, page, size int) ([]domain.Vendor, int64, error) {
	total := int64(len(f.order))
	start := page * size
	if start >= len(f.order) {
		return nil, total, nil
	}
	end := start + size
	if end > len(f.order) {
		end = len(f.order)
	}
	var out []domain.Vendor
	for _, id := range f.order[start:end] {
		out = append(out, f.byID[id])
	}
	return out, total, nil
}

func (f *fakeVendorRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return domain.NewNotFoundError("vendor")
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

func (f *fakeVendorRepo) DeleteAll(ctx context.Context) (int64, error) {
	removed := int64(len(f.byID))
	f.byID = make(map[uuid.UUID]domain.Vendor)
	f.order = nil
	return removed, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newVendorFixture() (*VendorService, *fakeVendorRepo) {
	repo := newFakeVendorRepo()
	return NewVendorService(repo, testLogger()), repo
}

func TestVendorCreateBlankNameRejected(t *testing.T) {
	svc, repo := newVendorFixture()
	w := svc.Create(context.Background(), &dto.VendorRequest{Description: "machines"})
	assert.Equal(t, domain.ResultBadRequest, w.Code)
	assert.Equal(t, domain.ErrCodeMandatoryFieldsMissing, w.ErrorCode)
	assert.Nil(t, w.Payload)
	assert.Empty(t, repo.byID, "a failed validation must not touch the store")
}

func TestVendorCreateNilRequestRejected(t *testing.T) {
	svc, _ := newVendorFixture()
	w := svc.Create(context.Background(), nil)
	assert.Equal(t, domain.ResultBadRequest, w.Code)
	assert.Equal(t, domain.ErrCodeInvalidParameters, w.ErrorCode)
}

func TestVendorCreateThenRetrieveByID(t *testing.T) {
	svc, _ := newVendorFixture()
	created := svc.Create(context.Background(), &dto.VendorRequest{Name: "Acme", Description: "machines"})
	require.True(t, created.IsSuccess())
	require.NotNil(t, created.Payload)

	got := svc.RetrieveByID(context.Background(), created.Payload.ID)
	require.True(t, got.IsSuccess())
	require.NotNil(t, got.Payload)
	assert.Equal(t, created.Payload.ID, got.Payload.ID)
	assert.Equal(t, "Acme", got.Payload.Name)
	assert.Equal(t, "machines", got.Payload.Description)
}

func TestVendorCreateDuplicateNameConflicts(t *testing.T) {
	svc, _ := newVendorFixture()
	first := svc.Create(context.Background(), &dto.VendorRequest{Name: "Acme"})
	require.True(t, first.IsSuccess())

	second := svc.Create(context.Background(), &dto.VendorRequest{Name: "Acme"})
	assert.Equal(t, domain.ResultConflict, second.Code)
	assert.Equal(t, domain.ErrCodeVendorNameConflict, second.ErrorCode)
	assert.Nil(t, second.Payload)
}

func TestVendorUpdateNonexistentNotFound(t *testing.T) {
	svc, repo := newVendorFixture()
	w := svc.Update(context.Background(), &dto.VendorRequest{Name: "Acme"}, uuid.NewString())
	assert.Equal(t, domain.ResultNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeVendorNotFound, w.ErrorCode)
	assert.Empty(t, repo.byID, "a failed update must not create a record")
}

func TestVendorUpdatePreservesIDAndRefreshesTimestamp(t *testing.T) {
	svc, _ := newVendorFixture()
	created := svc.Create(context.Background(), &dto.VendorRequest{Name: "Acme"})
	require.True(t, created.IsSuccess())

	updated := svc.Update(context.Background(), &dto.VendorRequest{Name: "Acme Corp"}, created.Payload.ID)
	require.True(t, updated.IsSuccess())
	assert.Equal(t, created.Payload.ID, updated.Payload.ID)
	assert.Equal(t, "Acme Corp", updated.Payload.Name)
	assert.Equal(t, created.Payload.CreatedAt, updated.Payload.CreatedAt)
	assert.False(t, updated.Payload.UpdatedAt.Before(created.Payload.UpdatedAt))
}

func TestVendorDeleteTwice(t *testing.T) {
	svc, _ := newVendorFixture()
	created := svc.Create(context.Background(), &dto.VendorRequest{Name: "Acme"})
	require.True(t, created.IsSuccess())

	first := svc.Delete(context.Background(), created.Payload.ID)
	assert.True(t, first.IsSuccess())

	second := svc.Delete(context.Background(), created.Payload.ID)
	assert.Equal(t, domain.ResultNotFound, second.Code)
	assert.Equal(t, domain.ErrCodeVendorNotFound, second.ErrorCode)
}

func TestVendorRetrieveByIDArgumentValidation(t *testing.T) {
	svc, _ := newVendorFixture()

	blank := svc.RetrieveByID(context.Background(), "")
	assert.Equal(t, domain.ResultBadRequest, blank.Code)
	assert.Equal(t, domain.ErrCodeInvalidParameters, blank.ErrorCode)

	malformed := svc.RetrieveByID(context.Background(), "not-a-uuid")
	assert.Equal(t, domain.ResultBadRequest, malformed.Code)
	assert.Equal(t, domain.ErrCodeInvalidParameterFormat, malformed.ErrorCode)
}

func TestVendorRetrieveByName(t *testing.T) {
	svc, _ := newVendorFixture()
	created := svc.Create(context.Background(), &dto.VendorRequest{Name: "Acme"})
	require.True(t, created.IsSuccess())

	got := svc.RetrieveByName(context.Background(), "Acme")
	require.True(t, got.IsSuccess())
	assert.Equal(t, created.Payload.ID, got.Payload.ID)

	missing := svc.RetrieveByName(context.Background(), "Globex")
	assert.Equal(t, domain.ResultNotFound, missing.Code)
}

func TestVendorRetrieveAll(t *testing.T) {
	svc, _ := newVendorFixture()
	names := []string{"Acme", "Globex", "Initech"}
	for _, name := range names {
		created := svc.Create(context.Background(), &dto.VendorRequest{Name: name})
		require.True(t, created.IsSuccess())
	}

	w := svc.RetrieveAll(context.Background(), 0, 10)
	require.True(t, w.IsSuccess())
	assert.Len(t, w.Items, len(names))
	require.NotNil(t, w.Pagination)
	assert.EqualValues(t, len(names), w.Pagination.TotalCount)
	assert.Equal(t, 0, w.Pagination.Page)
	assert.Equal(t, 10, w.Pagination.Size)
}

func TestVendorRetrieveAllExceededPage(t *testing.T) {
	svc, _ := newVendorFixture()
	created := svc.Create(context.Background(), &dto.VendorRequest{Name: "Acme"})
	require.True(t, created.IsSuccess())

	w := svc.RetrieveAll(context.Background(), 5, 10)
	assert.Equal(t, domain.ResultBadRequest, w.Code)
	assert.Equal(t, domain.ErrCodeExceededPageLimit, w.ErrorCode)
}

func TestVendorRetrieveAllEmptyStore(t *testing.T) {
	svc, _ := newVendorFixture()
	w := svc.RetrieveAll(context.Background(), 0, 10)
	assert.Equal(t, domain.ResultNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeNoVendorsFound, w.ErrorCode)
}

func TestVendorRetrieveAllInvalidPagination(t *testing.T) {
	svc, _ := newVendorFixture()
	for _, tc := range []struct{ page, size int }{{-1, 10}, {0, 0}, {0, -5}} {
		w := svc.RetrieveAll(context.Background(), tc.page, tc.size)
		assert.Equal(t, domain.ResultBadRequest, w.Code)
		assert.Equal(t, domain.ErrCodeInvalidParameters, w.ErrorCode)
	}
}

func TestVendorDeleteAll(t *testing.T) {
	svc, _ := newVendorFixture()

	empty := svc.DeleteAll(context.Background())
	assert.Equal(t, domain.ResultNotFound, empty.Code)
	assert.Equal(t, domain.ErrCodeNoVendorsFound, empty.ErrorCode)

	created := svc.Create(context.Background(), &dto.VendorRequest{Name: "Acme"})
	require.True(t, created.IsSuccess())

	cleared := svc.DeleteAll(context.Background())
	assert.True(t, cleared.IsSuccess())
}
