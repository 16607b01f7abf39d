package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetregistry/src/core/domain"
	"assetregistry/src/core/dto"
	"assetregistry/src/core/usecase"
)

type memVendorRepo struct {
	byID  map[uuid.UUID]domain.Vendor
	order []uuid.UUID
}

func newMemVendorRepo() *memVendorRepo {
	return &memVendorRepo{byID: make(map[uuid.UUID]domain.Vendor)}
}

func (m *memVendorRepo) Health(ctx context.Context) error { return nil }

func (m *memVendorRepo) Insert(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	for _, existing := range m.byID {
		if existing.Name == v.Name {
			return nil, domain.NewDuplicateNameError("vendor name already taken")
		}
	}
	v.UpdatedAt = v.CreatedAt
	m.byID[v.ID] = v
	m.order = append(m.order, v.ID)
	return &v, nil
}

func (m *memVendorRepo) Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	existing, ok := m.byID[v.ID]
	if !ok {
		return nil, domain.NewNotFoundError("vendor")
	}
	v.CreatedAt = existing.CreatedAt
	m.byID[v.ID] = v
	return &v, nil
}

func (m *memVendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	v, ok := m.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("vendor")
	}
	return &v, nil
}

func (m *memVendorRepo) FindByName(ctx context.Context, name string) (*domain.Vendor, error) {
	for _, v := range m.byID {
		if v.Name == name {
			return &v, nil
		}
	}
	return nil, domain.NewNotFoundError("vendor")
}

func (m *memVendorRepo) FindPage(ctx context.Context, page, size int) ([]domain.Vendor, int64, error) {
	total := int64(len(m.order))
	start := page * size
	if start >= len(m.order) {
		return nil, total, nil
	}
	end := start + size
	if end > len(m.order) {
		end = len(m.order)
	}
	var out []domain.Vendor
	for _, id := range m.order[start:end] {
		out = append(out, m.byID[id])
	}
	return out, total, nil
}

func (m *memVendorRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return domain.NewNotFoundError("vendor")
	}
	delete(m.byID, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memVendorRepo) DeleteAll(ctx context.Context) (int64, error) {
	removed := int64(len(m.byID))
	m.byID = make(map[uuid.UUID]domain.Vendor)
	m.order = nil
	return removed, nil
}

func newVendorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewVendorHandler(usecase.NewVendorService(newMemVendorRepo(), log))

	r := gin.New()
	g := r.Group("/v1/vendors")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.GET("/name/:name", h.GetByName)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.DELETE("", h.DeleteAll)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeVendorWrapper(t *testing.T, rec *httptest.ResponseRecorder) domain.Wrapper[dto.VendorResponse] {
	t.Helper()
	var w domain.Wrapper[dto.VendorResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &w))
	return w
}

func TestVendorEndpointCreate(t *testing.T) {
	r := newVendorRouter()
	rec := doJSON(t, r, http.MethodPost, "/v1/vendors", dto.VendorRequest{Name: "Acme", Description: "machines"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	w := decodeVendorWrapper(t, rec)
	assert.Equal(t, domain.ResultSuccess, w.Code)
	assert.Equal(t, domain.SuccessMessage, w.Message)
	require.NotNil(t, w.Payload)
	assert.Equal(t, "Acme", w.Payload.Name)
	assert.NotEmpty(t, w.Payload.ID)
}

func TestVendorEndpointCreateValidationFailure(t *testing.T) {
	r := newVendorRouter()
	rec := doJSON(t, r, http.MethodPost, "/v1/vendors", dto.VendorRequest{Description: "machines"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	w := decodeVendorWrapper(t, rec)
	assert.Equal(t, domain.ResultBadRequest, w.Code)
	assert.Equal(t, domain.ErrCodeMandatoryFieldsMissing, w.ErrorCode)
	assert.Nil(t, w.Payload)
}

func TestVendorEndpointCreateMalformedBody(t *testing.T) {
	r := newVendorRouter()
	req := httptest.NewRequest(http.MethodPost, "/v1/vendors", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	w := decodeVendorWrapper(t, rec)
	assert.Equal(t, domain.ErrCodeInvalidParameters, w.ErrorCode)
}

func TestVendorEndpointDuplicateNameConflicts(t *testing.T) {
	r := newVendorRouter()
	first := doJSON(t, r, http.MethodPost, "/v1/vendors", dto.VendorRequest{Name: "Acme"})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, r, http.MethodPost, "/v1/vendors", dto.VendorRequest{Name: "Acme"})
	assert.Equal(t, http.StatusConflict, second.Code)

	w := decodeVendorWrapper(t, second)
	assert.Equal(t, domain.ErrCodeVendorNameConflict, w.ErrorCode)
}

func TestVendorEndpointGetByID(t *testing.T) {
	r := newVendorRouter()
	created := decodeVendorWrapper(t, doJSON(t, r, http.MethodPost, "/v1/vendors", dto.VendorRequest{Name: "Acme"}))
	require.NotNil(t, created.Payload)

	rec := doJSON(t, r, http.MethodGet, "/v1/vendors/"+created.Payload.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	missing := doJSON(t, r, http.MethodGet, "/v1/vendors/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	malformed := doJSON(t, r, http.MethodGet, "/v1/vendors/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, malformed.Code)
	w := decodeVendorWrapper(t, malformed)
	assert.Equal(t, domain.ErrCodeInvalidParameterFormat, w.ErrorCode)
}

func TestVendorEndpointGetByName(t *testing.T) {
	r := newVendorRouter()
	created := decodeVendorWrapper(t, doJSON(t, r, http.MethodPost, "/v1/vendors", dto.VendorRequest{Name: "Acme"}))
	require.NotNil(t, created.Payload)

	rec := doJSON(t, r, http.MethodGet, "/v1/vendors/name/Acme", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	w := decodeVendorWrapper(t, rec)
	require.NotNil(t, w.Payload)
	assert.Equal(t, created.Payload.ID, w.Payload.ID)
}

func TestVendorEndpointList(t *testing.T) {
	r := newVendorRouter()

	empty := doJSON(t, r, http.MethodGet, "/v1/vendors", nil)
	assert.Equal(t, http.StatusNotFound, empty.Code)

	for _, name := range []string{"Acme", "Globex"} {
		rec := doJSON(t, r, http.MethodPost, "/v1/vendors", dto.VendorRequest{Name: name})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, r, http.MethodGet, "/v1/vendors?page=0&size=10", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var w domain.CollectionWrapper[dto.VendorResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &w))
	assert.Len(t, w.Items, 2)
	require.NotNil(t, w.Pagination)
	assert.EqualValues(t, 2, w.Pagination.TotalCount)

	beyond := doJSON(t, r, http.MethodGet, "/v1/vendors?page=9&size=10", nil)
	assert.Equal(t, http.StatusBadRequest, beyond.Code)

	nonNumeric := doJSON(t, r, http.MethodGet, "/v1/vendors?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, nonNumeric.Code)
}

func TestVendorEndpointDelete(t *testing.T) {
	r := newVendorRouter()
	created := decodeVendorWrapper(t, doJSON(t, r, http.MethodPost, "/v1/vendors", dto.VendorRequest{Name: "Acme"}))
	require.NotNil(t, created.Payload)

	rec := doJSON(t, r, http.MethodDelete, "/v1/vendors/"+created.Payload.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes(), "a 204 response carries no body")

	again := doJSON(t, r, http.MethodDelete, "/v1/vendors/"+created.Payload.ID, nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestVendorEndpointDeleteAll(t *testing.T) {
	r := newVendorRouter()

	empty := doJSON(t, r, http.MethodDelete, "/v1/vendors", nil)
	assert.Equal(t, http.StatusNotFound, empty.Code)

	rec := doJSON(t, r, http.MethodPost, "/v1/vendors", dto.VendorRequest{Name: "Acme"})
	require.Equal(t, http.StatusCreated, rec.Code)

	cleared := doJSON(t, r, http.MethodDelete, "/v1/vendors", nil)
	assert.Equal(t, http.StatusNoContent, cleared.Code)
}
