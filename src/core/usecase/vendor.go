package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"assetregistry/src/core/domain"
	"assetregistry/src/core/dto"
	"assetregistry/src/core/ports"
)

// VendorService handles the vendor CRUD pipeline: argument checks, two-phase
// validation, DTO/entity conversion and repository access. Validation
// failures never reach the store.
type VendorService struct {
	repo ports.VendorRepository
	log  *slog.Logger
}

func NewVendorService(repo ports.VendorRepository, log *slog.Logger) *VendorService {
	return &VendorService{repo: repo, log: log}
}

// Create validates the request and inserts a new vendor. A name collision
// surfaces as CONFLICT.
func (s *VendorService) Create(ctx context.Context, req *dto.VendorRequest) domain.Wrapper[dto.VendorResponse] {
	if req == nil {
		return codeWrapper[dto.VendorResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	if res := dto.PerformValidation(req); !res.IsSuccess() {
		return validationWrapper[dto.VendorResponse](res)
	}
	entity, err := dto.VendorRequestToEntity(req, "")
	if err != nil {
		s.log.Error("vendor conversion failed", "error", err)
		return codeWrapper[dto.VendorResponse](domain.ResultError, domain.ErrCodeInternalServerError)
	}
	created, err := s.repo.Insert(ctx, entity)
	if err != nil {
		if domain.IsDuplicateName(err) {
			return codeWrapper[dto.VendorResponse](domain.ResultConflict, domain.ErrCodeVendorNameConflict)
		}
		s.log.Error("vendor insert failed", "error", err)
		return codeWrapper[dto.VendorResponse](domain.ResultError, domain.ErrCodeVendorCreationError)
	}
	return dto.VendorEntityToResponse(*created)
}

// Update validates the request and replaces the vendor with the given id,
// preserving its creation timestamp. A nonexistent id surfaces as NOT_FOUND
// and never creates a record.
func (s *VendorService) Update(ctx context.Context, req *dto.VendorRequest, id string) domain.Wrapper[dto.VendorResponse] {
	if req == nil {
		return codeWrapper[dto.VendorResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	if _, ok := parseID(id); !ok {
		return idWrapper[dto.VendorResponse](id)
	}
	if res := dto.PerformValidation(req); !res.IsSuccess() {
		return validationWrapper[dto.VendorResponse](res)
	}
	entity, err := dto.VendorRequestToEntity(req, id)
	if err != nil {
		s.log.Error("vendor conversion failed", "error", err)
		return codeWrapper[dto.VendorResponse](domain.ResultError, domain.ErrCodeInternalServerError)
	}
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		switch {
		case domain.IsNotFound(err):
			return codeWrapper[dto.VendorResponse](domain.ResultNotFound, domain.ErrCodeVendorNotFound)
		case domain.IsDuplicateName(err):
			return codeWrapper[dto.VendorResponse](domain.ResultConflict, domain.ErrCodeVendorNameConflict)
		default:
			s.log.Error("vendor update failed", "error", err)
			return codeWrapper[dto.VendorResponse](domain.ResultError, domain.ErrCodeVendorUpdateError)
		}
	}
	return dto.VendorEntityToResponse(*updated)
}

// RetrieveByID fetches a single vendor by its identifier.
func (s *VendorService) RetrieveByID(ctx context.Context, id string) domain.Wrapper[dto.VendorResponse] {
	parsed, ok := parseID(id)
	if !ok {
		return idWrapper[dto.VendorResponse](id)
	}
	vendor, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		if domain.IsNotFound(err) {
			return codeWrapper[dto.VendorResponse](domain.ResultNotFound, domain.ErrCodeVendorNotFound)
		}
		s.log.Error("vendor lookup failed", "error", err)
		return codeWrapper[dto.VendorResponse](domain.ResultError, domain.ErrCodeVendorRetrievalError)
	}
	return dto.VendorEntityToResponse(*vendor)
}

// RetrieveByName fetches a single vendor by its unique name.
func (s *VendorService) RetrieveByName(ctx context.Context, name string) domain.Wrapper[dto.VendorResponse] {
	if name == "" {
		return codeWrapper[dto.VendorResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	vendor, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if domain.IsNotFound(err) {
			return codeWrapper[dto.VendorResponse](domain.ResultNotFound, domain.ErrCodeVendorNotFound)
		}
		s.log.Error("vendor lookup failed", "error", err)
		return codeWrapper[dto.VendorResponse](domain.ResultError, domain.ErrCodeVendorRetrievalError)
	}
	return dto.VendorEntityToResponse(*vendor)
}

// RetrieveAll fetches one page of vendors. An empty store surfaces as
// NOT_FOUND, a page beyond the available range as EXCEEDED_PAGE_LIMIT.
func (s *VendorService) RetrieveAll(ctx context.Context, page, size int) domain.CollectionWrapper[dto.VendorResponse] {
	if page < 0 || size <= 0 {
		return codeCollection[dto.VendorResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	vendors, total, err := s.repo.FindPage(ctx, page, size)
	if err != nil {
		s.log.Error("vendor page lookup failed", "error", err)
		return codeCollection[dto.VendorResponse](domain.ResultError, domain.ErrCodeVendorRetrievalError)
	}
	if total == 0 {
		return codeCollection[dto.VendorResponse](domain.ResultNotFound, domain.ErrCodeNoVendorsFound)
	}
	if int64(page)*int64(size) >= total {
		return codeCollection[dto.VendorResponse](domain.ResultBadRequest, domain.ErrCodeExceededPageLimit)
	}
	wrapper, err := dto.VendorEntitiesToWrapper(vendors, &domain.PaginationInfo{
		Page:       page,
		Size:       size,
		TotalCount: total,
	})
	if err != nil {
		s.log.Error("vendor collection conversion failed", "error", err)
		return codeCollection[dto.VendorResponse](domain.ResultError, domain.ErrCodeInternalServerError)
	}
	return wrapper
}

// Delete removes a single vendor. Deleting an absent record surfaces as
// NOT_FOUND.
func (s *VendorService) Delete(ctx context.Context, id string) domain.Wrapper[dto.VendorResponse] {
	parsed, ok := parseID(id)
	if !ok {
		return idWrapper[dto.VendorResponse](id)
	}
	if err := s.repo.DeleteByID(ctx, parsed); err != nil {
		if domain.IsNotFound(err) {
			return codeWrapper[dto.VendorResponse](domain.ResultNotFound, domain.ErrCodeVendorNotFound)
		}
		s.log.Error("vendor delete failed", "error", err)
		return codeWrapper[dto.VendorResponse](domain.ResultError, domain.ErrCodeVendorDeletionError)
	}
	return domain.NewWrapper[dto.VendorResponse](domain.ResultSuccess, "", nil)
}

// DeleteAll removes every vendor. An already-empty store surfaces as
// NOT_FOUND.
func (s *VendorService) DeleteAll(ctx context.Context) domain.Wrapper[dto.VendorResponse] {
	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.log.Error("vendor bulk delete failed", "error", err)
		return codeWrapper[dto.VendorResponse](domain.ResultError, domain.ErrCodeVendorDeletionError)
	}
	if removed == 0 {
		return codeWrapper[dto.VendorResponse](domain.ResultNotFound, domain.ErrCodeNoVendorsFound)
	}
	return domain.NewWrapper[dto.VendorResponse](domain.ResultSuccess, "", nil)
}

// parseID validates the opaque identifier format shared by all entities.
func parseID(id string) (uuid.UUID, bool) {
	if id == "" {
		return uuid.Nil, false
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}
	return parsed, true
}

// idWrapper distinguishes a blank identifier from a malformed one.
func idWrapper[T any](id string) domain.Wrapper[T] {
	if id == "" {
		return codeWrapper[T](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	return codeWrapper[T](domain.ResultBadRequest, domain.ErrCodeInvalidParameterFormat)
}
