package usecase

import (
	"context"
	"log/slog"

	"assetregistry/src/core/domain"
	"assetregistry/src/core/dto"
	"assetregistry/src/core/ports"
)

// SystemService handles the IoT system CRUD pipeline. On top of the shared
// flow it carries the system-specific validation: the location balance
// constraint and parameter group checks.
type SystemService struct {
	repo ports.SystemRepository
	log  *slog.Logger
}

func NewSystemService(repo ports.SystemRepository, log *slog.Logger) *SystemService {
	return &SystemService{repo: repo, log: log}
}

// Create validates the request and inserts a new system.
func (s *SystemService) Create(ctx context.Context, req *dto.SystemRequest) domain.Wrapper[dto.SystemResponse] {
	if req == nil {
		return codeWrapper[dto.SystemResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	if res := dto.PerformValidation(req); !res.IsSuccess() {
		return validationWrapper[dto.SystemResponse](res)
	}
	entity, err := dto.SystemRequestToEntity(req, "")
	if err != nil {
		s.log.Error("system conversion failed", "error", err)
		return codeWrapper[dto.SystemResponse](domain.ResultError, domain.ErrCodeInternalServerError)
	}
	created, err := s.repo.Insert(ctx, entity)
	if err != nil {
		if domain.IsDuplicateName(err) {
			return codeWrapper[dto.SystemResponse](domain.ResultConflict, domain.ErrCodeSystemNameConflict)
		}
		s.log.Error("system insert failed", "error", err)
		return codeWrapper[dto.SystemResponse](domain.ResultError, domain.ErrCodeSystemCreationError)
	}
	return dto.SystemEntityToResponse(*created)
}

// Update validates the request and replaces the system with the given id.
func (s *SystemService) Update(ctx context.Context, req *dto.SystemRequest, id string) domain.Wrapper[dto.SystemResponse] {
	if req == nil {
		return codeWrapper[dto.SystemResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	if _, ok := parseID(id); !ok {
		return idWrapper[dto.SystemResponse](id)
	}
	if res := dto.PerformValidation(req); !res.IsSuccess() {
		return validationWrapper[dto.SystemResponse](res)
	}
	entity, err := dto.SystemRequestToEntity(req, id)
	if err != nil {
		s.log.Error("system conversion failed", "error", err)
		return codeWrapper[dto.SystemResponse](domain.ResultError, domain.ErrCodeInternalServerError)
	}
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		switch {
		case domain.IsNotFound(err):
			return codeWrapper[dto.SystemResponse](domain.ResultNotFound, domain.ErrCodeSystemNotFound)
		case domain.IsDuplicateName(err):
			return codeWrapper[dto.SystemResponse](domain.ResultConflict, domain.ErrCodeSystemNameConflict)
		default:
			s.log.Error("system update failed", "error", err)
			return codeWrapper[dto.SystemResponse](domain.ResultError, domain.ErrCodeSystemUpdateError)
		}
	}
	return dto.SystemEntityToResponse(*updated)
}

// RetrieveByID fetches a single system by its identifier.
func (s *SystemService) RetrieveByID(ctx context.Context, id string) domain.Wrapper[dto.SystemResponse] {
	parsed, ok := parseID(id)
	if !ok {
		return idWrapper[dto.SystemResponse](id)
	}
	system, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		if domain.IsNotFound(err) {
			return codeWrapper[dto.SystemResponse](domain.ResultNotFound, domain.ErrCodeSystemNotFound)
		}
		s.log.Error("system lookup failed", "error", err)
		return codeWrapper[dto.SystemResponse](domain.ResultError, domain.ErrCodeSystemRetrievalError)
	}
	return dto.SystemEntityToResponse(*system)
}

// RetrieveByName fetches a single system by its unique name.
func (s *SystemService) RetrieveByName(ctx context.Context, name string) domain.Wrapper[dto.SystemResponse] {
	if name == "" {
		return codeWrapper[dto.SystemResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	system, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if domain.IsNotFound(err) {
			return codeWrapper[dto.SystemResponse](domain.ResultNotFound, domain.ErrCodeSystemNotFound)
		}
		s.log.Error("system lookup failed", "error", err)
		return codeWrapper[dto.SystemResponse](domain.ResultError, domain.ErrCodeSystemRetrievalError)
	}
	return dto.SystemEntityToResponse(*system)
}

// RetrieveAll fetches one page of systems.
func (s *SystemService) RetrieveAll(ctx context.Context, page, size int) domain.CollectionWrapper[dto.SystemResponse] {
	if page < 0 || size <= 0 {
		return codeCollection[dto.SystemResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	systems, total, err := s.repo.FindPage(ctx, page, size)
	if err != nil {
		s.log.Error("system page lookup failed", "error", err)
		return codeCollection[dto.SystemResponse](domain.ResultError, domain.ErrCodeSystemRetrievalError)
	}
	if total == 0 {
		return codeCollection[dto.SystemResponse](domain.ResultNotFound, domain.ErrCodeNoSystemsFound)
	}
	if int64(page)*int64(size) >= total {
		return codeCollection[dto.SystemResponse](domain.ResultBadRequest, domain.ErrCodeExceededPageLimit)
	}
	wrapper, err := dto.SystemEntitiesToWrapper(systems, &domain.PaginationInfo{
		Page:       page,
		Size:       size,
		TotalCount: total,
	})
	if err != nil {
		s.log.Error("system collection conversion failed", "error", err)
		return codeCollection[dto.SystemResponse](domain.ResultError, domain.ErrCodeInternalServerError)
	}
	return wrapper
}

// Delete removes a single system.
func (s *SystemService) Delete(ctx context.Context, id string) domain.Wrapper[dto.SystemResponse] {
	parsed, ok := parseID(id)
	if !ok {
		return idWrapper[dto.SystemResponse](id)
	}
	if err := s.repo.DeleteByID(ctx, parsed); err != nil {
		if domain.IsNotFound(err) {
			return codeWrapper[dto.SystemResponse](domain.ResultNotFound, domain.ErrCodeSystemNotFound)
		}
		s.log.Error("system delete failed", "error", err)
		return codeWrapper[dto.SystemResponse](domain.ResultError, domain.ErrCodeSystemDeletionError)
	}
	return domain.NewWrapper[dto.SystemResponse](domain.ResultSuccess, "", nil)
}

// DeleteAll removes every system.
func (s *SystemService) DeleteAll(ctx context.Context) domain.Wrapper[dto.SystemResponse] {
	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.log.Error("system bulk delete failed", "error", err)
		return codeWrapper[dto.SystemResponse](domain.ResultError, domain.ErrCodeSystemDeletionError)
	}
	if removed == 0 {
		return codeWrapper[dto.SystemResponse](domain.ResultNotFound, domain.ErrCodeNoSystemsFound)
	}
	return domain.NewWrapper[dto.SystemResponse](domain.ResultSuccess, "", nil)
}
