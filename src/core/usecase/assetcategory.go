package usecase

import (
	"context"
	"log/slog"

	"assetregistry/src/core/domain"
	"assetregistry/src/core/dto"
	"assetregistry/src/core/ports"
)

// AssetCategoryService handles the asset category CRUD pipeline, mirroring
// VendorService.
type AssetCategoryService struct {
	repo ports.AssetCategoryRepository
	log  *slog.Logger
}

func NewAssetCategoryService(repo ports.AssetCategoryRepository, log *slog.Logger) *AssetCategoryService {
	return &AssetCategoryService{repo: repo, log: log}
}

// Create validates the request and inserts a new category.
func (s *AssetCategoryService) Create(ctx context.Context, req *dto.AssetCategoryRequest) domain.Wrapper[dto.AssetCategoryResponse] {
	if req == nil {
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	if res := dto.PerformValidation(req); !res.IsSuccess() {
		return validationWrapper[dto.AssetCategoryResponse](res)
	}
	entity, err := dto.AssetCategoryRequestToEntity(req, "")
	if err != nil {
		s.log.Error("asset category conversion failed", "error", err)
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultError, domain.ErrCodeInternalServerError)
	}
	created, err := s.repo.Insert(ctx, entity)
	if err != nil {
		if domain.IsDuplicateName(err) {
			return codeWrapper[dto.AssetCategoryResponse](domain.ResultConflict, domain.ErrCodeAssetCategoryNameConflict)
		}
		s.log.Error("asset category insert failed", "error", err)
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultError, domain.ErrCodeAssetCategoryCreationError)
	}
	return dto.AssetCategoryEntityToResponse(*created)
}

// Update validates the request and replaces the category with the given id.
func (s *AssetCategoryService) Update(ctx context.Context, req *dto.AssetCategoryRequest, id string) domain.Wrapper[dto.AssetCategoryResponse] {
	if req == nil {
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	if _, ok := parseID(id); !ok {
		return idWrapper[dto.AssetCategoryResponse](id)
	}
	if res := dto.PerformValidation(req); !res.IsSuccess() {
		return validationWrapper[dto.AssetCategoryResponse](res)
	}
	entity, err := dto.AssetCategoryRequestToEntity(req, id)
	if err != nil {
		s.log.Error("asset category conversion failed", "error", err)
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultError, domain.ErrCodeInternalServerError)
	}
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		switch {
		case domain.IsNotFound(err):
			return codeWrapper[dto.AssetCategoryResponse](domain.ResultNotFound, domain.ErrCodeAssetCategoryNotFound)
		case domain.IsDuplicateName(err):
			return codeWrapper[dto.AssetCategoryResponse](domain.ResultConflict, domain.ErrCodeAssetCategoryNameConflict)
		default:
			s.log.Error("asset category update failed", "error", err)
			return codeWrapper[dto.AssetCategoryResponse](domain.ResultError, domain.ErrCodeAssetCategoryUpdateError)
		}
	}
	return dto.AssetCategoryEntityToResponse(*updated)
}

// RetrieveByID fetches a single category by its identifier.
func (s *AssetCategoryService) RetrieveByID(ctx context.Context, id string) domain.Wrapper[dto.AssetCategoryResponse] {
	parsed, ok := parseID(id)
	if !ok {
		return idWrapper[dto.AssetCategoryResponse](id)
	}
	category, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		if domain.IsNotFound(err) {
			return codeWrapper[dto.AssetCategoryResponse](domain.ResultNotFound, domain.ErrCodeAssetCategoryNotFound)
		}
		s.log.Error("asset category lookup failed", "error", err)
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultError, domain.ErrCodeAssetCategoryRetrievalError)
	}
	return dto.AssetCategoryEntityToResponse(*category)
}

// RetrieveByName fetches a single category by its unique name.
func (s *AssetCategoryService) RetrieveByName(ctx context.Context, name string) domain.Wrapper[dto.AssetCategoryResponse] {
	if name == "" {
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	category, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if domain.IsNotFound(err) {
			return codeWrapper[dto.AssetCategoryResponse](domain.ResultNotFound, domain.ErrCodeAssetCategoryNotFound)
		}
		s.log.Error("asset category lookup failed", "error", err)
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultError, domain.ErrCodeAssetCategoryRetrievalError)
	}
	return dto.AssetCategoryEntityToResponse(*category)
}

// RetrieveAll fetches one page of categories.
func (s *AssetCategoryService) RetrieveAll(ctx context.Context, page, size int) domain.CollectionWrapper[dto.AssetCategoryResponse] {
	if page < 0 || size <= 0 {
		return codeCollection[dto.AssetCategoryResponse](domain.ResultBadRequest, domain.ErrCodeInvalidParameters)
	}
	categories, total, err := s.repo.FindPage(ctx, page, size)
	if err != nil {
		s.log.Error("asset category page lookup failed", "error", err)
		return codeCollection[dto.AssetCategoryResponse](domain.ResultError, domain.ErrCodeAssetCategoryRetrievalError)
	}
	if total == 0 {
		return codeCollection[dto.AssetCategoryResponse](domain.ResultNotFound, domain.ErrCodeNoAssetCategoriesFound)
	}
	if int64(page)*int64(size) >= total {
		return codeCollection[dto.AssetCategoryResponse](domain.ResultBadRequest, domain.ErrCodeExceededPageLimit)
	}
	wrapper, err := dto.AssetCategoryEntitiesToWrapper(categories, &domain.PaginationInfo{
		Page:       page,
		Size:       size,
		TotalCount: total,
	})
	if err != nil {
		s.log.Error("asset category collection conversion failed", "error", err)
		return codeCollection[dto.AssetCategoryResponse](domain.ResultError, domain.ErrCodeInternalServerError)
	}
	return wrapper
}

// Delete removes a single category.
func (s *AssetCategoryService) Delete(ctx context.Context, id string) domain.Wrapper[dto.AssetCategoryResponse] {
	parsed, ok := parseID(id)
	if !ok {
		return idWrapper[dto.AssetCategoryResponse](id)
	}
	if err := s.repo.DeleteByID(ctx, parsed); err != nil {
		if domain.IsNotFound(err) {
			return codeWrapper[dto.AssetCategoryResponse](domain.ResultNotFound, domain.ErrCodeAssetCategoryNotFound)
		}
		s.log.Error("asset category delete failed", "error", err)
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultError, domain.ErrCodeAssetCategoryDeletionError)
	}
	return domain.NewWrapper[dto.AssetCategoryResponse](domain.ResultSuccess, "", nil)
}

// DeleteAll removes every category.
func (s *AssetCategoryService) DeleteAll(ctx context.Context) domain.Wrapper[dto.AssetCategoryResponse] {
	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.log.Error("asset category bulk delete failed", "error", err)
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultError, domain.ErrCodeAssetCategoryDeletionError)
	}
	if removed == 0 {
		return codeWrapper[dto.AssetCategoryResponse](domain.ResultNotFound, domain.ErrCodeNoAssetCategoriesFound)
	}
	return domain.NewWrapper[dto.AssetCategoryResponse](domain.ResultSuccess, "", nil)
}
