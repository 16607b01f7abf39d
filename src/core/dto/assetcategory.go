package dto

import (
	"time"

	"github.com/google/uuid"

	"assetregistry/src/core/domain"
)

// AssetCategoryRequest is the payload for creating or updating a category.
type AssetCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// AssetCategoryResponse is the persisted category as returned to clients.
type AssetCategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidateAttributes checks the category's mandatory fields.
func (r *AssetCategoryRequest) ValidateAttributes() domain.ValidationResult {
	if fields := missingFields(r); len(fields) > 0 {
		return mandatoryFieldsResult(fields)
	}
	return domain.ValidResult()
}

// ValidateRelationships is a no-op; categories reference no other entities.
func (r *AssetCategoryRequest) ValidateRelationships() domain.ValidationResult {
	return domain.ValidResult()
}

// AssetCategoryRequestToEntity builds a persisted category from a validated
// request, following the same creation/update rules as the vendor converter.
func AssetCategoryRequestToEntity(r *AssetCategoryRequest, existingID string) (domain.AssetCategory, error) {
	if r == nil {
		return domain.AssetCategory{}, domain.NewInvalidArgumentError("request", "nil asset category request")
	}
	entity := domain.AssetCategory{
		Name:        r.Name,
		Description: r.Description,
	}
	if existingID == "" {
		entity.ID = uuid.New()
		entity.CreatedAt = time.Now().UTC()
		return entity, nil
	}
	id, err := uuid.Parse(existingID)
	if err != nil {
		return domain.AssetCategory{}, domain.NewInvalidArgumentError("id", "not a valid uuid")
	}
	entity.ID = id
	return entity, nil
}

// AssetCategoryEntityToResponse maps a persisted category into a SUCCESS wrapper.
func AssetCategoryEntityToResponse(c domain.AssetCategory) domain.Wrapper[AssetCategoryResponse] {
	resp := assetCategoryResponse(c)
	return domain.NewSuccessWrapper(&resp)
}

// AssetCategoryEntitiesToWrapper maps a non-empty page of categories into a
// collection wrapper.
func AssetCategoryEntitiesToWrapper(categories []domain.AssetCategory, pagination *domain.PaginationInfo) (domain.CollectionWrapper[AssetCategoryResponse], error) {
	items := make([]AssetCategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, assetCategoryResponse(c))
	}
	return domain.NewCollectionWrapper(items, pagination)
}

func assetCategoryResponse(c domain.AssetCategory) AssetCategoryResponse {
	return AssetCategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
