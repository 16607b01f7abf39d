package dto

import (
	"time"

	"github.com/google/uuid"

	"assetregistry/src/core/domain"
)

// VendorRequest is the payload for creating or updating a vendor.
type VendorRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// VendorResponse is the persisted vendor as returned to clients.
type VendorResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidateAttributes checks the vendor's mandatory fields.
func (r *VendorRequest) ValidateAttributes() domain.ValidationResult {
	if fields := missingFields(r); len(fields) > 0 {
		return mandatoryFieldsResult(fields)
	}
	return domain.ValidResult()
}

// ValidateRelationships is a no-op; vendors reference no other entities.
func (r *VendorRequest) ValidateRelationships() domain.ValidationResult {
	return domain.ValidResult()
}

// VendorRequestToEntity builds a persisted vendor from a validated request.
// A blank existingID means creation: a fresh id is generated and the creation
// timestamp set. Otherwise the given id is reused and the stored creation
// timestamp is preserved by the repository.
func VendorRequestToEntity(r *VendorRequest, existingID string) (domain.Vendor, error) {
	if r == nil {
		return domain.Vendor{}, domain.NewInvalidArgumentError("request", "nil vendor request")
	}
	entity := domain.Vendor{
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
		return domain.Vendor{}, domain.NewInvalidArgumentError("id", "not a valid uuid")
	}
	entity.ID = id
	return entity, nil
}

// VendorEntityToResponse maps a persisted vendor into a SUCCESS wrapper.
func VendorEntityToResponse(v domain.Vendor) domain.Wrapper[VendorResponse] {
	resp := vendorResponse(v)
	return domain.NewSuccessWrapper(&resp)
}

// VendorEntitiesToWrapper maps a non-empty page of vendors into a collection
// wrapper. An empty list or missing pagination is a programmer error; zero
// results are signaled at the service layer.
func VendorEntitiesToWrapper(vendors []domain.Vendor, pagination *domain.PaginationInfo) (domain.CollectionWrapper[VendorResponse], error) {
	items := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		items = append(items, vendorResponse(v))
	}
	return domain.NewCollectionWrapper(items, pagination)
}

func vendorResponse(v domain.Vendor) VendorResponse {
	return VendorResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
