package dto

import (
	"time"

	"github.com/google/uuid"

	"assetregistry/src/core/domain"
)

// SystemRequest is the payload for creating or updating an IoT system.
type SystemRequest struct {
	Name                  string         `json:"name" validate:"required"`
	Description           string         `json:"description" validate:"required"`
	Location              *LocationDTO   `json:"location"`
	Organization          string         `json:"organization"`
	Attributes            []KvAttribute  `json:"attributes"`
	AdditionalInformation []domain.Value `json:"additional_information"`
}

// SystemResponse is the persisted system as returned to clients.
type SystemResponse struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Description           string         `json:"description"`
	Location              *LocationDTO   `json:"location,omitempty"`
	Organization          string         `json:"organization,omitempty"`
	Attributes            []KvAttribute  `json:"attributes,omitempty"`
	AdditionalInformation []domain.Value `json:"additional_information,omitempty"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// LocationDTO carries either a coordinate pair or a virtual location.
type LocationDTO struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	VirtualLocation string  `json:"virtual_location"`
}

// KvAttribute is a named group of parameter values.
type KvAttribute struct {
	Name       string           `json:"name"`
	Parameters []ParameterValue `json:"parameters"`
}

// ParameterValue is a single named value inside a KvAttribute group.
type ParameterValue struct {
	Name  string       `json:"name"`
	Value domain.Value `json:"value"`
}

// ValidateAttributes checks the system's mandatory fields, the location
// balance constraint and the parameter groups.
func (r *SystemRequest) ValidateAttributes() domain.ValidationResult {
	if fields := missingFields(r); len(fields) > 0 {
		return mandatoryFieldsResult(fields)
	}
	if r.Location != nil {
		loc := locationToDomain(*r.Location)
		if !loc.Balanced() {
			return domain.InvalidResult(domain.ErrCodeInvalidLocation.Message(), domain.ErrCodeInvalidLocation)
		}
	}
	for _, group := range r.Attributes {
		if res := group.validate(); !res.IsSuccess() {
			return res
		}
	}
	return domain.ValidResult()
}

// ValidateRelationships is a no-op; systems reference no other entities.
func (r *SystemRequest) ValidateRelationships() domain.ValidationResult {
	return domain.ValidResult()
}

// validate checks the group's own mandatory fields, each parameter's
// mandatory fields, and that no two parameters share a name.
func (g KvAttribute) validate() domain.ValidationResult {
	var missing []string
	if g.Name == "" {
		missing = append(missing, "attributes.name")
	}
	for _, p := range g.Parameters {
		if p.Name == "" {
			missing = append(missing, "attributes.parameters.name")
		}
	}
	if len(missing) > 0 {
		return mandatoryFieldsResult(missing)
	}
	seen := make(map[string]struct{}, len(g.Parameters))
	for _, p := range g.Parameters {
		if _, dup := seen[p.Name]; dup {
			return domain.InvalidResult(domain.ErrCodeDuplicateParameterValue.Message(), domain.ErrCodeDuplicateParameterValue)
		}
		seen[p.Name] = struct{}{}
	}
	return domain.ValidResult()
}

// SystemRequestToEntity builds a persisted system from a validated request,
// following the same creation/update rules as the vendor converter.
func SystemRequestToEntity(r *SystemRequest, existingID string) (domain.System, error) {
	if r == nil {
		return domain.System{}, domain.NewInvalidArgumentError("request", "nil system request")
	}
	entity := domain.System{
		Name:                  r.Name,
		Description:           r.Description,
		Organization:          r.Organization,
		Attributes:            attributesToDomain(r.Attributes),
		AdditionalInformation: r.AdditionalInformation,
	}
	if r.Location != nil {
		loc := locationToDomain(*r.Location)
		entity.Location = &loc
	}
	if existingID == "" {
		entity.ID = uuid.New()
		entity.CreatedAt = time.Now().UTC()
		return entity, nil
	}
	id, err := uuid.Parse(existingID)
	if err != nil {
		return domain.System{}, domain.NewInvalidArgumentError("id", "not a valid uuid")
	}
	entity.ID = id
	return entity, nil
}

// SystemEntityToResponse maps a persisted system into a SUCCESS wrapper.
func SystemEntityToResponse(s domain.System) domain.Wrapper[SystemResponse] {
	resp := systemResponse(s)
	return domain.NewSuccessWrapper(&resp)
}

// SystemEntitiesToWrapper maps a non-empty page of systems into a collection
// wrapper.
func SystemEntitiesToWrapper(systems []domain.System, pagination *domain.PaginationInfo) (domain.CollectionWrapper[SystemResponse], error) {
	items := make([]SystemResponse, 0, len(systems))
	for _, s := range systems {
		items = append(items, systemResponse(s))
	}
	return domain.NewCollectionWrapper(items, pagination)
}

func systemResponse(s domain.System) SystemResponse {
	resp := SystemResponse{
		ID:                    s.ID.String(),
		Name:                  s.Name,
		Description:           s.Description,
		Organization:          s.Organization,
		Attributes:            attributesFromDomain(s.Attributes),
		AdditionalInformation: s.AdditionalInformation,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
	if s.Location != nil {
		resp.Location = &LocationDTO{
			Latitude:        s.Location.GeoLocation.Latitude,
			Longitude:       s.Location.GeoLocation.Longitude,
			VirtualLocation: s.Location.VirtualLocation,
		}
	}
	return resp
}

func locationToDomain(l LocationDTO) domain.Location {
	return domain.Location{
		GeoLocation: domain.GeoLocation{
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		},
		VirtualLocation: l.VirtualLocation,
	}
}

func attributesToDomain(groups []KvAttribute) []domain.KvAttribute {
	if len(groups) == 0 {
		return nil
	}
	out := make([]domain.KvAttribute, 0, len(groups))
	for _, g := range groups {
		params := make([]domain.ParameterValue, 0, len(g.Parameters))
		for _, p := range g.Parameters {
			params = append(params, domain.ParameterValue{Name: p.Name, Value: p.Value})
		}
		out = append(out, domain.KvAttribute{Name: g.Name, Parameters: params})
	}
	return out
}

func attributesFromDomain(groups []domain.KvAttribute) []KvAttribute {
	if len(groups) == 0 {
		return nil
	}
	out := make([]KvAttribute, 0, len(groups))
	for _, g := range groups {
		params := make([]ParameterValue, 0, len(g.Parameters))
		for _, p := range g.Parameters {
			params = append(params, ParameterValue{Name: p.Name, Value: p.Value})
		}
		out = append(out, KvAttribute{Name: g.Name, Parameters: params})
	}
	return out
}
