package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vendor represents a supplier of assets.
type Vendor struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Equal reports whether two vendors refer to the same record.
// Identity is the (id, name) pair.
func (v Vendor) Equal(other Vendor) bool {
	return v.ID == other.ID && v.Name == other.Name
}

// AssetCategory classifies assets. Same shape and invariants as Vendor.
type AssetCategory struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Equal reports whether two categories refer to the same record.
func (c AssetCategory) Equal(other AssetCategory) bool {
	return c.ID == other.ID && c.Name == other.Name
}

// System represents a registered IoT system.
type System struct {
	ID                    uuid.UUID
	Name                  string
	Description           string
	Location              *Location
	Organization          string
	Attributes            []KvAttribute
	AdditionalInformation []Value
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Equal reports whether two systems refer to the same record.
func (s System) Equal(other System) bool {
	return s.ID == other.ID && s.Name == other.Name
}

// GeoLocation is a geographic coordinate pair.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero reports whether no coordinates are set.
func (g GeoLocation) IsZero() bool {
	return g.Latitude == 0 && g.Longitude == 0
}

// Location is an embedded value on System. At most one of the geographic
// pair and the virtual-location string may be set; neither is also valid.
type Location struct {
	GeoLocation     GeoLocation `json:"geo_location"`
	VirtualLocation string      `json:"virtual_location"`
}

// Balanced reports whether the location honors the one-of constraint.
// Both parts empty is balanced; both parts set is not.
func (l Location) Balanced() bool {
	return l.GeoLocation.IsZero() || l.VirtualLocation == ""
}

// KvAttribute is a named group of parameter values. Parameter names must be
// unique within the group.
type KvAttribute struct {
	Name       string           `json:"name"`
	Parameters []ParameterValue `json:"parameters"`
}

// ParameterValue is a single named value inside a KvAttribute group.
type ParameterValue struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}
