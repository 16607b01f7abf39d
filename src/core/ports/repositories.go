// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"github.com/google/uuid"

	"assetregistry/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// VendorRepository persists vendors. Implementations translate store-level
// failures into the domain sentinel errors: a missing record becomes
// domain.ErrNotFound, a name-uniqueness violation domain.ErrDuplicateName.
type VendorRepository interface {
	Repository

	Insert(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
	Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	FindByName(ctx context.Context, name string) (*domain.Vendor, error)
	// FindPage returns the requested page ordered by creation time, along
	// with the total record count.
	FindPage(ctx context.Context, page, size int) ([]domain.Vendor, int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	// DeleteAll removes every vendor and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// AssetCategoryRepository persists asset categories under the same error
// translation rules as VendorRepository.
type AssetCategoryRepository interface {
	Repository

	Insert(ctx context.Context, c domain.AssetCategory) (*domain.AssetCategory, error)
	Update(ctx context.Context, c domain.AssetCategory) (*domain.AssetCategory, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.AssetCategory, error)
	FindByName(ctx context.Context, name string) (*domain.AssetCategory, error)
	FindPage(ctx context.Context, page, size int) ([]domain.AssetCategory, int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}

// SystemRepository persists IoT systems under the same error translation
// rules as VendorRepository.
type SystemRepository interface {
	Repository

	Insert(ctx context.Context, s domain.System) (*domain.System, error)
	Update(ctx context.Context, s domain.System) (*domain.System, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.System, error)
	FindByName(ctx context.Context, name string) (*domain.System, error)
	FindPage(ctx context.Context, page, size int) ([]domain.System, int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}
