package usecase

import (
	"context"
	"log/slog"

	"assetregistry/src/core/ports"
)

// HealthService reports the health of the application and its store.
type HealthService struct {
	store ports.Repository
	log   *slog.Logger
}

// NewHealthService creates a new HealthService. The store may be nil in
// tests, in which case only the application itself is reported.
func NewHealthService(store ports.Repository, log *slog.Logger) *HealthService {
	return &HealthService{store: store, log: log}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all application components.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	if s.store != nil {
		if err := s.store.Health(ctx); err != nil {
			s.log.Warn("store health check failed", "error", err)
			status.Status = "degraded"
			status.Components["database"] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
		} else {
			status.Components["database"] = ComponentHealth{Status: "healthy"}
		}
	}

	return status
}
