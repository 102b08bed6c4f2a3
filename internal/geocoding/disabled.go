package geocoding

import (
	"context"
	"log/slog"

	"github.com/jbnu-feel/feelgeo/internal/models"
)

// DisabledProvider is used when no provider credential is configured.
// Every lookup fails with ErrUnavailable, so the mapping feature is off
// without the application itself failing.
type DisabledProvider struct {
	log *slog.Logger
}

// NewDisabledProvider creates a provider that rejects every lookup.
func NewDisabledProvider(log *slog.Logger) *DisabledProvider {
	return &DisabledProvider{log: log}
}

// Geocode always returns ErrUnavailable.
func (dp *DisabledProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	dp.log.DebugContext(ctx, "Geocoding skipped, no provider configured", "address", address)
	return nil, ErrUnavailable
}
