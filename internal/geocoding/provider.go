package geocoding

import (
	"context"
	"errors"
	"net/http"

	"github.com/jbnu-feel/feelgeo/internal/models"
)

// Provider is an interface that defines a method for geocoding an address.
// The Geocode method takes a context and an address string as input,
// and returns the corresponding coordinates and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

// Sentinel errors shared by all providers. Callers use them to tell
// "no matches" and "feature disabled" apart from hard failures.
var (
	// ErrNoResults is returned when the provider answered but found no
	// match for the address.
	ErrNoResults = errors.New("geocoder returned no results")
	// ErrUnavailable is returned when no provider credential is
	// configured and the mapping feature is disabled.
	ErrUnavailable = errors.New("geocoding provider is not configured")
)

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
