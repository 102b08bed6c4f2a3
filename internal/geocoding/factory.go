package geocoding

import (
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeNaver represents the Naver Cloud geocoding provider.
	ProviderTypeNaver ProviderType = "naver"
	// ProviderTypeGoogle represents the Google Maps geocoding provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeNominatim represents the OpenStreetMap Nominatim provider.
	ProviderTypeNominatim ProviderType = "nominatim"
)

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type         ProviderType // Type of provider to create
	ClientID     string       // NCP client id (used by the Naver provider)
	ClientSecret string       // NCP client secret (used by the Naver provider)
	APIKey       string       // API key (used by the Google provider)
	RateLimit    int          // Rate limit for requests per second
	Logger       *slog.Logger // Logger for the provider
}

// NewProvider creates a geocoding provider based on the provided
// configuration. Missing credentials are not an error: the factory
// returns a DisabledProvider, so the mapping feature degrades silently
// instead of refusing to start.
//
// Supported provider types:
// - "naver": Naver Cloud geocoding API (requires client id + secret)
// - "google": Google Maps Geocoding API (requires API key)
// - "nominatim": OpenStreetMap Nominatim API (free, no key required)
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypeNaver:
		return newNaverProvider(config), nil
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeNominatim:
		return NewNominatimProvider(config.Logger), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

// newNaverProvider creates a Naver geocoding provider, or a disabled one
// when the credentials are absent.
func newNaverProvider(config ProviderConfig) Provider {
	if config.ClientID == "" || config.ClientSecret == "" {
		config.Logger.Warn("Naver credentials are not set, mapping features are disabled")
		return NewDisabledProvider(config.Logger)
	}

	if config.RateLimit == 0 {
		config.RateLimit = 1
		config.Logger.Warn("Rate limit for Naver API not set, set a default value", "value", config.RateLimit)
	}

	return NewNaverProvider(config.ClientID, config.ClientSecret, config.RateLimit, config.Logger)
}

// newGoogleProvider creates a Google Maps geocoding provider, or a
// disabled one when the API key is absent.
func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		config.Logger.Warn("Google API key is not set, mapping features are disabled")
		return NewDisabledProvider(config.Logger), nil
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}
	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Logger), nil
}
