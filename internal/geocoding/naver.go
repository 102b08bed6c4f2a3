package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jbnu-feel/feelgeo/internal/models"
	"golang.org/x/time/rate"
)

// NaverBaseURL is the Naver Cloud map-geocode API endpoint.
const NaverBaseURL = "https://maps.apigw.ntruss.com/map-geocode/v2/geocode"

// NaverProvider implements geocoding using the Naver Cloud Platform
// geocoding API, the provider the council site uses for its Korean
// partner addresses.
type NaverProvider struct {
	client       HTTPClient    // HTTP client for making requests
	baseURL      string        // Base URL for the Naver geocode API
	clientID     string        // NCP API gateway key id
	clientSecret string        // NCP API gateway key
	log          *slog.Logger  // Logger for logging operations
	limiter      *rate.Limiter // Rate limiter
}

// Common errors for the Naver provider.
var (
	ErrNaverEmptyAddress  = errors.New("naver provider got empty address")
	ErrNaverInvalidCoords = errors.New("naver API returned invalid coordinates")
	ErrNaverUnauthorized  = errors.New("naver API unauthorized (invalid credentials)")
)

// naverResponse is the relevant subset of the map-geocode v2 response.
// Coordinates come back as strings: x is longitude, y is latitude.
type naverResponse struct {
	Status string `json:"status"`
	Meta   struct {
		TotalCount int `json:"totalCount"`
	} `json:"meta"`
	Addresses []struct {
		X string `json:"x"`
		Y string `json:"y"`
	} `json:"addresses"`
	ErrorMessage string `json:"errorMessage"`
}

// NewNaverProvider creates a new Naver geocoding provider.
func NewNaverProvider(clientID, clientSecret string, rateLimit int, log *slog.Logger) *NaverProvider {
	const timeout = 10

	return &NaverProvider{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL:      NaverBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		log:          log,
		limiter:      rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewNaverProviderWithClient allows injecting a custom HTTP client.
func NewNaverProviderWithClient(
	client HTTPClient,
	clientID, clientSecret string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *NaverProvider {
	return &NaverProvider{
		client:       client,
		baseURL:      NaverBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		log:          log,
		limiter:      limiter,
	}
}

// Geocode converts an address into geographic coordinates using the Naver
// Cloud geocoding API. A response with zero matches yields ErrNoResults so
// callers can distinguish it from transport or provider failures.
func (np *NaverProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	np.log.DebugContext(ctx, "Geocoding using Naver", "address", address)

	if address == "" {
		return nil, ErrNaverEmptyAddress
	}

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("query", address)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-ncp-apigw-api-key-id", np.clientID)
	req.Header.Set("x-ncp-apigw-api-key", np.clientSecret)

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrNaverUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		np.log.ErrorContext(ctx, "Naver API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("naver API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result naverResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode naver response: %w", err)
	}

	if result.Status != "OK" {
		return nil, fmt.Errorf("naver API status %q: %s", result.Status, result.ErrorMessage)
	}

	if result.Meta.TotalCount == 0 || len(result.Addresses) == 0 {
		return nil, ErrNoResults
	}

	item := result.Addresses[0]
	lat, err := strconv.ParseFloat(item.Y, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %s", ErrNaverInvalidCoords, item.Y)
	}
	lng, err := strconv.ParseFloat(item.X, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %s", ErrNaverInvalidCoords, item.X)
	}

	np.log.DebugContext(ctx, "Naver found result", "address", address, "lat", lat, "lng", lng)

	return &models.Coordinates{
		Latitude:  lat,
		Longitude: lng,
	}, nil
}
