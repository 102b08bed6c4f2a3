package geocoding_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/jbnu-feel/feelgeo/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimProvider_Geocode(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()

	t.Run("successfull geocoding", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "GET", req.Method)
				assert.Contains(t, req.URL.String(), "nominatim.openstreetmap.org/search")
				assert.Equal(t, "전주시 금암동", req.URL.Query().Get("q"))
				assert.Equal(t, "json", req.URL.Query().Get("format"))
				assert.NotEmpty(t, req.Header.Get("User-Agent"))

				responseBody := `[{"lat": "35.8464522", "lon": "127.1296552"}]`
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(responseBody)),
				}, nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		coords, err := provider.Geocode(ctx, "전주시 금암동")

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InEpsilon(t, 35.8464522, coords.Latitude, 0.0001)
		assert.InEpsilon(t, 127.1296552, coords.Longitude, 0.0001)
	})

	t.Run("no results", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`[]`)),
				}, nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		coords, err := provider.Geocode(ctx, "어딘가 없는 주소")

		require.Error(t, err)
		assert.Nil(t, coords)
		assert.ErrorIs(t, err, geocoding.ErrNoResults)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				responseBody := `[{"lat": "nope", "lon": "127.12"}]`
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(responseBody)),
				}, nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		coords, err := provider.Geocode(ctx, "somewhere")

		require.Error(t, err)
		assert.Nil(t, coords)
		assert.ErrorIs(t, err, geocoding.ErrNominatimInvalidCoords)
	})

	t.Run("non-OK status", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusTooManyRequests,
					Body:       io.NopCloser(bytes.NewBufferString(`rate limited`)),
				}, nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		coords, err := provider.Geocode(ctx, "somewhere")

		require.Error(t, err)
		assert.Nil(t, coords)
		assert.Contains(t, err.Error(), "429")
	})
}
