package googlemaps_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/storelocator/pkg/locator"
	"github.com/tournevent/storelocator/pkg/locator/googlemaps"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newTestClient(mockClient *googlemaps.MockAPIClient) *googlemaps.Client {
	logger := otelzap.New(zap.NewNop())
	return googlemaps.NewWithAPIClient(
		googlemaps.Config{APIKey: "test-key"},
		mockClient,
		logger,
		nil,
	)
}

func TestClient_Geocode_Success(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	client := newTestClient(mockAPI)

	ctx := context.Background()
	point, err := client.Geocode(ctx, "88080080")

	require.NoError(t, err)
	assert.InDelta(t, -27.5954, point.Latitude, 0.0001)
	assert.InDelta(t, -48.5480, point.Longitude, 0.0001)
}

func TestClient_Geocode_ZeroResults(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnGeocode = func(ctx context.Context, query string) (*googlemaps.GeocodeResponse, error) {
		return &googlemaps.GeocodeResponse{Status: googlemaps.StatusZeroResults}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Geocode(ctx, "nowhere at all")

	require.Error(t, err)
	assert.Equal(t, locator.KindNotFound, locator.KindOf(err))
}

func TestClient_Geocode_OKWithEmptyResults(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnGeocode = func(ctx context.Context, query string) (*googlemaps.GeocodeResponse, error) {
		return &googlemaps.GeocodeResponse{Status: googlemaps.StatusOK}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Geocode(ctx, "88080080")

	require.Error(t, err)
	assert.Equal(t, locator.KindNotFound, locator.KindOf(err))
}

func TestClient_Geocode_APIError(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.SimulateErrors = true

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Geocode(ctx, "88080080")

	require.Error(t, err)
	assert.Equal(t, locator.KindProviderError, locator.KindOf(err))
}

func TestClient_Geocode_DeniedStatus(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnGeocode = func(ctx context.Context, query string) (*googlemaps.GeocodeResponse, error) {
		return &googlemaps.GeocodeResponse{
			Status:       "REQUEST_DENIED",
			ErrorMessage: "The provided API key is invalid.",
		}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Geocode(ctx, "88080080")

	require.Error(t, err)
	assert.Equal(t, locator.KindProviderError, locator.KindOf(err))
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestClient_Distance_Success(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	client := newTestClient(mockAPI)

	ctx := context.Background()
	result, err := client.Distance(ctx, "88080080", "88010000")

	require.NoError(t, err)
	assert.Equal(t, "12.3 km", result.Text)
	assert.Equal(t, 12300, result.Meters)
	assert.InDelta(t, 12.3, result.Kilometers(), 0.001)
}

func TestClient_Distance_ForwardsEndpoints(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnDistanceMatrix = func(ctx context.Context, origins, destinations []string) (*googlemaps.DistanceMatrixResponse, error) {
		assert.Equal(t, []string{"88080080"}, origins)
		assert.Equal(t, []string{"88010000"}, destinations)
		return &googlemaps.DistanceMatrixResponse{
			Status: googlemaps.StatusOK,
			Rows: []googlemaps.Row{
				{Elements: []googlemaps.Element{
					{Status: googlemaps.StatusOK, Distance: googlemaps.ValueText{Text: "5.0 km", Value: 5000}},
				}},
			},
		}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	result, err := client.Distance(ctx, "88080080", "88010000")

	require.NoError(t, err)
	assert.Equal(t, 5000, result.Meters)
}

func TestClient_Distance_ElementNotFound(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnDistanceMatrix = func(ctx context.Context, origins, destinations []string) (*googlemaps.DistanceMatrixResponse, error) {
		return &googlemaps.DistanceMatrixResponse{
			Status: googlemaps.StatusOK,
			Rows: []googlemaps.Row{
				{Elements: []googlemaps.Element{{Status: googlemaps.StatusNotFound}}},
			},
		}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Distance(ctx, "88080080", "88010000")

	require.Error(t, err)
	assert.Equal(t, locator.KindNotFound, locator.KindOf(err))
}

func TestClient_Distance_EmptyRows(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnDistanceMatrix = func(ctx context.Context, origins, destinations []string) (*googlemaps.DistanceMatrixResponse, error) {
		return &googlemaps.DistanceMatrixResponse{Status: googlemaps.StatusOK}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Distance(ctx, "88080080", "88010000")

	require.Error(t, err)
	assert.Equal(t, locator.KindInternal, locator.KindOf(err))
}

func TestClient_Distance_TopLevelStatusError(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnDistanceMatrix = func(ctx context.Context, origins, destinations []string) (*googlemaps.DistanceMatrixResponse, error) {
		return &googlemaps.DistanceMatrixResponse{Status: "OVER_QUERY_LIMIT"}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Distance(ctx, "88080080", "88010000")

	require.Error(t, err)
	assert.Equal(t, locator.KindProviderError, locator.KindOf(err))
}
