package service

import (
	"context"
	"testing"

	"bus-searcher-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStopDetailFetcher is a mock implementation of the StopDetailFetcher interface
type MockStopDetailFetcher struct {
	mock.Mock
}

func (m *MockStopDetailFetcher) FetchStationDetail(ctx context.Context, stationID string) ([]byte, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockStopReader is a mock implementation of the StopReader interface
type MockStopReader struct {
	mock.Mock
}

func (m *MockStopReader) ListStops(ctx context.Context) ([]models.BusStop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BusStop), args.Error(1)
}

func TestStopService_ListSavedStops(t *testing.T) {
	tests := []struct {
		name        string
		mockStops   []models.BusStop
		mockError   error
		expected    []models.StopInfo
		expectedErr error
	}{
		{
			name: "returns stops in wire shape",
			mockStops: []models.BusStop{
				{ID: 1, StationID: "22000001", StationName: "판교역 1번출구", Latitude: 37.3950, Longitude: 127.1100, BusRouteCount: 12},
				{ID: 2, StationID: "22000002", StationName: "판교역 2번출구", Latitude: 37.3951, Longitude: 127.1101, BusRouteCount: 8},
			},
			expected: []models.StopInfo{
				{StopID: "22000001", StopName: "판교역 1번출구", Latitude: 37.3950, Longitude: 127.1100},
				{StopID: "22000002", StopName: "판교역 2번출구", Latitude: 37.3951, Longitude: 127.1101},
			},
		},
		{
			name:        "empty repository",
			mockStops:   []models.BusStop{},
			expectedErr: ErrNoSavedStops,
		},
		{
			name:        "repository error",
			mockError:   assert.AnError,
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockStopReader)
			mockRepo.On("ListStops", mock.Anything).Return(tt.mockStops, tt.mockError)

			svc := NewStopService(new(MockStopDetailFetcher), mockRepo)

			stops, err := svc.ListSavedStops(context.Background())
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, stops)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStopService_GetStopDetail(t *testing.T) {
	detailXML := []byte(`<response><msgBody>
		<busStationInfo>
			<stationId>22000001</stationId>
			<stationName>판교역 1번출구</stationName>
			<latitude>37.3950</latitude>
			<longitude>127.1100</longitude>
		</busStationInfo>
		<busRouteList>
			<routeId>234000026</routeId>
			<routeName>380</routeName>
			<routeTypeCd>13</routeTypeCd>
		</busRouteList>
	</msgBody></response>`)

	tests := []struct {
		name        string
		mockBody    []byte
		mockError   error
		expected    *models.StopDetail
		expectedErr error
	}{
		{
			name:     "successful fetch",
			mockBody: detailXML,
			expected: &models.StopDetail{
				StationID:   "22000001",
				StationName: "판교역 1번출구",
				Latitude:    37.3950,
				Longitude:   127.1100,
				Routes: []models.ServedRoute{
					{RouteID: "234000026", RouteName: "380", RouteType: "13"},
				},
			},
		},
		{
			name:        "provider unreachable",
			mockError:   assert.AnError,
			expectedErr: ErrStopNotFound,
		},
		{
			name:        "unreadable response",
			mockBody:    []byte(`{"error":"quota"}`),
			expectedErr: ErrStopNotFound,
		},
		{
			name:        "empty detail means unknown station",
			mockBody:    []byte(`<response><msgBody/></response>`),
			expectedErr: ErrStopNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(MockStopDetailFetcher)
			mockClient.On("FetchStationDetail", mock.Anything, "22000001").Return(tt.mockBody, tt.mockError)

			svc := NewStopService(mockClient, new(MockStopReader))

			detail, err := svc.GetStopDetail(context.Background(), "22000001")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, detail)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, detail)
			}

			mockClient.AssertExpectations(t)
		})
	}
}
