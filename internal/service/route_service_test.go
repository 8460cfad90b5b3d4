package service

import (
	"context"
	"testing"

	"bus-searcher-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRouteDetailFetcher is a mock implementation of the RouteDetailFetcher interface
type MockRouteDetailFetcher struct {
	mock.Mock
}

func (m *MockRouteDetailFetcher) FetchRouteDetail(ctx context.Context, routeID string) ([]byte, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockRouteWriter is a mock implementation of the RouteWriter interface
type MockRouteWriter struct {
	mock.Mock
}

func (m *MockRouteWriter) UpsertRoute(ctx context.Context, route models.BusRoute) (bool, error) {
	args := m.Called(ctx, route)
	return args.Bool(0), args.Error(1)
}

var routeDetailXML = []byte(`<response><msgBody>
	<busRouteInfo>
		<routeId>234000026</routeId>
		<routeName>380</routeName>
		<routeTypeCd>13</routeTypeCd>
		<startStationName>오리역</startStationName>
		<endStationName>판교역</endStationName>
	</busRouteInfo>
	<stationList>
		<stationId>22000010</stationId>
		<stationName>오리역</stationName>
		<sequence>1</sequence>
	</stationList>
</msgBody></response>`)

func TestRouteService_GetRouteDetail(t *testing.T) {
	mockClient := new(MockRouteDetailFetcher)
	mockClient.On("FetchRouteDetail", mock.Anything, "234000026").Return(routeDetailXML, nil)

	mockStore := new(MockRouteWriter)
	mockStore.On("UpsertRoute", mock.Anything, models.BusRoute{
		RouteID:          "234000026",
		RouteName:        "380",
		RouteType:        "13",
		StartStationName: "오리역",
		EndStationName:   "판교역",
	}).Return(true, nil)

	svc := NewRouteService(mockClient, mockStore)

	detail, err := svc.GetRouteDetail(context.Background(), "234000026")
	require.NoError(t, err)
	assert.Equal(t, "234000026", detail.RouteID)
	assert.Equal(t, "380", detail.RouteName)
	require.Len(t, detail.Stations, 1)
	assert.Equal(t, models.RouteStation{StationID: "22000010", StationName: "오리역", Sequence: 1}, detail.Stations[0])

	mockClient.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestRouteService_GetRouteDetail_FailedSaveIsNotFatal(t *testing.T) {
	mockClient := new(MockRouteDetailFetcher)
	mockClient.On("FetchRouteDetail", mock.Anything, "234000026").Return(routeDetailXML, nil)

	mockStore := new(MockRouteWriter)
	mockStore.On("UpsertRoute", mock.Anything, mock.Anything).Return(false, assert.AnError)

	svc := NewRouteService(mockClient, mockStore)

	detail, err := svc.GetRouteDetail(context.Background(), "234000026")
	require.NoError(t, err)
	assert.Equal(t, "234000026", detail.RouteID)
}

func TestRouteService_GetRouteDetail_NotFound(t *testing.T) {
	tests := []struct {
		name      string
		mockBody  []byte
		mockError error
	}{
		{name: "provider unreachable", mockError: assert.AnError},
		{name: "unreadable response", mockBody: []byte(`not xml`)},
		{name: "empty detail", mockBody: []byte(`<response><msgBody/></response>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(MockRouteDetailFetcher)
			mockClient.On("FetchRouteDetail", mock.Anything, "234000026").Return(tt.mockBody, tt.mockError)

			mockStore := new(MockRouteWriter)

			svc := NewRouteService(mockClient, mockStore)

			detail, err := svc.GetRouteDetail(context.Background(), "234000026")
			assert.ErrorIs(t, err, ErrRouteNotFound)
			assert.Nil(t, detail)

			mockStore.AssertNotCalled(t, "UpsertRoute", mock.Anything, mock.Anything)
		})
	}
}
