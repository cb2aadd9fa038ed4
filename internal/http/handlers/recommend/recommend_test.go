package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/apsaracreations/saree-shop/internal/http/handlers/handlerstest"
	"github.com/apsaracreations/saree-shop/internal/models"
	recommendservice "github.com/apsaracreations/saree-shop/internal/services/recommend"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Recommend(bodyType, occasion, fabric string) ([]models.Suggestion, error) {
	args := m.Called(bodyType, occasion, fabric)
	res, _ := args.Get(0).([]models.Suggestion)
	return res, args.Error(1)
}

func (m *MockService) Options() recommendservice.Options {
	return m.Called().Get(0).(recommendservice.Options)
}

type TrackerMock struct {
	mock.Mock
}

func (m *TrackerMock) TrackRecommendation(ctx context.Context, e models.RecommendationEvent) {
	m.Called(ctx, e)
}

type ObserverMock struct {
	mock.Mock
}

func (m *ObserverMock) Recommendation(bodyType string) {
	m.Called(bodyType)
}

func TestHandler_Create(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	two := []models.Suggestion{
		{Recommendation: models.Recommendation{Name: "A"}, Priority: models.PriorityPrimary, Match: recommendservice.MatchPerfect},
		{Recommendation: models.Recommendation{Name: "B"}, Priority: models.PriorityFallback, Match: recommendservice.MatchClassic},
	}

	tests := []struct {
		name        string
		body        string
		setupMock   func(*MockService, *TrackerMock, *ObserverMock)
		wantStatus  int
		wantMessage string
		wantCount   int
	}{
		{
			name: "suggestions are tracked",
			body: `{"bodyType":"pear","occasion":"wedding","fabric":"silk"}`,
			setupMock: func(s *MockService, tr *TrackerMock, o *ObserverMock) {
				s.On("Recommend", "pear", "wedding", "silk").Return(two, nil).Once()
				tr.On("TrackRecommendation", mock.Anything, models.RecommendationEvent{
					Event:       "recommendation_generated",
					VisitorID:   "v-1",
					BodyType:    "pear",
					Occasion:    "wedding",
					Fabric:      "silk",
					ResultCount: 2,
					At:          at,
				}).Once()
				o.On("Recommendation", "pear").Once()
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name: "incomplete selection",
			body: `{"bodyType":"pear"}`,
			setupMock: func(s *MockService, _ *TrackerMock, _ *ObserverMock) {
				s.On("Recommend", "pear", "", "").Return(nil, recommendservice.ErrIncompleteSelection).Once()
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgIncompleteSelection,
		},
		{
			name: "service failure",
			body: `{"bodyType":"pear","occasion":"wedding","fabric":"silk"}`,
			setupMock: func(s *MockService, _ *TrackerMock, _ *ObserverMock) {
				s.On("Recommend", "pear", "wedding", "silk").Return(nil, errors.New("boom")).Once()
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal error",
		},
		{
			name:        "invalid json",
			body:        `[]`,
			setupMock:   func(_ *MockService, _ *TrackerMock, _ *ObserverMock) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := handlerstest.NewEnv(t)
			svc, tracker, observer := new(MockService), new(TrackerMock), new(ObserverMock)
			tt.setupMock(svc, tracker, observer)

			h := New(handlerstest.NoopLogger(), svc, tracker, observer)
			h.now = func() time.Time { return at }

			rec := httptest.NewRecorder()
			h.Create(rec, handlerstest.Request(http.MethodPost, "/api/v1/recommendations", tt.body, env.Visitor("v-1")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var res struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
				Data    struct {
					Suggestions []models.Suggestion `json:"suggestions"`
				} `json:"data"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
			assert.Equal(t, tt.wantMessage, res.Message)
			assert.Len(t, res.Data.Suggestions, tt.wantCount)

			svc.AssertExpectations(t)
			tracker.AssertExpectations(t)
			observer.AssertExpectations(t)
		})
	}
}

func TestHandler_CreateWithTable(t *testing.T) {
	tracker := new(TrackerMock)
	tracker.On("TrackRecommendation", mock.Anything, mock.Anything).Once()
	h := New(handlerstest.NoopLogger(), recommendservice.Matcher{}, tracker, nil)

	rec := httptest.NewRecorder()
	h.Create(rec, handlerstest.Request(http.MethodPost, "/api/v1/recommendations",
		`{"bodyType":"athletic","occasion":"wedding","fabric":"cotton"}`, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"priority":"fallback"`)
	tracker.AssertExpectations(t)
}

func TestHandler_Options(t *testing.T) {
	h := New(handlerstest.NoopLogger(), recommendservice.Matcher{}, nil, nil)

	rec := httptest.NewRecorder()
	h.Options(rec, handlerstest.Request(http.MethodGet, "/api/v1/recommendations/options", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bodyTypes":["pear","apple","rectangle","hourglass","petite"]`)
}
