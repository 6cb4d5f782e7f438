package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"jumatrek/config"
	"jumatrek/infras/otel/mocks"
	trekMocks "jumatrek/internal/domains/trek/mocks"
	"jumatrek/internal/domains/trek/model"
	"jumatrek/internal/domains/trek/service"
	cacheMocks "jumatrek/shared/cache/mocks"
	"jumatrek/shared/failure"
)

func newTrekService(ctrl *gomock.Controller) (service.Trek, *trekMocks.MockTrek, *cacheMocks.MockRedisCache) {
	mockRepo := trekMocks.NewMockTrek(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestDestinationTitle(t *testing.T) {
	tests := []struct {
		destination string
		want        string
	}{
		{"everest_base_camp", "Everest Base Camp"},
		{"annapurna_circuit", "Annapurna Circuit"},
		{"ghorepani_poonhill", "Ghorepani Poon Hill"},
		{"some_custom_place", "some custom place"},
		{"off-the-map", "off the map"},
		{"Khumbu", "Khumbu"},
	}

	for _, tt := range tests {
		t.Run(tt.destination, func(t *testing.T) {
			assert.Equal(t, tt.want, service.DestinationTitle(tt.destination))
		})
	}
}

func TestTrekService_ResolveTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTrekService(ctrl)

	t.Run("empty destination stays empty", func(t *testing.T) {
		assert.Equal(t, "", svc.ResolveTitle(context.Background(), ""))
	})

	t.Run("legacy key resolves without a lookup", func(t *testing.T) {
		got := svc.ResolveTitle(context.Background(), "everest_base_camp")

		assert.Equal(t, "Everest Base Camp", got)
	})

	t.Run("non uuid key gets spaced out", func(t *testing.T) {
		got := svc.ResolveTitle(context.Background(), "hidden_valley")

		assert.Equal(t, "hidden valley", got)
	})

	t.Run("catalogue id resolves to the stored title", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Trek{ID: "7b8a3c1e-2f4d-4a6b-9c8d-1e2f3a4b5c6d", Title: "Everest Base Camp"}, nil)

		got := svc.ResolveTitle(context.Background(), "7b8a3c1e-2f4d-4a6b-9c8d-1e2f3a4b5c6d")

		assert.Equal(t, "Everest Base Camp", got)
	})

	t.Run("lookup failure keeps the raw value", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Trek{}, sql.ErrNoRows)

		got := svc.ResolveTitle(context.Background(), "7b8a3c1e-2f4d-4a6b-9c8d-1e2f3a4b5c6d")

		assert.Equal(t, "7b8a3c1e-2f4d-4a6b-9c8d-1e2f3a4b5c6d", got)
	})
}

func TestTrekService_GetByDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newTrekService(ctrl)

	t.Run("empty destination rejected", func(t *testing.T) {
		_, err := svc.GetByDestination(context.Background(), "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("cache miss, found in catalogue", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Trek{ID: "trek-1", Title: "Everest Base Camp"}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		result, err := svc.GetByDestination(context.Background(), "everest_base_camp")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "Everest Base Camp", result.Title)
	})

	t.Run("unknown destination", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Trek{}, sql.ErrNoRows)

		_, err := svc.GetByDestination(context.Background(), "atlantis")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
