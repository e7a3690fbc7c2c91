package auditing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-monitor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_List(t *testing.T) {
	t.Run("Filtros nulos viram listagem ativa com limite padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockAdRepository(ctrl)
		service := NewService(mockRepo)

		mockRepo.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(filters *domain.AdFilters) ([]*domain.Ad, error) {
				assert.True(t, filters.ActiveOnly)
				assert.Equal(t, defaultListLimit, filters.Limit)
				return []*domain.Ad{}, nil
			})

		_, err := service.List(nil)
		require.NoError(t, err)
	})

	t.Run("Limite acima do máximo é rebaixado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockAdRepository(ctrl)
		service := NewService(mockRepo)

		mockRepo.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(filters *domain.AdFilters) ([]*domain.Ad, error) {
				assert.Equal(t, maxListLimit, filters.Limit)
				return []*domain.Ad{}, nil
			})

		_, err := service.List(&domain.AdFilters{Limit: 5000, ActiveOnly: true})
		require.NoError(t, err)
	})
}

func TestService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdRepository(ctrl)
	service := NewService(mockRepo)

	team := "alpha"
	expected := []*domain.Ad{{AdID: "1001", Team: team}}

	mockRepo.EXPECT().
		History(gomock.Any()).
		DoAndReturn(func(filters *domain.AdFilters) ([]*domain.Ad, error) {
			assert.Equal(t, &team, filters.Team)
			assert.Equal(t, defaultListLimit, filters.Limit)
			return expected, nil
		})

	ads, err := service.History(&domain.AdFilters{Team: &team})
	require.NoError(t, err)
	assert.Equal(t, expected, ads)
}

func TestService_TeamStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdRepository(ctrl)
	service := NewService(mockRepo)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	expected := []*domain.TeamRejectionStats{{Team: "alpha", TotalRejections: 3}}

	mockRepo.EXPECT().
		TeamStats(&start, nil).
		Return(expected, nil)

	stats, err := service.TeamStats(&start, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}
