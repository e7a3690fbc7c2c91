package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/ads-monitor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/reconciling"
	reconcilingmocks "github.com/vfg2006/ads-monitor-api/internal/usecases/reconciling/mocks"
	"go.uber.org/mock/gomock"
)

func TestListAds(t *testing.T) {
	cases := []struct {
		name       string
		target     string
		activeOnly bool
	}{
		{
			name:       "Sem parâmetro lista só os ativos",
			target:     "/v1/ads",
			activeOnly: true,
		},
		{
			name:       "active_only=false inclui os desativados",
			target:     "/v1/ads?active_only=false",
			activeOnly: false,
		},
		{
			name:       "active_only=true lista só os ativos",
			target:     "/v1/ads?active_only=true",
			activeOnly: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repomocks.NewMockAdRepository(ctrl)
			mockRepo.EXPECT().
				List(gomock.Any()).
				DoAndReturn(func(filters *domain.AdFilters) ([]*domain.Ad, error) {
					assert.Equal(t, tc.activeOnly, filters.ActiveOnly)
					return []*domain.Ad{}, nil
				})

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()

			ListAds(auditing.NewService(mockRepo)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("active_only inválido responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockAdRepository(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/ads?active_only=talvez", nil)
		rec := httptest.NewRecorder()

		ListAds(auditing.NewService(mockRepo)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_003")
	})
}

func requestWithAdID(method, target, body, adID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	params := httprouter.Params{{Key: "ad_id", Value: adID}}
	ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
	return req.WithContext(ctx)
}

func TestUpdateAdComments(t *testing.T) {
	t.Run("Atualização válida retorna o anúncio atualizado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReconciler := reconcilingmocks.NewMockReconciler(ctrl)

		comment := "revisar texto"
		updated := &domain.Ad{AdID: "1001", PlannerComment: &comment}

		mockReconciler.EXPECT().
			UpdateComments("1001", gomock.Any()).
			DoAndReturn(func(adID string, req *domain.UpdateCommentsRequest) (*domain.Ad, error) {
				require.NotNil(t, req.PlannerComment)
				assert.Equal(t, comment, *req.PlannerComment)
				assert.Nil(t, req.ExecutorComment)
				return updated, nil
			})

		req := requestWithAdID(http.MethodPut, "/v1/ads/1001/comments", `{"planner_comment":"revisar texto"}`, "1001")
		rec := httptest.NewRecorder()

		UpdateAdComments(mockReconciler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ad_id":"1001"`)
	})

	t.Run("Anúncio inexistente retorna 404 com código ADS_001", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReconciler := reconcilingmocks.NewMockReconciler(ctrl)
		mockReconciler.EXPECT().
			UpdateComments("9999", gomock.Any()).
			Return(nil, reconciling.ErrAdNotFound)

		req := requestWithAdID(http.MethodPut, "/v1/ads/9999/comments", `{"planner_comment":"x"}`, "9999")
		rec := httptest.NewRecorder()

		UpdateAdComments(mockReconciler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "ADS_001")
	})

	t.Run("Corpo sem nenhum comentário retorna 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReconciler := reconcilingmocks.NewMockReconciler(ctrl)

		req := requestWithAdID(http.MethodPut, "/v1/ads/1001/comments", `{}`, "1001")
		rec := httptest.NewRecorder()

		UpdateAdComments(mockReconciler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_002")
	})

	t.Run("JSON inválido retorna 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReconciler := reconcilingmocks.NewMockReconciler(ctrl)

		req := requestWithAdID(http.MethodPut, "/v1/ads/1001/comments", `{isso não é json`, "1001")
		rec := httptest.NewRecorder()

		UpdateAdComments(mockReconciler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_001")
	})
}

func TestAdFiltersFromQuery(t *testing.T) {
	t.Run("Parâmetros completos preenchem todos os filtros", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ads?team=alpha&start_date=2024-06-01&end_date=2024-06-30&skip=10&limit=50", nil)
		rec := httptest.NewRecorder()

		filters, ok := adFiltersFromQuery(rec, req)
		require.True(t, ok)
		require.NotNil(t, filters.Team)
		assert.Equal(t, "alpha", *filters.Team)
		require.NotNil(t, filters.StartDate)
		require.NotNil(t, filters.EndDate)
		assert.Equal(t, 10, filters.Skip)
		assert.Equal(t, 50, filters.Limit)
	})

	t.Run("Data fora do formato retorna 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ads?start_date=01-06-2024", nil)
		rec := httptest.NewRecorder()

		_, ok := adFiltersFromQuery(rec, req)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_003")
	})

	t.Run("Skip negativo retorna 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ads?skip=-1", nil)
		rec := httptest.NewRecorder()

		_, ok := adFiltersFromQuery(rec, req)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Sem parâmetros retorna filtros vazios", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
		rec := httptest.NewRecorder()

		filters, ok := adFiltersFromQuery(rec, req)
		require.True(t, ok)
		assert.Nil(t, filters.Team)
		assert.Nil(t, filters.StartDate)
		assert.Zero(t, filters.Limit)
	})
}
