package reconciling

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-monitor-api/infrastructure/database/sqlite"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta"
	metamocks "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-monitor-api/infrastructure/repository"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *metamocks.MockAdFetcher, repository.AdRepository) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "ads.db")
	conn, err := sqlite.NewConnection(context.Background(), config.Database{Path: dbPath})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	adRepo := repository.NewAdRepository(conn)
	fetcher := metamocks.NewMockAdFetcher(ctrl)
	service := NewService(conn, adRepo, fetcher, &sync.RWMutex{})

	return service, fetcher, adRepo
}

func rejectedAd(adID, team, reason string) *domain.RejectedAd {
	return &domain.RejectedAd{
		Team:         team,
		Campaign:     "Campanha " + adID,
		AdGroup:      "Grupo " + adID,
		AdID:         adID,
		AdName:       "Anúncio " + adID,
		AccountName:  "Conta " + team,
		RejectReason: reason,
		LastModified: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func batchOf(ads ...*domain.RejectedAd) *meta.FetchResult {
	return &meta.FetchResult{
		Ads:           ads,
		AccountsTotal: 1,
	}
}

func TestService_Reconcile(t *testing.T) {
	t.Run("Primeiro ciclo insere todo o lote como ativo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, fetcher, adRepo := newTestService(t, ctrl)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(
				rejectedAd("1001", "alpha", "TEXT_POLICY"),
				rejectedAd("1002", "beta", "IMAGE_POLICY"),
			), nil)

		result, err := service.Reconcile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, result.Updated)
		assert.Equal(t, 0, result.Deactivated)

		ads, err := adRepo.List(&domain.AdFilters{ActiveOnly: true})
		require.NoError(t, err)
		require.Len(t, ads, 2)
		assert.Equal(t, "1001", ads[0].AdID)
		assert.Equal(t, "TEXT_POLICY", ads[0].RejectReason)
		assert.True(t, ads[0].IsActive)
		assert.Nil(t, ads[0].PlannerComment)
	})

	t.Run("Ciclo repetido é idempotente e não duplica registros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, fetcher, adRepo := newTestService(t, ctrl)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(rejectedAd("1001", "alpha", "TEXT_POLICY")), nil).
			Times(2)

		_, err := service.Reconcile(context.Background())
		require.NoError(t, err)
		_, err = service.Reconcile(context.Background())
		require.NoError(t, err)

		ads, err := adRepo.List(nil)
		require.NoError(t, err)
		assert.Len(t, ads, 1)
	})

	t.Run("Anúncio ausente do lote é desativado preservando comentários", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, fetcher, adRepo := newTestService(t, ctrl)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(
				rejectedAd("1001", "alpha", "TEXT_POLICY"),
				rejectedAd("1002", "alpha", "IMAGE_POLICY"),
			), nil)

		_, err := service.Reconcile(context.Background())
		require.NoError(t, err)

		comment := "verificando com o time de criação"
		_, err = service.UpdateComments("1002", &domain.UpdateCommentsRequest{PlannerComment: &comment})
		require.NoError(t, err)

		before, err := adRepo.GetByAdID("1002")
		require.NoError(t, err)

		// Segundo ciclo sem o anúncio 1002
		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(rejectedAd("1001", "alpha", "OUTRO_MOTIVO")), nil)

		result, err := service.Reconcile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Deactivated)

		gone, err := adRepo.GetByAdID("1002")
		require.NoError(t, err)
		assert.False(t, gone.IsActive)
		require.NotNil(t, gone.PlannerComment)
		assert.Equal(t, comment, *gone.PlannerComment)
		assert.Equal(t, before.CreatedAt, gone.CreatedAt)

		kept, err := adRepo.GetByAdID("1001")
		require.NoError(t, err)
		assert.True(t, kept.IsActive)
		assert.Equal(t, "OUTRO_MOTIVO", kept.RejectReason)
	})

	t.Run("Anúncio que volta ao lote é reativado no mesmo registro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, fetcher, adRepo := newTestService(t, ctrl)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(rejectedAd("1001", "alpha", "TEXT_POLICY")), nil)
		_, err := service.Reconcile(context.Background())
		require.NoError(t, err)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(), nil)
		_, err = service.Reconcile(context.Background())
		require.NoError(t, err)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(rejectedAd("1001", "alpha", "TEXT_POLICY")), nil)
		_, err = service.Reconcile(context.Background())
		require.NoError(t, err)

		ads, err := adRepo.List(nil)
		require.NoError(t, err)
		require.Len(t, ads, 1)
		assert.True(t, ads[0].IsActive)
	})

	t.Run("Lote vazio desativa todos os registros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, fetcher, adRepo := newTestService(t, ctrl)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(
				rejectedAd("1001", "alpha", "TEXT_POLICY"),
				rejectedAd("1002", "beta", "IMAGE_POLICY"),
			), nil)
		_, err := service.Reconcile(context.Background())
		require.NoError(t, err)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(), nil)
		result, err := service.Reconcile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, result.Deactivated)

		active, err := adRepo.List(&domain.AdFilters{ActiveOnly: true})
		require.NoError(t, err)
		assert.Empty(t, active)

		all, err := adRepo.List(nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Erro na busca remota aborta o ciclo sem tocar o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, fetcher, adRepo := newTestService(t, ctrl)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(rejectedAd("1001", "alpha", "TEXT_POLICY")), nil)
		_, err := service.Reconcile(context.Background())
		require.NoError(t, err)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(nil, errors.New("graph api indisponível"))

		_, err = service.Reconcile(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRemoteFetch))

		// Nada foi desativado pelo ciclo abortado
		active, err := adRepo.List(&domain.AdFilters{ActiveOnly: true})
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})

	t.Run("Gatilho com ciclo em andamento é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(t, ctrl)

		service.mu.Lock()
		service.running = true
		service.mu.Unlock()

		_, err := service.Reconcile(context.Background())
		assert.Equal(t, ErrSyncAlreadyRunning, err)
		assert.True(t, service.IsRunning())
	})
}

func TestService_UpdateComments(t *testing.T) {
	t.Run("Atualização parcial não toca o outro comentário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, fetcher, _ := newTestService(t, ctrl)

		fetcher.EXPECT().
			FetchDisapprovedAds(gomock.Any()).
			Return(batchOf(rejectedAd("1001", "alpha", "TEXT_POLICY")), nil)
		_, err := service.Reconcile(context.Background())
		require.NoError(t, err)

		planner := "ajustar o texto do anúncio"
		ad, err := service.UpdateComments("1001", &domain.UpdateCommentsRequest{PlannerComment: &planner})
		require.NoError(t, err)
		require.NotNil(t, ad.PlannerComment)
		assert.Equal(t, planner, *ad.PlannerComment)
		assert.Nil(t, ad.ExecutorComment)

		executor := "pausado até novo criativo"
		ad, err = service.UpdateComments("1001", &domain.UpdateCommentsRequest{ExecutorComment: &executor})
		require.NoError(t, err)
		require.NotNil(t, ad.PlannerComment)
		assert.Equal(t, planner, *ad.PlannerComment)
		require.NotNil(t, ad.ExecutorComment)
		assert.Equal(t, executor, *ad.ExecutorComment)
	})

	t.Run("Anúncio inexistente retorna ErrAdNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(t, ctrl)

		comment := "qualquer"
		_, err := service.UpdateComments("9999", &domain.UpdateCommentsRequest{PlannerComment: &comment})
		assert.Equal(t, ErrAdNotFound, err)
	})
}
