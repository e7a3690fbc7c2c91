package reconciling

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/infrastructure/database/sqlite"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-monitor-api/infrastructure/repository"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
)

// Reconciler executa ciclos de reconciliação e a atualização de comentários,
// a única operação autorizada a tocar os campos de comentário.
type Reconciler interface {
	Reconcile(ctx context.Context) (*domain.SyncResult, error)
	UpdateComments(adID string, req *domain.UpdateCommentsRequest) (*domain.Ad, error)
	IsRunning() bool
}

type Service struct {
	conn    *sqlite.Connection
	adRepo  repository.AdRepository
	fetcher meta.AdFetcher

	// restoreGate é compartilhado com o gerenciador de backups: ciclos de
	// reconciliação seguram leitura, restores seguram escrita exclusiva.
	restoreGate *sync.RWMutex

	mu      sync.Mutex
	running bool
}

func NewService(
	conn *sqlite.Connection,
	adRepo repository.AdRepository,
	fetcher meta.AdFetcher,
	restoreGate *sync.RWMutex,
) *Service {
	return &Service{
		conn:        conn,
		adRepo:      adRepo,
		fetcher:     fetcher,
		restoreGate: restoreGate,
	}
}

// Reconcile executa um ciclo completo: busca o lote remoto, aplica todos os
// upserts e então desativa os ausentes, tudo em uma única transação. Ciclos
// são serializados; um gatilho que chega com outro ciclo em andamento é
// rejeitado com ErrSyncAlreadyRunning, nunca intercalado.
func (s *Service) Reconcile(ctx context.Context) (*domain.SyncResult, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Ciclo de reconciliação já em andamento, rejeitando gatilho")
		return nil, ErrSyncAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	startedAt := time.Now()
	logrus.Info("Iniciando ciclo de reconciliação de anúncios reprovados")

	fetched, err := s.fetcher.FetchDisapprovedAds(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lote remoto, ciclo abortado")
		return nil, NewSyncError(ErrRemoteFetch, apiErrors.ErrExternalService, err.Error())
	}

	// O lote é um conjunto chaveado por ad_id: duplicatas entre contas
	// colapsam na última ocorrência.
	batch := make(map[string]*domain.RejectedAd, len(fetched.Ads))
	presentIDs := make([]string, 0, len(fetched.Ads))
	for _, ad := range fetched.Ads {
		if _, seen := batch[ad.AdID]; !seen {
			presentIDs = append(presentIDs, ad.AdID)
		}
		batch[ad.AdID] = ad
	}

	s.restoreGate.RLock()
	defer s.restoreGate.RUnlock()

	now := time.Now().UTC()
	var deactivated int64

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, ad := range batch {
			if err := s.adRepo.UpsertFromRemote(tx, ad, now); err != nil {
				return err
			}
		}

		// A desativação roda só depois de todo o lote aplicado, sobre o
		// banco inteiro: um lote parcial por equipe desativaria anúncios
		// das demais equipes.
		var err error
		deactivated, err = s.adRepo.DeactivateMissing(tx, presentIDs)
		return err
	})
	if err != nil {
		logrus.WithError(err).Error("Transação do ciclo de reconciliação falhou, nada foi aplicado")
		return nil, NewSyncError(ErrStoreTransaction, apiErrors.ErrDatabaseOperation, err.Error())
	}

	result := &domain.SyncResult{
		Updated:        len(batch),
		Deactivated:    int(deactivated),
		AccountsTotal:  fetched.AccountsTotal,
		AccountsFailed: fetched.AccountsFailed,
		StartedAt:      startedAt,
		Duration:       time.Since(startedAt),
	}

	logrus.WithFields(logrus.Fields{
		"updated":         result.Updated,
		"deactivated":     result.Deactivated,
		"accounts_total":  result.AccountsTotal,
		"accounts_failed": result.AccountsFailed,
		"duration":        result.Duration.String(),
	}).Info("Ciclo de reconciliação concluído")

	return result, nil
}

// UpdateComments aplica uma atualização parcial dos comentários de um
// anúncio. Campos ausentes permanecem intocados; last_modified é sempre
// renovado.
func (s *Service) UpdateComments(adID string, req *domain.UpdateCommentsRequest) (*domain.Ad, error) {
	ad, err := s.adRepo.UpdateComments(adID, req.PlannerComment, req.ExecutorComment, time.Now())
	if err != nil {
		return nil, NewSyncError(ErrStoreTransaction, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}

	logrus.WithFields(logrus.Fields{
		"ad_id":            adID,
		"planner_updated":  req.PlannerComment != nil,
		"executor_updated": req.ExecutorComment != nil,
	}).Info("Comentários do anúncio atualizados")

	return ad, nil
}

// IsRunning informa se há um ciclo em andamento.
func (s *Service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
