package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/reconciling"
)

// AdSyncService agenda e dispara os ciclos de reconciliação de anúncios
// reprovados. A serialização dos ciclos é garantida pelo próprio motor; o
// agendador apenas dispara e registra o desfecho.
type AdSyncService struct {
	scheduler *gocron.Scheduler
	config    config.AdSync
	engine    reconciling.Reconciler

	statusMutex         sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SyncResult
	lastError           string
}

// NewAdSyncService cria uma nova instância do serviço de sincronização de anúncios
func NewAdSyncService(engine reconciling.Reconciler, appConfig *config.Config) *AdSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.AdSync.CronSchedule,
		"sync_enabled":  appConfig.AdSync.Enabled,
	}).Info("Configuração do agendador de sincronização de anúncios carregada")

	return &AdSyncService{
		scheduler: scheduler,
		config:    appConfig.AdSync,
		engine:    engine,
	}
}

// Start inicia o agendador
func (s *AdSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de anúncios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AdSyncService) runSync(ctx context.Context) {
	s.statusMutex.Lock()
	s.lastSyncStartedAt = time.Now()
	s.statusMutex.Unlock()

	result, err := s.engine.Reconcile(ctx)

	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		if err == reconciling.ErrSyncAlreadyRunning {
			logrus.Info("Gatilho de sincronização ignorado: ciclo já em andamento")
			return
		}
		logrus.WithError(err).Error("Ciclo de sincronização de anúncios falhou")
		return
	}

	s.lastError = ""
	s.lastResult = result
}

// TriggerManualSync dispara manualmente um ciclo de reconciliação. Retorna
// ErrSyncAlreadyRunning quando já existe um ciclo em andamento; o gatilho
// nunca espera nem intercala.
func (s *AdSyncService) TriggerManualSync() error {
	if s.engine.IsRunning() {
		logrus.Info("Sincronização já em andamento, ignorando solicitação manual")
		return reconciling.ErrSyncAlreadyRunning
	}

	logrus.Info("Iniciando sincronização manual de anúncios")
	go s.runSync(context.Background())
	return nil
}

// GetStatus retorna o status atual do agendador
func (s *AdSyncService) GetStatus() map[string]any {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.engine.IsRunning(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
	}

	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}

	return status
}
