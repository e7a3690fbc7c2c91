package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/archiving"
)

// BackupSyncService agenda a rotação diária de backups do arquivo do banco.
type BackupSyncService struct {
	scheduler *gocron.Scheduler
	config    config.Backup
	archiver  archiving.Archiver

	statusMutex         sync.Mutex
	lastBackupStartedAt time.Time
	lastBackupFile      string
	lastError           string
}

// NewBackupSyncService cria uma nova instância do serviço de backup agendado
func NewBackupSyncService(archiver archiving.Archiver, appConfig *config.Config) *BackupSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  appConfig.Backup.CronSchedule,
		"backup_enabled": appConfig.Backup.Enabled,
		"backup_dir":     appConfig.Backup.Dir,
	}).Info("Configuração do agendador de backups carregada")

	return &BackupSyncService{
		scheduler: scheduler,
		config:    appConfig.Backup,
		archiver:  archiver,
	}
}

// Start inicia o agendador
func (s *BackupSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Backup agendado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backups")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runBackup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de backups")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *BackupSyncService) runBackup() {
	s.statusMutex.Lock()
	s.lastBackupStartedAt = time.Now()
	s.statusMutex.Unlock()

	info, err := s.archiver.Backup()

	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Backup agendado falhou")
		return
	}

	s.lastError = ""
	s.lastBackupFile = info.FileName
}

// GetStatus retorna o status atual do agendador
func (s *BackupSyncService) GetStatus() map[string]any {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	return map[string]any{
		"backup_enabled":         s.config.Enabled,
		"backup_cron":            s.config.CronSchedule,
		"backup_dir":             s.config.Dir,
		"last_backup_started_at": s.lastBackupStartedAt,
		"last_backup_file":       s.lastBackupFile,
		"last_error":             s.lastError,
	}
}
