package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/infrastructure/database/sqlite"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-monitor-api/infrastructure/repository"
	"github.com/vfg2006/ads-monitor-api/internal/api"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/scheduler"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/archiving"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/reconciling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	adRepo := repository.NewAdRepository(conn)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	// restoreGate serializa restores de backup contra ciclos de
	// sincronização: ciclos seguram leitura, restores seguram escrita.
	restoreGate := &sync.RWMutex{}

	reconcileService := reconciling.NewService(conn, adRepo, metaIntegrator, restoreGate)
	auditService := auditing.NewService(adRepo)
	archiveService := archiving.NewService(conn, cfg.Backup.Dir, restoreGate)

	adSyncService := scheduler.NewAdSyncService(reconcileService, cfg)
	backupSyncService := scheduler.NewBackupSyncService(archiveService, cfg)

	if err := adSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de anúncios")
	} else {
		logrus.Info("Agendador de sincronização de anúncios iniciado com sucesso")
	}

	if err := backupSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backups")
	} else {
		logrus.Info("Agendador de backups iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		auditService,
		reconcileService,
		archiveService,
		adSyncService,
		backupSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn cria a conexão com o arquivo do banco
func dbconn(ctx context.Context, dbConfig config.Database) *sqlite.Connection {
	conn, err := sqlite.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o banco SQLite")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com o banco SQLite")
	}

	logrus.Info("Conexão com o banco SQLite estabelecida com sucesso")
	return conn
}
