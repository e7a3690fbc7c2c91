package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-monitor-api/internal/scheduler"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/reconciling"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

// CronJobServices agrupa os agendadores expostos pela API.
type CronJobServices struct {
	AdSyncService     *scheduler.AdSyncService
	BackupSyncService *scheduler.BackupSyncService
}

// RefreshAds dispara manualmente um ciclo de sincronização. Responde 202
// quando o ciclo foi iniciado e 409 quando já existe um em andamento.
func RefreshAds(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if services.AdSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		if err := services.AdSyncService.TriggerManualSync(); err != nil {
			if errors.Is(err, reconciling.ErrSyncAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Já existe uma sincronização em andamento", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("cron: falha ao disparar sincronização manual")
			apiErrors.WriteError(w, apiErrors.ErrSyncFailed, "Erro ao disparar sincronização", nil)
			return
		}

		logger.Info("cron: sincronização manual disparada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]any{
			"message": "Sincronização iniciada",
		})
	})
}

// GetCronStatus retorna o status dos agendadores.
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AdSyncService != nil {
			status["ad_sync"] = services.AdSyncService.GetStatus()
		}
		if services.BackupSyncService != nil {
			status["backup"] = services.BackupSyncService.GetStatus()
		}

		writeJSON(w, status)
	})
}
