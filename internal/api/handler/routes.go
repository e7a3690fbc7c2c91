package handler

import (
	"net/http"

	"github.com/vfg2006/ads-monitor-api/internal/api/handler/router"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/archiving"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/reconciling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Ads(auditor auditing.Auditor, reconciler reconciling.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads",
			Method:  http.MethodGet,
			Handler: ListAds(auditor),
		},
		{
			Path:    "/v1/ads/history",
			Method:  http.MethodGet,
			Handler: AdHistory(auditor),
		},
		{
			Path:    "/v1/ads/team-stats",
			Method:  http.MethodGet,
			Handler: TeamStats(auditor),
		},
		{
			Path:    "/v1/ads/export",
			Method:  http.MethodGet,
			Handler: ExportAdHistory(auditor),
		},
		{
			Path:    "/v1/ads/:ad_id/comments",
			Method:  http.MethodPut,
			Handler: UpdateAdComments(reconciler),
		},
	}
}

func Backups(archiver archiving.Archiver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/backup",
			Method:  http.MethodPost,
			Handler: CreateBackup(archiver),
		},
		{
			Path:    "/v1/admin/backups",
			Method:  http.MethodGet,
			Handler: ListBackups(archiver),
		},
		{
			Path:    "/v1/admin/backup/download",
			Method:  http.MethodGet,
			Handler: DownloadLatestBackup(archiver),
		},
		{
			Path:    "/v1/admin/restore",
			Method:  http.MethodPost,
			Handler: RestoreLatestBackup(archiver),
		},
		{
			Path:    "/v1/admin/restore/upload",
			Method:  http.MethodPost,
			Handler: RestoreFromUpload(archiver),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads/refresh",
			Method:  http.MethodPost,
			Handler: RefreshAds(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
