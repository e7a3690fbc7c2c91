package handler

import (
	"io"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/archiving"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

// maxUploadSize limita o corpo aceito no restore por upload (64 MiB).
const maxUploadSize = 64 << 20

// CreateBackup gera um snapshot do banco no diretório de backups.
func CreateBackup(service archiving.Archiver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		info, err := service.Backup()
		if err != nil {
			logger.WithField("error", err.Error()).Error("backup: falha ao criar backup")
			apiErrors.WriteError(w, apiErrors.ErrBackupFailed, "Erro ao criar backup", nil)
			return
		}

		logger.WithFields(log.Fields{
			"backup_id":  info.ID,
			"file_name":  info.FileName,
			"size_bytes": info.Size,
		}).Info("backup: snapshot criado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, info)
	})
}

// ListBackups lista os snapshots disponíveis, do mais recente ao mais antigo.
func ListBackups(service archiving.Archiver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		backups, err := service.ListBackups()
		if err != nil {
			logger.WithField("error", err.Error()).Error("backup: falha ao listar backups")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar backups", nil)
			return
		}

		writeJSON(w, backups)
	})
}

// DownloadLatestBackup envia o snapshot mais recente como arquivo binário.
func DownloadLatestBackup(service archiving.Archiver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		latest, err := service.LatestBackup()
		if err != nil {
			if errors.Is(err, archiving.ErrNoBackupFound) {
				apiErrors.WriteError(w, apiErrors.ErrNoBackupFound, "Nenhum backup disponível", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("backup: falha ao localizar backup mais recente")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao localizar backup", nil)
			return
		}

		file, err := os.Open(latest.Path)
		if err != nil {
			logger.WithFields(log.Fields{
				"file_name": latest.FileName,
				"error":     err.Error(),
			}).Error("backup: falha ao abrir arquivo de backup")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao abrir arquivo de backup", nil)
			return
		}
		defer file.Close()

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", "attachment; filename=\""+latest.FileName+"\"")
		if _, err := io.Copy(w, file); err != nil {
			logger.WithFields(log.Fields{
				"file_name": latest.FileName,
				"error":     err.Error(),
			}).Error("backup: falha ao enviar arquivo de backup")
			return
		}

		logger.WithField("file_name", latest.FileName).Info("backup: download concluído")
	})
}

// RestoreLatestBackup substitui o banco atual pelo snapshot mais recente.
func RestoreLatestBackup(service archiving.Archiver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		info, err := service.RestoreLatest(r.Context())
		if err != nil {
			if errors.Is(err, archiving.ErrNoBackupFound) {
				apiErrors.WriteError(w, apiErrors.ErrNoBackupFound, "Nenhum backup disponível para restauração", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("backup: falha ao restaurar backup mais recente")
			apiErrors.WriteError(w, apiErrors.ErrRestoreFailed, "Erro ao restaurar backup", nil)
			return
		}

		logger.WithField("file_name", info.FileName).Info("backup: restauração concluída")

		writeJSON(w, map[string]any{
			"message": "Backup restaurado com sucesso",
			"backup":  info,
		})
	})
}

// RestoreFromUpload substitui o banco atual pelo arquivo enviado via
// multipart (campo "file"). Uma cópia de segurança do banco atual é criada
// antes da substituição.
func RestoreFromUpload(service archiving.Archiver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição multipart inválida ou arquivo grande demais", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo de arquivo 'file' não informado", nil)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			logger.WithField("error", err.Error()).Error("backup: falha ao ler arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler arquivo enviado", nil)
			return
		}

		if len(content) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo enviado está vazio", nil)
			return
		}

		if err := service.RestoreFromBytes(r.Context(), content); err != nil {
			logger.WithFields(log.Fields{
				"file_name": header.Filename,
				"error":     err.Error(),
			}).Error("backup: falha ao restaurar a partir do upload")
			apiErrors.WriteError(w, apiErrors.ErrRestoreFailed, "Erro ao restaurar a partir do arquivo enviado", nil)
			return
		}

		logger.WithFields(log.Fields{
			"file_name":  header.Filename,
			"size_bytes": len(content),
		}).Info("backup: restauração a partir de upload concluída")

		writeJSON(w, map[string]any{
			"message": "Banco restaurado a partir do arquivo enviado",
		})
	})
}
