package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-monitor-api/internal/usecases/reconciling"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

// ListAds lista os anúncios reprovados, com paginação e filtro opcional por
// equipe. Por padrão só os ativos entram; active_only=false inclui os já
// desativados.
func ListAds(service auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := adFiltersFromQuery(w, r)
		if !ok {
			return
		}

		filters.ActiveOnly = true
		if raw := r.URL.Query().Get("active_only"); raw != "" {
			activeOnly, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro active_only inválido", nil)
				return
			}
			filters.ActiveOnly = activeOnly
		}

		ads, err := service.List(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("ads: falha ao listar anúncios ativos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar anúncios", nil)
			return
		}

		logger.WithFields(log.Fields{
			"count": len(ads),
			"team":  stringValue(filters.Team),
		}).Info("ads: listagem de anúncios concluída")

		writeJSON(w, ads)
	})
}

// AdHistory devolve o histórico completo (ativos e desativados) dentro do
// intervalo de datas informado.
func AdHistory(service auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := adFiltersFromQuery(w, r)
		if !ok {
			return
		}

		ads, err := service.History(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("ads: falha ao consultar histórico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico", nil)
			return
		}

		logger.WithField("count", len(ads)).Info("ads: consulta de histórico concluída")

		writeJSON(w, ads)
	})
}

// TeamStats agrega as rejeições por equipe no intervalo informado.
func TeamStats(service auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido, use YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido, use YYYY-MM-DD", nil)
			return
		}

		stats, err := service.TeamStats(startDate, endDate)
		if err != nil {
			logger.WithField("error", err.Error()).Error("ads: falha ao agregar estatísticas por equipe")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao agregar estatísticas", nil)
			return
		}

		writeJSON(w, stats)
	})
}

// ExportAdHistory devolve o histórico filtrado como arquivo CSV.
func ExportAdHistory(service auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := adFiltersFromQuery(w, r)
		if !ok {
			return
		}

		content, fileName, err := service.ExportHistoryCSV(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("ads: falha ao exportar histórico em CSV")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar exportação", nil)
			return
		}

		logger.WithFields(log.Fields{
			"file_name":  fileName,
			"size_bytes": len(content),
		}).Info("ads: exportação CSV gerada")

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=\""+fileName+"\"")
		if _, err := w.Write(content); err != nil {
			logger.WithField("error", err.Error()).Error("ads: falha ao enviar exportação CSV")
		}
	})
}

// UpdateAdComments atualiza os comentários das equipes de um anúncio. Campos
// omitidos no corpo são preservados.
func UpdateAdComments(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adID := httprouter.ParamsFromContext(r.Context()).ByName("ad_id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do anúncio não informado", nil)
			return
		}

		var req domain.UpdateCommentsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.PlannerComment == nil && req.ExecutorComment == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ao menos um comentário para atualizar", nil)
			return
		}

		ad, err := service.UpdateComments(adID, &req)
		if err != nil {
			if errors.Is(err, reconciling.ErrAdNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrAdNotFound, "Anúncio não encontrado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"ad_id": adID,
				"error": err.Error(),
			}).Error("ads: falha ao atualizar comentários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar comentários", nil)
			return
		}

		logger.WithField("ad_id", adID).Info("ads: comentários atualizados")

		writeJSON(w, ad)
	})
}

// adFiltersFromQuery monta os filtros comuns de listagem a partir da query
// string. Em caso de parâmetro inválido a resposta de erro já foi escrita e
// o chamador deve retornar.
func adFiltersFromQuery(w http.ResponseWriter, r *http.Request) (*domain.AdFilters, bool) {
	filters := &domain.AdFilters{}

	if team := r.URL.Query().Get("team"); team != "" {
		filters.Team = &team
	}

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido, use YYYY-MM-DD", nil)
		return nil, false
	}
	filters.StartDate = startDate

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido, use YYYY-MM-DD", nil)
		return nil, false
	}
	filters.EndDate = endDate

	filters.Skip, err = intQueryParam(r, "skip")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro skip inválido", nil)
		return nil, false
	}

	filters.Limit, err = intQueryParam(r, "limit")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
		return nil, false
	}

	return filters, true
}

func intQueryParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, strconv.ErrSyntax
	}
	return value, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithField("error", err.Error()).Error("erro ao serializar resposta JSON")
	}
}
