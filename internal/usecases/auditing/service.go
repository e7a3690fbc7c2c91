package auditing

import (
	"time"

	"github.com/vfg2006/ads-monitor-api/infrastructure/repository"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// Auditor é a camada de consulta sobre a tabela de anúncios: listagem
// paginada, histórico com filtro de datas, agregados por equipe e a
// exportação do histórico em CSV.
type Auditor interface {
	List(filters *domain.AdFilters) ([]*domain.Ad, error)
	History(filters *domain.AdFilters) ([]*domain.Ad, error)
	TeamStats(startDate, endDate *time.Time) ([]*domain.TeamRejectionStats, error)
	ExportHistoryCSV(filters *domain.AdFilters) ([]byte, string, error)
}

type Service struct {
	adRepo repository.AdRepository
}

func NewService(adRepo repository.AdRepository) *Service {
	return &Service{
		adRepo: adRepo,
	}
}

func (s *Service) List(filters *domain.AdFilters) ([]*domain.Ad, error) {
	if filters == nil {
		filters = &domain.AdFilters{ActiveOnly: true}
	}
	clampLimit(filters)

	return s.adRepo.List(filters)
}

// History retorna registros ordenados por created_at decrescente,
// independentemente de is_active. A tabela é um snapshot pontual: cada
// entrada reflete os valores atuais dos campos, não os do momento da
// criação.
func (s *Service) History(filters *domain.AdFilters) ([]*domain.Ad, error) {
	if filters == nil {
		filters = &domain.AdFilters{}
	}
	clampLimit(filters)

	return s.adRepo.History(filters)
}

func (s *Service) TeamStats(startDate, endDate *time.Time) ([]*domain.TeamRejectionStats, error) {
	return s.adRepo.TeamStats(startDate, endDate)
}

func clampLimit(filters *domain.AdFilters) {
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}
	if filters.Limit > maxListLimit {
		filters.Limit = maxListLimit
	}
}

func teamLabel(filters *domain.AdFilters) string {
	if filters != nil && filters.Team != nil && *filters.Team != "" {
		return *filters.Team
	}
	return "all"
}
