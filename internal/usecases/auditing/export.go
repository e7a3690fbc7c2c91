package auditing

import (
	"fmt"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// historyCSVRow fixa a ordem das colunas do relatório exportado. Os
// cabeçalhos são os que as planilhas das equipes esperam.
type historyCSVRow struct {
	AccountName     string `csv:"계정"`
	Campaign        string `csv:"캠페인"`
	AdGroup         string `csv:"광고 그룹"`
	AdName          string `csv:"광고"`
	RejectReason    string `csv:"거절 사유"`
	LastModified    string `csv:"마지막 수정일"`
	PlannerComment  string `csv:"기획팀 의견"`
	ExecutorComment string `csv:"집행팀 의견"`
}

// ExportHistoryCSV serializa o histórico filtrado em CSV (UTF-8 com BOM,
// para abrir direto no Excel) e devolve também o nome de arquivo sugerido.
func (s *Service) ExportHistoryCSV(filters *domain.AdFilters) ([]byte, string, error) {
	if filters == nil {
		filters = &domain.AdFilters{}
	}

	// Exportação é sempre completa dentro do filtro, sem paginação
	filters.Skip = 0
	filters.Limit = 0

	ads, err := s.adRepo.History(filters)
	if err != nil {
		return nil, "", err
	}

	rows := make([]historyCSVRow, 0, len(ads))
	for _, ad := range ads {
		rows = append(rows, historyCSVRow{
			AccountName:     ad.AccountName,
			Campaign:        ad.Campaign,
			AdGroup:         ad.AdGroup,
			AdName:          ad.AdName,
			RejectReason:    ad.RejectReason,
			LastModified:    ad.LastModified.Format(exportTimeLayout),
			PlannerComment:  stringValue(ad.PlannerComment),
			ExecutorComment: stringValue(ad.ExecutorComment),
		})
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao serializar CSV: %w", err)
	}

	// BOM na frente para o Excel reconhecer UTF-8
	content := append([]byte{0xEF, 0xBB, 0xBF}, data...)

	fileName := fmt.Sprintf("ads_report_%s_%s.csv", teamLabel(filters), time.Now().Format("20060102"))
	return content, fileName, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
