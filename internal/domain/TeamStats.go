package domain

// TeamRejectionStats agrega as reprovações de uma equipe em um período:
// total de registros, campanhas distintas afetadas e o conjunto de
// motivos de reprovação observados.
type TeamRejectionStats struct {
	Team              string   `json:"team"`
	TotalRejections   int      `json:"total_rejections"`
	AffectedCampaigns int      `json:"affected_campaigns"`
	CommonReasons     []string `json:"common_reasons"`
}
