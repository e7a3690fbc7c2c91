package repository

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-monitor-api/infrastructure/database/sqlite"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

const (
	adsTable = "ads"

	// Formato de largura fixa: comparação lexicográfica == cronológica,
	// então os filtros de data funcionam direto no SQL.
	timeLayout = "2006-01-02 15:04:05"
)

const adColumns = "id, team, campaign, adgroup, ad_id, ad_name, account_name, reject_reason, planner_comment, executor_comment, is_active, last_modified, created_at"

type AdRepository interface {
	GetByAdID(adID string) (*domain.Ad, error)
	List(filters *domain.AdFilters) ([]*domain.Ad, error)
	History(filters *domain.AdFilters) ([]*domain.Ad, error)
	TeamStats(startDate, endDate *time.Time) ([]*domain.TeamRejectionStats, error)
	UpsertFromRemote(tx *sql.Tx, ad *domain.RejectedAd, now time.Time) error
	DeactivateMissing(tx *sql.Tx, presentAdIDs []string) (int64, error)
	UpdateComments(adID string, planner, executor *string, now time.Time) (*domain.Ad, error)
}

type adRepository struct {
	conn *sqlite.Connection
}

func NewAdRepository(conn *sqlite.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) GetByAdID(adID string) (*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adColumns).
		From(adsTable).
		Where(squirrel.Eq{"ad_id": adID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	ad, err := scanAdRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	return ad, nil
}

func (r *adRepository) List(filters *domain.AdFilters) ([]*domain.Ad, error) {
	builder := squirrel.
		Select(adColumns).
		From(adsTable).
		OrderBy("id ASC")

	if filters != nil {
		if filters.Team != nil {
			builder = builder.Where(squirrel.Eq{"team": *filters.Team})
		}
		if filters.ActiveOnly {
			builder = builder.Where(squirrel.Eq{"is_active": 1})
		}
		builder = applyPagination(builder, filters)
	}

	return r.queryAds(builder)
}

// History retorna todos os registros independente de is_active, ordenados
// por created_at decrescente. A tabela é um snapshot pontual, não um log de
// eventos: cada registro reflete os valores atuais dos campos, não os
// valores no momento da criação.
func (r *adRepository) History(filters *domain.AdFilters) ([]*domain.Ad, error) {
	builder := squirrel.
		Select(adColumns).
		From(adsTable).
		OrderBy("created_at DESC, id DESC")

	if filters != nil {
		if filters.Team != nil {
			builder = builder.Where(squirrel.Eq{"team": *filters.Team})
		}
		if filters.StartDate != nil {
			builder = builder.Where(squirrel.GtOrEq{"created_at": filters.StartDate.UTC().Format(timeLayout)})
		}
		if filters.EndDate != nil {
			builder = builder.Where(squirrel.LtOrEq{"created_at": filters.EndDate.UTC().Format(timeLayout)})
		}
		builder = applyPagination(builder, filters)
	}

	return r.queryAds(builder)
}

func (r *adRepository) TeamStats(startDate, endDate *time.Time) ([]*domain.TeamRejectionStats, error) {
	builder := squirrel.
		Select(
			"team",
			"COUNT(id) AS total_rejections",
			"COUNT(DISTINCT campaign) AS affected_campaigns",
			"GROUP_CONCAT(DISTINCT reject_reason) AS common_reasons",
		).
		From(adsTable).
		GroupBy("team").
		OrderBy("team ASC")

	if startDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"created_at": startDate.UTC().Format(timeLayout)})
	}
	if endDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"created_at": endDate.UTC().Format(timeLayout)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.TeamRejectionStats, 0)
	for rows.Next() {
		stat := &domain.TeamRejectionStats{}
		var reasons sql.NullString

		if err := rows.Scan(&stat.Team, &stat.TotalRejections, &stat.AffectedCampaigns, &reasons); err != nil {
			return nil, fmt.Errorf("erro ao escanear estatísticas de equipe: %w", err)
		}

		stat.CommonReasons = splitReasons(reasons)
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

// UpsertFromRemote insere ou atualiza um anúncio a partir do lote remoto,
// dentro da transação do ciclo. Sobrescreve apenas os campos vindos do Meta
// e reativa o registro; planner_comment, executor_comment e created_at nunca
// são tocados aqui.
func (r *adRepository) UpsertFromRemote(tx *sql.Tx, ad *domain.RejectedAd, now time.Time) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(adsTable).
		Columns("team", "campaign", "adgroup", "ad_id", "ad_name", "account_name", "reject_reason", "is_active", "last_modified", "created_at").
		Values(
			ad.Team,
			ad.Campaign,
			ad.AdGroup,
			ad.AdID,
			ad.AdName,
			ad.AccountName,
			ad.RejectReason,
			1,
			ad.LastModified.UTC().Format(timeLayout),
			now.UTC().Format(timeLayout),
		).
		Suffix(`
			ON CONFLICT (ad_id) DO UPDATE SET
				team = excluded.team,
				campaign = excluded.campaign,
				adgroup = excluded.adgroup,
				ad_name = excluded.ad_name,
				account_name = excluded.account_name,
				reject_reason = excluded.reject_reason,
				is_active = 1,
				last_modified = excluded.last_modified
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar upsert do anúncio %s: %w", ad.AdID, err)
	}

	return nil
}

// DeactivateMissing desativa todo anúncio ativo cujo ad_id não está no lote
// do ciclo. Com lote vazio, desativa todos os ativos.
func (r *adRepository) DeactivateMissing(tx *sql.Tx, presentAdIDs []string) (int64, error) {
	query, args, err := squirrel.
		Update(adsTable).
		Set("is_active", 0).
		Where(squirrel.Eq{"is_active": 1}).
		Where(squirrel.NotEq{"ad_id": presentAdIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := tx.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// UpdateComments aplica uma atualização parcial dos comentários e renova
// last_modified. Campos nil permanecem intocados. Retorna nil quando o
// anúncio não existe.
func (r *adRepository) UpdateComments(adID string, planner, executor *string, now time.Time) (*domain.Ad, error) {
	builder := squirrel.
		Update(adsTable).
		Set("last_modified", now.UTC().Format(timeLayout)).
		Where(squirrel.Eq{"ad_id": adID})

	if planner != nil {
		builder = builder.Set("planner_comment", *planner)
	}
	if executor != nil {
		builder = builder.Set("executor_comment", *executor)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return nil, nil
	}

	return r.GetByAdID(adID)
}

func (r *adRepository) queryAds(builder squirrel.SelectBuilder) ([]*domain.Ad, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad, err := scanAdRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncios: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func applyPagination(builder squirrel.SelectBuilder, filters *domain.AdFilters) squirrel.SelectBuilder {
	if filters.Skip > 0 {
		builder = builder.Offset(uint64(filters.Skip))
	}
	if filters.Limit > 0 {
		builder = builder.Limit(uint64(filters.Limit))
	}
	return builder
}

func scanAdRow(row *sql.Row) (*domain.Ad, error) {
	ad := &domain.Ad{}
	var lastModified, createdAt string

	err := row.Scan(
		&ad.ID,
		&ad.Team,
		&ad.Campaign,
		&ad.AdGroup,
		&ad.AdID,
		&ad.AdName,
		&ad.AccountName,
		&ad.RejectReason,
		&ad.PlannerComment,
		&ad.ExecutorComment,
		&ad.IsActive,
		&lastModified,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	return parseAdTimes(ad, lastModified, createdAt)
}

func scanAdRows(rows *sql.Rows) (*domain.Ad, error) {
	ad := &domain.Ad{}
	var lastModified, createdAt string

	err := rows.Scan(
		&ad.ID,
		&ad.Team,
		&ad.Campaign,
		&ad.AdGroup,
		&ad.AdID,
		&ad.AdName,
		&ad.AccountName,
		&ad.RejectReason,
		&ad.PlannerComment,
		&ad.ExecutorComment,
		&ad.IsActive,
		&lastModified,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	return parseAdTimes(ad, lastModified, createdAt)
}

func parseAdTimes(ad *domain.Ad, lastModified, createdAt string) (*domain.Ad, error) {
	var err error

	ad.LastModified, err = time.ParseInLocation(timeLayout, lastModified, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter last_modified: %w", err)
	}

	ad.CreatedAt, err = time.ParseInLocation(timeLayout, createdAt, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter created_at: %w", err)
	}

	return ad, nil
}

func splitReasons(reasons sql.NullString) []string {
	if !reasons.Valid || reasons.String == "" {
		return []string{}
	}

	parts := strings.Split(reasons.String, ",")
	sort.Strings(parts)
	return parts
}
