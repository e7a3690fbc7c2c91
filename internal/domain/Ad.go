package domain

import (
	"time"
)

// Ad representa um anúncio reprovado espelhado do Meta.
// Os campos vindos do Meta são sobrescritos a cada ciclo de sincronização;
// os comentários das equipes são preenchidos apenas por operadores e
// sobrevivem a qualquer sincronização.
type Ad struct {
	ID              int64     `json:"id"`
	Team            string    `json:"team"`
	Campaign        string    `json:"campaign"`
	AdGroup         string    `json:"adgroup"`
	AdID            string    `json:"ad_id"`
	AdName          string    `json:"ad_name"`
	AccountName     string    `json:"account_name"`
	RejectReason    string    `json:"reject_reason"`
	PlannerComment  *string   `json:"planner_comment"`
	ExecutorComment *string   `json:"executor_comment"`
	IsActive        bool      `json:"is_active"`
	LastModified    time.Time `json:"last_modified"`
	CreatedAt       time.Time `json:"created_at"`
}

type AdFilters struct {
	Team       *string
	StartDate  *time.Time
	EndDate    *time.Time
	ActiveOnly bool
	Skip       int
	Limit      int
}

type UpdateCommentsRequest struct {
	PlannerComment  *string `json:"planner_comment,omitempty"`
	ExecutorComment *string `json:"executor_comment,omitempty"`
}
