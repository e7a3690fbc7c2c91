package domain

import (
	"time"
)

// RejectedAd é um anúncio reprovado retornado pelo integrador do Meta
// em um ciclo de sincronização. É a forma "remota" de um Ad, sem os
// campos preenchidos por operadores.
type RejectedAd struct {
	Team         string    `json:"team"`
	Campaign     string    `json:"campaign"`
	AdGroup      string    `json:"adgroup"`
	AdID         string    `json:"ad_id"`
	AdName       string    `json:"ad_name"`
	AccountName  string    `json:"account_name"`
	RejectReason string    `json:"reject_reason"`
	LastModified time.Time `json:"last_modified"`
}

// SyncResult resume um ciclo de reconciliação completo.
type SyncResult struct {
	Updated        int           `json:"updated"`
	Deactivated    int           `json:"deactivated"`
	AccountsTotal  int           `json:"accounts_total"`
	AccountsFailed int           `json:"accounts_failed"`
	StartedAt      time.Time     `json:"started_at"`
	Duration       time.Duration `json:"-"`
}
