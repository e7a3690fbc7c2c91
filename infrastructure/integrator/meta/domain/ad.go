package domain

import (
	"encoding/json"
)

// DisapprovedAd é o formato cru de um anúncio reprovado na Graph API.
type DisapprovedAd struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	CampaignID       string            `json:"campaign_id"`
	AdSetID          string            `json:"adset_id"`
	EffectiveStatus  string            `json:"effective_status"`
	UpdatedTime      string            `json:"updated_time"`
	AdReviewFeedback *AdReviewFeedback `json:"ad_review_feedback,omitempty"`
}

// AdReviewFeedback carrega os motivos de reprovação; as chaves do mapa
// "global" são os códigos de motivo.
type AdReviewFeedback struct {
	Global map[string]json.RawMessage `json:"global"`
}

type NamedObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Paging struct {
	Next     string `json:"next"`
	Previous string `json:"previous"`
}
