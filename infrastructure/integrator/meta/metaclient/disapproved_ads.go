package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/domain"
)

type ResponseDisapprovedAds struct {
	Data   []metadomain.DisapprovedAd `json:"data"`
	Paging metadomain.Paging          `json:"paging"`
}

// GetDisapprovedAdsByAccount busca todos os anúncios reprovados de uma conta,
// seguindo a paginação da Graph API até o fim.
func (c *MetaClient) GetDisapprovedAdsByAccount(accountID string) ([]metadomain.DisapprovedAd, error) {
	baseURL := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,campaign_id,adset_id,effective_status,updated_time,ad_review_feedback")
	params.Add("effective_status", "['DISAPPROVED']")
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	ads := make([]metadomain.DisapprovedAd, 0)
	for requestURL != "" {
		page, next, err := c.getDisapprovedAdsPage(requestURL)
		if err != nil {
			return nil, err
		}

		ads = append(ads, page...)
		requestURL = next
	}

	return ads, nil
}

func (c *MetaClient) getDisapprovedAdsPage(requestURL string) ([]metadomain.DisapprovedAd, string, error) {
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, "", err
	}

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, "", err
	}

	var response ResponseDisapprovedAds
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, "", err
	}

	return response.Data, response.Paging.Next, nil
}
