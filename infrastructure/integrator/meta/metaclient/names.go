package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/domain"
)

// GetCampaignName resolve o nome de uma campanha pelo ID.
func (c *MetaClient) GetCampaignName(campaignID string) (string, error) {
	return c.getObjectName(campaignID)
}

// GetAdSetName resolve o nome de um conjunto de anúncios pelo ID.
func (c *MetaClient) GetAdSetName(adSetID string) (string, error) {
	return c.getObjectName(adSetID)
}

func (c *MetaClient) getObjectName(objectID string) (string, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, objectID)

	params := url.Values{}
	params.Add("fields", "name")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequest(http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return "", err
	}

	body, err := c.handleResponse(resp)
	if err != nil {
		return "", err
	}

	var object metadomain.NamedObject
	if err := json.Unmarshal(body, &object); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	return object.Name, nil
}
