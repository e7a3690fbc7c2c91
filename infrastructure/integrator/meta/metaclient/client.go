package metaclient

import (
	"fmt"
	"io"
	"net/http"

	metadomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-monitor-api/internal/config"
)

type Client interface {
	GetDisapprovedAdsByAccount(accountID string) ([]metadomain.DisapprovedAd, error)
	GetCampaignName(campaignID string) (string, error)
	GetAdSetName(adSetID string) (string, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &MetaClient{
		Cfg: cfg,
		// Timeout limita toda chamada remota: uma conta pendurada não pode
		// segurar o ciclo de sincronização indefinidamente.
		httpClient: &http.Client{Timeout: cfg.Meta.RequestTimeout},
	}
	return client
}

// handleResponse lê o corpo da resposta e transforma status não-200 em erro.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Graph API retornou status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
