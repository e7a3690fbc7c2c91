package meta

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-monitor-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

const updatedTimeLayout = "2006-01-02T15:04:05-0700"

// ErrAllAccountsFailed indica que nenhuma conta configurada pôde ser
// consultada. O ciclo de reconciliação aborta nesse caso para não desativar
// todos os anúncios por causa de uma indisponibilidade do Meta.
var ErrAllAccountsFailed = errors.New("all configured ad accounts failed to fetch")

// FetchResult é o lote de um ciclo: os anúncios reprovados que puderam ser
// buscados, mais a contagem de contas consultadas e com falha.
type FetchResult struct {
	Ads            []*domain.RejectedAd
	AccountsTotal  int
	AccountsFailed int
}

type AdFetcher interface {
	FetchDisapprovedAds(ctx context.Context) (*FetchResult, error)
}

type Service struct {
	cfg    *config.Config
	client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

type accountRef struct {
	team string
	name string
	id   string
}

// FetchDisapprovedAds percorre todas as contas de todas as equipes e monta o
// lote do ciclo. Falhas por conta são registradas e excluídas, nunca
// propagadas, exceto quando todas as contas falham.
func (s *Service) FetchDisapprovedAds(ctx context.Context) (*FetchResult, error) {
	accounts := s.listAccounts()
	if len(accounts) == 0 {
		logrus.Warn("Nenhuma conta de anúncio configurada para sincronização")
		return &FetchResult{Ads: []*domain.RejectedAd{}}, nil
	}

	maxConcurrent := s.cfg.AdSync.MaxConcurrentFetches
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	names := newNameCache(s.client)

	var wg sync.WaitGroup
	var mu sync.Mutex
	result := &FetchResult{
		Ads:           make([]*domain.RejectedAd, 0),
		AccountsTotal: len(accounts),
	}

	for _, account := range accounts {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc accountRef) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			ads, err := s.fetchAccount(acc, names)
			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				result.AccountsFailed++
				return
			}
			result.Ads = append(result.Ads, ads...)
		}(account)
	}

	wg.Wait()

	if result.AccountsFailed == result.AccountsTotal {
		return nil, ErrAllAccountsFailed
	}

	logrus.WithFields(logrus.Fields{
		"ads":             len(result.Ads),
		"accounts_total":  result.AccountsTotal,
		"accounts_failed": result.AccountsFailed,
	}).Info("Busca de anúncios reprovados concluída")

	return result, nil
}

func (s *Service) fetchAccount(acc accountRef, names *nameCache) ([]*domain.RejectedAd, error) {
	rawAds, err := s.client.GetDisapprovedAdsByAccount(acc.id)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"team":         acc.team,
			"account_name": acc.name,
			"account_id":   acc.id,
			"error":        err.Error(),
		}).Error("Erro ao buscar anúncios reprovados para a conta")
		return nil, err
	}

	if len(rawAds) == 0 {
		logrus.WithFields(logrus.Fields{
			"team":         acc.team,
			"account_name": acc.name,
		}).Warn("Conta não retornou anúncios reprovados neste ciclo")
		return []*domain.RejectedAd{}, nil
	}

	ads := make([]*domain.RejectedAd, 0, len(rawAds))
	for _, raw := range rawAds {
		ads = append(ads, s.toRejectedAd(acc, raw, names))
	}

	return ads, nil
}

func (s *Service) toRejectedAd(acc accountRef, raw metadomain.DisapprovedAd, names *nameCache) *domain.RejectedAd {
	lastModified, err := time.Parse(updatedTimeLayout, raw.UpdatedTime)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id":        raw.ID,
			"updated_time": raw.UpdatedTime,
		}).Warn("updated_time em formato inesperado, usando horário atual")
		lastModified = time.Now()
	}

	return &domain.RejectedAd{
		Team:         acc.team,
		Campaign:     names.campaignName(raw.CampaignID),
		AdGroup:      names.adSetName(raw.AdSetID),
		AdID:         raw.ID,
		AdName:       raw.Name,
		AccountName:  acc.name,
		RejectReason: rejectReason(raw.AdReviewFeedback),
		LastModified: lastModified,
	}
}

func (s *Service) listAccounts() []accountRef {
	accounts := make([]accountRef, 0)
	for team, teamAccounts := range s.cfg.AdAccounts {
		for name, id := range teamAccounts {
			if id == "" {
				continue
			}
			accounts = append(accounts, accountRef{team: team, name: name, id: id})
		}
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].id < accounts[j].id
	})

	return accounts
}

// rejectReason extrai o primeiro código de motivo do feedback de revisão.
// Chaves ordenadas para o resultado ser determinístico entre ciclos.
func rejectReason(feedback *metadomain.AdReviewFeedback) string {
	if feedback == nil || len(feedback.Global) == 0 {
		return "Unknown"
	}

	keys := make([]string, 0, len(feedback.Global))
	for key := range feedback.Global {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys[0]
}

// nameCache memoriza nomes de campanhas e conjuntos de anúncios dentro de um
// ciclo, evitando repetir chamadas à Graph API para cada anúncio do mesmo
// grupo. Falhas de resolução viram nome vazio, nunca abortam o ciclo.
type nameCache struct {
	client    metaclient.Client
	mu        sync.Mutex
	campaigns map[string]string
	adSets    map[string]string
}

func newNameCache(client metaclient.Client) *nameCache {
	return &nameCache{
		client:    client,
		campaigns: make(map[string]string),
		adSets:    make(map[string]string),
	}
}

func (n *nameCache) campaignName(campaignID string) string {
	return n.resolve(n.campaigns, campaignID, n.client.GetCampaignName)
}

func (n *nameCache) adSetName(adSetID string) string {
	return n.resolve(n.adSets, adSetID, n.client.GetAdSetName)
}

func (n *nameCache) resolve(cache map[string]string, id string, lookup func(string) (string, error)) string {
	if id == "" {
		return ""
	}

	n.mu.Lock()
	name, ok := cache[id]
	n.mu.Unlock()
	if ok {
		return name
	}

	name, err := lookup(id)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": id,
			"error":     err.Error(),
		}).Warn("Erro ao resolver nome na Graph API")
		name = ""
	}

	n.mu.Lock()
	cache[id] = name
	n.mu.Unlock()

	return name
}
