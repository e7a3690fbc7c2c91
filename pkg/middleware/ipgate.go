package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/vfg2006/ads-monitor-api/internal/config"
	"github.com/vfg2006/ads-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
)

const accessDeniedMessage = "Access denied. Your IP is not in the allowed list."

// IPGate avalia cada requisição contra a lista de IPs e faixas CIDR
// permitidos. Lista vazia libera qualquer origem. Uma origem negada recebe
// sempre a mesma resposta fixa e nunca alcança os handlers de negócio.
type IPGate struct {
	allowedIPs map[string]struct{}
	allowedNet []*net.IPNet
}

func NewIPGate(cfg config.AccessGate) *IPGate {
	gate := &IPGate{
		allowedIPs: make(map[string]struct{}),
		allowedNet: make([]*net.IPNet, 0, len(cfg.AllowedIPRanges)),
	}

	for _, ip := range cfg.AllowedIPs {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			gate.allowedIPs[ip] = struct{}{}
		}
	}

	for _, cidr := range cfg.AllowedIPRanges {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			log.L.WithFields(log.Fields{
				"cidr":  cidr,
				"error": err.Error(),
			}).Warn("Faixa CIDR inválida na configuração, ignorando")
			continue
		}
		gate.allowedNet = append(gate.allowedNet, network)
	}

	return gate
}

// Middleware retorna o constructor do gate para a cadeia do alice.
func (g *IPGate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := ClientIP(r)

			if !g.Allowed(clientIP) {
				log.L.WithFields(log.Fields{
					"client_ip": clientIP,
					"path":      r.URL.Path,
				}).Warn("Acesso negado pelo gate de IP")

				apiErrors.WriteError(w, apiErrors.ErrAccessDenied, accessDeniedMessage, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Allowed decide se um endereço pode passar. Configuração vazia admite
// qualquer origem.
func (g *IPGate) Allowed(ip string) bool {
	if len(g.allowedIPs) == 0 && len(g.allowedNet) == 0 {
		return true
	}

	if _, ok := g.allowedIPs[ip]; ok {
		return true
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}

	for _, network := range g.allowedNet {
		if network.Contains(parsed) {
			return true
		}
	}

	return false
}

// ClientIP extrai o endereço de quem chama: a primeira entrada do
// X-Forwarded-For quando o proxy confiável a injeta, senão o endereço do
// peer na conexão.
func ClientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
