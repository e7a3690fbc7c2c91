package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-monitor-api/internal/config"
)

func TestIPGate_Allowed(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.AccessGate
		ip      string
		allowed bool
	}{
		{
			name:    "Configuração vazia admite qualquer origem",
			cfg:     config.AccessGate{},
			ip:      "203.0.113.7",
			allowed: true,
		},
		{
			name:    "IP exato na lista",
			cfg:     config.AccessGate{AllowedIPs: []string{"203.0.113.7"}},
			ip:      "203.0.113.7",
			allowed: true,
		},
		{
			name:    "IP fora da lista",
			cfg:     config.AccessGate{AllowedIPs: []string{"203.0.113.7"}},
			ip:      "203.0.113.8",
			allowed: false,
		},
		{
			name:    "IP dentro da faixa CIDR",
			cfg:     config.AccessGate{AllowedIPRanges: []string{"10.1.0.0/16"}},
			ip:      "10.1.200.4",
			allowed: true,
		},
		{
			name:    "IP fora da faixa CIDR",
			cfg:     config.AccessGate{AllowedIPRanges: []string{"10.1.0.0/16"}},
			ip:      "10.2.0.1",
			allowed: false,
		},
		{
			name: "Lista e faixa combinadas",
			cfg: config.AccessGate{
				AllowedIPs:      []string{"203.0.113.7"},
				AllowedIPRanges: []string{"10.1.0.0/16"},
			},
			ip:      "10.1.0.9",
			allowed: true,
		},
		{
			name:    "Faixa CIDR inválida é ignorada sem derrubar o gate",
			cfg:     config.AccessGate{AllowedIPRanges: []string{"isso-não-é-cidr", "10.1.0.0/16"}},
			ip:      "10.1.0.9",
			allowed: true,
		},
		{
			name:    "Origem não parseável com lista configurada é negada",
			cfg:     config.AccessGate{AllowedIPRanges: []string{"10.1.0.0/16"}},
			ip:      "não-é-ip",
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewIPGate(tt.cfg)
			assert.Equal(t, tt.allowed, gate.Allowed(tt.ip))
		})
	}
}

func TestIPGate_Middleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Origem negada recebe 403 com corpo fixo e não alcança o handler", func(t *testing.T) {
		gate := NewIPGate(config.AccessGate{AllowedIPs: []string{"203.0.113.7"}})

		reached := false
		handler := gate.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
		req.RemoteAddr = "198.51.100.1:4444"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "GATE_001")
		assert.Contains(t, rec.Body.String(), accessDeniedMessage)
		assert.False(t, reached)
	})

	t.Run("Origem permitida passa para o handler", func(t *testing.T) {
		gate := NewIPGate(config.AccessGate{AllowedIPs: []string{"198.51.100.1"}})
		handler := gate.Middleware()(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
		req.RemoteAddr = "198.51.100.1:4444"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("X-Forwarded-For tem precedência sobre o endereço do peer", func(t *testing.T) {
		gate := NewIPGate(config.AccessGate{AllowedIPs: []string{"203.0.113.7"}})
		handler := gate.Middleware()(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/v1/ads", nil)
		req.RemoteAddr = "10.0.0.1:4444"
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestClientIP(t *testing.T) {
	t.Run("Usa o endereço do peer sem X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.1:4444"
		assert.Equal(t, "198.51.100.1", ClientIP(req))
	})

	t.Run("Usa a primeira entrada do X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", " 203.0.113.7 , 10.0.0.1")
		assert.Equal(t, "203.0.113.7", ClientIP(req))
	})
}
