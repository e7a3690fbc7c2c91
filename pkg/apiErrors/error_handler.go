package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros do gate de acesso (GATE)
	ErrAccessDenied = "GATE_001" // Origem fora da lista de permissões

	// Erros de sincronização (SYNC)
	ErrSyncAlreadyRunning = "SYNC_001" // Ciclo já em andamento
	ErrSyncFailed         = "SYNC_002" // Ciclo abortado

	// Erros de anúncios (ADS)
	ErrAdNotFound = "ADS_001" // Anúncio não encontrado

	// Erros de backup (BKP)
	ErrNoBackupFound = "BKP_001" // Nenhum backup no diretório
	ErrBackupFailed  = "BKP_002" // Falha ao criar backup
	ErrRestoreFailed = "BKP_003" // Falha ao restaurar backup

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrAccessDenied:        http.StatusForbidden,
	ErrSyncAlreadyRunning:  http.StatusConflict,
	ErrSyncFailed:          http.StatusInternalServerError,
	ErrAdNotFound:          http.StatusNotFound,
	ErrNoBackupFound:       http.StatusNotFound,
	ErrBackupFailed:        http.StatusInternalServerError,
	ErrRestoreFailed:       http.StatusInternalServerError,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
