package reconciling

import (
	"errors"
	"fmt"
)

// Erros específicos do ciclo de reconciliação
var (
	// Erros de concorrência
	ErrSyncAlreadyRunning = errors.New("synchronization cycle already in progress")

	// Erros de busca remota
	ErrRemoteFetch = errors.New("error fetching rejected ads from Meta")

	// Erros de banco de dados
	ErrStoreTransaction = errors.New("store transaction failed, no partial state retained")

	// Erros de comentários
	ErrAdNotFound = errors.New("ad not found")
)

// SyncError é um erro com contexto adicional de um ciclo de sincronização
type SyncError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError cria um novo SyncError
func NewSyncError(err error, code string, details string) *SyncError {
	return &SyncError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
