package archiving

import (
	"errors"
)

// Erros específicos do gerenciamento de backups
var (
	ErrNoBackupFound      = errors.New("no backup files found")
	ErrLiveDatabaseAbsent = errors.New("live database file does not exist")
	ErrGenerateID         = errors.New("error generating backup ID")
)
