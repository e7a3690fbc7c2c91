package domain

import (
	"time"
)

// BackupInfo descreve um snapshot do arquivo do banco no diretório de backups.
type BackupInfo struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	Path      string    `json:"-"`
	Size      int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}
