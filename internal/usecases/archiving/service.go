package archiving

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

const (
	backupPrefix        = "db_backup_"
	beforeRestorePrefix = "db_backup_before_restore_"
	backupExt           = ".db"

	// Largura fixa e monotônico: a ordenação dos nomes de arquivo segue a
	// ordenação temporal. Ainda assim a seleção do mais recente compara os
	// timestamps interpretados, não as strings.
	timestampLayout = "20060102_150405"
)

// Archiver rotaciona snapshots do arquivo do banco e restaura o estado
// completo a partir do snapshot mais recente ou de um upload arbitrário.
type Archiver interface {
	Backup() (*domain.BackupInfo, error)
	RestoreLatest(ctx context.Context) (*domain.BackupInfo, error)
	RestoreFromBytes(ctx context.Context, content []byte) error
	ListBackups() ([]*domain.BackupInfo, error)
	LatestBackup() (*domain.BackupInfo, error)
}

// LiveDatabase é a visão deste serviço sobre a conexão viva: o caminho do
// arquivo que a sustenta e a reabertura depois que esse arquivo é trocado.
// Sem reabrir, a conexão antiga seguiria lendo o inode pré-restore.
type LiveDatabase interface {
	Path() string
	Reopen(ctx context.Context) error
}

type Service struct {
	db        LiveDatabase
	dbPath    string
	backupDir string

	// restoreGate é compartilhado com o motor de reconciliação: Backup segura
	// leitura (pode rodar junto com um ciclo), restores seguram escrita
	// exclusiva. Substituir o arquivo do banco durante um commit corromperia
	// o estado.
	restoreGate *sync.RWMutex
}

func NewService(db LiveDatabase, backupDir string, restoreGate *sync.RWMutex) *Service {
	return &Service{
		db:          db,
		dbPath:      db.Path(),
		backupDir:   backupDir,
		restoreGate: restoreGate,
	}
}

// Backup copia o arquivo do banco para um snapshot nomeado com o timestamp
// atual em granularidade de segundo. Nunca falha silenciosamente.
func (s *Service) Backup() (*domain.BackupInfo, error) {
	s.restoreGate.RLock()
	defer s.restoreGate.RUnlock()

	if _, err := os.Stat(s.dbPath); os.IsNotExist(err) {
		return nil, ErrLiveDatabaseAbsent
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de backups: %w", err)
	}

	fileName := backupPrefix + time.Now().Format(timestampLayout) + backupExt
	destPath := filepath.Join(s.backupDir, fileName)

	if err := copyFile(s.dbPath, destPath); err != nil {
		return nil, fmt.Errorf("erro ao copiar arquivo do banco para %s: %w", destPath, err)
	}

	info, err := s.backupInfo(fileName)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"backup_file": fileName,
		"size_bytes":  info.Size,
	}).Info("Backup do banco de dados criado")

	return info, nil
}

// RestoreLatest substitui o arquivo do banco pelo snapshot mais recente.
// "Mais recente" é decidido pelo timestamp interpretado do nome do arquivo;
// cópias de segurança pré-restore não participam da seleção.
func (s *Service) RestoreLatest(ctx context.Context) (*domain.BackupInfo, error) {
	s.restoreGate.Lock()
	defer s.restoreGate.Unlock()

	latest, err := s.latestRegularBackup()
	if err != nil {
		return nil, err
	}

	if err := s.replaceLiveFile(latest.Path); err != nil {
		return nil, fmt.Errorf("erro ao restaurar backup %s: %w", latest.FileName, err)
	}

	if err := s.db.Reopen(ctx); err != nil {
		return nil, fmt.Errorf("erro ao reabrir banco após restore: %w", err)
	}

	logrus.WithField("backup_file", latest.FileName).Info("Banco de dados restaurado do backup mais recente")
	return latest, nil
}

// RestoreFromBytes restaura o banco a partir de um conteúdo enviado pelo
// operador. O conteúdo vai primeiro para um arquivo temporário; uma cópia de
// segurança do arquivo vivo é tirada antes de qualquer sobrescrita; a troca
// final é feita por rename, nunca deixando um arquivo truncado.
func (s *Service) RestoreFromBytes(ctx context.Context, content []byte) error {
	s.restoreGate.Lock()
	defer s.restoreGate.Unlock()

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de backups: %w", err)
	}

	tempFile, err := os.CreateTemp(s.backupDir, "upload_*.tmp")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(content); err != nil {
		tempFile.Close()
		return fmt.Errorf("erro ao gravar conteúdo enviado: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("erro ao fechar arquivo temporário: %w", err)
	}

	// Cópia de segurança antes de tocar o arquivo vivo: é o ponto de desfazer
	// caso o conteúdo enviado se revele inválido.
	if _, err := os.Stat(s.dbPath); err == nil {
		safetyName := beforeRestorePrefix + time.Now().Format(timestampLayout) + backupExt
		safetyPath := filepath.Join(s.backupDir, safetyName)
		if err := copyFile(s.dbPath, safetyPath); err != nil {
			return fmt.Errorf("erro ao criar cópia de segurança pré-restore: %w", err)
		}
		logrus.WithField("backup_file", safetyName).Info("Cópia de segurança pré-restore criada")
	}

	if err := s.replaceLiveFile(tempPath); err != nil {
		return fmt.Errorf("erro ao substituir arquivo do banco: %w", err)
	}

	if err := s.db.Reopen(ctx); err != nil {
		return fmt.Errorf("erro ao reabrir banco após restore: %w", err)
	}

	logrus.Info("Banco de dados restaurado a partir de conteúdo enviado")
	return nil
}

// ListBackups enumera os snapshots regulares, do mais recente para o mais
// antigo.
func (s *Service) ListBackups() ([]*domain.BackupInfo, error) {
	backups, err := s.regularBackups()
	if err != nil {
		return nil, err
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})

	return backups, nil
}

// LatestBackup retorna o snapshot regular mais recente sem restaurá-lo.
func (s *Service) LatestBackup() (*domain.BackupInfo, error) {
	return s.latestRegularBackup()
}

func (s *Service) latestRegularBackup() (*domain.BackupInfo, error) {
	backups, err := s.regularBackups()
	if err != nil {
		return nil, err
	}
	if len(backups) == 0 {
		return nil, ErrNoBackupFound
	}

	latest := backups[0]
	for _, b := range backups[1:] {
		if b.CreatedAt.After(latest.CreatedAt) {
			latest = b
		}
	}

	return latest, nil
}

func (s *Service) regularBackups() ([]*domain.BackupInfo, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.BackupInfo{}, nil
		}
		return nil, fmt.Errorf("erro ao ler diretório de backups: %w", err)
	}

	backups := make([]*domain.BackupInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupExt) {
			continue
		}
		if strings.HasPrefix(name, beforeRestorePrefix) {
			continue
		}

		info, err := s.backupInfo(name)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"backup_file": name,
				"error":       err.Error(),
			}).Warn("Arquivo no diretório de backups ignorado")
			continue
		}

		backups = append(backups, info)
	}

	return backups, nil
}

func (s *Service) backupInfo(fileName string) (*domain.BackupInfo, error) {
	raw := strings.TrimSuffix(strings.TrimPrefix(fileName, backupPrefix), backupExt)
	createdAt, err := time.ParseInLocation(timestampLayout, raw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("nome de backup fora do padrão %s: %w", backupPrefix+timestampLayout+backupExt, err)
	}

	path := filepath.Join(s.backupDir, fileName)
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao inspecionar backup: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	return &domain.BackupInfo{
		ID:        id,
		FileName:  fileName,
		Path:      path,
		Size:      stat.Size(),
		CreatedAt: createdAt,
	}, nil
}

// replaceLiveFile troca o arquivo vivo pelo conteúdo de srcPath de forma
// atômica: copia para um caminho lateral no mesmo diretório e faz rename por
// cima. Falha em qualquer etapa deixa o arquivo original intacto.
func (s *Service) replaceLiveFile(srcPath string) error {
	sidePath := s.dbPath + ".restore-tmp"

	if err := copyFile(srcPath, sidePath); err != nil {
		os.Remove(sidePath)
		return err
	}

	if err := os.Rename(sidePath, s.dbPath); err != nil {
		os.Remove(sidePath)
		return err
	}

	return nil
}

func copyFile(srcPath, destPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		return err
	}

	if err := dest.Sync(); err != nil {
		dest.Close()
		return err
	}

	return dest.Close()
}
