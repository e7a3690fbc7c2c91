package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/vfg2006/ads-monitor-api/internal/config"
)

type Conn interface {
	Queryer
	Begin(context.Context) (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	Path() string
	Reopen(context.Context) error
}

type Connection struct {
	*sql.DB
	path string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório do banco de dados: %w", err)
	}

	db, err := openDatabase(ctx, cfg.Path)
	if err != nil {
		return nil, err
	}

	conn := &Connection{DB: db, path: cfg.Path}
	if err := conn.createSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return conn, nil
}

func openDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	// Uma única conexão evita erros "database is locked" do SQLite
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao configurar busy_timeout: %w", err)
	}

	// O backup copia o arquivo do banco inteiro; o modo TRUNCATE mantém todo
	// o estado em um único arquivo, sem WAL paralelo.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = TRUNCATE"); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao configurar journal_mode: %w", err)
	}

	return db, nil
}

// Reopen fecha a conexão atual e abre uma nova sobre o mesmo caminho. Uma
// restauração troca o arquivo por rename, e a conexão antiga continuaria
// lendo o inode anterior pelo descritor aberto. O chamador precisa deter
// exclusividade sobre o banco enquanto Reopen roda.
func (c *Connection) Reopen(ctx context.Context) error {
	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("erro ao fechar conexão anterior: %w", err)
	}

	db, err := openDatabase(ctx, c.path)
	if err != nil {
		return fmt.Errorf("erro ao reabrir banco de dados: %w", err)
	}

	c.DB = db
	return c.createSchema(ctx)
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Path retorna o caminho do arquivo que sustenta o banco. Usado pelo
// gerenciador de backups para copiar e restaurar o estado completo.
func (c *Connection) Path() string {
	return c.path
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if err := tx.Rollback(); err != nil {
			return err
		}
		return err
	}

	return tx.Commit()
}

func (c *Connection) createSchema(ctx context.Context) error {
	// last_modified e created_at são TEXT, não DATETIME: com afinidade de
	// data o driver converte o valor no scan e a string de largura fixa
	// gravada pelo repositório não volta intacta.
	const schema = `
	CREATE TABLE IF NOT EXISTS ads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		team TEXT NOT NULL,
		campaign TEXT NOT NULL DEFAULT '',
		adgroup TEXT NOT NULL DEFAULT '',
		ad_id TEXT NOT NULL UNIQUE,
		ad_name TEXT NOT NULL DEFAULT '',
		account_name TEXT NOT NULL DEFAULT '',
		reject_reason TEXT NOT NULL DEFAULT '',
		planner_comment TEXT,
		executor_comment TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		last_modified TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_ads_team ON ads (team);
	CREATE INDEX IF NOT EXISTS idx_ads_is_active ON ads (is_active);
	CREATE INDEX IF NOT EXISTS idx_ads_created_at ON ads (created_at);
	`

	if _, err := c.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("erro ao criar schema do banco de dados: %w", err)
	}

	return nil
}
