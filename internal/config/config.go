package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	AccessGate AccessGate `mapstructure:",squash"`
	AdSync     AdSync     `mapstructure:",squash"`
	Backup     Backup     `mapstructure:",squash"`

	// AdAccounts mapeia equipe -> (nome da conta -> ID da conta no Meta).
	// Carregado uma única vez no startup a partir do arquivo JSON apontado
	// por AD_ACCOUNTS_FILE e passado explicitamente para o integrador.
	AdAccounts map[string]map[string]string `mapstructure:"-"`

	AdAccountsFile string `mapstructure:"ad_accounts_file"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	Path string `mapstructure:"database_path"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"meta_url"`
	Version        string        `mapstructure:"meta_version"`
	AccessToken    string        `mapstructure:"meta_access_token"`
	AppID          string        `mapstructure:"meta_app_id"`
	AppSecret      string        `mapstructure:"meta_app_secret"`
	RequestTimeout time.Duration `mapstructure:"meta_request_timeout"`
}

type AccessGate struct {
	AllowedIPs      []string `mapstructure:"allowed_ips"`
	AllowedIPRanges []string `mapstructure:"allowed_ip_ranges"`
}

type AdSync struct {
	CronSchedule         string `mapstructure:"ad_sync_cron"`
	Enabled              bool   `mapstructure:"ad_sync_enabled"`
	MaxConcurrentFetches int    `mapstructure:"ad_sync_max_concurrent_fetches"`
}

type Backup struct {
	CronSchedule string `mapstructure:"backup_cron"`
	Enabled      bool   `mapstructure:"backup_enabled"`
	Dir          string `mapstructure:"backup_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_PATH", "./data/ads_monitor.db")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")

	// Lista vazia significa acesso liberado para qualquer origem
	viper.SetDefault("ALLOWED_IPS", "")
	viper.SetDefault("ALLOWED_IP_RANGES", "")

	viper.SetDefault("AD_SYNC_CRON", "30 * * * *") // Toda hora, aos 30 minutos
	viper.SetDefault("AD_SYNC_ENABLED", true)
	viper.SetDefault("AD_SYNC_MAX_CONCURRENT_FETCHES", 3)

	viper.SetDefault("BACKUP_CRON", "0 0 * * *") // Todos os dias à meia-noite
	viper.SetDefault("BACKUP_ENABLED", true)
	viper.SetDefault("BACKUP_DIR", "./backups")

	viper.SetDefault("AD_ACCOUNTS_FILE", "./ad_accounts.json")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.AccessGate.AllowedIPs = trimEmpty(config.AccessGate.AllowedIPs)
	config.AccessGate.AllowedIPRanges = trimEmpty(config.AccessGate.AllowedIPRanges)

	config.AdAccounts, err = loadAdAccounts(config.AdAccountsFile)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadAdAccounts carrega o mapeamento equipe -> contas de anúncio de um
// arquivo JSON. Arquivo ausente não é fatal: o serviço sobe sem contas e a
// sincronização apenas não encontra nada para buscar.
func loadAdAccounts(path string) (map[string]map[string]string, error) {
	accounts := make(map[string]map[string]string)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Warnf("Arquivo de contas de anúncio não encontrado em %s, iniciando sem contas", path)
			return accounts, nil
		}
		return nil, fmt.Errorf("erro ao ler arquivo de contas de anúncio: %w", err)
	}

	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("erro ao decodificar arquivo de contas de anúncio: %w", err)
	}

	logrus.WithField("teams", len(accounts)).Info("Mapeamento de contas de anúncio carregado")
	return accounts, nil
}

func trimEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
