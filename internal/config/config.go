package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-survey/internal/domain"
)

// DEFAULT_SURVEY_CONTRACT is the survey deployed on Sepolia that is read when no contract is configured
const DEFAULT_SURVEY_CONTRACT = "0x31d695C8a1a50340C3005FA53846019991D5b2E8"

// DEFAULT_SEPOLIA_RPC_URL is the public Sepolia endpoint used when no chain is configured
const DEFAULT_SEPOLIA_RPC_URL = "https://ethereum-sepolia-rpc.publicnode.com"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	StreamName     string        `mapstructure:"stream_name"`
	StreamMaxAge   time.Duration `mapstructure:"stream_max_age"`
}

// ChainConfig holds the RPC endpoint of one chain
type ChainConfig struct {
	Chain  domain.Chain `mapstructure:"chain"`
	RPCURL string       `mapstructure:"rpc_url"`
}

// AggregatorConfig holds poll aggregation configuration
type AggregatorConfig struct {
	MaxConcurrency int `mapstructure:"max_concurrency"`
}

// VoteConfig holds vote submission configuration
type VoteConfig struct {
	// Chain is the only chain votes are accepted on
	Chain               domain.Chain  `mapstructure:"chain"`
	PrivateKey          string        `mapstructure:"private_key"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
	StatusTTL           time.Duration `mapstructure:"status_ttl"`
}

// AIConfig holds the AI summary service configuration
type AIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RefresherConfig holds the periodic refresh configuration
type RefresherConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins restricts CORS, empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the survey API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig            `mapstructure:"server"`
	Auth       AuthConfig              `mapstructure:"auth"`
	Database   DatabaseConfig          `mapstructure:"database"`
	NATS       NATSConfig              `mapstructure:"nats"`
	Chains     []ChainConfig           `mapstructure:"chains"`
	Contracts  []domain.SurveyContract `mapstructure:"contracts"`
	Aggregator AggregatorConfig        `mapstructure:"aggregator"`
	Vote       VoteConfig              `mapstructure:"vote"`
	AI         AIConfig                `mapstructure:"ai"`
	Refresher  RefresherConfig         `mapstructure:"refresher"`
}

// LoadAPIConfig loads configuration for the survey API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("survey-api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.subject_prefix", "polls.events")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "survey-api")
	v.SetDefault("nats.stream_name", "POLLS")
	v.SetDefault("nats.stream_max_age", "72h")
	v.SetDefault("chains", []map[string]interface{}{
		{"chain": string(domain.ChainEthereumSepolia), "rpc_url": DEFAULT_SEPOLIA_RPC_URL},
	})
	v.SetDefault("contracts", []map[string]interface{}{
		{"address": DEFAULT_SURVEY_CONTRACT, "chain": string(domain.ChainEthereumSepolia)},
	})
	v.SetDefault("vote.chain", string(domain.ChainEthereumSepolia))
	v.SetDefault("vote.receipt_poll_interval", "4s")
	v.SetDefault("vote.status_ttl", domain.STATUS_MESSAGE_TTL.String())
	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("ai.timeout", "30s")
	v.SetDefault("refresher.enabled", false)
	v.SetDefault("refresher.interval", "1m")

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// validate checks the chain and contract lists
func (c *APIConfig) validate() error {
	for _, contract := range c.Contracts {
		if !contract.Valid() {
			return fmt.Errorf("invalid survey contract %q on %q", contract.Address, contract.Chain)
		}
	}
	for _, chain := range c.Chains {
		if !chain.Chain.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrUnsupportedChain, chain.Chain)
		}
		if chain.RPCURL == "" {
			return fmt.Errorf("chains.rpc_url is required for %s", chain.Chain)
		}
	}
	if !c.Vote.Chain.Valid() {
		return fmt.Errorf("%w: vote.chain %q", domain.ErrUnsupportedChain, c.Vote.Chain)
	}
	return nil
}

// RPCURL returns the RPC endpoint configured for a chain
func (c *APIConfig) RPCURL(chain domain.Chain) (string, bool) {
	for _, cc := range c.Chains {
		if cc.Chain == chain {
			return cc.RPCURL, true
		}
	}
	return "", false
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/survey-api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_SURVEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all scalar environment variables.
// Chains and contracts are lists and only come from the config file or defaults.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.stream_name",
		"nats.stream_max_age",
		// Aggregator
		"aggregator.max_concurrency",
		// Vote
		"vote.chain",
		"vote.private_key",
		"vote.receipt_poll_interval",
		"vote.status_ttl",
		// AI
		"ai.api_key",
		"ai.model",
		"ai.base_url",
		"ai.timeout",
		// Refresher
		"refresher.enabled",
		"refresher.interval",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string, empty when no host is configured
func (c *DatabaseConfig) DSN() string {
	if c.Host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
