package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HTTPAddr string `yaml:"http_addr"`
	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
	HTTPS    bool   `yaml:"https"` // adds HSTS header

	Storage string `yaml:"storage" validate:"oneof=postgres memory"`
	PgPool  PgPool `yaml:"pg_pool"`

	JwtTTL         time.Duration `yaml:"jwt_ttl" validate:"required"`
	AllowedOrigins []string      `yaml:"allowed_origins"`

	MaxThreadTitleLen int `yaml:"max_thread_title_len" validate:"gt=0"`
	MaxThreadBodyLen  int `yaml:"max_thread_body_len" validate:"gt=0"`
	MaxCommentLen     int `yaml:"max_comment_len" validate:"gt=0"`
	// replace content of soft-deleted comments in thread responses
	MaskDeletedComments bool `yaml:"mask_deleted_comments"`

	CommentRateLimit RateLimit `yaml:"comment_rate_limit"`
}

type PgPool struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// RateLimit is a token bucket: Rate tokens per second, up to Burst.
type RateLimit struct {
	Rate  float64 `yaml:"rate" validate:"gte=0"`
	Burst int     `yaml:"burst" validate:"gte=0"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key" validate:"required"`
	Pg     Pg     `yaml:"pg"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

// DSN returns lib/pq connection string
func (p *Pg) DSN() string {
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Dbname, sslMode)
}

func loadPath(configPath string, output interface{}) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.UnmarshalStrict(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml and private.yaml from configFolder. An optional .env in the
// same folder is loaded first; FORUM_* environment variables override file values.
func Load(configFolder string) (*Config, error) {
	if err := godotenv.Load(path.Join(configFolder, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("can't load .env: %w", err)
	}

	var cfg Config
	if err := loadPath(path.Join(configFolder, "public.yaml"), &cfg.Public); err != nil {
		return nil, err
	}
	if err := loadPath(path.Join(configFolder, "private.yaml"), &cfg.Private); err != nil {
		return nil, err
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err)
	}
	return cfg
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("FORUM_HTTP_ADDR"); v != "" {
		cfg.Public.HTTPAddr = v
	}
	if v := os.Getenv("FORUM_STORAGE"); v != "" {
		cfg.Public.Storage = v
	}
	if v := os.Getenv("FORUM_JWT_KEY"); v != "" {
		cfg.Private.JwtKey = v
	}
	if v := os.Getenv("FORUM_PG_HOST"); v != "" {
		cfg.Private.Pg.Host = v
	}
	if v := os.Getenv("FORUM_PG_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FORUM_PG_PORT must be an integer: %w", err)
		}
		cfg.Private.Pg.Port = port
	}
	if v := os.Getenv("FORUM_PG_PASSWORD"); v != "" {
		cfg.Private.Pg.Password = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Public.HTTPAddr == "" {
		cfg.Public.HTTPAddr = ":8080"
	}
	if cfg.Public.Storage == "" {
		cfg.Public.Storage = StoragePostgres
	}
	if cfg.Public.LogLevel == "" {
		cfg.Public.LogLevel = "info"
	}
	if cfg.Private.Pg.Port == 0 {
		cfg.Private.Pg.Port = 5432
	}
}

func validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Public.Storage == StoragePostgres {
		pg := cfg.Private.Pg
		if pg.Host == "" || pg.User == "" || pg.Dbname == "" {
			return errors.New("invalid config: pg host, user and dbname are required for postgres storage")
		}
	}
	return nil
}
