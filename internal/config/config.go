package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env           string        `yaml:"env" env:"APP_ENV" env-default:"dev"`
	Port          string        `yaml:"port" env:"PORT" env-default:"3001"`
	Origins       []string      `yaml:"origins" env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:3000,http://frontend:3000"`
	ServiceName   string        `yaml:"service_name" env:"SERVICE_NAME" env-default:"JatayuNetra Backend"`
	SessionSecret string        `yaml:"session_secret" env:"SESSION_SECRET"`
	TokenTTL      time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
	DBURL         string        `yaml:"db_dsn" env:"DB_DSN"`       // optional identity source
	UsersFile     string        `yaml:"users_file" env:"USERS_FILE"` // optional identity source
	BcryptCost    int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"12"`
}

// ClientConfig drives the command-line client.
type ClientConfig struct {
	APIURL      string        `env:"JATAYU_API_URL" env-default:"http://localhost:3001"`
	Timeout     time.Duration `env:"JATAYU_TIMEOUT" env-default:"10s"`
	SessionFile string        `env:"JATAYU_SESSION_FILE"`
}

// Load reads .env (if present), then the YAML file named by CONFIG_PATH
// (if set), then the process environment. Later sources win.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadClient() (ClientConfig, error) {
	_ = godotenv.Load()

	var cfg ClientConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return ClientConfig{}, err
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.SessionFile == "" {
		p, err := DefaultSessionFile()
		if err != nil {
			return ClientConfig{}, err
		}
		cfg.SessionFile = p
	}
	return cfg, nil
}

func DefaultSessionFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", errors.Join(err, herr)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "jatayu", "session.json"), nil
}
