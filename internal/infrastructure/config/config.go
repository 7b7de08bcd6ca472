package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 儲存 HTTP API 及外部相依的執行設定。
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	DB     DBConfig     `yaml:"db"`
	Auth   AuthConfig   `yaml:"auth"`
	Expert ExpertConfig `yaml:"expert"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type DBConfig struct {
	DSN          string        `yaml:"dsn"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	MaxIdleTime  time.Duration `yaml:"max_idle_time"`
}

type AuthConfig struct {
	TokenTTL     time.Duration `yaml:"token_ttl"`
	Secret       string        `yaml:"secret"`
	SeedEmail    string        `yaml:"seed_email"`
	SeedPassword string        `yaml:"seed_password"`
	SeedName     string        `yaml:"seed_name"`
}

type ExpertConfig struct {
	RulesPath string `yaml:"rules_path"`
	FactsPath string `yaml:"facts_path"`
	MinFacts  int    `yaml:"min_facts"`
}

// LoadFromFile 從 YAML 組態檔載入設定。
func LoadFromFile(path string) (Config, error) {
	// 嘗試載入 .env 檔案（如果存在）
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8000"
	}
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 5
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 2
	}
	if cfg.DB.MaxIdleTime == 0 {
		cfg.DB.MaxIdleTime = 15 * time.Minute
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 30 * time.Minute
	}
	if cfg.Auth.Secret == "" {
		cfg.Auth.Secret = "dev-secret-change-me"
	}
	if cfg.Auth.SeedEmail == "" {
		cfg.Auth.SeedEmail = "user@gmail.com"
	}
	if cfg.Auth.SeedPassword == "" {
		cfg.Auth.SeedPassword = "Pwd4516"
	}
	if cfg.Auth.SeedName == "" {
		cfg.Auth.SeedName = "User"
	}
	if cfg.Expert.RulesPath == "" {
		cfg.Expert.RulesPath = "rules.json"
	}
	if cfg.Expert.FactsPath == "" {
		cfg.Expert.FactsPath = "facts.json"
	}
	if cfg.Expert.MinFacts == 0 {
		cfg.Expert.MinFacts = 3
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("HTTP_ADDR"); val != "" {
		cfg.HTTP.Addr = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.HTTP.Addr = ":" + val
	}
	if val := os.Getenv("DB_DSN"); val != "" {
		cfg.DB.DSN = val
	}
	if val := os.Getenv("AUTH_SECRET"); val != "" {
		cfg.Auth.Secret = val
	}
	if val := os.Getenv("AUTH_SEED_EMAIL"); val != "" {
		cfg.Auth.SeedEmail = val
	}
	if val := os.Getenv("AUTH_SEED_PASSWORD"); val != "" {
		cfg.Auth.SeedPassword = val
	}
	if val := os.Getenv("RULES_PATH"); val != "" {
		cfg.Expert.RulesPath = val
	}
	if val := os.Getenv("FACTS_PATH"); val != "" {
		cfg.Expert.FactsPath = val
	}
	if val := os.Getenv("MIN_FACTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Expert.MinFacts = n
		}
	}
	return cfg
}
