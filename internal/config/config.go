// Package config reads the planner configuration: a YAML file, optional .env files and SECTIONPLANNER_* overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/limaJavier/sectionplanner/pkg/model"
	"gopkg.in/yaml.v3"
)

const (
	RandomTokens        = "random"
	DeterministicTokens = "deterministic"
)

const (
	envDriver   = "SECTIONPLANNER_DB_DRIVER"
	envDsn      = "SECTIONPLANNER_DB_DSN"
	envLogLevel = "SECTIONPLANNER_LOG_LEVEL"
	envTokens   = "SECTIONPLANNER_TOKENS"
	envLimit    = "SECTIONPLANNER_LIMIT"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Generator GeneratorConfig `yaml:"generator"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "sqlite" | "postgres"
	Dsn    string `yaml:"dsn"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type GeneratorConfig struct {
	Tokens string `yaml:"tokens"` // "random" | "deterministic"
	Limit  uint64 `yaml:"limit"`  // 0 means unlimited
}

func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: "sqlite",
			Dsn:    "sectionplanner.db",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Generator: GeneratorConfig{
			Tokens: RandomTokens,
		},
	}
}

// Load starts from Default, merges the YAML file at path (skipped when path is empty) and applies environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv exports the variables of every existing file. Missing files are ignored and variables already set win
func LoadDotEnv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %v: %w", file, err)
		}
	}
	return nil
}

func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (cfg *Config) Validate() error {
	switch cfg.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("%w: unsupported database driver \"%v\"", ErrInvalidConfig, cfg.Database.Driver)
	}

	switch cfg.Generator.Tokens {
	case RandomTokens, DeterministicTokens:
	default:
		return fmt.Errorf("%w: unknown token strategy \"%v\"", ErrInvalidConfig, cfg.Generator.Tokens)
	}
	return nil
}

func (cfg *Config) TokenIssuer() model.TokenIssuer {
	if cfg.Generator.Tokens == DeterministicTokens {
		return model.DeterministicTokens(model.TokenNamespace)
	}
	return model.RandomTokens()
}

// Generator options derived from the configuration
func (cfg *Config) GeneratorOptions() []model.GeneratorOption {
	return []model.GeneratorOption{
		model.WithTokenIssuer(cfg.TokenIssuer()),
		model.WithLimit(cfg.Generator.Limit),
	}
}

func (cfg *Config) applyEnv() error {
	cfg.Database.Driver = getEnv(envDriver, cfg.Database.Driver)
	cfg.Database.Dsn = getEnv(envDsn, cfg.Database.Dsn)
	cfg.Log.Level = getEnv(envLogLevel, cfg.Log.Level)
	cfg.Generator.Tokens = getEnv(envTokens, cfg.Generator.Tokens)

	if value, ok := os.LookupEnv(envLimit); ok {
		limit, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %v: %w", ErrInvalidConfig, envLimit, err)
		}
		cfg.Generator.Limit = limit
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
