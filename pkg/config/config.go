// Package config loads the application configuration from a YAML file with
// environment variable expansion, defaults and validation.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Source is a single RSS/Atom news source.
type Source struct {
	Name string `yaml:"name" json:"name" jsonschema:"required,description=Human readable source name"`
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
}

// CollectConfig holds news collection settings.
type CollectConfig struct {
	Sources        []Source      `yaml:"sources" json:"sources" jsonschema:"description=RSS/Atom sources to collect from"`
	PerSourceLimit int           `yaml:"per_source_limit" json:"per_source_limit" jsonschema:"default=30,description=Maximum items taken per source"`
	Window         time.Duration `yaml:"window" json:"window" jsonschema:"default=24h,description=Only keep articles published within this window"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Fetch timeout per source"`
	MaxWorkers     int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent source fetches"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Startupwire/1.0,description=User agent for feed requests"`
}

// CurationConfig holds curation pipeline settings.
type CurationConfig struct {
	Threshold   float64 `yaml:"threshold" json:"threshold" jsonschema:"default=0.3,minimum=0,maximum=1,description=Minimum relevance score for admission"`
	TargetCount int     `yaml:"target_count" json:"target_count" jsonschema:"default=10,minimum=1,description=Number of stories in the daily top list"`
	TopKeywords int     `yaml:"top_keywords" json:"top_keywords" jsonschema:"default=10,description=Keyword histogram size in the batch report"`
	LexiconFile string  `yaml:"lexicon_file" json:"lexicon_file" jsonschema:"description=Optional lexicon YAML overriding the built-in tables"`
}

// SlidesConfig holds carousel rendering settings.
type SlidesConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Render carousel slide images"`
	OutDir   string `yaml:"out_dir" json:"out_dir" jsonschema:"default=slides,description=Directory for rendered PNG slides"`
	FontFile string `yaml:"font_file" json:"font_file" jsonschema:"description=Optional TTF font file for slide text"`
}

// EmailConfig holds SMTP digest settings.
type EmailConfig struct {
	Enabled  bool     `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Send the daily digest email"`
	Host     string   `yaml:"host" json:"host" jsonschema:"description=SMTP server host"`
	Port     int      `yaml:"port" json:"port" jsonschema:"default=587,description=SMTP server port"`
	Username string   `yaml:"username" json:"username" jsonschema:"description=SMTP username"`
	Password string   `yaml:"password" json:"password" jsonschema:"description=SMTP password (use environment variable)"`
	From     string   `yaml:"from" json:"from" jsonschema:"description=Sender address"`
	To       []string `yaml:"to" json:"to" jsonschema:"description=Recipient addresses"`
}

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:startupwire.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Digest struct {
		Interval      time.Duration `yaml:"interval" json:"interval" jsonschema:"default=24h,description=Digest interval in daemon mode"`
		RetentionDays int           `yaml:"retention_days" json:"retention_days" jsonschema:"default=30,description=Days to keep seen URLs for deduplication"`
	} `yaml:"digest" json:"digest" jsonschema:"description=Digest schedule configuration"`

	Collect  CollectConfig  `yaml:"collect" json:"collect" jsonschema:"description=News collection configuration"`
	Curation CurationConfig `yaml:"curation" json:"curation" jsonschema:"description=Curation pipeline configuration"`
	Slides   SlidesConfig   `yaml:"slides" json:"slides" jsonschema:"description=Carousel rendering configuration"`
	Email    EmailConfig    `yaml:"email" json:"email" jsonschema:"description=Email digest configuration"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:startupwire.db?cache=shared&mode=rwc"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Digest.Interval == 0 {
		cfg.Digest.Interval = 24 * time.Hour
	}
	if cfg.Digest.RetentionDays == 0 {
		cfg.Digest.RetentionDays = 30
	}

	if cfg.Collect.PerSourceLimit == 0 {
		cfg.Collect.PerSourceLimit = 30
	}
	if cfg.Collect.Window == 0 {
		cfg.Collect.Window = 24 * time.Hour
	}
	if cfg.Collect.Timeout == 0 {
		cfg.Collect.Timeout = 30 * time.Second
	}
	if cfg.Collect.MaxWorkers == 0 {
		cfg.Collect.MaxWorkers = 5
	}
	if cfg.Collect.UserAgent == "" {
		cfg.Collect.UserAgent = "Startupwire/1.0"
	}

	if cfg.Curation.Threshold == 0 {
		cfg.Curation.Threshold = 0.3
	}
	if cfg.Curation.TargetCount == 0 {
		cfg.Curation.TargetCount = 10
	}
	if cfg.Curation.TopKeywords == 0 {
		cfg.Curation.TopKeywords = 10
	}

	if cfg.Slides.OutDir == "" {
		cfg.Slides.OutDir = "slides"
	}
	if cfg.Email.Port == 0 {
		cfg.Email.Port = 587
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if len(cfg.Collect.Sources) == 0 {
		return fmt.Errorf("collect.sources is required")
	}
	for _, s := range cfg.Collect.Sources {
		if s.Name == "" || s.URL == "" {
			return fmt.Errorf("collect source needs both name and url")
		}
	}
	if cfg.Collect.Timeout < time.Second {
		return fmt.Errorf("collect.timeout must be at least 1 second")
	}

	if cfg.Curation.Threshold < 0 || cfg.Curation.Threshold > 1 {
		return fmt.Errorf("curation.threshold must be between 0 and 1")
	}
	if cfg.Curation.TargetCount < 1 {
		return fmt.Errorf("curation.target_count must be at least 1")
	}

	if cfg.Email.Enabled {
		if cfg.Email.Host == "" {
			return fmt.Errorf("email.host is required when email is enabled")
		}
		if cfg.Email.From == "" || len(cfg.Email.To) == 0 {
			return fmt.Errorf("email.from and email.to are required when email is enabled")
		}
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetCollectConfig returns news collection configuration
func (c *Config) GetCollectConfig() CollectConfig {
	return c.Collect
}

// GetCurationConfig returns curation pipeline configuration
func (c *Config) GetCurationConfig() CurationConfig {
	return c.Curation
}

// GetEmailConfig returns email digest configuration
func (c *Config) GetEmailConfig() EmailConfig {
	return c.Email
}

// GetSlidesConfig returns carousel rendering configuration
func (c *Config) GetSlidesConfig() SlidesConfig {
	return c.Slides
}
