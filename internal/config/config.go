package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultGoal is the BSC target for a full Briv unlock push.
const DefaultGoal int64 = 15_360_005

// DefaultLogPath is where the Steam client writes its web request log.
const DefaultLogPath = "C:/IdleChampions/IdleChampions/IdleDragons_Data/StreamingAssets/downloaded_files/webRequestLog.txt"

// Config holds all application configuration. It is assembled once at
// startup (defaults, then YAML file, then environment, then CLI flags) and
// never mutated afterwards.
type Config struct {
	Goal       int64  `yaml:"goal"`
	LogPath    string `yaml:"log_path"`
	OutputPath string `yaml:"output_path"`
	IconDir    string `yaml:"icon_dir"`
	FontPath   string `yaml:"font_path"`

	// Overrides bypass log parsing entirely when all four are supplied.
	Overrides struct {
		UserID        string `yaml:"user_id"`
		Hash          string `yaml:"hash"`
		ClientVersion string `yaml:"client_version"`
		APIBaseURL    string `yaml:"api_base_url"`
	} `yaml:"overrides"`

	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`

	Watch struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`

	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`

	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BRIVTRACK_GOAL"); v != "" {
		if goal, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Goal = goal
		}
	}
	if v := os.Getenv("BRIVTRACK_LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("BRIVTRACK_OUTPUT_PATH"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("BRIVTRACK_USER_ID"); v != "" {
		cfg.Overrides.UserID = v
	}
	if v := os.Getenv("BRIVTRACK_HASH"); v != "" {
		cfg.Overrides.Hash = v
	}
	if v := os.Getenv("BRIVTRACK_API_URL"); v != "" {
		cfg.Overrides.APIBaseURL = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Goal == 0 {
		cfg.Goal = DefaultGoal
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "overlay_extended.png"
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 */5 * * * *" // every 5 minutes
	}

	return cfg, nil
}

// HasFullOverrides reports whether log parsing can be skipped entirely.
func (c *Config) HasFullOverrides() bool {
	o := c.Overrides
	return o.UserID != "" && o.Hash != "" && o.ClientVersion != "" && o.APIBaseURL != ""
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Goal < 0 {
		return fmt.Errorf("goal must be >= 0, got %d", c.Goal)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path is required")
	}
	if c.LogPath == "" && !c.HasFullOverrides() {
		return fmt.Errorf("log_path is required unless all credential overrides are set")
	}
	return nil
}
