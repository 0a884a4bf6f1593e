package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

// FlexibleStringSlice is a []string that also accepts JSON numbers,
// so allow_from can contain both "123" and 123.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	var ss []string
	if err := json.Unmarshal(data, &ss); err == nil {
		*f = ss
		return nil
	}

	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	result := make([]string, 0, len(raw))
	for _, v := range raw {
		switch val := v.(type) {
		case string:
			result = append(result, val)
		case float64:
			result = append(result, fmt.Sprintf("%.0f", val))
		default:
			result = append(result, fmt.Sprintf("%v", val))
		}
	}
	*f = result
	return nil
}

type Config struct {
	Bot      BotConfig      `json:"bot"`
	Channels ChannelsConfig `json:"channels"`
	Provider ProviderConfig `json:"provider"`
	Store    StoreConfig    `json:"store"`
	Session  SessionConfig  `json:"session"`
	Reminder ReminderConfig `json:"reminder"`
	mu       sync.RWMutex
}

type BotConfig struct {
	Model          string  `json:"model" env:"CALMSPACE_BOT_MODEL"`
	MaxTokens      int     `json:"max_tokens" env:"CALMSPACE_BOT_MAX_TOKENS"`
	Temperature    float64 `json:"temperature" env:"CALMSPACE_BOT_TEMPERATURE"`
	RequestTimeout int     `json:"request_timeout" env:"CALMSPACE_BOT_REQUEST_TIMEOUT"` // seconds
}

type ChannelsConfig struct {
	Discord  DiscordConfig  `json:"discord"`
	Telegram TelegramConfig `json:"telegram"`
}

type DiscordConfig struct {
	Token     string              `json:"token" env:"CALMSPACE_CHANNELS_DISCORD_TOKEN"`
	AllowFrom FlexibleStringSlice `json:"allow_from" env:"CALMSPACE_CHANNELS_DISCORD_ALLOW_FROM"`
}

type TelegramConfig struct {
	Token     string              `json:"token" env:"CALMSPACE_CHANNELS_TELEGRAM_TOKEN"`
	Proxy     string              `json:"proxy,omitempty" env:"CALMSPACE_CHANNELS_TELEGRAM_PROXY"`
	AllowFrom FlexibleStringSlice `json:"allow_from" env:"CALMSPACE_CHANNELS_TELEGRAM_ALLOW_FROM"`
}

type ProviderConfig struct {
	APIKey  string `json:"api_key" env:"CALMSPACE_PROVIDER_API_KEY"`
	APIBase string `json:"api_base" env:"CALMSPACE_PROVIDER_API_BASE"`
	Proxy   string `json:"proxy,omitempty" env:"CALMSPACE_PROVIDER_PROXY"`
}

// StoreConfig selects the session backend. An empty path keeps all session
// state in process memory; a path enables the durable SQLite store.
type StoreConfig struct {
	Path string `json:"path" env:"CALMSPACE_STORE_PATH"`
}

type SessionConfig struct {
	HistoryCap   int `json:"history_cap" env:"CALMSPACE_SESSION_HISTORY_CAP"`
	MoodCap      int `json:"mood_cap" env:"CALMSPACE_SESSION_MOOD_CAP"`
	ContextTurns int `json:"context_turns" env:"CALMSPACE_SESSION_CONTEXT_TURNS"`
}

type ReminderConfig struct {
	Enabled bool   `json:"enabled" env:"CALMSPACE_REMINDER_ENABLED"`
	Cron    string `json:"cron" env:"CALMSPACE_REMINDER_CRON"`
}

func DefaultConfig() *Config {
	return &Config{
		Bot: BotConfig{
			Model:          "gpt-4o-mini",
			MaxTokens:      500,
			Temperature:    0.7,
			RequestTimeout: 30,
		},
		Channels: ChannelsConfig{
			Discord: DiscordConfig{
				AllowFrom: FlexibleStringSlice{},
			},
			Telegram: TelegramConfig{
				AllowFrom: FlexibleStringSlice{},
			},
		},
		Provider: ProviderConfig{},
		Store: StoreConfig{
			Path: "~/.calmspace/sessions.db",
		},
		Session: SessionConfig{
			HistoryCap:   20,
			MoodCap:      20,
			ContextTurns: 10,
		},
		Reminder: ReminderConfig{
			Enabled: false,
			Cron:    "0 9 * * *", // daily at 09:00
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	// Env vars overlay the file and also work on their own, so a setup with
	// only CALMSPACE_* variables and no config file is valid.
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func (c *Config) StorePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return expandHome(c.Store.Path)
}

// RequestTimeout bounds one completion call.
func (c *Config) RequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Bot.RequestTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Bot.RequestTimeout) * time.Second
}

func (c *Config) GetAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Provider.APIKey
}

func (c *Config) GetAPIBase() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Provider.APIBase != "" {
		return c.Provider.APIBase
	}
	return "https://api.openai.com/v1"
}

func expandHome(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		home, _ := os.UserHomeDir()
		if len(path) > 1 && path[1] == '/' {
			return home + path[1:]
		}
		return home
	}
	return path
}
