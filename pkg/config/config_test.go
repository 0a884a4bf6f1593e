package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestDefaultConfig_Bot(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Bot.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.Bot.Model)
	}
	if cfg.Bot.MaxTokens != 500 {
		t.Errorf("MaxTokens = %d, want 500", cfg.Bot.MaxTokens)
	}
	if cfg.Bot.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", cfg.Bot.Temperature)
	}
	if got := cfg.RequestTimeout(); got != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", got)
	}
}

func TestDefaultConfig_SessionCaps(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Session.HistoryCap != 20 {
		t.Errorf("HistoryCap = %d, want 20", cfg.Session.HistoryCap)
	}
	if cfg.Session.MoodCap != 20 {
		t.Errorf("MoodCap = %d, want 20", cfg.Session.MoodCap)
	}
	if cfg.Session.ContextTurns != 10 {
		t.Errorf("ContextTurns = %d, want 10", cfg.Session.ContextTurns)
	}
}

func TestDefaultConfig_ChannelsEmpty(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Channels.Discord.Token != "" {
		t.Error("Discord token should be empty by default")
	}
	if cfg.Channels.Telegram.Token != "" {
		t.Error("Telegram token should be empty by default")
	}
}

func TestGetAPIBase_Default(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.GetAPIBase(); got != "https://api.openai.com/v1" {
		t.Errorf("GetAPIBase = %q", got)
	}

	cfg.Provider.APIBase = "https://proxy.example/v1"
	if got := cfg.GetAPIBase(); got != "https://proxy.example/v1" {
		t.Errorf("GetAPIBase = %q, want override", got)
	}
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-config.json")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Bot.Model != "gpt-4o-mini" {
		t.Fatalf("expected default model, got %q", cfg.Bot.Model)
	}
}

func TestLoadConfig_EnvOverridesWithoutFile(t *testing.T) {
	t.Setenv("CALMSPACE_BOT_MODEL", "env/model")
	t.Setenv("CALMSPACE_PROVIDER_API_KEY", "sk-env")
	path := filepath.Join(t.TempDir(), "missing-config.json")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got := cfg.Bot.Model; got != "env/model" {
		t.Fatalf("expected env override model, got %q", got)
	}
	if got := cfg.GetAPIKey(); got != "sk-env" {
		t.Fatalf("expected env api key, got %q", got)
	}
}

func TestLoadConfig_FileThenEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"bot":{"model":"file/model","max_tokens":123},"channels":{"telegram":{"token":"tg-token"}}}`
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CALMSPACE_BOT_MODEL", "env/model")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Bot.Model != "env/model" {
		t.Fatalf("env should override file, got %q", cfg.Bot.Model)
	}
	if cfg.Bot.MaxTokens != 123 {
		t.Fatalf("file value should survive, got %d", cfg.Bot.MaxTokens)
	}
	if cfg.Channels.Telegram.Token != "tg-token" {
		t.Fatalf("telegram token should load from file, got %q", cfg.Channels.Telegram.Token)
	}
}

func TestSaveConfig_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file permission bits are not enforced on Windows")
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	cfg := DefaultConfig()
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("config file has permission %04o, want 0600", perm)
	}
}

func TestFlexibleStringSlice_MixedTypes(t *testing.T) {
	var f FlexibleStringSlice
	if err := json.Unmarshal([]byte(`["abc", 123, 456.0]`), &f); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := []string{"abc", "123", "456"}
	if len(f) != len(want) {
		t.Fatalf("got %v, want %v", f, want)
	}
	for i := range want {
		if f[i] != want[i] {
			t.Fatalf("got %v, want %v", f, want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := expandHome("~/.calmspace/sessions.db"); got != home+"/.calmspace/sessions.db" {
		t.Fatalf("expandHome = %q", got)
	}
	if got := expandHome("/abs/path.db"); got != "/abs/path.db" {
		t.Fatalf("expandHome should leave absolute paths, got %q", got)
	}
}
