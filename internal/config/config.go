// Package config resolves hub settings from .launchpad/config.toml, an
// optional .launchpad/.env file and the process environment. Flags beat
// env, env beats config, config beats defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/triad369/launchpad/internal/logger"
)

var cfgLogs = logger.PackageLogger("config", "🔧 CONFIG")

// DefaultRoot is the hub's config directory, relative to the working
// directory the operator runs commands from.
const DefaultRoot = ".launchpad"

const defaultConfig = `# Launchpad local config
coevo_base_url = "http://localhost:8000"
coevo_board_slug = "dev"

# If you don't set COEVO_TOKEN, set COEVO_HANDLE + COEVO_PASSWORD as env vars.
`

// Hub is the resolved hub configuration.
type Hub struct {
	Root           string
	Workspace      string
	CoevoBaseURL   string
	CoevoBoardSlug string
	CoevoToken     string
	CoevoHandle    string
	CoevoPassword  string
}

// RegistryPath is where the app registry lives.
func (h Hub) RegistryPath() string {
	return filepath.Join(h.Root, "registry.toml")
}

// RuntimePath is where the runtime state document lives.
func (h Hub) RuntimePath() string {
	return filepath.Join(h.Root, "runtime.json")
}

// LogPath is the deterministic per-app log file location.
func (h Hub) LogPath(appName string) string {
	return filepath.Join(h.Root, "logs", appName+".log")
}

// Init materializes the config directory and a default config.toml.
func Init(root string) (string, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("failed to create config root: %w", err)
	}
	path := filepath.Join(root, "config.toml")
	if _, err := os.Stat(path); err == nil {
		cfgLogs.Warn("Config already exists at %s, leaving it alone", path)
		return path, nil
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

// Load resolves the hub config rooted at root.
func Load(root string) (Hub, error) {
	// .env is optional; missing is the normal case.
	if err := godotenv.Load(filepath.Join(root, ".env")); err == nil {
		cfgLogs.Debug("Loaded %s", filepath.Join(root, ".env"))
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(root, "config.toml"))
	v.SetConfigType("toml")
	v.SetDefault("coevo_base_url", "http://localhost:8000")
	v.SetDefault("coevo_board_slug", "dev")
	v.SetDefault("workspace", "..")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return Hub{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for key, env := range map[string]string{
		"coevo_base_url":   "COEVO_BASE_URL",
		"coevo_board_slug": "COEVO_BOARD_SLUG",
		"coevo_token":      "COEVO_TOKEN",
		"coevo_handle":     "COEVO_HANDLE",
		"coevo_password":   "COEVO_PASSWORD",
		"workspace":        "LAUNCHPAD_WORKSPACE",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Hub{}, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return Hub{
		Root:           root,
		Workspace:      v.GetString("workspace"),
		CoevoBaseURL:   v.GetString("coevo_base_url"),
		CoevoBoardSlug: v.GetString("coevo_board_slug"),
		CoevoToken:     v.GetString("coevo_token"),
		CoevoHandle:    v.GetString("coevo_handle"),
		CoevoPassword:  v.GetString("coevo_password"),
	}, nil
}
