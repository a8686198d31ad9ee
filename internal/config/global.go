// Where: cli/internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.plm/config.yaml preferences consistently.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/lifecycle-manager/cli/internal/constants"
	"github.com/poruru/lifecycle-manager/cli/internal/envutil"
	"github.com/poruru/lifecycle-manager/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.plm/config.yaml global configuration.
// It only holds display and form preferences; session data is never stored.
type GlobalConfig struct {
	Version      int    `yaml:"version"`
	Emoji        *bool  `yaml:"emoji,omitempty"`
	DefaultStack string `yaml:"default_stack,omitempty"`
	SCMPlatform  string `yaml:"scm_platform,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
	ShowIDs      bool   `yaml:"show_ids,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:      1,
		DefaultStack: "US",
		SCMPlatform:  "GitHub",
		LogLevel:     "warn",
	}
}

// EmojiEnabled reports whether console output should use emoji prefixes.
func (c GlobalConfig) EmojiEnabled() bool {
	return c.Emoji == nil || *c.Emoji
}

// GlobalConfigPath returns the path to the global config file.
// Respects brand-specific CONFIG_PATH and CONFIG_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigHome)); override != "" {
		return filepath.Join(override, meta.ConfigFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFileName), nil
}

// LoadGlobalConfig reads and parses the global configuration file.
// A missing file yields the defaults.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultGlobalConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

// Resolve loads the global config and applies host-level environment overrides.
func Resolve() (GlobalConfig, string, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return GlobalConfig{}, "", err
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		return GlobalConfig{}, path, err
	}
	return ApplyEnvOverrides(cfg), path, nil
}

// ApplyEnvOverrides layers PLM_* variables over cfg.
func ApplyEnvOverrides(cfg GlobalConfig) GlobalConfig {
	if level := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixLogLevel)); level != "" {
		cfg.LogLevel = level
	}
	if platform := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixSCMPlatform)); platform != "" {
		cfg.SCMPlatform = platform
	}
	if value, ok := envutil.LookupHostEnv(constants.HostSuffixNoEmoji); ok && isTruthy(value) {
		disabled := false
		cfg.Emoji = &disabled
	}
	return cfg
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
