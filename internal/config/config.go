// Package config handles StreamBox configuration.
// Settings are read from ~/.config/streambox/config.toml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings StreamBox needs to talk to the catalog and
// find its local data.
type Config struct {
	APIBaseURL    string // movie catalog API root
	AccessToken   string // bearer token for the catalog API
	ImageBaseURL  string // image CDN root
	RemoteAuthURL string // demo auth provider; empty disables the fallback
	DataDir       string // local database location
}

const (
	defaultConfigPath   = "~/.config/streambox/config.toml"
	defaultAPIBaseURL   = "https://api.themoviedb.org/3"
	defaultImageBaseURL = "https://image.tmdb.org/t/p"
	defaultDataDir      = "~/.local/share/streambox"
)

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config file, falling back to defaults when
// missing. Individual empty fields fall back independently.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBaseURL:   defaultAPIBaseURL,
		ImageBaseURL: defaultImageBaseURL,
		DataDir:      mustExpand(defaultDataDir),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL    string `toml:"api_base_url"`
		AccessToken   string `toml:"access_token"`
		ImageBaseURL  string `toml:"image_base_url"`
		RemoteAuthURL string `toml:"remote_auth_url"`
		DataDir       string `toml:"data_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	cfg.AccessToken = strings.TrimSpace(raw.AccessToken)
	if v := strings.TrimSpace(raw.ImageBaseURL); v != "" {
		cfg.ImageBaseURL = v
	}
	cfg.RemoteAuthURL = strings.TrimSpace(raw.RemoteAuthURL)
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = mustExpand(v)
	}

	return cfg, nil
}

// DatabasePath returns the SQLite database location under the data dir.
func (c Config) DatabasePath() string {
	return c.dataFile("streambox.db")
}

// LogPath returns the application log file location under the data dir.
func (c Config) LogPath() string {
	return c.dataFile("streambox.log")
}

func (c Config) dataFile(name string) string {
	dir := strings.TrimSpace(c.DataDir)
	if dir == "" {
		dir = mustExpand(defaultDataDir)
	}
	return filepath.Join(dir, name)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
