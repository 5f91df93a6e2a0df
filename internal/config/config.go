// Package config loads the todos configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/todos/internal/paths"
	"github.com/mesh-intelligence/todos/pkg/types"
)

const (
	fileName = "config"
	fileType = "yaml"

	// FileName is the configuration file inside the config directory.
	FileName = fileName + "." + fileType
)

// Config keys in config.yaml.
const (
	KeyBackend = "backend"
	KeyDataDir = "data_dir"
	KeyIndent  = "indent"
	KeyStrict  = "strict"
)

// envPrefix lets TODOS_BACKEND override the configured backend.
const envPrefix = "TODOS"

// Load reads config.yaml from configDir. The directory and a default
// config.yaml are created on first use. The returned DataDir is resolved
// through paths.ResolveDataDir and the result is validated.
func Load(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("create config dir: %w", err)
	}
	if err := writeDefaultIfMissing(filepath.Join(configDir, FileName)); err != nil {
		return types.Config{}, fmt.Errorf("write default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyBackend, types.BackendFile)
	v.SetDefault(KeyIndent, false)
	v.SetDefault(KeyStrict, false)
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv(KeyBackend); err != nil {
		return types.Config{}, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	dataDir, err := paths.ResolveDataDir("", v.GetString(KeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: v.GetString(KeyBackend),
		DataDir: dataDir,
		Indent:  v.GetBool(KeyIndent),
		Strict:  v.GetBool(KeyStrict),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("validate config %s: %w", filepath.Join(configDir, FileName), err)
	}
	return cfg, nil
}

// writeDefaultIfMissing writes a config.yaml selecting the file backend.
// An existing file is left untouched.
func writeDefaultIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&types.Config{Backend: types.BackendFile})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
