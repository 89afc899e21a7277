// Package config handles loading taskboard.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/TechieBelle/taskboard/internal/paths"
	"github.com/TechieBelle/taskboard/task"
)

// EnvDataDir overrides the storage directory when set. Tests and
// scripts use it to isolate board data.
const EnvDataDir = "TASKBOARD_DATA_DIR"

// Config represents the taskboard.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Board   Board   `toml:"board"`
}

// Storage contains persistence-related configuration.
type Storage struct {
	// Dir is the directory board records are persisted into.
	// Defaults to ~/.local/share/taskboard.
	Dir string `toml:"dir"`
}

// Board contains board-related configuration.
type Board struct {
	// DefaultColumn is the column new tasks land in when no --column
	// flag is given. Defaults to todo.
	DefaultColumn string `toml:"default-column"`
}

// Load loads configuration from the working directory and the global
// config file, with working-directory values taking precedence.
// Returns a default config if no config files exist.
func Load(workDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(workDir, "taskboard.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, localCfg, globalMeta, localMeta), nil
}

// DataDir resolves the storage directory: the TASKBOARD_DATA_DIR
// environment variable wins, then the configured dir, then the default
// under the user's home.
func (c *Config) DataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}
	if c.Storage.Dir != "" {
		return expandHome(c.Storage.Dir)
	}
	return paths.DefaultDataDir()
}

// DefaultColumn returns the configured default column for new tasks,
// falling back to todo for missing or unknown values.
func (c *Config) DefaultColumn() task.Column {
	column := task.Column(strings.TrimSpace(c.Board.DefaultColumn))
	if !column.IsValid() {
		return task.ColumnTodo
	}
	return column
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.Dir = mergeString(localMeta.IsDefined("storage", "dir"), localCfg.Storage.Dir, globalCfg.Storage.Dir)
	merged.Board.DefaultColumn = mergeString(localMeta.IsDefined("board", "default-column"), localCfg.Board.DefaultColumn, globalCfg.Board.DefaultColumn)

	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := paths.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, path[2:]), nil
}
