// Package config handles loading taskvault.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/taskvault/internal/paths"
)

// ProjectFile is the name of the per-directory config file.
const ProjectFile = "taskvault.toml"

// Config represents the taskvault.toml configuration file.
type Config struct {
	Storage Storage     `toml:"storage"`
	Load    LoadSection `toml:"load"`
	Log     Log         `toml:"log"`
	List    List        `toml:"list"`
}

// Storage contains task file configuration.
type Storage struct {
	// File is the task file path. Relative paths in a project config are
	// resolved against the directory holding that config.
	File string `toml:"file"`

	// Lock serializes concurrent writers. Unset means enabled.
	Lock *bool `toml:"lock"`
}

// LockEnabled reports whether file locking is on.
func (s Storage) LockEnabled() bool {
	return s.Lock == nil || *s.Lock
}

// LoadSection contains task file loading configuration.
type LoadSection struct {
	// Completion is "preserve" or "normalize".
	Completion string `toml:"completion"`
}

// Log contains diagnostic logging configuration.
type Log struct {
	// Level is a charmbracelet/log level name such as "warn" or "debug".
	Level string `toml:"level"`
}

// List contains defaults for the list command.
type List struct {
	Sort   string `toml:"sort"`
	Filter string `toml:"filter"`
}

// Load loads configuration from dir and the global config file.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFile))
	if err != nil {
		return nil, err
	}

	if projectMeta.IsDefined("storage", "file") && projectCfg.Storage.File != "" && !filepath.IsAbs(projectCfg.Storage.File) {
		projectCfg.Storage.File = filepath.Join(dir, projectCfg.Storage.File)
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	return merged, nil
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
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.File = mergeString(projectMeta.IsDefined("storage", "file"), projectCfg.Storage.File, globalCfg.Storage.File)
	if projectMeta.IsDefined("storage", "lock") {
		merged.Storage.Lock = projectCfg.Storage.Lock
	} else if globalMeta.IsDefined("storage", "lock") {
		merged.Storage.Lock = globalCfg.Storage.Lock
	}
	merged.Load.Completion = mergeString(projectMeta.IsDefined("load", "completion"), projectCfg.Load.Completion, globalCfg.Load.Completion)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)
	merged.List.Sort = mergeString(projectMeta.IsDefined("list", "sort"), projectCfg.List.Sort, globalCfg.List.Sort)
	merged.List.Filter = mergeString(projectMeta.IsDefined("list", "filter"), projectCfg.List.Filter, globalCfg.List.Filter)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
