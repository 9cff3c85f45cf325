package main

import (
	"fmt"
	"os"
	"time"

	"github.com/amonks/taskvault/internal/config"
	"github.com/amonks/taskvault/internal/paths"
	"github.com/amonks/taskvault/internal/taskjson"
	"github.com/amonks/taskvault/task"
	"github.com/amonks/taskvault/vault"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	fileEnvVar      = "TASKVAULT_FILE"
	defaultLogLevel = log.WarnLevel
)

// settings is the merged view of flags, environment and config files.
type settings struct {
	cfg        *config.Config
	file       string
	completion taskjson.CompletionPolicy
	logger     *log.Logger
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	file, err := resolveTaskFile(rootFile, os.Getenv(fileEnvVar), cfg.Storage.File)
	if err != nil {
		return nil, err
	}

	completion, err := taskjson.ParseCompletionPolicy(cfg.Load.Completion)
	if err != nil {
		return nil, fmt.Errorf("config [load] completion: %w", err)
	}

	levelName := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		levelName = rootLogLevel
	}
	logger, err := newLogger(levelName)
	if err != nil {
		return nil, err
	}
	logger.Debug("settings loaded", "file", file, "completion", completion, "lock", cfg.Storage.LockEnabled())

	return &settings{cfg: cfg, file: file, completion: completion, logger: logger}, nil
}

// resolveTaskFile picks the first non-empty of flag, env and config, then
// falls back to taskjson.DefaultPath.
func resolveTaskFile(flagValue, envValue, configValue string) (string, error) {
	return paths.ResolveWithDefault(flagValue, func() (string, error) {
		return paths.ResolveWithDefault(envValue, func() (string, error) {
			return paths.ResolveWithDefault(configValue, func() (string, error) {
				return taskjson.DefaultPath, nil
			})
		})
	})
}

func newLogger(levelName string) (*log.Logger, error) {
	level := defaultLogLevel
	if levelName != "" {
		parsed, err := log.ParseLevel(levelName)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
		}
		level = parsed
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "taskvault",
	}), nil
}

// openStore opens the configured task file. Load warnings go to the logger.
func openStore(cmd *cobra.Command) (*vault.Store, *settings, error) {
	return openStoreWithLogging(cmd, true)
}

// openReportingStore opens the configured task file for commands that print
// load warnings themselves.
func openReportingStore(cmd *cobra.Command) (*vault.Store, *settings, error) {
	return openStoreWithLogging(cmd, false)
}

func openStoreWithLogging(cmd *cobra.Command, logWarnings bool) (*vault.Store, *settings, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	opts := vault.Options{
		Lock:       s.cfg.Storage.LockEnabled(),
		Completion: s.completion,
	}
	if logWarnings {
		opts.Logger = s.logger
	}
	store, err := vault.Open(s.file, opts)
	if err != nil {
		return nil, nil, err
	}
	return store, s, nil
}

func today() task.Date {
	return task.DateOf(time.Now())
}
