package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"minuteclock/internal/core/model"
	"minuteclock/internal/ui/preferences"

	"github.com/hashicorp/go-hclog"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"
	envPrefix        = "MINUTECLOCK_"
)

type yamlSettings struct {
	Countdown   bool   `yaml:"countdown"`
	ColorChoice string `yaml:"color_choice,omitempty"`
	KeepAwake   bool   `yaml:"keep_awake"`
}

// Store persists user preferences as YAML. Environment variables prefixed
// with MINUTECLOCK_ override values read from the file.
type Store struct {
	path   string
	logger hclog.Logger

	mu   sync.Mutex
	last preferences.Settings
}

// NewStore returns a store under the user config directory for appName.
func NewStore(appName string, logger hclog.Logger) (*Store, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return nil, err
	}
	return NewStoreAt(configPath, logger), nil
}

// NewStoreAt returns a store backed by an explicit file path.
func NewStoreAt(path string, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{
		path:   filepath.Clean(path),
		logger: logger,
		last:   preferences.DefaultSettings(),
	}
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads user preferences. A missing file yields defaults and no error;
// an unreadable or malformed file yields defaults and the error, so callers
// can log it and carry on.
func (store *Store) Load() (preferences.Settings, error) {
	settings, err := store.readFile()
	if err != nil {
		settings = preferences.DefaultSettings()
	}
	store.applyEnvOverrides(&settings)

	store.mu.Lock()
	store.last = settings
	store.mu.Unlock()
	return settings, err
}

// Save writes user preferences to YAML.
func (store *Store) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Countdown:   settings.Countdown,
		ColorChoice: settings.ClockConfig().Color.String(),
		KeepAwake:   settings.KeepAwake,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	store.mu.Lock()
	store.last = settings
	store.mu.Unlock()

	return writeFileAtomic(store.path, serialized)
}

// writeFileAtomic replaces path in one rename so readers, including the
// watcher, never see a truncated file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod settings file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

func (store *Store) readFile() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	settings.Countdown = fileData.Countdown
	settings.KeepAwake = fileData.KeepAwake
	if fileData.ColorChoice != "" {
		if choice, ok := model.ParseColorChoice(fileData.ColorChoice); ok {
			settings.ColorChoice = choice
		} else {
			store.logger.Warn("unknown color choice in settings file", "value", fileData.ColorChoice)
		}
	}
	return settings, nil
}

func (store *Store) applyEnvOverrides(settings *preferences.Settings) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		store.logger.Warn("load environment overrides", "error", err)
		return
	}

	if k.Exists("countdown") {
		if value, err := strconv.ParseBool(k.String("countdown")); err == nil {
			settings.Countdown = value
		} else {
			store.logger.Warn("ignoring invalid override", "key", envPrefix+"COUNTDOWN", "value", k.String("countdown"))
		}
	}
	if k.Exists("keep_awake") {
		if value, err := strconv.ParseBool(k.String("keep_awake")); err == nil {
			settings.KeepAwake = value
		} else {
			store.logger.Warn("ignoring invalid override", "key", envPrefix+"KEEP_AWAKE", "value", k.String("keep_awake"))
		}
	}
	if k.Exists("color_choice") {
		if choice, ok := model.ParseColorChoice(strings.ToLower(k.String("color_choice"))); ok {
			settings.ColorChoice = choice
		} else {
			store.logger.Warn("ignoring invalid override", "key", envPrefix+"COLOR_CHOICE", "value", k.String("color_choice"))
		}
	}
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}
