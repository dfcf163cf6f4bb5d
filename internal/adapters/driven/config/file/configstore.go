package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
	"github.com/custodia-labs/roialign/internal/logger"
)

// DefaultDirName is the per-user directory holding config and data.
const DefaultDirName = ".roialign"

const fileHeader = "# roialign settings. Change with: roialign settings set <key> <value>\n\n"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps roialign settings in ~/.roialign/config.toml.
// Nested tables are flattened into the dotted setting keys, so [report] format = "csv"
// is read back as domain.SettingReportFormat. Only the keys in domain.SettingKeys
// can be set; unknown keys found in a hand-edited file are kept but warned about.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.roialign/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, DefaultDirName)
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	// Load existing data if file exists
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// AliasPath returns the configured alias file, or "" when none is set.
// A leading ~/ is expanded and a relative path is taken from the config directory.
func (s *ConfigStore) AliasPath() (string, error) {
	path := s.GetString(domain.SettingAliasPath)
	if path == "" {
		return "", nil
	}

	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding %s: %w", domain.SettingAliasPath, err)
		}
		path = filepath.Join(home, rest)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(s.filePath), path)
	}
	return filepath.Clean(path), nil
}

// Set stores a setting and persists immediately.
// history.enabled takes a bool; every other key takes a string.
func (s *ConfigStore) Set(key string, value any) error {
	if err := checkSetting(key, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
// Dotted keys are written back as nested tables.
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(nestMap(s.data))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, append([]byte(fileHeader), data...), 0600)
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, start empty
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}

	s.data = make(map[string]any)
	for key, value := range flattenMap(loaded, "") {
		switch err := checkSetting(key, value); {
		case err == nil:
			s.data[key] = value
		case errors.Is(err, domain.ErrNotFound):
			logger.Warn("%s: unknown setting %q", s.filePath, key)
			s.data[key] = value
		default:
			// Dropped so the default applies.
			logger.Warn("%s: %v", s.filePath, err)
		}
	}
	return nil
}

// checkSetting validates a key and the type of its value.
func checkSetting(key string, value any) error {
	if !slices.Contains(domain.SettingKeys(), key) {
		return fmt.Errorf("setting %q: %w", key, domain.ErrNotFound)
	}

	if domain.IsBoolSetting(key) {
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("setting %s wants true or false, got %v: %w", key, value, domain.ErrInvalidInput)
		}
		return nil
	}
	if _, ok := value.(string); !ok {
		return fmt.Errorf("setting %s wants a string, got %v: %w", key, value, domain.ErrInvalidInput)
	}
	return nil
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			// Recursively flatten nested maps
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// nestMap is the inverse of flattenMap.
// E.g., {"a.b": 1} becomes {"a": {"b": 1}}.
func nestMap(flat map[string]any) map[string]any {
	result := make(map[string]any)

	for key, value := range flat {
		parts := strings.Split(key, ".")
		node := result
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}

	return result
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
