package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileConfig is the typed shape of the TOML file.
type fileConfig struct {
	Webhooks      domain.WebhookEndpoints `toml:"webhooks"`
	DefaultSheets domain.SheetConfig      `toml:"default_sheets"`
	Reports       domain.ReportTabs       `toml:"reports"`
}

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML. Configuration is stored in a TOML file within the
// brandforge config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	typed    fileConfig
	raw      map[string]any
	flat     map[string]any
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.brandforge/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".brandforge")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		raw:      make(map[string]any),
		flat:     make(map[string]any),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Endpoints returns the webhook destination URLs.
func (s *ConfigStore) Endpoints() domain.WebhookEndpoints {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.typed.Webhooks
}

// DefaultSheets returns the operator's default sheet routing.
func (s *ConfigStore) DefaultSheets() domain.SheetConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.typed.DefaultSheets
}

// ReportTabs returns the intelligence listing tab locations.
func (s *ConfigStore) ReportTabs() domain.ReportTabs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.typed.Reports
}

// GetString retrieves a string configuration value by dotted key.
func (s *ConfigStore) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.flat[key]
	if !ok {
		return ""
	}
	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// Set stores a configuration value under a dotted key and persists
// immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	setNested(s.raw, key, value)
	if err := s.save(); err != nil {
		return err
	}
	return s.reload()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.raw)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload()
}

// reload re-reads the file (caller must hold lock).
func (s *ConfigStore) reload() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, start empty
			s.typed = fileConfig{}
			s.raw = make(map[string]any)
			s.flat = make(map[string]any)
			return nil
		}
		return err
	}

	var typed fileConfig
	if err := toml.Unmarshal(data, &typed); err != nil {
		return err
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		raw = make(map[string]any)
	}

	s.typed = typed
	s.raw = raw
	// Flatten nested maps into dot-notation keys for easier access
	s.flat = flattenMap(raw, "")
	return nil
}

// Watch invokes onChange whenever the backing file changes. The
// store reloads itself before notifying, so accessors already see the
// new values inside the callback.
func (s *ConfigStore) Watch(onChange func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors replace files on save, which drops
	// a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.filePath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.Load(); err != nil {
					logger.Warn("config: reload failed: %v", err)
					continue
				}
				logger.Debug("config: reloaded %s", s.filePath)
				if onChange != nil {
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config: watch error: %v", err)
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		watcher.Close()
	}
	return stop, nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// setNested writes value into a nested map following dot-notation.
func setNested(m map[string]any, key string, value any) {
	parts := splitKey(key)
	for i := 0; i < len(parts)-1; i++ {
		next, ok := m[parts[i]].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[parts[i]] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

func splitKey(key string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			parts = append(parts, key[start:i])
			start = i + 1
		}
	}
	return append(parts, key[start:])
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
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}
