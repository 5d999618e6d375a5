package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"musiccast/internal/musiccast"
)

// Config is the saved-devices file the CLI keeps so receivers don't have to
// be re-addressed on every invocation. The library itself never reads it.
type Config struct {
	Devices []DeviceConfig `yaml:"devices"`
}

// DeviceConfig is one saved receiver.
type DeviceConfig struct {
	Name      string `yaml:"name"`
	Address   string `yaml:"address"`
	EventPort int    `yaml:"event_port"`
}

// Manager handles loading and saving the CLI configuration file.
type Manager struct {
	path string
}

// NewManager creates a manager for the given config path. An empty path
// selects ~/.config/musiccast/devices.yaml.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".config", "musiccast", "devices.yaml")
	}
	return &Manager{path: path}, nil
}

// Load reads the config, returning an empty config when the file does not
// exist yet.
func (m *Manager) Load() (*Config, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Save writes the config, creating parent directories as needed.
func (m *Manager) Save(config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AddDevice saves a new device under a unique name.
func (m *Manager) AddDevice(device DeviceConfig) error {
	config, err := m.Load()
	if err != nil {
		return err
	}

	for _, existing := range config.Devices {
		if existing.Name == device.Name {
			return fmt.Errorf("device '%s' already exists", device.Name)
		}
	}

	config.Devices = append(config.Devices, device)
	return m.Save(config)
}

// RemoveDevice deletes a saved device by name.
func (m *Manager) RemoveDevice(name string) error {
	config, err := m.Load()
	if err != nil {
		return err
	}

	for i, device := range config.Devices {
		if device.Name == name {
			config.Devices = append(config.Devices[:i], config.Devices[i+1:]...)
			return m.Save(config)
		}
	}

	return fmt.Errorf("device '%s' not found", name)
}

// GetDevice looks up a saved device by name.
func (m *Manager) GetDevice(name string) (*DeviceConfig, error) {
	config, err := m.Load()
	if err != nil {
		return nil, err
	}

	for _, device := range config.Devices {
		if device.Name == name {
			return &device, nil
		}
	}

	return nil, fmt.Errorf("device '%s' not found", name)
}

// Validate checks every saved device has a name and address and names are
// unique.
func (c *Config) Validate() error {
	names := make(map[string]bool)
	for i, device := range c.Devices {
		if device.Name == "" {
			return fmt.Errorf("device[%d].name is required", i)
		}
		if names[device.Name] {
			return fmt.Errorf("duplicate device name: %s", device.Name)
		}
		names[device.Name] = true

		if device.Address == "" {
			return fmt.Errorf("device[%d].address is required", i)
		}
		if p := device.EventPort; p != 0 && (p < 1024 || p > 65535) {
			return fmt.Errorf("device[%d].event_port out of range: %d", i, p)
		}
	}
	return nil
}

// EventPortOrDefault returns the saved event port, falling back to the
// protocol's well-known default.
func (d *DeviceConfig) EventPortOrDefault() int {
	if d.EventPort != 0 {
		return d.EventPort
	}
	return musiccast.DefaultEventPort
}
