package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/josejalvarezm/autoinx-functions/internal/domain"
	yaml "go.yaml.in/yaml/v3"
)

// defaultsFile is the YAML shape of AUTOINX_DEFAULTS_FILE
type defaultsFile struct {
	MaintenanceMode   *bool                `yaml:"maintenanceMode"`
	ChatWidgetEnabled *bool                `yaml:"chatWidgetEnabled"`
	IPWhitelist       []string             `yaml:"ipWhitelist"`
	ChatSchedule      *domain.ChatSchedule `yaml:"chatSchedule"`
}

// applyDefaultsFile overlays the seeded record and fallback schedule with the file's values
func applyDefaultsFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f defaultsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("yaml decode: %w", err)
	}

	if f.MaintenanceMode != nil {
		cfg.Defaults.MaintenanceMode = *f.MaintenanceMode
	}
	if f.ChatWidgetEnabled != nil {
		cfg.Defaults.ChatWidgetEnabled = *f.ChatWidgetEnabled
	}
	if f.IPWhitelist != nil {
		cfg.Defaults.IPWhitelist = f.IPWhitelist
	}
	if f.ChatSchedule != nil {
		if err := f.ChatSchedule.Validate(); err != nil {
			return fmt.Errorf("chatSchedule: %w", err)
		}
		cfg.FallbackSchedule = *f.ChatSchedule
	}
	return nil
}
