package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
	"github.com/custodia-labs/roialign/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unrecognised stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Alias: domain.AliasSettings{
			Path: s.configStore.GetString(domain.SettingAliasPath),
		},
		Volume: domain.VolumeSettings{
			Mode: s.getVolumeMode(defaults.Volume.Mode),
		},
		Report: domain.ReportSettings{
			Format: s.getReportFormat(defaults.Report.Format),
			Color:  s.getColorMode(defaults.Report.Color),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(domain.SettingHistoryEnabled, defaults.History.Enabled),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(domain.SettingAliasPath, settings.Alias.Path); err != nil {
		return fmt.Errorf("save alias path: %w", err)
	}
	if err := s.configStore.Set(domain.SettingVolumeMode, settings.Volume.Mode.String()); err != nil {
		return fmt.Errorf("save volume mode: %w", err)
	}
	if err := s.configStore.Set(domain.SettingReportFormat, settings.Report.Format.String()); err != nil {
		return fmt.Errorf("save report format: %w", err)
	}
	if err := s.configStore.Set(domain.SettingReportColor, settings.Report.Color.String()); err != nil {
		return fmt.Errorf("save report color: %w", err)
	}
	if err := s.configStore.Set(domain.SettingHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}

	return nil
}

// Set updates a single setting by its dotted key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case domain.SettingAliasPath:
		settings.Alias.Path = value
	case domain.SettingVolumeMode:
		mode := domain.VolumeMode(value)
		if !mode.IsValid() {
			return fmt.Errorf("invalid volume mode: %s", value)
		}
		settings.Volume.Mode = mode
	case domain.SettingReportFormat:
		format := domain.ReportFormat(value)
		if !format.IsValid() {
			return fmt.Errorf("invalid report format: %s", value)
		}
		settings.Report.Format = format
	case domain.SettingReportColor:
		color := domain.ColorMode(value)
		if !color.IsValid() {
			return fmt.Errorf("invalid color mode: %s", value)
		}
		settings.Report.Color = color
	case domain.SettingHistoryEnabled:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %s", key, value)
		}
		settings.History.Enabled = enabled
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrNotFound)
	}

	return s.Save(settings)
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	return domain.SettingKeys()
}

// Validate checks if current settings are valid.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getVolumeMode(defaultVal domain.VolumeMode) domain.VolumeMode {
	mode := domain.VolumeMode(s.configStore.GetString(domain.SettingVolumeMode))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}

func (s *SettingsService) getReportFormat(defaultVal domain.ReportFormat) domain.ReportFormat {
	format := domain.ReportFormat(s.configStore.GetString(domain.SettingReportFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getColorMode(defaultVal domain.ColorMode) domain.ColorMode {
	color := domain.ColorMode(s.configStore.GetString(domain.SettingReportColor))
	if !color.IsValid() {
		return defaultVal
	}
	return color
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
