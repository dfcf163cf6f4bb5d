package domain

import "fmt"

const unknownDescription = "Unknown"

// ReportFormat selects how outcomes are rendered.
type ReportFormat string

// Available report formats.
const (
	// ReportFormatTable is a fixed-width text table.
	ReportFormatTable ReportFormat = "table"

	// ReportFormatMarkdown is a GitHub-flavoured markdown table.
	ReportFormatMarkdown ReportFormat = "markdown"

	// ReportFormatCSV is comma-separated values with a header row.
	ReportFormatCSV ReportFormat = "csv"

	// ReportFormatJSON is a JSON array of outcomes.
	ReportFormatJSON ReportFormat = "json"
)

// AllReportFormats returns all supported report formats.
func AllReportFormats() []ReportFormat {
	return []ReportFormat{ReportFormatTable, ReportFormatMarkdown, ReportFormatCSV, ReportFormatJSON}
}

// IsValid returns true if the report format is recognised.
func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportFormatTable, ReportFormatMarkdown, ReportFormatCSV, ReportFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ReportFormat) String() string {
	return string(f)
}

// ColorMode controls styling of table output.
type ColorMode string

// Available colour modes.
const (
	// ColorAuto styles output only when writing to a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways always styles output.
	ColorAlways ColorMode = "always"

	// ColorNever never styles output.
	ColorNever ColorMode = "never"
)

// AllColorModes returns all supported colour modes.
func AllColorModes() []ColorMode {
	return []ColorMode{ColorAuto, ColorAlways, ColorNever}
}

// IsValid returns true if the colour mode is recognised.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c ColorMode) String() string {
	return string(c)
}

// Setting keys as they appear, dotted, in the config file.
const (
	SettingAliasPath      = "alias.path"
	SettingVolumeMode     = "volume.mode"
	SettingReportFormat   = "report.format"
	SettingReportColor    = "report.color"
	SettingHistoryEnabled = "history.enabled"
)

// SettingKeys returns every setting key in display order.
func SettingKeys() []string {
	return []string{
		SettingAliasPath,
		SettingVolumeMode,
		SettingReportFormat,
		SettingReportColor,
		SettingHistoryEnabled,
	}
}

// IsBoolSetting reports whether key holds a boolean rather than a string.
func IsBoolSetting(key string) bool {
	return key == SettingHistoryEnabled
}

// AliasSettings locates the curated alias table.
type AliasSettings struct {
	// Path is a TOML or YAML alias file. Empty means no aliases.
	Path string
}

// VolumeSettings holds volume parsing configuration.
type VolumeSettings struct {
	// Mode decides what happens to non-numeric volume tokens.
	Mode VolumeMode
}

// ReportSettings holds output configuration.
type ReportSettings struct {
	// Format is the default report format.
	Format ReportFormat

	// Color controls styling of the table format.
	Color ColorMode
}

// HistorySettings holds run history configuration.
type HistorySettings struct {
	// Enabled records every alignment run.
	Enabled bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Alias   AliasSettings
	Volume  VolumeSettings
	Report  ReportSettings
	History HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
// No alias table is configured and history is off.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Volume: VolumeSettings{
			Mode: VolumeModeStrict,
		},
		Report: ReportSettings{
			Format: ReportFormatTable,
			Color:  ColorAuto,
		},
	}
}

// Validate checks that every enumerated setting is recognised.
func (s AppSettings) Validate() error {
	if !s.Volume.Mode.IsValid() {
		return fmt.Errorf("volume mode %q: %w", s.Volume.Mode, ErrInvalidInput)
	}
	if !s.Report.Format.IsValid() {
		return fmt.Errorf("report format %q: %w", s.Report.Format, ErrUnsupportedFormat)
	}
	if !s.Report.Color.IsValid() {
		return fmt.Errorf("color mode %q: %w", s.Report.Color, ErrInvalidInput)
	}
	return nil
}
