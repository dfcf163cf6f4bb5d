package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReportFormat_IsValid tests all valid and invalid report formats
func TestReportFormat_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   ReportFormat
		expected bool
	}{
		{name: "table is valid", format: ReportFormatTable, expected: true},
		{name: "markdown is valid", format: ReportFormatMarkdown, expected: true},
		{name: "csv is valid", format: ReportFormatCSV, expected: true},
		{name: "json is valid", format: ReportFormatJSON, expected: true},
		{name: "empty string is invalid", format: ReportFormat(""), expected: false},
		{name: "unknown format is invalid", format: ReportFormat("xml"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsValid())
		})
	}
}

func TestAllReportFormats(t *testing.T) {
	formats := AllReportFormats()

	require.Len(t, formats, 4)
	for _, f := range formats {
		assert.True(t, f.IsValid(), "format %s should be valid", f)
	}
}

func TestVolumeMode_IsValid(t *testing.T) {
	assert.True(t, VolumeModeStrict.IsValid())
	assert.True(t, VolumeModePassthrough.IsValid())
	assert.False(t, VolumeMode("").IsValid())
	assert.False(t, VolumeMode("coerce").IsValid())
}

func TestVolumeMode_Description(t *testing.T) {
	assert.Equal(t, "Strict (reject non-numeric volumes)", VolumeModeStrict.Description())
	assert.Equal(t, "Passthrough (keep volumes as text)", VolumeModePassthrough.Description())
	assert.Equal(t, "Unknown", VolumeMode("other").Description())
}

func TestColorMode_IsValid(t *testing.T) {
	assert.True(t, ColorAuto.IsValid())
	assert.True(t, ColorAlways.IsValid())
	assert.True(t, ColorNever.IsValid())
	assert.False(t, ColorMode("sometimes").IsValid())
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, VolumeModeStrict, settings.Volume.Mode)
	assert.Equal(t, ReportFormatTable, settings.Report.Format)
	assert.Equal(t, ColorAuto, settings.Report.Color)
	assert.Empty(t, settings.Alias.Path)
	assert.False(t, settings.History.Enabled)
	assert.NoError(t, settings.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	t.Run("invalid volume mode", func(t *testing.T) {
		settings := DefaultAppSettings()
		settings.Volume.Mode = "coerce"

		err := settings.Validate()

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid report format", func(t *testing.T) {
		settings := DefaultAppSettings()
		settings.Report.Format = "xml"

		err := settings.Validate()

		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("invalid colour mode", func(t *testing.T) {
		settings := DefaultAppSettings()
		settings.Report.Color = "rainbow"

		err := settings.Validate()

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAllModes_AreValid(t *testing.T) {
	for _, m := range AllVolumeModes() {
		assert.True(t, m.IsValid(), "volume mode %s", m)
	}
	for _, f := range AllReportFormats() {
		assert.True(t, f.IsValid(), "report format %s", f)
	}
	for _, c := range AllColorModes() {
		assert.True(t, c.IsValid(), "colour mode %s", c)
	}
}
