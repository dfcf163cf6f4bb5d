package domain

import "strings"

// Side prefixes used by ROI names.
const (
	LeftPrefix  = "Left-"
	RightPrefix = "Right-"
)

// VolumeMode controls how volume tokens that are not numbers are handled.
type VolumeMode string

// Available volume modes.
const (
	// VolumeModeStrict rejects any volume that is not a non-negative decimal.
	VolumeModeStrict VolumeMode = "strict"

	// VolumeModePassthrough keeps unparseable volumes as opaque text.
	VolumeModePassthrough VolumeMode = "passthrough"
)

// AllVolumeModes returns all supported volume modes.
func AllVolumeModes() []VolumeMode {
	return []VolumeMode{VolumeModeStrict, VolumeModePassthrough}
}

// IsValid returns true if the volume mode is recognised.
func (m VolumeMode) IsValid() bool {
	switch m {
	case VolumeModeStrict, VolumeModePassthrough:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m VolumeMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m VolumeMode) Description() string {
	switch m {
	case VolumeModeStrict:
		return "Strict (reject non-numeric volumes)"
	case VolumeModePassthrough:
		return "Passthrough (keep volumes as text)"
	default:
		return unknownDescription
	}
}

// Volume is a measured ROI volume.
// Raw always holds the token as read; Value is meaningful only when Numeric is true.
type Volume struct {
	Raw     string
	Value   float64
	Numeric bool
}

// String returns the volume as it appeared in the input.
func (v Volume) String() string {
	return v.Raw
}

// VolumeRecord is one entry of the volumetric measurement list (list A).
type VolumeRecord struct {
	// Name is the ROI name, usually a laterality prefix plus a nucleus abbreviation.
	Name string

	// Volume is the measured volume.
	Volume Volume
}

// MirrorToLeft swaps a leading Right- prefix for Left-.
// The second return value is false when name has no Right- prefix.
func MirrorToLeft(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, RightPrefix)
	if !ok {
		return "", false
	}
	return LeftPrefix + rest, true
}
