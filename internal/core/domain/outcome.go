package domain

import "fmt"

// StatusKind classifies how a VolumeRecord was resolved.
type StatusKind string

// Resolution statuses, one per tier.
const (
	// StatusExactMatch means the name was found verbatim in the index.
	StatusExactMatch StatusKind = "exact_match"

	// StatusMatchedAlias means a curated alias led to an index entry.
	StatusMatchedAlias StatusKind = "matched_alias"

	// StatusRightSideHint means a right-side name has a left-side counterpart.
	// The counterpart id is informational only.
	StatusRightSideHint StatusKind = "right_side_hint"

	// StatusRightSideNoHint means a right-side name has no left-side counterpart.
	StatusRightSideNoHint StatusKind = "right_side_no_hint"

	// StatusNoMatch means no tier produced a result.
	StatusNoMatch StatusKind = "no_match"
)

// AllStatusKinds returns every status in tier order.
func AllStatusKinds() []StatusKind {
	return []StatusKind{
		StatusExactMatch,
		StatusMatchedAlias,
		StatusRightSideHint,
		StatusRightSideNoHint,
		StatusNoMatch,
	}
}

// IsValid returns true if the status is recognised.
func (k StatusKind) IsValid() bool {
	switch k {
	case StatusExactMatch, StatusMatchedAlias, StatusRightSideHint, StatusRightSideNoHint, StatusNoMatch:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k StatusKind) String() string {
	return string(k)
}

// ParseStatusKind parses a stored status string.
func ParseStatusKind(s string) (StatusKind, error) {
	k := StatusKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("status %q: %w", s, ErrInvalidInput)
	}
	return k, nil
}

// OutcomeRecord is the resolution result for one VolumeRecord.
type OutcomeRecord struct {
	// Name equals the source VolumeRecord name.
	Name string

	// Volume is the source volume, untouched.
	Volume Volume

	// ResolvedID is the index id, empty unless Status is exact or alias.
	ResolvedID string

	// Status is the tier that produced this outcome.
	Status StatusKind

	// Detail is the alias target for MatchedAlias and the left-side id for RightSideHint.
	Detail string
}

// Note returns the human-readable status note.
func (o OutcomeRecord) Note() string {
	switch o.Status {
	case StatusExactMatch:
		return "Exact Match"
	case StatusMatchedAlias:
		return "Matched to " + o.Detail
	case StatusRightSideHint:
		return fmt.Sprintf("Right Side (Left ID: %s)", o.Detail)
	case StatusRightSideNoHint:
		return "Right Side (No Left match)"
	case StatusNoMatch:
		return "No Match"
	default:
		return unknownDescription
	}
}

// IsResolved returns true if the outcome carries an authoritative index id.
func (o OutcomeRecord) IsResolved() bool {
	return o.ResolvedID != ""
}
