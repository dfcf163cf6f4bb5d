package driven

import (
	"io"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

// ListParser turns line-oriented list text into records.
// Implementations must read the whole stream before returning.
type ListParser interface {
	// ParseVolumes reads list A (name, volume).
	// Records are returned in input order.
	ParseVolumes(r io.Reader, mode domain.VolumeMode) ([]domain.VolumeRecord, error)

	// ParseIndex reads list B (id, name) into a name-to-id mapping.
	// A later line with the same name overwrites an earlier one.
	ParseIndex(r io.Reader) (domain.IndexMapping, error)
}
