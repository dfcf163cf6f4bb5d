// Package domain defines the core entities for ROI label alignment.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - VolumeRecord: A ROI name with its measured volume (list A)
//   - IndexMapping: ROI names to index codes (list B)
//   - AliasTable: Curated, versioned name-to-name fallbacks
//   - OutcomeRecord: The resolution result for one VolumeRecord
//   - AlignmentRun: A recorded set of outcomes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
