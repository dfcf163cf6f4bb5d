// Package services implements the driving port interfaces.
// Services contain the core alignment logic and orchestrate
// calls to driven ports (adapters).
//
// Resolve is the resolution engine itself: a pure function over
// already-loaded inputs. AlignmentService wraps it with loading,
// alias lookup and optional run recording.
//
// Services are pure Go with no CGO or external dependencies.
package services
