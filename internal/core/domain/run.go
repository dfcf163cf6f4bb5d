package domain

import "time"

// AlignmentRun is one recorded resolution pass.
type AlignmentRun struct {
	// ID uniquely identifies the run.
	ID string

	// CreatedAt is when the run completed.
	CreatedAt time.Time

	// AliasVersion is the version of the alias table used.
	AliasVersion string

	// Outcomes are in volume-list order.
	Outcomes []OutcomeRecord
}

// RunSummary counts outcomes per status.
type RunSummary struct {
	Total  int
	Counts map[StatusKind]int

	resolved int
}

// Resolved returns the number of outcomes with an authoritative id.
func (s RunSummary) Resolved() int {
	return s.resolved
}

// Summary returns the per-status counts for the run.
func (r *AlignmentRun) Summary() RunSummary {
	return Summarise(r.Outcomes)
}

// Summarise counts outcomes per status.
func Summarise(outcomes []OutcomeRecord) RunSummary {
	s := RunSummary{
		Total:  len(outcomes),
		Counts: make(map[StatusKind]int, len(AllStatusKinds())),
	}
	for i := range outcomes {
		s.Counts[outcomes[i].Status]++
		if outcomes[i].IsResolved() {
			s.resolved++
		}
	}
	return s
}
