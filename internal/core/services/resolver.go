package services

import (
	"github.com/custodia-labs/roialign/internal/core/domain"
)

// AliasLookup is the read side of an alias table.
// *domain.AliasTable satisfies it.
type AliasLookup interface {
	Lookup(xName string) (yName string, ok bool)
}

// Resolve assigns every volume record an outcome, in input order.
//
// Tiers are tried in order and the first success wins:
//
//  1. exact: the name is a key of index
//  2. alias: aliases maps the name to a key of index
//  3. lateral mirror: a Right- name whose Left- counterpart passes tier 1 or 2
//     yields a hint carrying the left id, never a resolved id
//  4. no match
//
// An alias whose target is absent from index is a miss, not a result.
// Resolve is deterministic and does not modify its inputs.
func Resolve(records []domain.VolumeRecord, index domain.IndexMapping, aliases AliasLookup) []domain.OutcomeRecord {
	outcomes := make([]domain.OutcomeRecord, len(records))
	for i := range records {
		outcomes[i] = resolveOne(records[i], index, aliases)
	}
	return outcomes
}

func resolveOne(rec domain.VolumeRecord, index domain.IndexMapping, aliases AliasLookup) domain.OutcomeRecord {
	out := domain.OutcomeRecord{
		Name:   rec.Name,
		Volume: rec.Volume,
	}

	if id, ok := index.Lookup(rec.Name); ok {
		out.ResolvedID = id
		out.Status = domain.StatusExactMatch
		return out
	}

	if target, id, ok := lookupAlias(rec.Name, index, aliases); ok {
		out.ResolvedID = id
		out.Status = domain.StatusMatchedAlias
		out.Detail = target
		return out
	}

	if left, ok := domain.MirrorToLeft(rec.Name); ok {
		// Only tiers 1 and 2 are retried for the mirrored name.
		if id, ok := index.Lookup(left); ok {
			out.Status = domain.StatusRightSideHint
			out.Detail = id
			return out
		}
		if _, id, ok := lookupAlias(left, index, aliases); ok {
			out.Status = domain.StatusRightSideHint
			out.Detail = id
			return out
		}
		out.Status = domain.StatusRightSideNoHint
		return out
	}

	out.Status = domain.StatusNoMatch
	return out
}

// lookupAlias follows an alias rule and checks its target against index.
func lookupAlias(name string, index domain.IndexMapping, aliases AliasLookup) (target, id string, ok bool) {
	if aliases == nil {
		return "", "", false
	}
	target, ok = aliases.Lookup(name)
	if !ok {
		return "", "", false
	}
	id, ok = index.Lookup(target)
	if !ok {
		return "", "", false
	}
	return target, id, true
}
