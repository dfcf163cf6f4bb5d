package domain

import (
	"fmt"
	"sort"
)

// AliasRule maps a convention-X name to a convention-Y name.
// Rules are directional; no inverse lookup is implied.
type AliasRule struct {
	From string
	To   string
}

// AliasTable is a curated, versioned set of alias rules.
// A rule is only usable when its target exists in the index being resolved
// against; that check happens at resolution time, never here.
type AliasTable struct {
	// Version identifies the curated revision of the table.
	Version string

	rules map[string]string
}

// NewAliasTable builds a table from rules.
// A repeated From keeps the last rule.
func NewAliasTable(version string, rules ...AliasRule) (*AliasTable, error) {
	t := &AliasTable{
		Version: version,
		rules:   make(map[string]string, len(rules)),
	}
	for _, r := range rules {
		if r.From == "" || r.To == "" {
			return nil, fmt.Errorf("alias rule %q -> %q: %w", r.From, r.To, ErrInvalidInput)
		}
		t.rules[r.From] = r.To
	}
	return t, nil
}

// Lookup returns the convention-Y name curated for xName.
func (t *AliasTable) Lookup(xName string) (string, bool) {
	if t == nil {
		return "", false
	}
	yName, ok := t.rules[xName]
	return yName, ok
}

// Rules returns all rules sorted by From.
func (t *AliasTable) Rules() []AliasRule {
	if t == nil {
		return nil
	}
	rules := make([]AliasRule, 0, len(t.rules))
	for from, to := range t.rules {
		rules = append(rules, AliasRule{From: from, To: to})
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].From < rules[j].From
	})
	return rules
}

// Len returns the number of rules.
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}
