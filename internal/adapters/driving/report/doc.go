// Package report renders alignment outcomes for people and for tools.
//
// The table format reproduces the fixed-width layout used by existing
// reconciliation sheets; markdown, csv and json carry the same columns.
package report
