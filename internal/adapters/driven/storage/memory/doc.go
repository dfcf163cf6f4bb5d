// Package memory provides in-memory implementations of driven port interfaces.
//
// These adapters back the CLI when nothing is persisted (an empty alias
// table, no history) and serve as fakes in tests.
package memory
