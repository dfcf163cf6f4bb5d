// Package textlist parses the line-oriented ROI lists.
//
// Both lists share one grammar: whitespace-separated tokens, one record per
// line. Blank lines and lines with fewer than two tokens are dropped without
// error; tokens past the second are ignored.
//
//   - Volume list (list A): "<name> <volume>"
//   - Index list (list B):  "<id> <name>"
//
// Volumes are parsed with shopspring/decimal. Decimal and exponent notation
// are accepted; NaN, Inf and negative values are rejected in strict mode
// rather than coerced.
package textlist
