// Package codec reads knapsack problems from, and writes solutions to, text
// documents. TOML is the primary format; YAML and JSON carry the same shape.
//
// Problem document (TOML):
//
//	costs = [10, 4]          # bound vector
//
//	[[things]]               # "Things" is accepted too
//	name  = "crate"
//	value = 6.0
//	num   = 5                # max count
//	costs = [2, 1]           # per-unit cost vector
//
// Solution document (TOML):
//
//	value = 26.0
//
//	[chosen]
//	barrel = 1
//	crate = 1
//
// Every thing field is required; a missing one yields ErrMissingField.
// Decoded problems pass knapsack.Validate before they are returned.
package codec
