// Package storage defines persistence contracts for the prize catalog.
//
// Implementations (e.g., SQLite) live in subpackages and keep prizes in their
// binary wire form, so a stored record decodes with the same checks as any
// other encoded prize.
//
// Common error types:
//   - ErrNotFound: requested record is missing
package storage
