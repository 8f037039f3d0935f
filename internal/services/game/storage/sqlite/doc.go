// Package sqlite implements the prize catalog persistence contract on SQLite.
//
// Prizes are stored in their binary wire form next to a format version and a
// few denormalized columns (gold, experience, effect_count) that AIP-160
// filters translate into. Only this package turns records into SQL rows.
package sqlite
