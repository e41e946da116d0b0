// Package order defines the editing model for warehouse orders: untyped
// field/value records, the non-empty record sets behind multi-line orders,
// and the per-mode schemas that drive field ordering, sequencing, and
// assisted lookup eligibility.
//
// All values are plain strings. The payload builder owns validation and
// type coercion; the UI layers mutate records in place through this package
// and never interpret the values they carry.
package order
