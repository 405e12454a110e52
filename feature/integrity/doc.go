// Package integrity cross-references the primary and secondary datasets.
//
// The two datasets are denormalized: name and email are duplicated per
// identifier with no foreign-key constraint keeping them in sync, so
// consistency has to be checked explicitly. The validator indexes both
// datasets by identifier and reports:
//
//   - field-mismatch: a shared field differs between the two sides
//   - missing-secondary: a primary identifier with no secondary counterpart
//   - missing-primary: a secondary identifier with no primary counterpart
//
// All findings are reported in full and none is fatal; the pipeline
// proceeds regardless. The check runs on existing rows only — newly
// synthesized pairs are consistent by construction.
package integrity
