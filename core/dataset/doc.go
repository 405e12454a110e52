// Package dataset implements reading and writing of the two persisted
// tabular record sets (primary credit scores, secondary account statuses).
//
// Both datasets are plain CSV: a header row with the declared field names
// followed by one record per line. The reader normalizes structural noise
// (surrounding whitespace, empty-named columns) silently and diverts rows
// whose identifier is missing or non-integer into an InvalidRow report
// instead of failing. The writer performs a full truncate-and-rewrite;
// there is no append path.
//
// # Identifier contract
//
// Identifiers are positive integers unique across the union of both
// datasets, not merely within one file. The reader does not deduplicate;
// duplicate-identifier policy is owned by the integrity validator.
package dataset
