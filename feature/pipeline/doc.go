// Package pipeline orchestrates one full batch run over the linked
// datasets.
//
// Control flow: read both datasets, union their identifiers, allocate new
// ones gap-first, synthesize linked record pairs, validate the existing
// rows, then rewrite both datasets (and optional chunk exports) as
// independent parallel tasks.
//
// The merged row sets are read-only once handed to rewrite tasks and every
// task owns disjoint output targets, so no locking is needed. Integrity
// findings and per-target write failures are carried in the Summary rather
// than aborting the run.
package pipeline
