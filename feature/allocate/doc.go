// Package allocate hands out new identifiers for the shared namespace of
// the primary and secondary datasets.
//
// Allocation is gap-filling: unused integers below the current maximum are
// reused before the sequence is extended, so deletions do not permanently
// waste identifier values. The scan is O(max id) per call, which is bounded
// by dataset cardinality for this batch tool.
//
// The used set passed in must be the union of identifiers from both
// datasets; identifiers form a single namespace across the two files.
package allocate
