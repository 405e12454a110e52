// Package rewrite merges existing and newly synthesized records, sorts
// them by identifier, and overwrites every output target in parallel.
//
// Each output target (a full dataset file, or one dataset's chunk set) is
// owned by exactly one task. Tasks run on a fixed-size worker pool and
// report into per-task result slots, so a failing target never blocks,
// corrupts or masks another target's write. The pipeline joins on all
// tasks; no partial completion is observable by the caller.
//
// Rows are fully sorted in memory before any byte is written. The chunked
// export splits the sorted sequence into fixed-size parts named
// <base>_part<k>.csv with a configured field subset; dropped fields are
// silently omitted.
package rewrite
