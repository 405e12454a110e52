package integrity

import (
	"sort"

	"record-manager/core/dataset"
)

// Kind classifies an integrity finding.
type Kind string

const (
	// KindFieldMismatch reports a shared field whose value differs between
	// the two datasets for the same identifier.
	KindFieldMismatch Kind = "field-mismatch"
	// KindMissingSecondary reports a primary record with no secondary
	// counterpart.
	KindMissingSecondary Kind = "missing-secondary"
	// KindMissingPrimary reports a secondary record with no primary
	// counterpart.
	KindMissingPrimary Kind = "missing-primary"
)

// Finding is a single reported inconsistency between the datasets.
// Findings are report-only; none of them is fatal to the pipeline.
type Finding struct {
	// ID is the identifier the finding concerns.
	ID int `json:"id"`
	// Field is the mismatched shared field; empty for missing-counterpart
	// findings.
	Field string `json:"field,omitempty"`
	// Primary is the value on the primary side, if present.
	Primary string `json:"primary,omitempty"`
	// Secondary is the value on the secondary side, if present.
	Secondary string `json:"secondary,omitempty"`
	// Kind is the finding classification.
	Kind Kind `json:"kind"`
}

// Check cross-references the existing primary and secondary records by
// identifier and returns every inconsistency on the shared fields.
//
// Duplicate identifiers within one dataset are resolved deterministically:
// the first occurrence wins and later ones are ignored. The check is
// symmetric; identifiers present on only one side are reported as
// missing-counterpart findings in either direction. Findings are sorted by
// (id, field) for deterministic output.
func Check(primary, secondary []dataset.Record, sharedFields []string) []Finding {
	primaryIdx := indexFirst(primary)
	secondaryIdx := indexFirst(secondary)

	var findings []Finding

	for id, sec := range secondaryIdx {
		prim, ok := primaryIdx[id]
		if !ok {
			findings = append(findings, Finding{ID: id, Kind: KindMissingPrimary})
			continue
		}
		for _, field := range sharedFields {
			pv, sv := prim.Get(field), sec.Get(field)
			if pv != sv {
				findings = append(findings, Finding{
					ID:        id,
					Field:     field,
					Primary:   pv,
					Secondary: sv,
					Kind:      KindFieldMismatch,
				})
			}
		}
	}

	for id := range primaryIdx {
		if _, ok := secondaryIdx[id]; !ok {
			findings = append(findings, Finding{ID: id, Kind: KindMissingSecondary})
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].ID != findings[j].ID {
			return findings[i].ID < findings[j].ID
		}
		return findings[i].Field < findings[j].Field
	})

	return findings
}

// indexFirst maps identifier to record, first occurrence wins.
func indexFirst(records []dataset.Record) map[int]dataset.Record {
	idx := make(map[int]dataset.Record, len(records))
	for _, rec := range records {
		if _, ok := idx[rec.ID]; !ok {
			idx[rec.ID] = rec
		}
	}
	return idx
}

// CountByKind tallies findings per kind for summary output.
func CountByKind(findings []Finding) map[Kind]int {
	counts := make(map[Kind]int)
	for _, f := range findings {
		counts[f.Kind]++
	}
	return counts
}
