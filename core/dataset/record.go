package dataset

// Dataset names used in reports and diagnostics.
const (
	PrimaryName   = "primary"
	SecondaryName = "secondary"
)

// IDField is the identifier column shared by both datasets.
const IDField = "id"

// Field contracts for the two datasets. The order is the column order
// written to disk.
var (
	PrimaryFields   = []string{"id", "name", "email", "credit_score"}
	SecondaryFields = []string{"id", "name", "email", "account_status"}

	// SharedFields are duplicated across both datasets for a given
	// identifier and must stay in sync.
	SharedFields = []string{"name", "email"}
)

// Record is a single parsed row. ID is the parsed identifier; Fields holds
// every column value by header name, including the raw "id" value.
type Record struct {
	ID     int
	Fields map[string]string
}

// Get returns the value of the named field, or "" if unset.
func (r Record) Get(field string) string {
	return r.Fields[field]
}

// Reason codes for rows that fail structural validation.
const (
	ReasonMissingID = "missing-id"
	ReasonBadID     = "bad-id"
)

// InvalidRow is a row that failed minimal structural validation. It is
// reported only and never participates in allocation, integrity checking
// or rewriting.
type InvalidRow struct {
	// Dataset is the owning dataset name (primary, secondary).
	Dataset string `json:"dataset"`
	// Raw is the original row content, comma-joined.
	Raw string `json:"raw"`
	// Reason is the validation failure code.
	Reason string `json:"reason"`
}

// ReadResult is the outcome of reading one dataset file.
type ReadResult struct {
	// Records are the valid rows in file order.
	Records []Record
	// IDs is the set of identifiers used by the valid rows.
	IDs map[int]struct{}
	// Invalid are the rows diverted during structural validation.
	Invalid []InvalidRow
}
