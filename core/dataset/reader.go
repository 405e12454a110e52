package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadFile parses the dataset at path into valid records, their identifier
// set, and the rows diverted during validation.
//
// A missing file yields an empty result, not an error. Surrounding
// whitespace is trimmed from every value and columns with an empty header
// name are dropped. A row is valid iff its id field parses as an integer;
// anything else becomes an InvalidRow. Duplicate identifiers are kept as
// separate valid rows.
func ReadFile(path, datasetName string) (*ReadResult, error) {
	result := &ReadResult{IDs: make(map[int]struct{})}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to open %s dataset: %w", datasetName, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Rows with a deviating column count still map by header position.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		// Empty file is equivalent to a missing one.
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", datasetName, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s row: %w", datasetName, err)
		}

		fields := make(map[string]string, len(header))
		for i, val := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			fields[header[i]] = strings.TrimSpace(val)
		}

		raw := strings.Join(row, ",")
		idVal, ok := fields[IDField]
		if !ok || idVal == "" {
			result.Invalid = append(result.Invalid, InvalidRow{Dataset: datasetName, Raw: raw, Reason: ReasonMissingID})
			continue
		}
		id, err := strconv.Atoi(idVal)
		if err != nil {
			result.Invalid = append(result.Invalid, InvalidRow{Dataset: datasetName, Raw: raw, Reason: ReasonBadID})
			continue
		}

		result.Records = append(result.Records, Record{ID: id, Fields: fields})
		result.IDs[id] = struct{}{}
	}

	return result, nil
}
