package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFileMissing(t *testing.T) {
	result, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"), PrimaryName)
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.IDs)
	assert.Empty(t, result.Invalid)
}

func TestReadFileEmpty(t *testing.T) {
	path := writeTemp(t, "")
	result, err := ReadFile(path, PrimaryName)
	require.NoError(t, err)
	assert.Empty(t, result.Records)
}

func TestReadFileValidRows(t *testing.T) {
	path := writeTemp(t, "id,name,email,credit_score\n1,Ann,ann@example.com,700\n2,Bob,bob@example.com,650\n")

	result, err := ReadFile(path, PrimaryName)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Empty(t, result.Invalid)

	assert.Equal(t, 1, result.Records[0].ID)
	assert.Equal(t, "Ann", result.Records[0].Get("name"))
	assert.Equal(t, "700", result.Records[0].Get("credit_score"))
	assert.Contains(t, result.IDs, 1)
	assert.Contains(t, result.IDs, 2)
}

func TestReadFileTrimsWhitespace(t *testing.T) {
	path := writeTemp(t, "id, name ,email\n 7 , Ann ,ann@example.com \n")

	result, err := ReadFile(path, PrimaryName)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, 7, result.Records[0].ID)
	assert.Equal(t, "Ann", result.Records[0].Get("name"))
	assert.Equal(t, "ann@example.com", result.Records[0].Get("email"))
}

func TestReadFileDropsEmptyNamedColumns(t *testing.T) {
	path := writeTemp(t, "id,,name\n3,junk,Ann\n")

	result, err := ReadFile(path, PrimaryName)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, map[string]string{"id": "3", "name": "Ann"}, result.Records[0].Fields)
}

func TestReadFileInvalidRows(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		reason string
	}{
		{"NonIntegerID", "abc,Ann,ann@example.com", ReasonBadID},
		{"BlankID", ",Ann,ann@example.com", ReasonMissingID},
		{"FloatID", "1.5,Ann,ann@example.com", ReasonBadID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "id,name,email\n"+tt.row+"\n")

			result, err := ReadFile(path, SecondaryName)
			require.NoError(t, err)
			assert.Empty(t, result.Records)
			require.Len(t, result.Invalid, 1)
			assert.Equal(t, SecondaryName, result.Invalid[0].Dataset)
			assert.Equal(t, tt.reason, result.Invalid[0].Reason)
			assert.NotEmpty(t, result.Invalid[0].Raw)
		})
	}
}

func TestReadFileKeepsDuplicateIdentifiers(t *testing.T) {
	path := writeTemp(t, "id,name\n5,Ann\n5,Anne\n")

	result, err := ReadFile(path, PrimaryName)
	require.NoError(t, err)
	// The reader must not drop data; duplicate policy belongs to the
	// integrity validator.
	require.Len(t, result.Records, 2)
	assert.Equal(t, "Ann", result.Records[0].Get("name"))
	assert.Equal(t, "Anne", result.Records[1].Get("name"))
	assert.Len(t, result.IDs, 1)
}

func TestReadFileShortAndLongRows(t *testing.T) {
	path := writeTemp(t, "id,name,email\n1,Ann\n2,Bob,bob@example.com,extra\n")

	result, err := ReadFile(path, PrimaryName)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "", result.Records[0].Get("email"))
	assert.Equal(t, "bob@example.com", result.Records[1].Get("email"))
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.csv")
	records := []Record{
		{ID: 1, Fields: map[string]string{"id": "1", "name": "Ann", "email": "ann@example.com", "credit_score": "700"}},
		{ID: 2, Fields: map[string]string{"id": "2", "name": "Bob", "email": "bob@example.com", "credit_score": "650"}},
	}

	require.NoError(t, WriteFile(path, PrimaryFields, records))

	result, err := ReadFile(path, PrimaryName)
	require.NoError(t, err)
	assert.Empty(t, result.Invalid)
	require.Len(t, result.Records, len(records))
	for i, rec := range records {
		assert.Equal(t, rec.ID, result.Records[i].ID)
		assert.Equal(t, rec.Fields, result.Records[i].Fields)
	}
}
