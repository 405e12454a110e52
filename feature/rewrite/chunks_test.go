package rewrite

import (
	"path/filepath"
	"strconv"
	"testing"

	"record-manager/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(n int) []dataset.Record {
	records := make([]dataset.Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, dataset.Record{
			ID: i,
			Fields: map[string]string{
				"id":           strconv.Itoa(i),
				"name":         "User " + strconv.Itoa(i),
				"email":        "user" + strconv.Itoa(i) + "@example.com",
				"credit_score": "700",
			},
		})
	}
	return records
}

func TestChunksSizes(t *testing.T) {
	chunks := Chunks(makeRecords(250), 100)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 100)
	assert.Len(t, chunks[1], 100)
	assert.Len(t, chunks[2], 50)

	// Chunk k holds the k-th lowest identifiers.
	assert.Equal(t, 1, chunks[0][0].ID)
	assert.Equal(t, 100, chunks[0][99].ID)
	assert.Equal(t, 101, chunks[1][0].ID)
	assert.Equal(t, 250, chunks[2][49].ID)
}

func TestChunksEdgeCases(t *testing.T) {
	assert.Nil(t, Chunks(nil, 100))
	assert.Nil(t, Chunks(makeRecords(10), 0))

	exact := Chunks(makeRecords(200), 100)
	require.Len(t, exact, 2)
	assert.Len(t, exact[1], 100)

	single := Chunks(makeRecords(3), 100)
	require.Len(t, single, 1)
	assert.Len(t, single[0], 3)
}

func TestChunkPath(t *testing.T) {
	assert.Equal(t, filepath.Join("export", "credit_scores_part1.csv"), ChunkPath("export", "credit_scores", 1))
	assert.Equal(t, filepath.Join("export", "credit_scores_part12.csv"), ChunkPath("export", "credit_scores", 12))
}

func TestWriteChunksFieldSubset(t *testing.T) {
	dir := t.TempDir()
	fields := []string{"id", "name", "email"}

	paths, err := writeChunks(dir, "credit_scores", fields, 100, makeRecords(250))
	require.NoError(t, err)
	require.Len(t, paths, 3)

	result, err := dataset.ReadFile(paths[2], dataset.PrimaryName)
	require.NoError(t, err)
	require.Len(t, result.Records, 50)
	assert.Equal(t, 201, result.Records[0].ID)

	// The dropped column must not survive into the chunk.
	for _, rec := range result.Records {
		_, hasScore := rec.Fields["credit_score"]
		assert.False(t, hasScore)
		assert.NotEmpty(t, rec.Get("name"))
	}
}
