package rewrite

import (
	"fmt"
	"path/filepath"

	"record-manager/core/dataset"
)

// Chunks partitions records into contiguous chunks of the given size. The
// last chunk may be short. Chunk boundaries follow the input order, so with
// sorted input chunk k holds the k-th lowest identifiers.
func Chunks(records []dataset.Record, size int) [][]dataset.Record {
	if size <= 0 || len(records) == 0 {
		return nil
	}

	chunks := make([][]dataset.Record, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}
	return chunks
}

// ChunkPath derives the output target for one chunk from the base name and
// the 1-based part index.
func ChunkPath(dir, base string, part int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_part%d.csv", base, part))
}

// writeChunks writes every chunk to its own file, restricted to the given
// field subset, and returns the written paths in part order.
func writeChunks(dir, base string, fields []string, size int, records []dataset.Record) ([]string, error) {
	chunks := Chunks(records, size)
	paths := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		path := ChunkPath(dir, base, i+1)
		if err := dataset.WriteFile(path, fields, chunk); err != nil {
			return paths, fmt.Errorf("failed to write chunk %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
