package rewrite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"record-manager/core/dataset"
	"record-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Engine builds rewrite tasks for dataset targets. Inputs handed to a task
// are never mutated; every task sorts its own copy before writing.
type Engine struct {
	log    *zap.Logger
	store  storage.Client
	bucket string
}

// NewEngine creates a rewrite engine. A nil store disables the storage
// mirror.
func NewEngine(log *zap.Logger, store storage.Client, bucket string) *Engine {
	return &Engine{log: log, store: store, bucket: bucket}
}

// Merge combines existing and newly synthesized records and returns them
// sorted by identifier. The sort is stable: duplicate identifiers retain
// their relative input order.
func Merge(existing, fresh []dataset.Record) []dataset.Record {
	merged := make([]dataset.Record, 0, len(existing)+len(fresh))
	merged = append(merged, existing...)
	merged = append(merged, fresh...)
	return SortByID(merged)
}

// SortByID returns a copy of records stably sorted by identifier ascending.
func SortByID(records []dataset.Record) []dataset.Record {
	sorted := make([]dataset.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// DatasetTask returns the task that fully overwrites one dataset file with
// the given records in identifier order.
func (e *Engine) DatasetTask(name, path string, fields []string, records []dataset.Record) Task {
	return Task{
		Name: name,
		Run: func(ctx context.Context) error {
			rows := SortByID(records)
			if err := dataset.WriteFile(path, fields, rows); err != nil {
				return err
			}
			e.log.Info("Dataset rewritten",
				zap.String("target", name),
				zap.String("path", path),
				zap.Int("rows", len(rows)),
			)
			return e.mirror(ctx, path)
		},
	}
}

// ChunkTask returns the task that writes the chunked, reduced-column export
// for one dataset.
func (e *Engine) ChunkTask(name, dir, base string, fields []string, size int, records []dataset.Record) Task {
	return Task{
		Name: name,
		Run: func(ctx context.Context) error {
			rows := SortByID(records)
			paths, err := writeChunks(dir, base, fields, size, rows)
			if err != nil {
				return err
			}
			e.log.Info("Chunk export written",
				zap.String("target", name),
				zap.Int("chunks", len(paths)),
				zap.Int("rows", len(rows)),
			)
			for _, p := range paths {
				if err := e.mirror(ctx, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// mirror uploads the written file to the storage bucket when mirroring is
// enabled.
func (e *Engine) mirror(ctx context.Context, path string) error {
	if e.store == nil {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for upload: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	object := filepath.Base(path)
	_, err = e.store.PutObject(ctx, e.bucket, object, f, stat.Size(), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", object, err)
	}

	e.log.Info("Output mirrored to storage",
		zap.String("bucket", e.bucket),
		zap.String("object", object),
	)
	return nil
}

// EnsureBucket creates the mirror bucket if it does not exist yet. It is a
// no-op when mirroring is disabled. Called once before tasks are
// dispatched so concurrent tasks never race on bucket creation.
func (e *Engine) EnsureBucket(ctx context.Context) error {
	if e.store == nil {
		return nil
	}

	exists, err := e.store.BucketExists(ctx, e.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", e.bucket, err)
	}
	if exists {
		return nil
	}
	if err := e.store.MakeBucket(ctx, e.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", e.bucket, err)
	}
	return nil
}
