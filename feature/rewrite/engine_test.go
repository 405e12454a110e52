package rewrite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"record-manager/core/dataset"
	"record-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMergeSortsByIdentifier(t *testing.T) {
	existing := []dataset.Record{
		{ID: 5, Fields: map[string]string{"id": "5"}},
		{ID: 1, Fields: map[string]string{"id": "1"}},
	}
	fresh := []dataset.Record{
		{ID: 3, Fields: map[string]string{"id": "3"}},
	}

	merged := Merge(existing, fresh)

	require.Len(t, merged, 3)
	assert.Equal(t, 1, merged[0].ID)
	assert.Equal(t, 3, merged[1].ID)
	assert.Equal(t, 5, merged[2].ID)
}

func TestMergeStableForDuplicates(t *testing.T) {
	existing := []dataset.Record{
		{ID: 2, Fields: map[string]string{"name": "first"}},
		{ID: 2, Fields: map[string]string{"name": "second"}},
	}

	merged := Merge(existing, nil)

	require.Len(t, merged, 2)
	assert.Equal(t, "first", merged[0].Get("name"))
	assert.Equal(t, "second", merged[1].Get("name"))
}

func TestSortByIDDoesNotMutateInput(t *testing.T) {
	records := []dataset.Record{
		{ID: 9, Fields: map[string]string{"id": "9"}},
		{ID: 1, Fields: map[string]string{"id": "1"}},
	}

	sorted := SortByID(records)

	assert.Equal(t, 1, sorted[0].ID)
	// The input handed to a task is read-only.
	assert.Equal(t, 9, records[0].ID)
}

func TestDatasetTaskWritesSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credit_scores.csv")
	engine := NewEngine(zap.NewNop(), nil, "")

	records := []dataset.Record{
		{ID: 2, Fields: map[string]string{"id": "2", "name": "Bob"}},
		{ID: 1, Fields: map[string]string{"id": "1", "name": "Ann"}},
	}

	task := engine.DatasetTask("primary", path, []string{"id", "name"}, records)
	require.NoError(t, task.Run(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,Ann\n2,Bob\n", string(data))
}

func TestChunkTaskWritesAllParts(t *testing.T) {
	dir := t.TempDir()
	engine := NewEngine(zap.NewNop(), nil, "")

	task := engine.ChunkTask("primary-chunks", dir, "credit_scores", []string{"id", "name"}, 100, makeRecords(250))
	require.NoError(t, task.Run(context.Background()))

	for part := 1; part <= 3; part++ {
		_, err := os.Stat(ChunkPath(dir, "credit_scores", part))
		assert.NoError(t, err)
	}
	_, err := os.Stat(ChunkPath(dir, "credit_scores", 4))
	assert.True(t, os.IsNotExist(err))
}

func TestDatasetTaskMirrorsToStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credit_scores.csv")

	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "datasets", "credit_scores.csv",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	engine := NewEngine(zap.NewNop(), mockClient, "datasets")
	task := engine.DatasetTask("primary", path, []string{"id"}, makeRecords(3))

	require.NoError(t, task.Run(context.Background()))
	mockClient.AssertExpectations(t)
}

func TestDatasetTaskMirrorFailureReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credit_scores.csv")

	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "datasets", "credit_scores.csv",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, fmt.Errorf("bucket gone"))

	engine := NewEngine(zap.NewNop(), mockClient, "datasets")
	task := engine.DatasetTask("primary", path, []string{"id"}, makeRecords(1))

	err := task.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket gone")

	// The local write still happened; the mirror is best effort on top.
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestEnsureBucket(t *testing.T) {
	t.Run("DisabledMirror", func(t *testing.T) {
		engine := NewEngine(zap.NewNop(), nil, "")
		assert.NoError(t, engine.EnsureBucket(context.Background()))
	})

	t.Run("BucketExists", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "datasets").Return(true, nil)

		engine := NewEngine(zap.NewNop(), mockClient, "datasets")
		assert.NoError(t, engine.EnsureBucket(context.Background()))
		mockClient.AssertExpectations(t)
	})

	t.Run("BucketCreated", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "datasets").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "datasets", mock.Anything).Return(nil)

		engine := NewEngine(zap.NewNop(), mockClient, "datasets")
		assert.NoError(t, engine.EnsureBucket(context.Background()))
		mockClient.AssertExpectations(t)
	})
}
