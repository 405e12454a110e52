package pipeline

import (
	"context"
	"path/filepath"
	"strings"

	"record-manager/core/config"
	"record-manager/core/dataset"
	"record-manager/core/storage"
	"record-manager/feature/allocate"
	"record-manager/feature/integrity"
	"record-manager/feature/rewrite"
	"record-manager/feature/synth"

	"go.uber.org/zap"
)

// Service runs the full generation pipeline: read both datasets, allocate
// identifiers, synthesize linked pairs, validate existing rows, and rewrite
// every output target in parallel.
type Service struct {
	cfg   *config.Config
	log   *zap.Logger
	gen   *synth.Generator
	store storage.Client
}

// Summary is the outcome of one pipeline run.
type Summary struct {
	// PrimaryRows and SecondaryRows count the valid existing rows read.
	PrimaryRows   int
	SecondaryRows int
	// Invalid are the rows diverted during structural validation, both
	// datasets combined.
	Invalid []dataset.InvalidRow
	// Allocated are the identifiers handed out this run, ascending.
	Allocated []int
	// Findings are the integrity inconsistencies between the existing rows.
	Findings []integrity.Finding
	// Results holds one entry per rewrite task, failures included.
	Results []rewrite.Result
}

// New creates a pipeline service. store may be nil when the storage mirror
// is disabled.
func New(cfg *config.Config, log *zap.Logger, gen *synth.Generator, store storage.Client) *Service {
	return &Service{cfg: cfg, log: log, gen: gen, store: store}
}

// Run executes the pipeline, synthesizing count new record pairs. Integrity
// findings and per-target rewrite failures are reported in the summary, not
// returned as errors; only a failure to prepare the run aborts it.
func (s *Service) Run(ctx context.Context, count int) (*Summary, error) {
	primary := s.read(s.cfg.Datasets.PrimaryPath, dataset.PrimaryName)
	secondary := s.read(s.cfg.Datasets.SecondaryPath, dataset.SecondaryName)

	// Identifiers are one namespace across both datasets; allocate against
	// the union so neither side's identifiers are ever reissued.
	used := make(map[int]struct{}, len(primary.IDs)+len(secondary.IDs))
	for id := range primary.IDs {
		used[id] = struct{}{}
	}
	for id := range secondary.IDs {
		used[id] = struct{}{}
	}
	ids := allocate.Next(count, used)

	freshPrimary, freshSecondary := s.gen.Batch(ids)

	// Validate existing rows only; synthesized pairs are consistent by
	// construction.
	findings := integrity.Check(primary.Records, secondary.Records, dataset.SharedFields)

	engine := rewrite.NewEngine(s.log, s.store, s.cfg.Storage.Bucket)
	if err := engine.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	primaryAll := rewrite.Merge(primary.Records, freshPrimary)
	secondaryAll := rewrite.Merge(secondary.Records, freshSecondary)

	tasks := []rewrite.Task{
		engine.DatasetTask(dataset.PrimaryName, s.cfg.Datasets.PrimaryPath, dataset.PrimaryFields, primaryAll),
		engine.DatasetTask(dataset.SecondaryName, s.cfg.Datasets.SecondaryPath, dataset.SecondaryFields, secondaryAll),
	}
	if s.cfg.Export.Enabled {
		fields := s.cfg.Export.FieldList()
		size := s.cfg.Export.ChunkSize
		tasks = append(tasks,
			engine.ChunkTask(dataset.PrimaryName+"-chunks", s.cfg.Export.Dir,
				baseName(s.cfg.Datasets.PrimaryPath), fields, size, primaryAll),
			engine.ChunkTask(dataset.SecondaryName+"-chunks", s.cfg.Export.Dir,
				baseName(s.cfg.Datasets.SecondaryPath), fields, size, secondaryAll),
		)
	}

	results := rewrite.RunAll(ctx, s.cfg.Export.Workers, tasks)

	invalid := append([]dataset.InvalidRow{}, primary.Invalid...)
	invalid = append(invalid, secondary.Invalid...)

	return &Summary{
		PrimaryRows:   len(primary.Records),
		SecondaryRows: len(secondary.Records),
		Invalid:       invalid,
		Allocated:     ids,
		Findings:      findings,
		Results:       results,
	}, nil
}

// read loads one dataset, downgrading storage-level failures to a warning
// plus empty data so a damaged file never aborts the batch.
func (s *Service) read(path, name string) *dataset.ReadResult {
	result, err := dataset.ReadFile(path, name)
	if err != nil {
		s.log.Warn("Dataset unreadable, treating as empty",
			zap.String("dataset", name),
			zap.String("path", path),
			zap.Error(err),
		)
		return &dataset.ReadResult{IDs: make(map[int]struct{})}
	}
	return result
}

// baseName strips directory and extension from a dataset path for use as
// the chunk file base.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
