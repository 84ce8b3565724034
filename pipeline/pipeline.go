package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/pdfact/model"
)

// Stage is one step of the pipeline. A stage may modify the document in
// place and return it, or return a replacement.
type Stage interface {
	Name() string
	Process(ctx context.Context, doc *model.Document) (*model.Document, error)
}

// StageFunc adapts a function to the Stage interface.
type StageFunc struct {
	StageName string
	Fn        func(ctx context.Context, doc *model.Document) (*model.Document, error)
}

// Name implements Stage.
func (f StageFunc) Name() string {
	return f.StageName
}

// Process implements Stage.
func (f StageFunc) Process(ctx context.Context, doc *model.Document) (*model.Document, error) {
	return f.Fn(ctx, doc)
}

// StageError reports the stage that aborted a run.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Config holds configuration for a pipeline.
type Config struct {
	// Concurrency limits the number of documents ProcessAll works on at once
	// Default: 4
	Concurrency int

	// Logger receives stage timings at debug level; nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{Concurrency: 4}
}

// Pipeline runs an ordered list of stages over documents.
type Pipeline struct {
	stages []Stage
	config Config
	logger *slog.Logger
}

// New creates a pipeline with default configuration.
func New(stages ...Stage) *Pipeline {
	return NewWithConfig(DefaultConfig(), stages...)
}

// NewWithConfig creates a pipeline with custom configuration.
func NewWithConfig(config Config, stages ...Stage) *Pipeline {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		stages: stages,
		config: config,
		logger: logger,
	}
}

// Stages returns the names of the stages in run order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Process applies the stages to doc in order. The first failing stage
// aborts the run and is reported as a *StageError. Cancellation of ctx is
// checked before each stage; a running stage is not interrupted.
func (p *Pipeline) Process(ctx context.Context, doc *model.Document) (*model.Document, error) {
	runID := uuid.New().String()
	logger := p.logger.With("run_id", runID)
	start := time.Now()

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return doc, &StageError{Stage: stage.Name(), Err: err}
		}

		stageStart := time.Now()
		out, err := stage.Process(ctx, doc)
		if err != nil {
			logger.Debug("stage failed", "stage", stage.Name(), "error", err)
			return doc, &StageError{Stage: stage.Name(), Err: err}
		}
		doc = out
		logger.Debug("stage finished", "stage", stage.Name(), "duration", time.Since(stageStart))
	}

	logger.Debug("pipeline finished", "stages", len(p.stages), "duration", time.Since(start))
	return doc, nil
}

// ProcessAll processes independent documents concurrently, at most
// Config.Concurrency at a time. Results keep the order of docs. The first
// error cancels the documents that have not started a stage yet.
func (p *Pipeline) ProcessAll(ctx context.Context, docs []*model.Document) ([]*model.Document, error) {
	results := make([]*model.Document, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Concurrency)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			out, err := p.Process(ctx, doc)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
