// Package pipeline runs recipes against images.
//
// A recipe is an ordered list of steps (see package recipe). The [Runner]
// decodes the recipe's input image, applies every step to the pixel canvas
// and encodes the result:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, rec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.RunID, result.Stats.Duration)
//
// Steps can also be applied to an in-memory canvas with [Runner.Apply].
//
// Every run gets a random run ID that is attached to its log lines and
// passed to the observability pipeline hooks.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/tessera/pkg/codec"
	"github.com/matzehuels/tessera/pkg/observability"
	"github.com/matzehuels/tessera/pkg/recipe"
)

// Runner applies recipes. It holds no per-run state, so one Runner can
// serve concurrent runs on different canvases.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger, or to the default
// charmbracelet logger when logger is nil.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result contains the outputs of a run.
type Result struct {
	// RunID identifies the run in logs and hooks.
	RunID string

	// Canvas is the final pixel canvas.
	Canvas *codec.Pixels

	// Stats contains timing information.
	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Steps         int
	Pixels        int
	Duration      time.Duration
	StepDurations []time.Duration
}

// Execute validates rec, loads its input image, applies its steps and
// saves the result to its output path.
func (r *Runner) Execute(ctx context.Context, rec *recipe.Recipe) (res *Result, err error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := r.Logger.With("run", runID)
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRunStart(ctx, runID, len(rec.Steps))
	defer func() {
		hooks.OnRunComplete(ctx, runID, time.Since(start), err)
	}()

	c, err := r.load(ctx, rec.Input)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded image", "path", rec.Input, "size", c.Size())

	stats, err := r.run(ctx, runID, logger, c, rec.Steps)
	if err != nil {
		return nil, err
	}

	if err := r.save(ctx, rec.Output, c); err != nil {
		return nil, err
	}
	stats.Duration = time.Since(start)
	logger.Info("saved image", "path", rec.Output, "steps", stats.Steps, "duration", stats.Duration)

	return &Result{RunID: runID, Canvas: c, Stats: stats}, nil
}

// Apply validates steps and applies them to c in place.
func (r *Runner) Apply(ctx context.Context, c *codec.Pixels, steps []recipe.Step) (res *Result, err error) {
	if err := (&recipe.Recipe{Steps: steps}).Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := r.Logger.With("run", runID)
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRunStart(ctx, runID, len(steps))
	defer func() {
		hooks.OnRunComplete(ctx, runID, time.Since(start), err)
	}()

	stats, err := r.run(ctx, runID, logger, c, steps)
	if err != nil {
		return nil, err
	}
	stats.Duration = time.Since(start)
	return &Result{RunID: runID, Canvas: c, Stats: stats}, nil
}

func (r *Runner) run(ctx context.Context, runID string, logger *log.Logger, c *codec.Pixels, steps []recipe.Step) (Stats, error) {
	hooks := observability.Pipeline()
	stats := Stats{Pixels: c.Len(), StepDurations: make([]time.Duration, 0, len(steps))}

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		kind := string(step.Kind)
		hooks.OnStepStart(ctx, runID, i, kind)
		start := time.Now()
		err := applyStep(c, step)
		elapsed := time.Since(start)
		hooks.OnStepComplete(ctx, runID, i, kind, elapsed, err)
		if err != nil {
			return stats, fmt.Errorf("step %d (%s): %w", i+1, kind, err)
		}

		stats.Steps++
		stats.StepDurations = append(stats.StepDurations, elapsed)
		logger.Debug("applied step", "index", i+1, "kind", kind, "duration", elapsed)
	}
	return stats, nil
}

func (r *Runner) load(ctx context.Context, path string) (*codec.Pixels, error) {
	start := time.Now()
	c, err := codec.Load(path)
	pixels := 0
	if c != nil {
		pixels = c.Len()
	}
	observability.Image().OnLoad(ctx, path, pixels, time.Since(start), err)
	return c, err
}

func (r *Runner) save(ctx context.Context, path string, c *codec.Pixels) error {
	start := time.Now()
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err == nil {
		err = codec.Save(path, c)
	}
	observability.Image().OnSave(ctx, path, c.Len(), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
