// Package cli implements the tessera command-line interface.
//
// Every image command is a thin wrapper around a one-step recipe: flags are
// turned into a [recipe.Step] and run through the pipeline runner, so the
// command line and recipe files share one code path and one set of
// validation rules. collage and pack drive the merger package directly.
//
// # Commands
//
//   - sort, mask, fragment, crack: rearrange the pixels of one image
//   - collage: merge images side by side
//   - pack: search for exact-fit arrangements of several images
//   - apply: run a TOML or YAML recipe
//   - recipe: scaffold and check recipe files
//   - preview: draw an image in the terminal
//   - cache: inspect and clear cached pack results
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is carried in the command context; see loggerFromContext.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tessera/pkg/codec"
	"github.com/matzehuels/tessera/pkg/pipeline"
	"github.com/matzehuels/tessera/pkg/recipe"
)

const appName = "tessera"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// runSteps runs steps on the image at input and writes the result to
// output, or next to the input when output is empty.
func (c *CLI) runSteps(ctx context.Context, input, output, suffix string, steps ...recipe.Step) error {
	if output == "" {
		output = derivedPath(input, suffix)
	}
	rec := &recipe.Recipe{Name: suffix, Input: input, Output: output, Steps: steps}
	return c.runRecipe(ctx, rec)
}

func (c *CLI) runRecipe(ctx context.Context, rec *recipe.Recipe) error {
	runner := pipeline.NewRunner(loggerFromContext(ctx))
	res, err := runner.Execute(ctx, rec)
	if err != nil {
		return err
	}
	printSuccess("Wrote %s", rec.Output)
	printStats(res.Canvas.Size().String(), res.Stats.Steps, res.Stats.Duration)
	return nil
}

// derivedPath returns input with suffix inserted before the extension:
// "photo.jpg" becomes "photo.sorted.jpg".
func derivedPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "." + suffix + ext
}

func loadAll(paths []string) ([]*codec.Pixels, error) {
	out := make([]*codec.Pixels, 0, len(paths))
	for _, p := range paths {
		c, err := codec.Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func save(ctx context.Context, path string, c *codec.Pixels) error {
	if err := codec.Save(path, c); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	loggerFromContext(ctx).Debug("saved image", "path", path, "size", c.Size())
	printSuccess("Wrote %s", path)
	return nil
}
