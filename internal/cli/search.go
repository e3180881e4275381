package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tessera/pkg/merger"
	"github.com/matzehuels/tessera/pkg/observability"
)

// packProgress wires a merger search budget to the logger, the spinner and
// the observability search hooks. It logs the first tiling found and a
// heartbeat every ten seconds while the search runs.
//
// A packProgress is not safe for concurrent use; the merger calls Progress
// from the goroutine that ranges over the search.
type packProgress struct {
	ctx     context.Context
	logger  *log.Logger
	spinner *Spinner
	prog    *progress
	limit   int

	explored, found int
	start, lastLog  time.Time
}

func newPackProgress(ctx context.Context, sources int, budget *merger.Budget) *packProgress {
	logger := loggerFromContext(ctx)
	p := &packProgress{
		ctx:    ctx,
		logger: logger,
		prog:   newProgress(logger),
		limit:  budget.MaxPermutations,
		start:  time.Now(),
	}
	p.lastLog = p.start
	budget.Progress = p.onProgress
	observability.Search().OnSearchStart(ctx, sources, budget.MaxPermutations)
	logger.Debug("searching", "sources", sources, "max_permutations", budget.MaxPermutations, "timeout", budget.Timeout)
	return p
}

// onProgress is called by the merger every few hundred orderings and once
// when the search ends.
func (p *packProgress) onProgress(explored, found int) {
	switch {
	case found > 0 && p.found == 0:
		p.logger.Infof("First tiling after %d orderings", explored)
		p.lastLog = time.Now()
	case time.Since(p.lastLog) >= 10*time.Second:
		elapsed := time.Since(p.start).Truncate(time.Second)
		p.logger.Infof("Searching... %v elapsed, %d/%d orderings, %d tilings", elapsed, explored, p.limit, found)
		p.lastLog = time.Now()
	}
	p.explored, p.found = explored, found
	if p.spinner != nil {
		p.spinner.SetMessage(fmt.Sprintf("Searching %d/%d orderings, %d found", explored, p.limit, found))
	}
	observability.Search().OnSearchProgress(p.ctx, explored, found)
}

// finish reports the outcome. It warns when nothing was found and the
// budget ran out.
func (p *packProgress) finish(kept int) {
	observability.Search().OnSearchComplete(p.ctx, p.explored, p.found, time.Since(p.start))
	p.prog.done(fmt.Sprintf("Search complete: %s, %s", plural(p.explored, "ordering"), plural(kept, "tiling")))
	if kept == 0 && p.explored >= p.limit {
		p.logger.Warn("Permutation budget exhausted; try increasing --max-permutations")
	}
}
