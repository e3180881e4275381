package cli

import (
	"context"
	"fmt"
	"image/color"
	"iter"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/errors"
	"github.com/matzehuels/tessera/pkg/merger"
)

type tiling = merger.Tiling[color.NRGBA]

// interactiveLimit caps how many tilings the solution browser collects.
const interactiveLimit = 64

// collageCommand creates the collage command, which merges images in a row
// or column.
func (c *CLI) collageCommand() *cobra.Command {
	var (
		output  string
		axis    string
		align   string
		padding int
	)
	cmd := &cobra.Command{
		Use:   "collage [image...]",
		Short: "Merge images side by side",
		Long: `Merge images into one, laid out along --axis.

Images are placed end to end along the axis with --padding extra pixels
spread evenly between them. Across the axis, images are aligned by --align.
Uncovered pixels are transparent.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := merger.ParseAxis(axis)
			if err != nil {
				return err
			}
			al, err := merger.ParseAlignment(align)
			if err != nil {
				return err
			}
			sources, err := loadAll(args)
			if err != nil {
				return err
			}

			m := merger.New(sources...)
			m.Axis, m.Alignment = a, al
			out, err := m.Lateral(padding)
			if err != nil {
				return err
			}
			return save(cmd.Context(), output, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "collage.png", "output file")
	cmd.Flags().StringVar(&axis, "axis", "h", "layout axis: h (horizontal), v (vertical)")
	cmd.Flags().StringVar(&align, "align", "start", "cross-axis alignment: start, center, end")
	cmd.Flags().IntVar(&padding, "padding", 0, "extra pixels spread between images")
	return cmd
}

// packOpts holds the flags of the pack command.
type packOpts struct {
	output         string
	width, length  int
	maxPerms       int
	timeout        time.Duration
	distinctShapes bool
	solutions      int
	interactive    bool
	noCache        bool
}

// packCommand creates the pack command, which searches for exact-fit
// arrangements of several images.
func (c *CLI) packCommand() *cobra.Command {
	opts := packOpts{maxPerms: merger.DefaultMaxPermutations, solutions: 1}
	cmd := &cobra.Command{
		Use:   "pack [image...]",
		Short: "Pack images into a rectangle without gaps",
		Long: `Search for arrangements of images that cover a rectangle exactly.

With --width and --length the target rectangle is fixed. Otherwise candidate
sizes are derived from the image widths and tried narrowest first.

The search tries orderings of the images and is bounded by
--max-permutations and --timeout. --distinct-shapes skips orderings that only
swap images of equal size. With --interactive, found tilings are listed in a
browser and the chosen one is written.

Found tilings are cached by image content and search options; see
"tessera cache".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPack(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "packed.png", "output file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "target width (default: discover)")
	cmd.Flags().IntVar(&opts.length, "length", 0, "target length (default: discover)")
	cmd.Flags().IntVar(&opts.maxPerms, "max-permutations", opts.maxPerms, "maximum orderings to try")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "stop searching after this long (0 = no limit)")
	cmd.Flags().BoolVar(&opts.distinctShapes, "distinct-shapes", false, "skip orderings that only swap equal-sized images")
	cmd.Flags().IntVarP(&opts.solutions, "solutions", "n", opts.solutions, "tilings to collect before stopping")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse found tilings and pick one")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "neither read nor write the search cache")
	cmd.MarkFlagsRequiredTogether("width", "length")
	return cmd
}

func (c *CLI) runPack(ctx context.Context, paths []string, opts packOpts) error {
	sources, err := loadAll(paths)
	if err != nil {
		return err
	}
	budget := merger.Budget{
		MaxPermutations: opts.maxPerms,
		Timeout:         opts.timeout,
		DistinctShapes:  opts.distinctShapes,
	}
	if err := budget.Validate(); err != nil {
		return err
	}
	limit := max(opts.solutions, 1)
	if opts.interactive {
		limit = max(limit, interactiveLimit)
	}

	m := merger.New(sources...)
	store := openCache(ctx, opts.noCache)
	defer store.Close()
	key := tilingKey(sources, opts, limit)

	found := loadTilings(ctx, store, key, m)
	if found == nil {
		if found, err = collectTilings(ctx, m, opts, budget, limit); err != nil {
			return err
		}
		storeTilings(ctx, store, key, found)
	}

	choice := found[0]
	if opts.interactive {
		picked, ok, err := pickTiling(found, paths)
		if err != nil {
			return err
		}
		if !ok {
			printInfo("No tiling selected")
			return nil
		}
		choice = picked
	}

	printKeyValue("Size", choice.Canvas.Size().String())
	printKeyValue("Order", describeOrder(choice, paths))
	return save(ctx, opts.output, choice.Canvas)
}

// collectTilings runs the search until limit tilings are found or the
// budget runs out. It fails with SEARCH_EXHAUSTED when nothing was found.
func collectTilings(ctx context.Context, m *merger.Merger[color.NRGBA], opts packOpts, budget merger.Budget, limit int) ([]tiling, error) {
	p := newPackProgress(ctx, len(m.Sources()), &budget)
	seq, err := searchTilings(ctx, m, opts, budget)
	if err != nil {
		return nil, err
	}

	spinner := newSpinnerWithContext(ctx, os.Stderr, "Searching...")
	p.spinner = spinner
	spinner.Start()
	var found []tiling
	for t := range seq {
		found = append(found, t)
		if len(found) >= limit {
			break
		}
	}
	spinner.Stop()
	p.finish(len(found))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, errors.New(errors.ErrCodeSearchExhausted, "no exact-fit arrangement found after %s", plural(p.explored, "ordering"))
	}
	return found, nil
}

func searchTilings(ctx context.Context, m *merger.Merger[color.NRGBA], opts packOpts, budget merger.Budget) (iter.Seq[tiling], error) {
	if opts.width == 0 && opts.length == 0 {
		return m.FindFillIn(ctx, budget)
	}
	if opts.width <= 0 || opts.length <= 0 {
		return nil, errors.New(errors.ErrCodeRange, "target size %dx%d must be positive", opts.width, opts.length)
	}
	target := canvas.FromEmptySize[color.NRGBA](canvas.Size{Width: opts.width, Length: opts.length})
	return m.FillInCanvas(ctx, target, budget)
}

// describeOrder lists the source files of t in placement order with their
// corners: "b.png@(0,0) a.png@(2,0)".
func describeOrder(t tiling, paths []string) string {
	s := ""
	for k, i := range t.Order {
		if k > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s@%v", paths[i], t.Placements[k])
	}
	return s
}
