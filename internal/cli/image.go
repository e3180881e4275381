package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tessera/pkg/recipe"
	"github.com/matzehuels/tessera/pkg/shapes"
	"github.com/matzehuels/tessera/pkg/sorters"
)

const defaultSorter = "yiq"

// imageFlags are the flags shared by the single-image commands.
type imageFlags struct {
	output string
	sorter string
	shapes []string
}

func (f *imageFlags) register(cmd *cobra.Command, withShapes bool) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: <input>.<command>.<ext>)")
	cmd.Flags().StringVarP(&f.sorter, "sorter", "s", defaultSorter, "pixel sorter: "+strings.Join(sorters.Names(), ", "))
	if withShapes {
		cmd.Flags().StringSliceVar(&f.shapes, "shape", nil, "shape pipeline, applied left to right: "+strings.Join(shapes.Names(), ", "))
		_ = cmd.RegisterFlagCompletionFunc("shape", completeNames(shapes.Names()))
	}
	_ = cmd.RegisterFlagCompletionFunc("sorter", completeNames(sorters.Names()))
}

// sortCommand creates the sort command, which rearranges every pixel.
func (c *CLI) sortCommand() *cobra.Command {
	var f imageFlags
	cmd := &cobra.Command{
		Use:   "sort [image]",
		Short: "Sort every pixel of an image",
		Long: `Sort every pixel of an image by colour.

Pixels are laid out again in row-major order after sorting, so a YIQ sort
produces a dark-to-light gradient from the top left.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSteps(cmd.Context(), args[0], f.output, "sorted",
				recipe.Step{Kind: recipe.KindSort, Sorter: f.sorter})
		},
	}
	f.register(cmd, false)
	return cmd
}

// maskCommand creates the mask command, which sorts inside a shaped region.
func (c *CLI) maskCommand() *cobra.Command {
	var (
		f      imageFlags
		op     string
		invert bool
	)
	cmd := &cobra.Command{
		Use:   "mask [image]",
		Short: "Sort the pixels inside a shaped region",
		Long: `Sort the pixels inside a shaped region.

The region starts as the whole image and is edited with --op and the --shape
pipeline. --invert swaps the region and the rest of the image afterwards.

Examples:
  tessera mask photo.png --shape circle
  tessera mask photo.png --shape vertical-lines,triangle --sorter hsv
  tessera mask photo.png --shape percentage:0.5 --invert`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step := recipe.Step{
				Kind:   recipe.KindMask,
				Sorter: f.sorter,
				Masks:  []recipe.Mask{{Op: recipe.Op(op), Shapes: f.shapes}},
			}
			if invert {
				step.Masks = append(step.Masks, recipe.Mask{Op: recipe.OpInvert})
			}
			return c.runSteps(cmd.Context(), args[0], f.output, "masked", step)
		},
	}
	f.register(cmd, true)
	cmd.Flags().StringVar(&op, "op", string(recipe.OpIntersection), "region operation: union, intersection, difference")
	cmd.Flags().BoolVar(&invert, "invert", false, "invert the region before sorting")
	return cmd
}

// fragmentCommand creates the fragment command, which sorts equal tiles.
func (c *CLI) fragmentCommand() *cobra.Command {
	var (
		f                           imageFlags
		width, length               int
		widthPadding, lengthPadding int
		columns, rows               int
	)
	cmd := &cobra.Command{
		Use:   "fragment [image]",
		Short: "Sort the pixels of each tile",
		Long: `Cut an image into tiles of --width x --length and sort each tile.

By default tiles are laid out from the top-left corner with the given padding
between them. With --columns and --rows, exactly that many tiles are spread
evenly across the image instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step := recipe.Step{
				Kind:          recipe.KindFragment,
				Sorter:        f.sorter,
				Shapes:        f.shapes,
				Width:         width,
				Length:        length,
				WidthPadding:  widthPadding,
				LengthPadding: lengthPadding,
			}
			if columns > 0 || rows > 0 {
				step.Kind = recipe.KindFragmentFill
				step.WidthPadding, step.LengthPadding = 0, 0
				step.Columns, step.Rows = columns, rows
			}
			return c.runSteps(cmd.Context(), args[0], f.output, "fragmented", step)
		},
	}
	f.register(cmd, true)
	cmd.Flags().IntVar(&width, "width", 16, "tile width in pixels")
	cmd.Flags().IntVar(&length, "length", 16, "tile length in pixels")
	cmd.Flags().IntVar(&widthPadding, "width-padding", 0, "horizontal gap between tiles")
	cmd.Flags().IntVar(&lengthPadding, "length-padding", 0, "vertical gap between tiles")
	cmd.Flags().IntVar(&columns, "columns", 0, "spread this many tiles across the width")
	cmd.Flags().IntVar(&rows, "rows", 0, "spread this many tiles down the length")
	cmd.MarkFlagsRequiredTogether("columns", "rows")
	cmd.MarkFlagsMutuallyExclusive("columns", "width-padding")
	cmd.MarkFlagsMutuallyExclusive("rows", "length-padding")
	return cmd
}

// crackCommand creates the crack command, which sorts a grid of regions.
func (c *CLI) crackCommand() *cobra.Command {
	var (
		f             imageFlags
		columns, rows int
	)
	cmd := &cobra.Command{
		Use:   "crack [image]",
		Short: "Split an image into a grid and sort each cell",
		Long: `Split an image into --columns x --rows regions that cover it exactly and
sort the pixels of each region. Region sizes differ by at most one pixel.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSteps(cmd.Context(), args[0], f.output, "cracked", recipe.Step{
				Kind:    recipe.KindCrack,
				Sorter:  f.sorter,
				Shapes:  f.shapes,
				Columns: columns,
				Rows:    rows,
			})
		},
	}
	f.register(cmd, true)
	cmd.Flags().IntVar(&columns, "columns", 2, "regions across the width")
	cmd.Flags().IntVar(&rows, "rows", 2, "regions down the length")
	return cmd
}

// completeNames completes a comma-separated flag value from names.
func completeNames(names []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		prefix := ""
		if i := strings.LastIndex(toComplete, ","); i >= 0 {
			prefix = toComplete[:i+1]
		}
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = prefix + n
		}
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}
