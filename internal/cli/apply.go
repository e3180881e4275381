package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tessera/pkg/errors"
	"github.com/matzehuels/tessera/pkg/recipe"
)

// applyCommand creates the apply command, which runs a recipe file.
func (c *CLI) applyCommand() *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "apply [recipe]",
		Short: "Run a recipe file",
		Long: `Run a TOML or YAML recipe: load its input image, apply every step in order
and write its output image. Relative paths in the recipe are resolved against
the recipe's directory; --input and --output override them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := recipe.Load(args[0])
			if err != nil {
				return err
			}
			if input != "" {
				rec.Input = input
			}
			if output != "" {
				rec.Output = output
			}
			if rec.Output == "" && rec.Input != "" {
				rec.Output = derivedPath(rec.Input, "out")
			}
			printInfo("Applying %s (%s)", StyleValue.Render(recipeName(rec, args[0])), plural(len(rec.Steps), "step"))
			return c.runRecipe(cmd.Context(), rec)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "input image (overrides the recipe)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image (overrides the recipe)")
	return cmd
}

// recipeCommand groups the recipe file helpers.
func (c *CLI) recipeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Create and check recipe files",
	}
	cmd.AddCommand(c.recipeInitCommand())
	cmd.AddCommand(c.recipeCheckCommand())
	return cmd
}

func (c *CLI) recipeInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example recipe",
		Long:  `Write an example recipe to path. The format follows the extension (.toml, .yaml, .yml).`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := recipe.FormatFromPath(path)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				if !force {
					return errors.New(errors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
				}
				printWarning("Overwriting %s", path)
			}
			data, err := recipe.Encode(exampleRecipe(), format)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printSuccess("Wrote %s", path)
			fmt.Println(StyleDim.Render("Run it with: ") + StyleValue.Render("tessera apply "+path))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) recipeCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [recipe]",
		Short: "Validate a recipe and list its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := recipe.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Println(StyleTitle.Render(recipeName(rec, args[0])))
			printKeyValue("Input", rec.Input)
			printKeyValue("Output", rec.Output)
			fmt.Println(stepTable(rec.Steps))
			printSuccess("Recipe is valid")
			return nil
		},
	}
}

func exampleRecipe() *recipe.Recipe {
	return &recipe.Recipe{
		Name:   "example",
		Input:  "input.png",
		Output: "output.png",
		Steps: []recipe.Step{
			{Kind: recipe.KindCrack, Sorter: "hsv", Columns: 3, Rows: 3},
			{
				Kind:   recipe.KindMask,
				Sorter: "yiq",
				Masks: []recipe.Mask{
					{Op: recipe.OpIntersection, Shapes: []string{"circle"}},
					{Op: recipe.OpDifference, Shapes: []string{"percentage:0.3"}},
				},
			},
		},
	}
}

func recipeName(rec *recipe.Recipe, path string) string {
	if rec.Name != "" {
		return rec.Name
	}
	return path
}

// stepTable renders steps as a bordered table.
func stepTable(steps []recipe.Step) string {
	rows := make([][]string, len(steps))
	for i, s := range steps {
		rows[i] = []string{strconv.Itoa(i + 1), string(s.Kind), s.Sorter, stepDetails(s)}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Kind", "Sorter", "Details").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func stepDetails(s recipe.Step) string {
	var parts []string
	switch s.Kind {
	case recipe.KindMask:
		for _, m := range s.Masks {
			parts = append(parts, strings.TrimSpace(string(m.Op)+" "+strings.Join(m.Shapes, ",")))
		}
	case recipe.KindFragment:
		parts = append(parts, fmt.Sprintf("%dx%d tiles", s.Width, s.Length))
		if s.WidthPadding > 0 || s.LengthPadding > 0 {
			parts = append(parts, fmt.Sprintf("padding %dx%d", s.WidthPadding, s.LengthPadding))
		}
	case recipe.KindFragmentFill:
		parts = append(parts, fmt.Sprintf("%dx%d tiles", s.Width, s.Length), fmt.Sprintf("%dx%d grid", s.Columns, s.Rows))
	case recipe.KindCrack:
		parts = append(parts, fmt.Sprintf("%dx%d grid", s.Columns, s.Rows))
	}
	if len(s.Shapes) > 0 {
		parts = append(parts, "shape "+strings.Join(s.Shapes, ","))
	}
	return strings.Join(parts, "; ")
}
