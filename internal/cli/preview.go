package cli

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/codec"
)

// previewCommand creates the preview command, which draws an image in the
// terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "preview [image]",
		Short: "Draw an image in the terminal",
		Long: `Draw an image in the terminal with half-block characters, two pixel rows per
line. Images wider than --width are scaled down. Transparent pixels are left
blank.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := codec.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Println(StyleTitle.Render(args[0]) + " " + StyleDim.Render(img.Size().String()))
			fmt.Println(renderHalfBlocks(codec.Scale(img, width)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 80, "maximum preview width in columns")
	return cmd
}

// renderHalfBlocks draws c with one character per column and two rows per
// line: the upper half takes the foreground colour and the lower half the
// background colour.
func renderHalfBlocks(c *codec.Pixels) string {
	w, l := c.Width(), c.Length()
	var b strings.Builder
	for y := 0; y < l; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range w {
			top, bottom := c.At(y*w+x), canvas.Open[color.NRGBA]()
			if y+1 < l {
				bottom = c.At((y+1)*w + x)
			}
			tv, tok := top.Value()
			bv, bok := bottom.Value()
			switch {
			case tok && bok:
				b.WriteString(lipgloss.NewStyle().Foreground(hex(tv)).Background(hex(bv)).Render("▀"))
			case tok:
				b.WriteString(lipgloss.NewStyle().Foreground(hex(tv)).Render("▀"))
			case bok:
				b.WriteString(lipgloss.NewStyle().Foreground(hex(bv)).Render("▄"))
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
