package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tessera/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands
// registered. The CLI's logger is attached to every command's context and
// the observability hooks are pointed at it.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Tessera rearranges the pixels of images",
		Long: `Tessera splits images into layers and tiles, sorts the pixels inside them
by colour, and merges images back together into collages or exact-fit packings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			installHooks(c.Logger)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.sortCommand())
	root.AddCommand(c.maskCommand())
	root.AddCommand(c.fragmentCommand())
	root.AddCommand(c.crackCommand())
	root.AddCommand(c.collageCommand())
	root.AddCommand(c.packCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.recipeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
