package image

import (
	"github.com/spf13/cobra"

	"github.com/mocksmith/mocksmith-cli/cmd/image/command"
)

func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "image",
		Aliases: []string{"images"},
		Short:   "Manage locally built mock-server images",
		Long:    `Commands to list, remove, and prune locally built mock-server images`,
	}

	rootCmd.AddCommand(command.NewListImagesCmd())
	rootCmd.AddCommand(command.NewRemoveImageCmd())
	rootCmd.AddCommand(command.NewPruneImagesCmd())

	return rootCmd
}
