package spec

import (
	"github.com/spf13/cobra"

	"github.com/mocksmith/mocksmith-cli/cmd/spec/command"
)

func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spec",
		Short: "Inspect OpenAPI specification files",
		Long:  `Commands to inspect OpenAPI specification files without building an image`,
	}

	rootCmd.AddCommand(command.NewInfoCmd())
	rootCmd.AddCommand(command.NewEndpointsCmd())

	return rootCmd
}
