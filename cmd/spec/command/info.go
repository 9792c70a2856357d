package command

import (
	"github.com/spf13/cobra"

	"github.com/mocksmith/mocksmith-cli/cmd/common/printer"
	"github.com/mocksmith/mocksmith-cli/internal/openapi"
	"github.com/mocksmith/mocksmith-cli/util/templates"
)

// NewInfoCmd wires up:
//
//	mocksmith spec info
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info SPEC_FILE",
		Short: "Show summary information about a specification",
		Long: templates.LongDesc(`
			Show summary information about an OpenAPI specification file:
			title, version, spec version, and path and endpoint counts.

			Unlike validate, this command is lenient: absent fields are
			reported as Unknown instead of failing, so it works on drafts.`),
		Example: templates.Examples(`
			mocksmith spec info api.yaml
			mocksmith --json spec info api.json`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := openapi.Inspect(args[0])
			if err != nil {
				return err
			}

			return printer.Print(info, [][]string{
				{"title", "Title"},
				{"version", "Version"},
				{"spec_version", "Spec Version"},
				{"file_format", "Format"},
				{"paths_count", "Paths"},
				{"endpoints_count", "Endpoints"},
			})
		},
	}

	return cmd
}
