// Package validate wires up:
//
//	mocksmith validate
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mocksmith/mocksmith-cli/cmd/common/printer"
	"github.com/mocksmith/mocksmith-cli/config"
	"github.com/mocksmith/mocksmith-cli/internal/openapi"
	"github.com/mocksmith/mocksmith-cli/internal/style"
	"github.com/mocksmith/mocksmith-cli/util/templates"
)

// NewValidateCmd validates an OpenAPI specification file without building
// anything.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate SPEC_FILE",
		Short: "Validate an OpenAPI specification file",
		Long: templates.LongDesc(`
			Check that an OpenAPI specification file (JSON or YAML) has the
			structure a mock server needs: a version field, an info block
			with title and version, and a paths object.

			This is the same check the build command runs as its first step.`),
		Example: templates.Examples(`
			mocksmith validate api.yaml
			mocksmith validate --json openapi/petstore.json`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, format, err := openapi.ValidateFile(args[0])
			if err != nil {
				return err
			}

			if config.Global.Format == "json" {
				return printer.Print(res, nil)
			}

			fmt.Printf("%s OpenAPI specification is valid (%s)\n", style.SuccessIcon(), format)
			fmt.Printf("  Title:        %s\n", res.Title)
			fmt.Printf("  Version:      %s\n", res.Version)
			fmt.Printf("  Spec Version: %s\n", res.SpecVersion)
			fmt.Printf("  Paths:        %d\n", res.PathsCount)
			return nil
		},
	}

	return cmd
}
