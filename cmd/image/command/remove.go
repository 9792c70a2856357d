package command

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mocksmith/mocksmith-cli/config"
	"github.com/mocksmith/mocksmith-cli/internal/docker"
	"github.com/mocksmith/mocksmith-cli/internal/style"
	"github.com/mocksmith/mocksmith-cli/internal/terminal"
	"github.com/mocksmith/mocksmith-cli/internal/tui"
	"github.com/mocksmith/mocksmith-cli/util/templates"
)

// NewRemoveImageCmd wires up:
//
//	mocksmith image remove
func NewRemoveImageCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove IMAGE",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a local image",
		Example: templates.Examples(`
			mocksmith image remove my-app:latest
			mocksmith image remove my-app:latest --force --yes`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			client, err := docker.New()
			if err != nil {
				return err
			}

			exists, err := client.ImageExists(cmd.Context(), name)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("image %q not found", name)
			}

			if !config.Global.Yes {
				termInfo := terminal.Detect(config.Global.NoColor, true, false)
				if termInfo.InteractiveEnabled {
					confirmed, err := tui.ConfirmRemoval("image", name)
					if err != nil {
						return err
					}
					if !confirmed {
						return fmt.Errorf("removal cancelled")
					}
				}
			}

			if err := client.RemoveImage(cmd.Context(), name, force); err != nil {
				return err
			}

			pterm.Println(style.SuccessIcon() + " Removed " + style.Code.Render(name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force removal of the image")

	return cmd
}
