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
	"github.com/mocksmith/mocksmith-cli/util/common"
	"github.com/mocksmith/mocksmith-cli/util/templates"
)

// NewPruneImagesCmd wires up:
//
//	mocksmith image prune
func NewPruneImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove dangling images",
		Example: templates.Examples(`
			mocksmith image prune
			mocksmith image prune --yes`),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := docker.New()
			if err != nil {
				return err
			}

			if !config.Global.Yes {
				termInfo := terminal.Detect(config.Global.NoColor, true, false)
				if termInfo.InteractiveEnabled {
					confirmed, err := tui.ConfirmRemoval("dangling images", "all")
					if err != nil {
						return err
					}
					if !confirmed {
						return fmt.Errorf("prune cancelled")
					}
				}
			}

			report, err := client.PruneImages(cmd.Context())
			if err != nil {
				return err
			}

			pterm.Println(style.SuccessIcon() + fmt.Sprintf(" Deleted %d images, reclaimed %s",
				report.ImagesDeleted, common.GetSize(int64(report.SpaceReclaimed))))
			return nil
		},
	}

	return cmd
}
