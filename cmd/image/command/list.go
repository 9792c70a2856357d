package command

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mocksmith/mocksmith-cli/cmd/common/printer"
	"github.com/mocksmith/mocksmith-cli/internal/docker"
	"github.com/mocksmith/mocksmith-cli/util/common"
	"github.com/mocksmith/mocksmith-cli/util/templates"
)

// imageRow flattens an ImageSummary into display-friendly columns.
type imageRow struct {
	ID      string `json:"id"`
	Tag     string `json:"tag"`
	Created string `json:"created"`
	Size    string `json:"size"`
}

// NewListImagesCmd wires up:
//
//	mocksmith image list
func NewListImagesCmd() *cobra.Command {
	var repository string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List local images",
		Long: templates.LongDesc(`
			List images present in the local docker daemon, optionally
			filtered by repository reference.`),
		Example: templates.Examples(`
			mocksmith image list
			mocksmith image list --repository my-app
			mocksmith --json image list`),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := docker.New()
			if err != nil {
				return err
			}

			images, err := client.ListImages(cmd.Context(), repository)
			if err != nil {
				return err
			}

			rows := make([]imageRow, 0, len(images))
			for _, img := range images {
				tags := img.Tags
				if len(tags) == 0 {
					tags = []string{"<none>"}
				}
				for _, tag := range tags {
					rows = append(rows, imageRow{
						ID:      shortID(img.ID),
						Tag:     tag,
						Created: time.Unix(img.Created, 0).UTC().Format(time.RFC3339),
						Size:    common.GetSize(img.Size),
					})
				}
			}

			return printer.Print(rows, [][]string{
				{"tag", "Image"},
				{"id", "ID"},
				{"created", "Created"},
				{"size", "Size"},
			})
		},
	}

	cmd.Flags().StringVar(&repository, "repository", "", "Only show images matching this reference")

	return cmd
}

func shortID(id string) string {
	const prefix = "sha256:"
	if len(id) > len(prefix) && id[:len(prefix)] == prefix {
		id = id[len(prefix):]
	}
	if len(id) > 12 {
		id = id[:12]
	}
	return id
}
