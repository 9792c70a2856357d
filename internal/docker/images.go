package docker

import (
	"context"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"

	"github.com/mocksmith/mocksmith-cli/util/common/errors"
)

// ImageSummary is the subset of image metadata shown by `image list`.
type ImageSummary struct {
	ID      string   `json:"id"`
	Tags    []string `json:"tags"`
	Created int64    `json:"created"`
	Size    int64    `json:"size"`
}

// ListImages returns local images, optionally filtered by repository name.
func (c *Client) ListImages(ctx context.Context, repository string) ([]ImageSummary, error) {
	opts := image.ListOptions{}
	if repository != "" {
		opts.Filters = filters.NewArgs(filters.Arg("reference", repository))
	}

	images, err := c.api.ImageList(ctx, opts)
	if err != nil {
		return nil, errors.NewDaemonError("list", repository, err)
	}

	out := make([]ImageSummary, 0, len(images))
	for _, img := range images {
		out = append(out, ImageSummary{
			ID:      img.ID,
			Tags:    img.RepoTags,
			Created: img.Created,
			Size:    img.Size,
		})
	}
	return out, nil
}

// ImageExists reports whether an image is present locally.
func (c *Client) ImageExists(ctx context.Context, name string) (bool, error) {
	images, err := c.api.ImageList(ctx, image.ListOptions{
		Filters: filters.NewArgs(filters.Arg("reference", name)),
	})
	if err != nil {
		return false, errors.NewDaemonError("inspect", name, err)
	}
	return len(images) > 0, nil
}

// RemoveImage deletes a local image.
func (c *Client) RemoveImage(ctx context.Context, name string, force bool) error {
	if _, err := c.api.ImageRemove(ctx, name, image.RemoveOptions{Force: force}); err != nil {
		return errors.NewDaemonError("remove", name, err)
	}
	return nil
}

// PruneReport summarizes an image prune run.
type PruneReport struct {
	ImagesDeleted  int
	SpaceReclaimed uint64
}

// PruneImages removes dangling images and reports what was reclaimed.
func (c *Client) PruneImages(ctx context.Context) (PruneReport, error) {
	report, err := c.api.ImagesPrune(ctx, filters.NewArgs())
	if err != nil {
		return PruneReport{}, errors.NewDaemonError("prune", "", err)
	}
	return PruneReport{
		ImagesDeleted:  len(report.ImagesDeleted),
		SpaceReclaimed: report.SpaceReclaimed,
	}, nil
}
