// Package docker wraps the Docker daemon API for the build and push steps
// of the pipeline. All heavy lifting (building layers, pushing blobs,
// credential storage) is delegated to the daemon; this package only drives
// it and interprets its streamed responses.
package docker

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/client"
	"github.com/rs/zerolog/log"
)

// API is the subset of the daemon client this package depends on.
// *client.Client satisfies it; tests substitute a fake.
type API interface {
	Ping(ctx context.Context) (types.Ping, error)
	ServerVersion(ctx context.Context) (types.Version, error)
	ImageBuild(ctx context.Context, buildContext io.Reader, options build.ImageBuildOptions) (build.ImageBuildResponse, error)
	ImageTag(ctx context.Context, source, target string) error
	ImagePush(ctx context.Context, image string, options image.PushOptions) (io.ReadCloser, error)
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	ImageRemove(ctx context.Context, image string, options image.RemoveOptions) ([]image.DeleteResponse, error)
	ImagesPrune(ctx context.Context, pruneFilters filters.Args) (image.PruneReport, error)
	RegistryLogin(ctx context.Context, auth registry.AuthConfig) (registry.AuthenticateOKBody, error)
}

// Client drives the Docker daemon for the pipeline steps.
type Client struct {
	api API

	// Progress receives streamed daemon output (build and push logs).
	// Defaults to io.Discard; the cmd layer points it at stderr when
	// --verbose is set.
	Progress io.Writer

	// ContextBar enables a progress bar while the build context uploads.
	// The cmd layer turns it on for interactive terminal sessions.
	ContextBar bool
}

// New creates a Client from the environment (DOCKER_HOST and friends),
// negotiating the API version with the daemon.
func New() (*Client, error) {
	apiClient, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return NewWithAPI(apiClient), nil
}

// NewWithAPI wraps an existing daemon API handle.
func NewWithAPI(api API) *Client {
	return &Client{api: api, Progress: io.Discard}
}

// Ping verifies the daemon is reachable and responding.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.Ping(ctx); err != nil {
		return fmt.Errorf("docker is not available or not running: %w", err)
	}
	return nil
}

// ServerVersion returns the daemon version string.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	v, err := c.api.ServerVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read daemon version: %w", err)
	}

	log.Debug().Str("version", v.Version).Str("api_version", v.APIVersion).Msg("connected to docker daemon")

	return v.Version, nil
}
