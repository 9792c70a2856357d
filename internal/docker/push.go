package docker

import (
	"context"
	"strings"

	"github.com/docker/docker/api/types/image"
	apiregistry "github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/rs/zerolog/log"

	"github.com/mocksmith/mocksmith-cli/internal/registry"
	"github.com/mocksmith/mocksmith-cli/util/common/errors"
)

// PushOptions collects the inputs for pushing a built image.
type PushOptions struct {
	// Image is the local image name to push.
	Image string
	// Registry is the target registry hostname; empty means the name is
	// pushed as-is (Docker Hub or an already-qualified reference).
	Registry string
	// ExtraTags are additional tags pushed after the main image.
	ExtraTags []string
	// Auth is the credential payload sent with the push, when known.
	Auth *apiregistry.AuthConfig
}

// PushImage tags the local image with its fully-qualified name when needed
// and pushes it, streaming progress to c.Progress. In-stream errorDetail
// messages from the daemon surface as DaemonErrors.
func (c *Client) PushImage(ctx context.Context, opts PushOptions) error {
	fullName := registry.FullName(opts.Image, opts.Registry)

	if fullName != opts.Image {
		log.Debug().Str("source", opts.Image).Str("target", fullName).Msg("tagging image for push")
		if err := c.api.ImageTag(ctx, opts.Image, fullName); err != nil {
			return errors.NewDaemonError("tag", fullName, err)
		}
	}

	if err := c.push(ctx, fullName, opts.Auth); err != nil {
		return err
	}

	for _, tag := range opts.ExtraTags {
		tagged := registry.FullName(retag(opts.Image, tag), opts.Registry)
		if err := c.api.ImageTag(ctx, opts.Image, tagged); err != nil {
			return errors.NewDaemonError("tag", tagged, err)
		}
		if err := c.push(ctx, tagged, opts.Auth); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) push(ctx context.Context, ref string, auth *apiregistry.AuthConfig) error {
	pushOpts := image.PushOptions{}
	if auth != nil {
		encoded, err := apiregistry.EncodeAuthConfig(*auth)
		if err != nil {
			return errors.NewDaemonError("push", ref, err)
		}
		pushOpts.RegistryAuth = encoded
	}

	log.Debug().Str("ref", ref).Msg("pushing image")

	body, err := c.api.ImagePush(ctx, ref, pushOpts)
	if err != nil {
		return errors.NewDaemonError("push", ref, err)
	}
	defer body.Close()

	if err := jsonmessage.DisplayJSONMessagesStream(body, c.Progress, 0, false, nil); err != nil {
		return errors.NewDaemonError("push", ref, err)
	}

	return nil
}

// retag swaps the tag portion of an image name, so "app:v1" + "stable"
// becomes "app:stable" and a bare "app" becomes "app:stable".
func retag(imageName, tag string) string {
	if idx := strings.LastIndex(imageName, ":"); idx > strings.LastIndex(imageName, "/") {
		return imageName[:idx] + ":" + tag
	}
	return imageName + ":" + tag
}
