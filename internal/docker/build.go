package docker

import (
	"context"
	"io"
	"path/filepath"
	"strconv"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/pkg/archive"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/rs/zerolog/log"

	"github.com/mocksmith/mocksmith-cli/util/common/errors"
	"github.com/mocksmith/mocksmith-cli/util/common/fileutil"
	"github.com/mocksmith/mocksmith-cli/util/common/progress"
)

// BuildOptions collects the inputs for a mock-server image build.
type BuildOptions struct {
	// Image is the tag applied to the built image.
	Image string
	// SpecFile is the OpenAPI specification embedded into the image,
	// passed to the Dockerfile as the SPEC_FILE build argument.
	SpecFile string
	// Port the mock server listens on, passed as the PORT build argument.
	Port int
	// Dockerfile is the path of the Dockerfile inside the context.
	Dockerfile string
	// ContextDir is the build context directory.
	ContextDir string
	// BuildArgs are extra build arguments merged under SPEC_FILE/PORT.
	BuildArgs map[string]string
	// ExtraTags are additional tags applied after a successful build.
	ExtraTags []string
}

func (o *BuildOptions) defaults() {
	if o.Dockerfile == "" {
		o.Dockerfile = "Dockerfile"
	}
	if o.ContextDir == "" {
		o.ContextDir = "."
	}
	if o.Port == 0 {
		o.Port = 3000
	}
}

// BuildImage tars the context directory and asks the daemon to build it,
// streaming the build log to c.Progress. The daemon reports in-stream
// failures as jsonmessage errors, which surface as a DaemonError.
func (c *Client) BuildImage(ctx context.Context, opts BuildOptions) error {
	opts.defaults()

	dockerfile := filepath.Join(opts.ContextDir, opts.Dockerfile)
	if !fileutil.IsFile(dockerfile) {
		return errors.NewFileError(dockerfile, "stat", errors.ErrNotFound)
	}

	buildArgs := map[string]*string{
		"SPEC_FILE": ptr(opts.SpecFile),
		"PORT":      ptr(strconv.Itoa(opts.Port)),
	}
	for k, v := range opts.BuildArgs {
		buildArgs[k] = ptr(v)
	}

	buildContext, err := archive.TarWithOptions(opts.ContextDir, &archive.TarOptions{})
	if err != nil {
		return errors.NewDaemonError("build", opts.Image, err)
	}
	defer buildContext.Close()

	var contextReader io.Reader = buildContext
	if c.ContextBar {
		var done func()
		contextReader, done = progress.Reader(0, buildContext, "uploading build context")
		defer done()
	}

	log.Debug().
		Str("image", opts.Image).
		Str("dockerfile", dockerfile).
		Str("context", opts.ContextDir).
		Msg("starting image build")

	resp, err := c.api.ImageBuild(ctx, contextReader, build.ImageBuildOptions{
		Tags:       []string{opts.Image},
		Dockerfile: opts.Dockerfile,
		BuildArgs:  buildArgs,
		Remove:     true,
	})
	if err != nil {
		return errors.NewDaemonError("build", opts.Image, err)
	}
	defer resp.Body.Close()

	if err := jsonmessage.DisplayJSONMessagesStream(resp.Body, c.Progress, 0, false, nil); err != nil {
		return errors.NewDaemonError("build", opts.Image, err)
	}

	for _, tag := range opts.ExtraTags {
		if err := c.api.ImageTag(ctx, opts.Image, tag); err != nil {
			return errors.NewDaemonError("tag", tag, err)
		}
		log.Debug().Str("source", opts.Image).Str("tag", tag).Msg("tagged image")
	}

	return nil
}

func ptr(s string) *string {
	return &s
}
