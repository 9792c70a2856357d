// Package push wires up:
//
//	mocksmith push
package push

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mocksmith/mocksmith-cli/config"
	"github.com/mocksmith/mocksmith-cli/internal/args"
	cfgfile "github.com/mocksmith/mocksmith-cli/internal/config"
	"github.com/mocksmith/mocksmith-cli/internal/docker"
	"github.com/mocksmith/mocksmith-cli/internal/registry"
	"github.com/mocksmith/mocksmith-cli/internal/style"
	"github.com/mocksmith/mocksmith-cli/internal/terminal"
	"github.com/mocksmith/mocksmith-cli/internal/tui"
	"github.com/mocksmith/mocksmith-cli/util/common/progress"
	"github.com/mocksmith/mocksmith-cli/util/templates"
)

type options struct {
	image        string
	registryHost string
	username     string
	password     string
	extraTags    []string
}

// NewPushCmd pushes an already-built image to a registry.
func NewPushCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "push IMAGE",
		Short: "Push a locally built image to a container registry",
		Long: templates.LongDesc(`
			Push an image that was already built to a container registry.

			The image is retagged with the fully-qualified registry name
			before pushing when needed. AWS ECR registries authenticate
			through the aws CLI; other registries use --username and
			--password or fall back to the existing docker login session.`),
		Example: templates.Examples(`
			# Push to an ECR registry
			mocksmith push my-app:latest -r 123456789.dkr.ecr.us-east-1.amazonaws.com

			# Push to DockerHub with explicit credentials
			mocksmith push my-app:latest -r docker.io --username me --password secret

			# Push an extra tag alongside the primary one
			mocksmith push my-app:v2 -r ghcr.io --tag stable`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			opts.image = cmdArgs[0]
			cfg, err := cfgfile.Load(config.Global.ConfigPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("registry") && opts.registryHost == "" {
				opts.registryHost = cfg.Registry
			}
			if opts.username == "" {
				opts.username = cfg.Push.Username
			}
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.registryHost, "registry", "r", "", "Container registry hostname")
	cmd.Flags().StringVar(&opts.username, "username", "", "Registry username")
	cmd.Flags().StringVar(&opts.password, "password", "", "Registry password")
	cmd.Flags().StringSliceVar(&opts.extraTags, "tag", nil, "Additional tag to apply and push (repeatable)")

	return cmd
}

func run(ctx context.Context, opts options) error {
	if err := args.Validate(opts.image, opts.registryHost); err != nil {
		return err
	}

	fullName := registry.FullName(opts.image, opts.registryHost)
	desc := registry.Classify(opts.registryHost)

	log.Info().
		Str("image", opts.image).
		Str("full_name", fullName).
		Str("registry_kind", desc.Kind.String()).
		Msg("pushing image")

	client, err := docker.New()
	if err != nil {
		return err
	}
	if config.Global.Verbose {
		client.Progress = os.Stderr
	}
	if err := client.Ping(ctx); err != nil {
		pterm.Println(style.ErrorIcon() + " Docker is not available or not running")
		return err
	}

	exists, err := client.ImageExists(ctx, opts.image)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("image %q not found locally, build it first", opts.image)
	}

	if !config.Global.Yes {
		termInfo := terminal.Detect(config.Global.NoColor, true, false)
		if termInfo.InteractiveEnabled {
			confirmed, err := tui.ConfirmPush(fullName, desc.Hostname)
			if err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("push cancelled")
			}
		}
	}

	reporter := progress.NewAutoReporter()
	reporter.Start("Pushing " + fullName)
	defer reporter.End()

	reporter.Step("authenticating with registry")
	auth, err := client.Login(ctx, opts.registryHost, opts.username, opts.password)
	if err != nil {
		reporter.Error("registry login failed")
		return err
	}

	reporter.Step("pushing image layers")
	err = client.PushImage(ctx, docker.PushOptions{
		Image:     opts.image,
		Registry:  opts.registryHost,
		ExtraTags: opts.extraTags,
		Auth:      auth,
	})
	if err != nil {
		reporter.Error("container push failed")
		return err
	}

	reporter.Success("Pushed " + fullName)
	return nil
}
