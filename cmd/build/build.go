// Package build wires up:
//
//	mocksmith build
package build

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
	"github.com/mocksmith/mocksmith-cli/internal/openapi"
	"github.com/mocksmith/mocksmith-cli/internal/registry"
	"github.com/mocksmith/mocksmith-cli/internal/style"
	"github.com/mocksmith/mocksmith-cli/internal/terminal"
	"github.com/mocksmith/mocksmith-cli/internal/tui"
	"github.com/mocksmith/mocksmith-cli/util/buildargs"
	"github.com/mocksmith/mocksmith-cli/util/templates"
)

type options struct {
	specFile     string
	image        string
	registryHost string
	port         int
	dockerfile   string
	contextDir   string
	noPush       bool
	username     string
	password     string
	extraTags    []string
	buildArgs    []string
	fileArgs     map[string]string
}

// NewBuildCmd runs the full pipeline: validate the specification, build
// the mock-server image, and push it unless --no-push was given.
func NewBuildCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "build SPEC_FILE",
		Short: "Validate a spec, build the mock-server image, and push it",
		Long: templates.LongDesc(`
			Run the full pipeline for an OpenAPI specification:

			  1. validate the specification structure
			  2. build a container image embedding the spec into a mock
			     API server (the spec file and port travel as SPEC_FILE
			     and PORT build arguments)
			  3. push the image to the target registry

			The push step is skipped with --no-push. AWS ECR registries
			authenticate through the aws CLI; other registries use
			--username/--password or an existing docker login session.`),
		Example: templates.Examples(`
			# Build and push to a private ECR registry
			mocksmith build api.yaml -i my-app:latest -r 123456789.dkr.ecr.us-east-1.amazonaws.com

			# Build locally only
			mocksmith build api.yaml -i my-app:latest --no-push

			# Build with a custom port and an extra tag
			mocksmith build api.yaml -i my-app:v2 -p 8080 --tag stable --no-push`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			opts.specFile = cmdArgs[0]
			if err := applyDefaults(cmd, &opts); err != nil {
				return err
			}
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "Container image name (e.g. my-app:latest)")
	cmd.Flags().StringVarP(&opts.registryHost, "registry", "r", "", "Container registry hostname (e.g. docker.io, <account>.dkr.ecr.<region>.amazonaws.com)")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "Port number for the mock server (default 3000)")
	cmd.Flags().StringVar(&opts.dockerfile, "dockerfile", "", "Dockerfile path inside the build context (default Dockerfile)")
	cmd.Flags().StringVar(&opts.contextDir, "context", "", "Build context directory (default .)")
	cmd.Flags().BoolVar(&opts.noPush, "no-push", false, "Build the image but do not push it")
	cmd.Flags().StringVar(&opts.username, "username", "", "Registry username for the push step")
	cmd.Flags().StringVar(&opts.password, "password", "", "Registry password for the push step")
	cmd.Flags().StringSliceVar(&opts.extraTags, "tag", nil, "Additional tag to apply and push (repeatable)")
	cmd.Flags().StringArrayVar(&opts.buildArgs, "build-arg", nil, "Extra build argument in KEY=VALUE form (repeatable)")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

// applyDefaults fills unset flags from the configuration file.
func applyDefaults(cmd *cobra.Command, opts *options) error {
	cfg, err := cfgfile.Load(config.Global.ConfigPath)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("registry") && opts.registryHost == "" {
		opts.registryHost = cfg.Registry
	}
	if !cmd.Flags().Changed("port") || opts.port == 0 {
		opts.port = cfg.Port
	}
	if opts.dockerfile == "" {
		opts.dockerfile = cfg.Build.Dockerfile
	}
	if opts.contextDir == "" {
		opts.contextDir = cfg.Build.Context
	}
	if opts.username == "" {
		opts.username = cfg.Push.Username
	}
	if len(opts.extraTags) == 0 {
		opts.extraTags = cfg.Push.ExtraTags
	}
	opts.fileArgs = cfg.Build.Args
	return nil
}

func run(ctx context.Context, opts options) error {
	if err := args.Validate(opts.image, opts.registryHost); err != nil {
		return err
	}

	log.Info().
		Str("spec_file", opts.specFile).
		Str("image", opts.image).
		Str("registry", opts.registryHost).
		Int("port", opts.port).
		Bool("push", !opts.noPush).
		Msg("starting pipeline")

	// Step 1: validate the specification.
	pterm.Println(style.Subtitle.Render("Step 1: Validating OpenAPI specification..."))
	res, _, err := openapi.ValidateFile(opts.specFile)
	if err != nil {
		pterm.Println(style.ErrorIcon() + " OpenAPI validation failed")
		return err
	}
	pterm.Println(style.SuccessIcon() + " OpenAPI specification validation passed")
	if config.Global.Verbose {
		pterm.Printf("  Title: %s\n", res.Title)
		pterm.Printf("  Version: %s\n", res.Version)
		pterm.Printf("  Spec Version: %s\n", res.SpecVersion)
		pterm.Printf("  Paths: %d\n", res.PathsCount)
	}
	pterm.Println()

	// Step 2: build the image.
	pterm.Println(style.Subtitle.Render("Step 2: Building container image..."))
	client, err := docker.New()
	if err != nil {
		return err
	}
	if config.Global.Verbose {
		client.Progress = os.Stderr
	} else {
		client.ContextBar = terminal.Detect(config.Global.NoColor, false, false).IsTerminal
	}
	if err := client.Ping(ctx); err != nil {
		pterm.Println(style.ErrorIcon() + " Docker is not available or not running")
		return err
	}

	flagArgs, err := buildargs.Parse(opts.buildArgs)
	if err != nil {
		return err
	}
	// Command-line build args override the config file's.
	extraArgs := make(map[string]string, len(opts.fileArgs)+len(flagArgs))
	for k, v := range opts.fileArgs {
		extraArgs[k] = v
	}
	for k, v := range flagArgs {
		extraArgs[k] = v
	}
	if len(extraArgs) > 0 {
		log.Debug().Msg("extra build args:\n" + buildargs.Format(extraArgs))
	}

	err = client.BuildImage(ctx, docker.BuildOptions{
		Image:      opts.image,
		SpecFile:   opts.specFile,
		Port:       opts.port,
		Dockerfile: opts.dockerfile,
		ContextDir: opts.contextDir,
		BuildArgs:  extraArgs,
	})
	if err != nil {
		pterm.Println(style.ErrorIcon() + " Container build failed")
		return err
	}
	pterm.Println(style.SuccessIcon() + " Container image built successfully")
	pterm.Println()

	// Step 3: push, unless disabled.
	if opts.noPush {
		pterm.Println(style.DimText.Render("Step 3: Skipping push (--no-push specified)"))
		return nil
	}

	pterm.Println(style.Subtitle.Render("Step 3: Pushing container image..."))
	if err := push(ctx, client, opts); err != nil {
		return err
	}
	pterm.Println(style.SuccessIcon() + " Container image pushed successfully")
	pterm.Println()
	pterm.Println(style.Success.Render("All steps completed successfully!"))
	return nil
}

// push logs in when a registry was given and pushes the image, asking for
// confirmation first on interactive terminals.
func push(ctx context.Context, client *docker.Client, opts options) error {
	fullName := registry.FullName(opts.image, opts.registryHost)

	if opts.registryHost != "" && !config.Global.Yes {
		termInfo := terminal.Detect(config.Global.NoColor, true, false)
		if termInfo.InteractiveEnabled {
			confirmed, err := tui.ConfirmPush(fullName, registry.Classify(opts.registryHost).Hostname)
			if err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("push cancelled")
			}
		}
	}

	auth, err := client.Login(ctx, opts.registryHost, opts.username, opts.password)
	if err != nil {
		pterm.Println(style.ErrorIcon() + " Registry login failed")
		return err
	}

	err = client.PushImage(ctx, docker.PushOptions{
		Image:     opts.image,
		Registry:  opts.registryHost,
		ExtraTags: opts.extraTags,
		Auth:      auth,
	})
	if err != nil {
		pterm.Println(style.ErrorIcon() + " Container push failed")
		return err
	}
	return nil
}
