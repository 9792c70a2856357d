package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mocksmith/mocksmith-cli/cmd/build"
	"github.com/mocksmith/mocksmith-cli/cmd/image"
	"github.com/mocksmith/mocksmith-cli/cmd/push"
	"github.com/mocksmith/mocksmith-cli/cmd/spec"
	"github.com/mocksmith/mocksmith-cli/cmd/validate"
	"github.com/mocksmith/mocksmith-cli/config"
	"github.com/mocksmith/mocksmith-cli/internal/style"
	"github.com/mocksmith/mocksmith-cli/internal/terminal"
	"github.com/mocksmith/mocksmith-cli/util/templates"
)

// version is set via ldflags during build
var version = "dev"

func main() {
	var jsonFlag bool

	rootCmd := &cobra.Command{
		Use:           "mocksmith",
		Short:         "Build mock API servers from OpenAPI specifications",
		SilenceUsage:  true,
		SilenceErrors: true, //prevent duplicate printing of errors
		Long: templates.LongDesc(`
			mocksmith validates an OpenAPI specification, builds a container
			image that serves it as a mock API, and pushes the image to a
			container registry.

			Supported registries: DockerHub, AWS ECR, Google GCR and
			Artifact Registry, Azure ACR, and any generic registry host.`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// ── Initialise terminal & style ─────────────────────────────
			termInfo := terminal.Detect(config.Global.NoColor, true, jsonFlag)
			style.Init(termInfo.ColorEnabled)

			// Override format to JSON when --json is explicitly passed
			if termInfo.ForceJSON {
				config.Global.Format = "json"
			}

			// Set up logging based on verbose flag
			if config.Global.Verbose {
				logWriter := zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: time.RFC3339,
					NoColor:    !termInfo.ColorEnabled,
				}
				log.Logger = log.Output(logWriter).With().
					Str("run_id", uuid.NewString()).
					Logger()
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				log.Logger = zerolog.Nop()
			}

			return nil
		},
	}

	// Persistent flags available to all commands - bind them directly to global config
	rootCmd.PersistentFlags().BoolVarP(&config.Global.Verbose, "verbose", "v", false,
		"Enable verbose logging to console")
	rootCmd.PersistentFlags().BoolVar(&config.Global.NoColor, "no-color", false,
		"Disable colour output (also respects NO_COLOR env)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false,
		"Output results as JSON (equivalent to --format=json)")
	rootCmd.PersistentFlags().StringVar(&config.Global.Format, "format", "table",
		"Format of the result (table or json)")
	rootCmd.PersistentFlags().StringVar(&config.Global.ConfigPath, "config", "",
		"Path to a .mocksmith.yaml configuration file")
	rootCmd.PersistentFlags().BoolVarP(&config.Global.Yes, "yes", "y", false,
		"Skip interactive confirmation prompts")

	// Add main command groups
	rootCmd.AddCommand(build.NewBuildCmd())
	rootCmd.AddCommand(validate.NewValidateCmd())
	rootCmd.AddCommand(push.NewPushCmd())
	rootCmd.AddCommand(spec.GetRootCmd())
	rootCmd.AddCommand(image.GetRootCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		termInfo := terminal.Detect(config.Global.NoColor, false, false)
		if termInfo.StderrIsTerminal && termInfo.ColorEnabled {
			fmt.Fprintln(os.Stderr, style.Error.Render("Error: "+err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		}
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mocksmith",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mocksmith version %s\n", version)
			fmt.Printf("Built with %s\n", runtime.Version())
		},
	}
}
