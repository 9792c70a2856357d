package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mocksmith/mocksmith-cli/cmd/common/printer"
	"github.com/mocksmith/mocksmith-cli/internal/openapi"
	"github.com/mocksmith/mocksmith-cli/util/templates"
)

// NewEndpointsCmd wires up:
//
//	mocksmith spec endpoints
func NewEndpointsCmd() *cobra.Command {
	var method string
	var tag string

	cmd := &cobra.Command{
		Use:   "endpoints SPEC_FILE",
		Short: "List the endpoints defined in a specification",
		Long: templates.LongDesc(`
			List every endpoint (path and HTTP method pair) defined in an
			OpenAPI specification file, sorted by path then method.`),
		Example: templates.Examples(`
			mocksmith spec endpoints api.yaml
			mocksmith spec endpoints api.yaml --method GET
			mocksmith --json spec endpoints api.yaml --tag users`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoints, err := openapi.Endpoints(args[0])
			if err != nil {
				return err
			}

			if method != "" || tag != "" {
				endpoints = filter(endpoints, method, tag)
			}

			return printer.Print(endpoints, [][]string{
				{"method", "Method"},
				{"path", "Path"},
				{"operation_id", "Operation ID"},
				{"summary", "Summary"},
			})
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "Only show endpoints with this HTTP method")
	cmd.Flags().StringVar(&tag, "tag", "", "Only show endpoints carrying this tag")

	return cmd
}

func filter(endpoints []openapi.Endpoint, method, tag string) []openapi.Endpoint {
	out := endpoints[:0]
	for _, ep := range endpoints {
		if method != "" && !strings.EqualFold(ep.Method, method) {
			continue
		}
		if tag != "" && !hasTag(ep.Tags, tag) {
			continue
		}
		out = append(out, ep)
	}
	return out
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
