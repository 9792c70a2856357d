package docker

import (
	"context"
	"os/exec"
	"strings"

	apiregistry "github.com/docker/docker/api/types/registry"
	"github.com/rs/zerolog/log"

	"github.com/mocksmith/mocksmith-cli/internal/registry"
	"github.com/mocksmith/mocksmith-cli/util/common/errors"
)

// ecrPassword fetches a short-lived registry token. Swapped in tests.
var ecrPassword = func(ctx context.Context, region string) (string, error) {
	out, err := exec.CommandContext(ctx, "aws", "ecr", "get-login-password", "--region", region).Output()
	if err != nil {
		return "", errors.Wrap(err, "aws ecr get-login-password failed")
	}
	return strings.TrimSpace(string(out)), nil
}

// Login authenticates the daemon session against the given registry.
//
// AWS ECR registries exchange a token through the aws CLI and log in as
// user "AWS". Other registries use the supplied username/password when
// present; without credentials an existing daemon session is assumed.
// Docker Hub (empty registry) is never logged into explicitly.
// Returns the auth payload to attach to subsequent pushes, or nil when no
// login was performed.
func (c *Client) Login(ctx context.Context, registryHost, username, password string) (*apiregistry.AuthConfig, error) {
	if registryHost == "" {
		log.Debug().Msg("no registry specified, assuming Docker Hub or existing session")
		return nil, nil
	}

	desc := registry.Classify(registryHost)

	switch {
	case desc.Kind == registry.AwsEcr:
		token, err := ecrPassword(ctx, desc.Region)
		if err != nil {
			return nil, err
		}
		return c.login(ctx, apiregistry.AuthConfig{
			Username:      "AWS",
			Password:      token,
			ServerAddress: registryHost,
		})

	case username != "" && password != "":
		return c.login(ctx, apiregistry.AuthConfig{
			Username:      username,
			Password:      password,
			ServerAddress: registryHost,
		})

	default:
		log.Debug().Str("registry", registryHost).Msg("no credentials supplied, assuming existing session")
		return nil, nil
	}
}

func (c *Client) login(ctx context.Context, auth apiregistry.AuthConfig) (*apiregistry.AuthConfig, error) {
	resp, err := c.api.RegistryLogin(ctx, auth)
	if err != nil {
		return nil, errors.NewDaemonError("login", auth.ServerAddress, err)
	}

	log.Debug().Str("registry", auth.ServerAddress).Str("status", resp.Status).Msg("registry login succeeded")

	return &auth, nil
}
