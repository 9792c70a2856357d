// Package registry classifies container registry hostnames and builds
// fully-qualified image references. All functions here are purely
// syntactic: no DNS lookups, no daemon calls, no network access.
package registry

import (
	"regexp"
	"strings"
)

// Kind identifies the provider behind a registry hostname.
type Kind int

const (
	// DockerHub is the default when no registry was supplied.
	DockerHub Kind = iota
	// AwsEcr is an AWS Elastic Container Registry endpoint.
	AwsEcr
	// Gcr is the legacy Google Container Registry (gcr.io and mirrors).
	Gcr
	// GoogleArtifactRegistry is a *.pkg.dev endpoint.
	GoogleArtifactRegistry
	// AzureContainerRegistry is a *.azurecr.io endpoint.
	AzureContainerRegistry
	// Generic is any other registry, including self-hosted ones with a port.
	Generic
)

// String returns a short identifier for the kind, stable for log output.
func (k Kind) String() string {
	switch k {
	case DockerHub:
		return "docker_hub"
	case AwsEcr:
		return "aws_ecr"
	case Gcr:
		return "gcr"
	case GoogleArtifactRegistry:
		return "gar"
	case AzureContainerRegistry:
		return "acr"
	default:
		return "generic"
	}
}

// Descriptor is the result of classifying a registry hostname.
// AccountID and Region are populated only when Kind is AwsEcr.
type Descriptor struct {
	Kind      Kind
	Hostname  string
	AccountID string
	Region    string
}

var ecrPattern = regexp.MustCompile(`^(\d+)\.dkr\.ecr\.([a-zA-Z0-9-]+)\.amazonaws\.com`)

var gcrPrefixes = []string{"gcr.io", "us.gcr.io", "eu.gcr.io", "asia.gcr.io"}

// Classify determines the provider behind a registry hostname.
// It is a total function: any input yields a descriptor. Checks run in a
// fixed order and the first match wins (ECR, then GCR, then Artifact
// Registry, then ACR, then generic).
func Classify(registry string) Descriptor {
	// An explicit "docker.io" and an absent registry mean the same thing,
	// so both map to the DockerHub descriptor. This keeps classification
	// stable under re-classifying a descriptor's own hostname.
	if registry == "" || registry == "docker.io" {
		return Descriptor{Kind: DockerHub, Hostname: "docker.io"}
	}

	if m := ecrPattern.FindStringSubmatch(registry); m != nil {
		// The region is the 4th dot-separated segment of the hostname,
		// which the pattern guarantees equals the second capture group.
		return Descriptor{
			Kind:      AwsEcr,
			Hostname:  registry,
			AccountID: m[1],
			Region:    strings.Split(registry, ".")[3],
		}
	}

	for _, p := range gcrPrefixes {
		if strings.HasPrefix(registry, p) {
			return Descriptor{Kind: Gcr, Hostname: registry}
		}
	}

	if strings.Contains(registry, ".pkg.dev") {
		return Descriptor{Kind: GoogleArtifactRegistry, Hostname: registry}
	}

	if strings.HasSuffix(registry, ".azurecr.io") {
		return Descriptor{Kind: AzureContainerRegistry, Hostname: registry}
	}

	// Anything else, including host:port endpoints like localhost:5000.
	return Descriptor{Kind: Generic, Hostname: registry}
}

// FullName combines a local image name with a registry hostname into a
// fully-qualified reference.
//
// When the image name already carries a registry prefix (its first path
// segment contains a '.' or ':'), the registry argument is ignored and the
// name is returned unchanged. This is a deliberate override so callers can
// pass pre-qualified names through untouched. Otherwise the classified
// hostname is prefixed, including "docker.io/" for the Docker Hub case.
func FullName(imageName, registry string) string {
	if registry == "" {
		return imageName
	}

	if first, _, ok := strings.Cut(imageName, "/"); ok {
		if strings.ContainsAny(first, ".:") {
			return imageName
		}
	}

	return Classify(registry).Hostname + "/" + imageName
}
