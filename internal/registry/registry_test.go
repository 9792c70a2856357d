package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Descriptor
	}{
		{
			name:  "empty string defaults to Docker Hub",
			input: "",
			want:  Descriptor{Kind: DockerHub, Hostname: "docker.io"},
		},
		{
			name:  "aws ecr",
			input: "123456789012.dkr.ecr.us-east-1.amazonaws.com",
			want: Descriptor{
				Kind:      AwsEcr,
				Hostname:  "123456789012.dkr.ecr.us-east-1.amazonaws.com",
				AccountID: "123456789012",
				Region:    "us-east-1",
			},
		},
		{
			name:  "gcr",
			input: "gcr.io",
			want:  Descriptor{Kind: Gcr, Hostname: "gcr.io"},
		},
		{
			name:  "regional gcr mirror",
			input: "eu.gcr.io",
			want:  Descriptor{Kind: Gcr, Hostname: "eu.gcr.io"},
		},
		{
			name:  "asia gcr mirror",
			input: "asia.gcr.io",
			want:  Descriptor{Kind: Gcr, Hostname: "asia.gcr.io"},
		},
		{
			name:  "google artifact registry",
			input: "us-central1-docker.pkg.dev",
			want:  Descriptor{Kind: GoogleArtifactRegistry, Hostname: "us-central1-docker.pkg.dev"},
		},
		{
			name:  "azure container registry",
			input: "myregistry.azurecr.io",
			want:  Descriptor{Kind: AzureContainerRegistry, Hostname: "myregistry.azurecr.io"},
		},
		{
			name:  "generic with port",
			input: "localhost:5000",
			want:  Descriptor{Kind: Generic, Hostname: "localhost:5000"},
		},
		{
			name:  "generic custom host",
			input: "registry.example.com",
			want:  Descriptor{Kind: Generic, Hostname: "registry.example.com"},
		},
		{
			name:  "docker.io given explicitly matches the empty-input descriptor",
			input: "docker.io",
			want:  Descriptor{Kind: DockerHub, Hostname: "docker.io"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestClassifyEcrShapes(t *testing.T) {
	// Any digit account id plus any alphanumeric/hyphen region token must
	// round back out of the descriptor.
	accounts := []string{"1", "000000000000", "999999999999"}
	regions := []string{"us-east-1", "eu-central-1", "ap-southeast-2", "x1"}

	for _, acct := range accounts {
		for _, region := range regions {
			host := fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com", acct, region)
			d := Classify(host)
			assert.Equal(t, AwsEcr, d.Kind, host)
			assert.Equal(t, acct, d.AccountID, host)
			assert.Equal(t, region, d.Region, host)
		}
	}
}

func TestClassifyNonEcrFieldsEmpty(t *testing.T) {
	// AccountID/Region belong to the AWS variant only.
	for _, in := range []string{"", "gcr.io", "x.pkg.dev", "a.azurecr.io", "quay.io"} {
		d := Classify(in)
		assert.Empty(t, d.AccountID, in)
		assert.Empty(t, d.Region, in)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	// Classifying a descriptor's own hostname yields the same descriptor.
	inputs := []string{
		"",
		"docker.io",
		"123456789012.dkr.ecr.eu-west-1.amazonaws.com",
		"gcr.io",
		"europe-docker.pkg.dev",
		"corp.azurecr.io",
		"localhost:5000",
	}
	for _, in := range inputs {
		first := Classify(in)
		assert.Equal(t, first, Classify(first.Hostname), in)
	}
}

func TestClassifyEmptyAndDockerIOAgree(t *testing.T) {
	// Absent registry and an explicit "docker.io" describe the same target.
	assert.Equal(t, Classify(""), Classify("docker.io"))
	assert.Equal(t, DockerHub, Classify("docker.io").Kind)
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name     string
		image    string
		registry string
		want     string
	}{
		{
			name:     "no registry returns name unchanged",
			image:    "my-app:latest",
			registry: "",
			want:     "my-app:latest",
		},
		{
			name:     "already qualified name wins over registry",
			image:    "registry.com/app:latest",
			registry: "other.com",
			want:     "registry.com/app:latest",
		},
		{
			name:     "port in first segment counts as qualified",
			image:    "localhost:5000/app",
			registry: "other.com",
			want:     "localhost:5000/app",
		},
		{
			name:     "generic registry with port",
			image:    "app",
			registry: "localhost:5000",
			want:     "localhost:5000/app",
		},
		{
			name:     "docker.io still prefixes",
			image:    "app",
			registry: "docker.io",
			want:     "docker.io/app",
		},
		{
			name:     "ecr registry",
			image:    "my-app:v1",
			registry: "123456789012.dkr.ecr.us-east-1.amazonaws.com",
			want:     "123456789012.dkr.ecr.us-east-1.amazonaws.com/my-app:v1",
		},
		{
			name:     "namespaced name without registry segment gets prefixed",
			image:    "team/app:latest",
			registry: "myregistry.azurecr.io",
			want:     "myregistry.azurecr.io/team/app:latest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FullName(tt.image, tt.registry))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "docker_hub", DockerHub.String())
	assert.Equal(t, "aws_ecr", AwsEcr.String())
	assert.Equal(t, "gcr", Gcr.String())
	assert.Equal(t, "gar", GoogleArtifactRegistry.String())
	assert.Equal(t, "acr", AzureContainerRegistry.String())
	assert.Equal(t, "generic", Generic.String())
}
