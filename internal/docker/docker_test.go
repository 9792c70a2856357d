package docker

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	apiregistry "github.com/docker/docker/api/types/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements the API interface and records what was asked of it.
type fakeAPI struct {
	pingErr error

	buildOptions *build.ImageBuildOptions
	buildStream  string
	buildErr     error

	taggedPairs [][2]string

	pushRefs   []string
	pushAuth   []string
	pushStream string

	loginAuth *apiregistry.AuthConfig
	loginErr  error

	images    []image.Summary
	removed   []string
	pruneResp image.PruneReport
}

func (f *fakeAPI) Ping(context.Context) (types.Ping, error) {
	return types.Ping{}, f.pingErr
}

func (f *fakeAPI) ServerVersion(context.Context) (types.Version, error) {
	return types.Version{Version: "28.0.0", APIVersion: "1.48"}, nil
}

func (f *fakeAPI) ImageBuild(_ context.Context, buildContext io.Reader, options build.ImageBuildOptions) (build.ImageBuildResponse, error) {
	if f.buildErr != nil {
		return build.ImageBuildResponse{}, f.buildErr
	}
	// Drain the context tar like the daemon would.
	_, _ = io.Copy(io.Discard, buildContext)
	f.buildOptions = &options
	stream := f.buildStream
	if stream == "" {
		stream = `{"stream":"Successfully built"}` + "\n"
	}
	return build.ImageBuildResponse{Body: io.NopCloser(strings.NewReader(stream))}, nil
}

func (f *fakeAPI) ImageTag(_ context.Context, source, target string) error {
	f.taggedPairs = append(f.taggedPairs, [2]string{source, target})
	return nil
}

func (f *fakeAPI) ImagePush(_ context.Context, ref string, options image.PushOptions) (io.ReadCloser, error) {
	f.pushRefs = append(f.pushRefs, ref)
	f.pushAuth = append(f.pushAuth, options.RegistryAuth)
	stream := f.pushStream
	if stream == "" {
		stream = `{"status":"Pushed"}` + "\n"
	}
	return io.NopCloser(strings.NewReader(stream)), nil
}

func (f *fakeAPI) ImageList(context.Context, image.ListOptions) ([]image.Summary, error) {
	return f.images, nil
}

func (f *fakeAPI) ImageRemove(_ context.Context, name string, _ image.RemoveOptions) ([]image.DeleteResponse, error) {
	f.removed = append(f.removed, name)
	return []image.DeleteResponse{{Deleted: name}}, nil
}

func (f *fakeAPI) ImagesPrune(context.Context, filters.Args) (image.PruneReport, error) {
	return f.pruneResp, nil
}

func (f *fakeAPI) RegistryLogin(_ context.Context, auth apiregistry.AuthConfig) (apiregistry.AuthenticateOKBody, error) {
	f.loginAuth = &auth
	return apiregistry.AuthenticateOKBody{Status: "Login Succeeded"}, f.loginErr
}

func contextDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dockerfile"), []byte("FROM scratch\n"), 0644))
	return dir
}

func TestBuildImage(t *testing.T) {
	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	err := c.BuildImage(context.Background(), BuildOptions{
		Image:      "my-app:latest",
		SpecFile:   "api.yaml",
		Port:       8080,
		ContextDir: contextDir(t),
	})
	require.NoError(t, err)

	require.NotNil(t, fake.buildOptions)
	assert.Equal(t, []string{"my-app:latest"}, fake.buildOptions.Tags)
	assert.Equal(t, "Dockerfile", fake.buildOptions.Dockerfile)
	assert.True(t, fake.buildOptions.Remove)
	require.Contains(t, fake.buildOptions.BuildArgs, "SPEC_FILE")
	assert.Equal(t, "api.yaml", *fake.buildOptions.BuildArgs["SPEC_FILE"])
	require.Contains(t, fake.buildOptions.BuildArgs, "PORT")
	assert.Equal(t, "8080", *fake.buildOptions.BuildArgs["PORT"])
}

func TestBuildImageDefaultPort(t *testing.T) {
	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	err := c.BuildImage(context.Background(), BuildOptions{
		Image:      "my-app",
		SpecFile:   "api.yaml",
		ContextDir: contextDir(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "3000", *fake.buildOptions.BuildArgs["PORT"])
}

func TestBuildImageMissingDockerfile(t *testing.T) {
	c := NewWithAPI(&fakeAPI{})
	err := c.BuildImage(context.Background(), BuildOptions{
		Image:      "my-app",
		SpecFile:   "api.yaml",
		ContextDir: t.TempDir(),
	})
	assert.Error(t, err)
}

func TestBuildImageStreamError(t *testing.T) {
	fake := &fakeAPI{
		buildStream: `{"errorDetail":{"message":"step failed"},"error":"step failed"}` + "\n",
	}
	c := NewWithAPI(fake)

	err := c.BuildImage(context.Background(), BuildOptions{
		Image:      "my-app",
		SpecFile:   "api.yaml",
		ContextDir: contextDir(t),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step failed")
}

func TestBuildImageExtraTags(t *testing.T) {
	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	err := c.BuildImage(context.Background(), BuildOptions{
		Image:      "my-app:latest",
		SpecFile:   "api.yaml",
		ContextDir: contextDir(t),
		ExtraTags:  []string{"my-app:stable"},
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"my-app:latest", "my-app:stable"}}, fake.taggedPairs)
}

func TestPushImageTagsForRegistry(t *testing.T) {
	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	err := c.PushImage(context.Background(), PushOptions{
		Image:    "my-app:latest",
		Registry: "localhost:5000",
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"my-app:latest", "localhost:5000/my-app:latest"}}, fake.taggedPairs)
	assert.Equal(t, []string{"localhost:5000/my-app:latest"}, fake.pushRefs)
}

func TestPushImageQualifiedNameNotRetagged(t *testing.T) {
	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	err := c.PushImage(context.Background(), PushOptions{
		Image:    "registry.com/my-app:latest",
		Registry: "other.com",
	})
	require.NoError(t, err)
	assert.Empty(t, fake.taggedPairs)
	assert.Equal(t, []string{"registry.com/my-app:latest"}, fake.pushRefs)
}

func TestPushImageAttachesAuth(t *testing.T) {
	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	err := c.PushImage(context.Background(), PushOptions{
		Image:    "my-app",
		Registry: "corp.azurecr.io",
		Auth:     &apiregistry.AuthConfig{Username: "u", Password: "p", ServerAddress: "corp.azurecr.io"},
	})
	require.NoError(t, err)
	require.Len(t, fake.pushAuth, 1)
	assert.NotEmpty(t, fake.pushAuth[0])
}

func TestPushImageStreamError(t *testing.T) {
	fake := &fakeAPI{
		pushStream: `{"errorDetail":{"message":"denied"},"error":"denied"}` + "\n",
	}
	c := NewWithAPI(fake)

	err := c.PushImage(context.Background(), PushOptions{Image: "my-app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
}

func TestPushImageExtraTags(t *testing.T) {
	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	err := c.PushImage(context.Background(), PushOptions{
		Image:     "my-app:v1",
		Registry:  "localhost:5000",
		ExtraTags: []string{"stable"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"localhost:5000/my-app:v1",
		"localhost:5000/my-app:stable",
	}, fake.pushRefs)
}

func TestRetag(t *testing.T) {
	assert.Equal(t, "app:stable", retag("app:v1", "stable"))
	assert.Equal(t, "app:stable", retag("app", "stable"))
	assert.Equal(t, "localhost:5000/app:stable", retag("localhost:5000/app:v1", "stable"))
	assert.Equal(t, "localhost:5000/app:stable", retag("localhost:5000/app", "stable"))
}

func TestLoginEcr(t *testing.T) {
	orig := ecrPassword
	ecrPassword = func(_ context.Context, region string) (string, error) {
		assert.Equal(t, "us-east-1", region)
		return "token123", nil
	}
	defer func() { ecrPassword = orig }()

	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	auth, err := c.Login(context.Background(), "123456789012.dkr.ecr.us-east-1.amazonaws.com", "", "")
	require.NoError(t, err)
	require.NotNil(t, auth)
	assert.Equal(t, "AWS", auth.Username)
	assert.Equal(t, "token123", auth.Password)
	require.NotNil(t, fake.loginAuth)
	assert.Equal(t, "AWS", fake.loginAuth.Username)
}

func TestLoginGenericWithCredentials(t *testing.T) {
	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	auth, err := c.Login(context.Background(), "localhost:5000", "user", "pass")
	require.NoError(t, err)
	require.NotNil(t, auth)
	assert.Equal(t, "user", fake.loginAuth.Username)
	assert.Equal(t, "localhost:5000", fake.loginAuth.ServerAddress)
}

func TestLoginNoRegistryIsNoop(t *testing.T) {
	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	auth, err := c.Login(context.Background(), "", "user", "pass")
	require.NoError(t, err)
	assert.Nil(t, auth)
	assert.Nil(t, fake.loginAuth)
}

func TestLoginNoCredentialsAssumesSession(t *testing.T) {
	fake := &fakeAPI{}
	c := NewWithAPI(fake)

	auth, err := c.Login(context.Background(), "quay.io", "", "")
	require.NoError(t, err)
	assert.Nil(t, auth)
	assert.Nil(t, fake.loginAuth)
}

func TestPingError(t *testing.T) {
	c := NewWithAPI(&fakeAPI{pingErr: assert.AnError})
	assert.Error(t, c.Ping(context.Background()))
}

func TestListAndRemoveImages(t *testing.T) {
	fake := &fakeAPI{
		images: []image.Summary{
			{ID: "sha256:abc", RepoTags: []string{"my-app:latest"}, Size: 42},
		},
	}
	c := NewWithAPI(fake)

	images, err := c.ListImages(context.Background(), "my-app")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "sha256:abc", images[0].ID)

	exists, err := c.ImageExists(context.Background(), "my-app:latest")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, c.RemoveImage(context.Background(), "my-app:latest", true))
	assert.Equal(t, []string{"my-app:latest"}, fake.removed)
}

func TestPruneImages(t *testing.T) {
	fake := &fakeAPI{
		pruneResp: image.PruneReport{
			ImagesDeleted:  []image.DeleteResponse{{Deleted: "a"}, {Deleted: "b"}},
			SpaceReclaimed: 1024,
		},
	}
	c := NewWithAPI(fake)

	report, err := c.PruneImages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.ImagesDeleted)
	assert.Equal(t, uint64(1024), report.SpaceReclaimed)
}
