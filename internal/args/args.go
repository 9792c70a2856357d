// Package args validates user-supplied image and registry arguments before
// any daemon call is made, catching common mistakes with actionable
// suggestions.
package args

import (
	"fmt"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"

	"github.com/mocksmith/mocksmith-cli/util/common/errors"
)

// providerMarkers are substrings that identify a hostname as a managed
// registry endpoint.
var providerMarkers = []string{"ecr", "gcr.io", "azurecr.io", "pkg.dev"}

// ValidateRegistry rejects registry values that embed an image path, the
// most common invocation mistake. The returned error carries a suggested
// -r / -i split with :latest appended when the image part has no tag.
func ValidateRegistry(registry string) error {
	if registry == "" {
		return nil
	}

	hostname, rest, found := strings.Cut(registry, "/")
	if !found {
		return nil
	}

	if !strings.Contains(hostname, ".") || !looksLikeProvider(hostname) {
		return nil
	}

	suggestedImage := rest
	if !strings.Contains(suggestedImage, ":") {
		suggestedImage += ":latest"
	}

	return errors.NewValidationError("registry", fmt.Sprintf(
		"registry URL should not include an image name.\n\n"+
			"The registry (-r) specifies only the hostname, not the full image path.\n\n"+
			"Current registry: %s\n"+
			"Suggested fix:\n"+
			"  -r %s\n"+
			"  -i %s",
		registry, hostname, suggestedImage))
}

// ValidateImage checks that an image name is well-formed. Beyond the basic
// shape checks, the name must parse as a container image reference.
func ValidateImage(image string) error {
	if image == "" {
		return errors.NewValidationError("image", "image name cannot be empty")
	}
	if strings.HasPrefix(image, "/") || strings.HasSuffix(image, "/") {
		return errors.NewValidationError("image", "image name cannot start or end with '/'")
	}
	if _, err := name.ParseReference(image); err != nil {
		return errors.NewValidationError("image", err.Error())
	}
	return nil
}

// Validate runs every argument check for a build or push invocation.
func Validate(image, registry string) error {
	if err := ValidateRegistry(registry); err != nil {
		return err
	}
	return ValidateImage(image)
}

func looksLikeProvider(hostname string) bool {
	for _, marker := range providerMarkers {
		if strings.Contains(hostname, marker) {
			return true
		}
	}
	return false
}
