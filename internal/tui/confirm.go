// Package tui holds the interactive prompts shown when the CLI runs on a
// terminal. Scripted and CI invocations never reach this code.
package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mocksmith/mocksmith-cli/internal/style"
)

// ConfirmPush shows an interactive confirmation prompt before an image is
// pushed to a registry. Returns true only if the user explicitly confirms.
func ConfirmPush(imageRef, registryHost string) (bool, error) {
	var confirmed bool

	header := style.Warning.Render(fmt.Sprintf(
		"⚠  You are about to push %s to %s",
		style.Bold.Render(imageRef),
		style.Bold.Render(registryHost),
	))
	fmt.Println(header)
	fmt.Println()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Push %q to %s?", imageRef, registryHost)).
				Description("The image will be publicly visible if the repository is public.").
				Affirmative("Yes, push").
				Negative("No, cancel").
				Value(&confirmed),
		),
	)

	err := form.Run()
	if err != nil {
		return false, err
	}

	return confirmed, nil
}

// ConfirmRemoval shows an interactive confirmation prompt for destructive
// operations. Returns true only if the user explicitly confirms.
func ConfirmRemoval(resourceType, resourceName string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %s %q?", resourceType, resourceName)).
				Description("This action cannot be undone.").
				Affirmative("Yes, remove").
				Negative("No, cancel").
				Value(&confirmed),
		),
	)

	err := form.Run()
	if err != nil {
		return false, err
	}

	return confirmed, nil
}
