package io

import (
	"fmt"
	"strings"
)

// Confirm prompts the user with a yes/no question. When confirmed is already
// true (e.g. via the global --yes flag) the prompt is skipped.
func Confirm(confirmed *bool, title string) error {
	if *confirmed {
		return nil
	}

	fmt.Printf("%s [y/N]: ", title)
	var response string
	_, _ = fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	*confirmed = response == "y" || response == "yes"

	return nil
}
