// Package update checks whether a newer CLI release is available.
package update

import (
	"fmt"

	"github.com/hashicorp/go-version"

	"github.com/coursebay/coursebay/cli/internal/ui"
)

// latestKnownVersion is the newest release this build knows about. A
// release pipeline stamps it at build time; fetching it from the release
// API at runtime is deliberately avoided in the CLI hot path.
var latestKnownVersion = "0.1.0"

// Check compares the running version against the latest known release and
// prints a notice when an upgrade is available.
func Check(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnownVersion)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("a newer release (%s) is available", latest)
		fmt.Println("Update with: go install github.com/coursebay/coursebay/cli@latest")
	}

	return nil
}
