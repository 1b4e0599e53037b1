package clean

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

// toolTimeout is the maximum time to wait for an external cleanup command.
const toolTimeout = 120 * time.Second

// brewCleanup lets Homebrew prune its own downloads and old kegs. A machine
// without brew is not an error. In dry-run mode brew's own --dry-run flag is
// passed so nothing is removed.
func brewCleanup(dryRun bool) error {
	if _, err := exec.LookPath("brew"); err != nil {
		return nil
	}

	args := []string{"cleanup", "-s", "--prune=all"}
	if dryRun {
		args = append(args, "--dry-run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), toolTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "brew", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return handleExitError("brew cleanup", err, output)
	}
	return nil
}

// handleExitError wraps an exec failure with contextual information,
// truncating captured output at a valid UTF-8 boundary.
func handleExitError(name string, err error, output []byte) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s timed out after %s", name, toolTimeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out := strings.TrimSpace(string(output))
		if len(out) > 200 {
			out = out[:200]
			for len(out) > 0 && !utf8.ValidString(out) {
				out = out[:len(out)-1]
			}
			out += "..."
		}
		if out != "" {
			return fmt.Errorf("%s failed (exit code %d): %s", name, exitErr.ExitCode(), out)
		}
		return fmt.Errorf("%s failed (exit code %d)", name, exitErr.ExitCode())
	}

	return fmt.Errorf("%s: %w", name, err)
}
