// Package gitops keeps a ledgerlab project directory under git, so every
// saved journal has a history.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	if _, err := run(dir, "init", "--quiet"); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// CommitAll stages every file and commits as the given identity, which is
// used for both author and committer. Returns the short commit hash.
func CommitAll(dir, message, name, email string) (string, error) {
	if _, err := run(dir, "add", "-A"); err != nil {
		return "", fmt.Errorf("git add: %w", err)
	}

	ident := []string{"-c", "user.name=" + name, "-c", "user.email=" + email}
	if _, err := run(dir, append(ident, "commit", "--quiet", "-m", message)...); err != nil {
		return "", fmt.Errorf("git commit: %w", err)
	}

	hash, err := run(dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return hash, nil
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s: %w", strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}
