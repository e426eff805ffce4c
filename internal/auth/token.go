package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the dotfile the Thunderbird extension writes on startup.
const tokenFileName = ".thunderbird-mcp-auth"

// ErrNoHome is returned when the user's home directory cannot be determined.
var ErrNoHome = errors.New("cannot determine home directory")

// NotFoundError is returned when the auth token file does not exist at any
// of the checked locations. Paths lists every location that was checked so
// callers can produce an actionable message.
type NotFoundError struct {
	Paths []string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("auth token not found at %v. Is Thunderbird running with the MCP extension?", e.Paths)
}

// FindToken resolves the bearer token from the current user's home directory.
func FindToken() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHome, err)
	}
	return FindTokenIn(home)
}

// FindTokenIn resolves the bearer token relative to the given home directory.
// It checks the plain home dotfile first, then the snap-remapped location,
// and returns the first file's contents with surrounding whitespace trimmed.
func FindTokenIn(home string) (string, error) {
	candidates := []string{
		filepath.Join(home, tokenFileName),
		filepath.Join(home, "snap", "thunderbird", "common", tokenFileName),
	}

	for _, path := range candidates {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return strings.TrimSpace(string(content)), nil
	}

	return "", &NotFoundError{Paths: candidates}
}
