// Package identity persists the voice client's cryptographic identity string.
// The identity is an opaque token produced by the client library; it is kept
// in a single-line file so the same server-side reputation survives restarts.
package identity

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/voicebridge/voicebridge/internal/clientlib"
)

// LoadOrCreate returns the identity stored at path, creating a fresh one
// through lib when the file does not exist yet. Only the first non-empty line
// of an existing file counts; a file with no such line is treated like a
// missing one, so a truncated write does not keep the bridge from coming up.
//
// Failing to create an identity is an error: without a credential no
// connection attempt is possible. Failing to persist a freshly created one is
// not: the identity is still returned and used for this run, it just will not
// survive a restart.
func LoadOrCreate(path string, lib clientlib.Library, logger *log.Logger) (string, error) {
	if logger == nil {
		logger = log.Default()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		for _, line := range strings.Split(string(data), "\n") {
			if id := strings.TrimSpace(line); id != "" {
				return id, nil
			}
		}
		// empty file: treat as absent and mint a new identity
	case os.IsNotExist(err):
		// fall through to creation
	default:
		return "", fmt.Errorf("identity: read %s: %w", path, err)
	}

	id, err := lib.CreateIdentity()
	if err != nil {
		return "", fmt.Errorf("identity: create: %w", err)
	}
	if id == "" {
		return "", fmt.Errorf("identity: library returned an empty identity")
	}

	if err := persist(path, id); err != nil {
		logger.Printf("[identity] %v (continuing with in-memory identity)", err)
	}
	return id, nil
}

func persist(path, id string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
