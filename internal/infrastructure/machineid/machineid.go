package machineid

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const idFile = "device-id"

// Load returns the stable device id for this terminal, generating and
// persisting one under dataDir on first run. The id survives restarts so the
// backend can keep the cash register bound to this physical machine.
func Load(dataDir string) (string, error) {
	path := filepath.Join(dataDir, idFile)

	if raw, err := os.ReadFile(path); err == nil {
		id := strings.TrimSpace(string(raw))
		if id != "" {
			return id, nil
		}
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", err
	}

	id := uuid.New().String()
	if err := os.WriteFile(path, []byte(id+"\n"), 0o644); err != nil {
		return "", err
	}
	return id, nil
}
