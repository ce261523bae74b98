package flasher

import (
	"fmt"
	"os"
	"path/filepath"

	"aurixflash/pkg/errors"
	"aurixflash/pkg/logger"
)

// writeArtifact is swapped out by tests to inject write failures.
var writeArtifact = os.WriteFile

// workspace is the exclusively-owned scratch directory holding the artifacts
// one Memtool session consumes.
type workspace struct {
	root string
}

func newWorkspace() (*workspace, error) {
	root, err := os.MkdirTemp("", "aurixflash-")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrWorkspaceUnavailable, err)
	}
	return &workspace{root: root}, nil
}

func (w *workspace) path(name string) string {
	return filepath.Join(w.root, name)
}

// write materializes one artifact and returns its absolute path.
func (w *workspace) write(name string, data []byte) (string, error) {
	p := w.path(name)
	if err := writeArtifact(p, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", errors.ErrArtifactWrite, name, err)
	}
	return p, nil
}

// release removes the workspace recursively. It is safe to call on every
// exit path; failures are logged and otherwise ignored since the directory
// lives under the system temp root.
func (w *workspace) release() {
	if err := os.RemoveAll(w.root); err != nil {
		logger.Warn("failed to remove flash workspace", "dir", w.root, "error", err)
	}
}
