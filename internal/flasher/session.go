package flasher

import (
	"fmt"
	"os"
	"os/exec"

	"aurixflash/pkg/errors"
	"aurixflash/pkg/logger"
)

// Artifact names inside the session workspace. Memtool resolves the firmware
// path through the batch script, so the names only need to be stable.
const (
	firmwareFile = "input.hex"
	configFile   = "temp_config.cfg"
	batchFile    = "batch.mtb"
)

// Memtool drives one Infineon Memtool executable in batch mode.
type Memtool struct {
	exe string
	log *logger.Logger
}

// New returns a Memtool bound to the given executable path. The path is
// resolved once per process by the configuration layer; it is not
// re-discovered per session.
func New(exe string) *Memtool {
	return &Memtool{
		exe: exe,
		log: logger.WithField("component", "flasher"),
	}
}

// Session models one upload of an Intel-HEX image with Memtool. It owns the
// workspace holding the generated artifacts and the handle to the spawned
// Memtool process. A session is single-shot: it is started exactly once and
// cannot be re-run.
type Session struct {
	child     *exec.Cmd
	workspace *workspace
	log       *logger.Logger
}

// Start materializes the firmware image, target configuration and batch
// script in a fresh workspace and spawns Memtool against them.
//
// A DAS server instance must already be running; the target board is
// addressed by the given DAS port selector. The image must not contain
// unflashable sections.
//
// On any failure the workspace and everything in it is removed before the
// error is returned.
func (m *Memtool) Start(firmware []byte, mode Mode, port int) (*Session, error) {
	if m.exe == "" {
		return nil, fmt.Errorf("%w: no memtool executable configured", errors.ErrFlasherStart)
	}

	ws, err := newWorkspace()
	if err != nil {
		return nil, err
	}
	spawned := false
	defer func() {
		if !spawned {
			ws.release()
		}
	}()

	// The batch script references the firmware path, so the image goes in
	// first. All three artifacts must be on disk before the spawn.
	hexPath, err := ws.write(firmwareFile, firmware)
	if err != nil {
		return nil, err
	}
	cfgPath, err := ws.write(configFile, renderConfig(port))
	if err != nil {
		return nil, err
	}
	batchPath, err := ws.write(batchFile, renderBatch(mode, hexPath))
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(m.exe, "-c", cfgPath, batchPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrFlasherStart, err)
	}

	m.log.Info("spawned Infineon Memtool to flash HEX file",
		"pid", cmd.Process.Pid, "port", port, "mode", mode)

	spawned = true
	return &Session{
		child:     cmd,
		workspace: ws,
		log:       m.log,
	}, nil
}

// Wait blocks until Memtool terminates.
//
// This usually takes a moment, but a failed run can hang here: a broken
// flash layout or another attached debugger keeps Memtool waiting, and the
// cause is only visible in the Memtool GUI or its log files. A non-success
// exit is fatal: it indicates a broken environment that this tool cannot
// diagnose, so the process aborts with a diagnostic rather than returning.
func (s *Session) Wait() {
	if err := s.child.Wait(); err != nil {
		s.log.Fatalf("Infineon Memtool did not exit with success: %v", err)
	}
	s.log.Info("Infineon Memtool terminated successfully")
}

// Release removes the session workspace. The child process is deliberately
// left alone: in HaltAfterOpen mode the operator keeps working in Memtool
// long after the session is released.
func (s *Session) Release() {
	s.workspace.release()
}

// WorkspaceDir returns the directory holding the session artifacts. It
// exists until Release is called.
func (s *Session) WorkspaceDir() string {
	return s.workspace.root
}
