package flasher

import "fmt"

// Mode selects how far the generated batch script drives Memtool.
type Mode int

const (
	// FullProgram flashes every section of the image unattended and exits.
	FullProgram Mode = iota
	// HaltAfterOpen connects and opens the image, then leaves Memtool to an
	// interactive operator.
	HaltAfterOpen
)

func (m Mode) String() string {
	switch m {
	case FullProgram:
		return "full-program"
	case HaltAfterOpen:
		return "halt-after-open"
	default:
		return "unknown"
	}
}

// renderBatch renders the Memtool batch script for the given mode. hexPath is
// the absolute path of the firmware file inside the session workspace; the
// batch command set takes it as a bare token, so the path must not require
// quoting.
func renderBatch(mode Mode, hexPath string) []byte {
	if mode == HaltAfterOpen {
		return []byte(fmt.Sprintf("connect\nopen_file %s\n", hexPath))
	}
	return []byte(fmt.Sprintf(
		"connect\nopen_file %s\nselect_all_sections\nadd_selected_sections\nprogram\ndisconnect\nexit",
		hexPath))
}
