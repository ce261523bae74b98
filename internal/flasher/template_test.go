package flasher

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfig_Deterministic(t *testing.T) {
	assert.Equal(t, renderConfig(3), renderConfig(3))
	assert.Equal(t, renderConfig(0), renderConfig(0))
}

func TestRenderConfig_PortSubstitution(t *testing.T) {
	for _, port := range []int{0, 1, 7, 42, 65535} {
		cfg := string(renderConfig(port))

		var portLines []string
		for _, line := range strings.Split(cfg, "\n") {
			if strings.HasPrefix(line, "DasPortSel=") {
				portLines = append(portLines, line)
			}
		}

		require.Len(t, portLines, 1, "port %d", port)
		assert.Equal(t, fmt.Sprintf("DasPortSel=%d", port), portLines[0])
	}
}

func TestRenderConfig_DiffersOnlyInPortLine(t *testing.T) {
	a := strings.Split(string(renderConfig(0)), "\n")
	b := strings.Split(string(renderConfig(42)), "\n")
	require.Equal(t, len(a), len(b))

	var diff []int
	for i := range a {
		if a[i] != b[i] {
			diff = append(diff, i)
		}
	}

	require.Len(t, diff, 1)
	assert.Equal(t, "DasPortSel=0", a[diff[0]])
	assert.Equal(t, "DasPortSel=42", b[diff[0]])
}

func TestRenderConfig_CanonicalContent(t *testing.T) {
	cfg := string(renderConfig(0))

	assert.True(t, strings.HasPrefix(cfg, "[Main]\nSignature=UDE_TARGINFO_2.0\n"))
	assert.Contains(t, cfg, "\nType=TC39xB\n")
	assert.Contains(t, cfg, "\nProtocol=TC2_JTAG\n")
	assert.Contains(t, cfg, `DasSrvPath=servers\udas\udas.exe`)

	// regulator init and trap disables must stay verbatim
	assert.Contains(t, cfg, "; Init TLF35584 C-Step on connect\nSET 0xF0036034  0x11100002\n")
	assert.Contains(t, cfg, "; switch off FLASH error traps\nset 0xF8801104 0x10000\n")
	assert.Contains(t, cfg, "set 0xF8040048 0xC0000000\n")

	assert.Contains(t, cfg, "[Controller0.PFLASH]\nEnabled=1\nEnableMemtoolByDefault=1\n")
	assert.True(t, strings.HasSuffix(cfg, "[Controller0.Core0.Tc2CoreTargIntf.OnConnectScript]"))
}

func TestRenderBatch_FullProgram(t *testing.T) {
	got := string(renderBatch(FullProgram, "/tmp/ws/input.hex"))
	want := "connect\n" +
		"open_file /tmp/ws/input.hex\n" +
		"select_all_sections\n" +
		"add_selected_sections\n" +
		"program\n" +
		"disconnect\n" +
		"exit"
	assert.Equal(t, want, got)
}

func TestRenderBatch_HaltAfterOpen(t *testing.T) {
	got := string(renderBatch(HaltAfterOpen, "/tmp/ws/input.hex"))
	assert.Equal(t, "connect\nopen_file /tmp/ws/input.hex\n", got)
}
