package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aurixflash/internal/flasher"
)

func newFlashCmd() *cobra.Command {
	var (
		port int
		halt bool
	)

	cmd := &cobra.Command{
		Use:   "flash <image.hex>",
		Short: "Flash an Intel-HEX image onto the target board",
		Long: `Flash an Intel-HEX image onto the target board.

Examples:
  aurixflash flash firmware.hex
  aurixflash flash --port=2 firmware.hex
  aurixflash flash --halt firmware.hex

With --halt, Memtool only connects and opens the image, then stays up for
interactive use; aurixflash returns immediately and leaves it running.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := flasher.FullProgram
			if halt {
				mode = flasher.HaltAfterOpen
			}
			return flashImage(args[0], port, mode)
		},
	}

	cmd.Flags().IntVar(&port, "port", cfg.Flasher.DefaultPort,
		"DAS port selector of the target board")
	cmd.Flags().BoolVar(&halt, "halt", false,
		"Stop after connect and open, leaving Memtool to the operator")

	return cmd
}

// flashImage runs one complete flash session against the configured Memtool.
func flashImage(path string, port int, mode flasher.Mode) error {
	firmware, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image %s: %w", path, err)
	}

	session, err := flasher.New(cfg.Flasher.MemtoolPath).Start(firmware, mode, port)
	if err != nil {
		return fmt.Errorf("failed to start flash session: %w", err)
	}
	defer session.Release()

	if mode == flasher.HaltAfterOpen {
		fmt.Println("Memtool is connected with the image open; hand-off to the operator.")
		return nil
	}

	session.Wait()
	return nil
}
