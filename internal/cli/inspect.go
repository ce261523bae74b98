package cli

import (
	"fmt"
	"os"

	"github.com/marcinbor85/gohex"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <image.hex>",
		Short: "Show the memory layout of an Intel-HEX image",
		Long: `Show the memory layout of an Intel-HEX image.

Parses the image and lists its data segments. Purely informational: the
flash commands pass the image to Memtool verbatim and never look inside it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}

	return cmd
}

func runInspect(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	segments := mem.GetDataSegments()
	if len(segments) == 0 {
		fmt.Println("No data segments found")
		return nil
	}

	var total int
	fmt.Printf("%-12s %-12s %s\n", "START", "END", "SIZE")
	for _, s := range segments {
		end := s.Address + uint32(len(s.Data))
		fmt.Printf("0x%08X   0x%08X   %d\n", s.Address, end, len(s.Data))
		total += len(s.Data)
	}
	fmt.Printf("\n%d segment(s), %d payload bytes\n", len(segments), total)

	return nil
}
