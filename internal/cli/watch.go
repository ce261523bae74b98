package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"aurixflash/internal/flasher"
	"aurixflash/pkg/logger"
)

// reflashDebounce coalesces the burst of writes a build produces into one
// flash cycle.
const reflashDebounce = 500 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "watch <image.hex>",
		Short: "Reflash the target whenever the image changes",
		Long: `Reflash the target whenever the image changes.

Flashes once up front, then watches the image and runs a fresh flash session
after every change. The parent directory is watched rather than the file
itself, so builds that replace the file atomically are picked up too.

Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0], port)
		},
	}

	cmd.Flags().IntVar(&port, "port", cfg.Flasher.DefaultPort,
		"DAS port selector of the target board")

	return cmd
}

func runWatch(path string, port int) error {
	image, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(image)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(image), err)
	}

	if err := flashImage(image, port, flasher.FullProgram); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}

	log := logger.WithField("component", "watch")
	log.Info("watching image for changes", "image", image)

	for {
		select {
		case event := <-watcher.Events:
			if event.Name != image {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(reflashDebounce)

		case <-debounce.C:
			if err := flashImage(image, port, flasher.FullProgram); err != nil {
				log.Error("reflash failed", "error", err)
			}

		case err := <-watcher.Errors:
			log.Warn("watcher error", "error", err)

		case <-sig:
			log.Info("stopping watch")
			return nil
		}
	}
}
