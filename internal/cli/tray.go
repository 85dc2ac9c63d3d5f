package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vrcsend/vrcsend/internal/config"
	"github.com/vrcsend/vrcsend/internal/tray"
)

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Show VRChat presence in the system tray",
	RunE:  runTray,
}

func runTray(cmd *cobra.Command, args []string) error {
	logFile, err := config.SetupFileLogging(debug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cfg, sender, monitor, err := newServices()
	if err != nil {
		return err
	}

	// Quit the tray on SIGINT/SIGTERM
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		slog.Info("Received signal, shutting down", "signal", sig)
		tray.Quit()
	}()

	// systray.Run must occupy the main goroutine on macOS; cobra runs
	// commands there, so this blocks until Quit.
	tray.Run(cfg, sender.Target(), monitor)
	return nil
}
