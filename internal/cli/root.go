// Package cli implements the vrcsend commands.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vrcsend/vrcsend/internal/chatbox"
	"github.com/vrcsend/vrcsend/internal/config"
	"github.com/vrcsend/vrcsend/internal/presence"
	"github.com/vrcsend/vrcsend/internal/tui"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "vrcsend",
	Short: "Send text to the VRChat chatbox over OSC",
	Long: `vrcsend forwards typed text to VRChat's chatbox over OSC (UDP).
Run without a subcommand to open the interactive sender. The send button
is enabled while VRChat is running and the text is 1-144 characters.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(trayCmd)
	rootCmd.AddCommand(versionCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	logFile, err := config.SetupFileLogging(debug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cfg, sender, monitor, err := newServices()
	if err != nil {
		return err
	}
	slog.Info("Starting TUI", "target", sender.Target().Addr())
	return tui.Run(cfg, sender, monitor)
}

// newServices loads the shipped config and builds the sender and monitor.
func newServices() (config.Config, *chatbox.Sender, *presence.Monitor, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	sender, err := chatbox.NewSender(cfg, chatbox.UDPTransport{}, slog.Default())
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	monitor := presence.NewMonitor(cfg.ProcessNames, slog.Default())
	return cfg, sender, monitor, nil
}
