package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vrcsend/vrcsend/internal/config"
	"github.com/vrcsend/vrcsend/internal/models"
)

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the OSC target and whether VRChat is running",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "Keep checking on the poll interval until interrupted")
}

func runStatus(cmd *cobra.Command, args []string) error {
	config.SetupStderrLogging(debug)

	cfg, sender, monitor, err := newServices()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !statusWatch {
		state := models.PresenceFromRunning(monitor.IsTargetRunning())
		renderStatusTable(out, cfg, sender.Target(), state)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderStatusTable(out, cfg, sender.Target(), models.PresenceChecking)
	fmt.Fprintln(out, styleHint.Render("Watching every "+cfg.PollInterval().String()+", Ctrl+C to stop"))

	last := models.PresenceChecking
	monitor.Watch(ctx, cfg.PollInterval(), func(running bool) {
		state := models.PresenceFromRunning(running)
		if state == last {
			return
		}
		last = state
		fmt.Fprintln(out, presenceLine(time.Now(), state))
	})
	return nil
}

func renderStatusTable(w io.Writer, cfg config.Config, target models.Target, state models.PresenceState) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"Target", target.Addr()},
		{"Address", cfg.ChatboxAddress},
		{"VRChat", state.String()},
		{"Processes", strings.Join(cfg.ProcessNames, ", ")},
		{"Max length", fmt.Sprintf("%d", cfg.MaxLength)},
	})
	table.Render()
}

func presenceLine(now time.Time, state models.PresenceState) string {
	stamp := styleLabel.Render(now.Format("15:04:05"))
	switch state {
	case models.PresenceRunning:
		return stamp + " " + styleRunning.Render("VRChat running ✓")
	case models.PresenceNotRunning:
		return stamp + " " + styleNotRunning.Render("VRChat not running ✗")
	default:
		return stamp + " " + styleChecking.Render("checking...")
	}
}
