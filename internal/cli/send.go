package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vrcsend/vrcsend/internal/chatbox"
	"github.com/vrcsend/vrcsend/internal/config"
	"github.com/vrcsend/vrcsend/internal/models"
)

var (
	errNoText           = errors.New("no text given (pass it as arguments or pipe it on stdin)")
	errVRChatNotRunning = errors.New("VRChat is not running (start VRChat and enable OSC, or pass --force)")
)

var (
	sendNoImmediate bool
	sendHost        string
	sendPort        int
	sendForce       bool
)

var sendCmd = &cobra.Command{
	Use:   "send [text...]",
	Short: "Send one message to the chatbox",
	Long: `Send one message to the VRChat chatbox and exit.

The text is taken from the arguments, or read from stdin when stdin is
not a terminal:

  vrcsend send Hello world
  echo "Hello world" | vrcsend send`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().BoolVar(&sendNoImmediate, "no-immediate", false, "Open the chatbox keyboard instead of displaying immediately")
	sendCmd.Flags().StringVar(&sendHost, "host", "", "Override the target host")
	sendCmd.Flags().IntVar(&sendPort, "port", 0, "Override the target port")
	sendCmd.Flags().BoolVar(&sendForce, "force", false, "Send even if VRChat is not running")
}

func runSend(cmd *cobra.Command, args []string) error {
	config.SetupStderrLogging(debug)

	cfg, sender, monitor, err := newServices()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("host") || cmd.Flags().Changed("port") {
		host, port := overrideTarget(sender.Target(),
			sendHost, cmd.Flags().Changed("host"),
			sendPort, cmd.Flags().Changed("port"))
		if err := sender.Configure(host, port); err != nil {
			return err
		}
	}

	text, err := readText(args, os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
	if err != nil {
		return err
	}

	if !sendForce && !monitor.IsTargetRunning() {
		return errVRChatNotRunning
	}

	if err := sender.Send(text, !sendNoImmediate); err != nil {
		var sendErr *chatbox.SendError
		if errors.As(err, &sendErr) {
			printSendHints(cmd.ErrOrStderr())
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		styleSent.Render("✓ Sent:"),
		models.Preview(strings.TrimSpace(text), cfg.PreviewLength))
	return nil
}

// overrideTarget applies the --host/--port flags that were given on top of
// the current target. Given values pass through unchecked; Configure
// validates them.
func overrideTarget(current models.Target, host string, hostSet bool, port int, portSet bool) (string, int) {
	if hostSet {
		current.Host = host
	}
	if portSet {
		current.Port = port
	}
	return current.Host, current.Port
}

// readText joins args, or falls back to stdin when it is piped.
func readText(args []string, in io.Reader, isTerminal bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if isTerminal {
		return "", errNoText
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimRight(string(data), "\r\n")
	if strings.TrimSpace(text) == "" {
		return "", errNoText
	}
	return text, nil
}

func printSendHints(w io.Writer) {
	fmt.Fprintln(w, styleFailed.Render("Send failed."))
	fmt.Fprintln(w, styleHint.Render("Check that:"))
	for _, hint := range chatbox.TroubleshootingHints {
		fmt.Fprintf(w, "  %s %s\n", styleHint.Render("•"), hint)
	}
}
