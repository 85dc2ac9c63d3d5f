package tray

import (
	"context"
	"embed"
	"log/slog"

	"github.com/getlantern/systray"

	"github.com/vrcsend/vrcsend/internal/config"
	"github.com/vrcsend/vrcsend/internal/models"
)

//go:embed assets
var assets embed.FS

var (
	cfg      config.Config
	target   models.Target
	watcher  Watcher
	cancel   context.CancelFunc
	status   *systray.MenuItem
	quitItem *systray.MenuItem
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
// The tray polls presence through w until the user picks Quit.
func Run(c config.Config, t models.Target, w Watcher) {
	cfg = c
	target = t
	watcher = w
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady() {
	if icon, err := loadIcon(cfg.Icon); err != nil {
		slog.Warn("Tray icon not available", "icon", cfg.Icon, "err", err)
	} else {
		systray.SetIcon(icon)
	}
	systray.SetTooltip(formatTooltip(cfg.Title, models.PresenceChecking, target))

	header := systray.AddMenuItem(cfg.Title, "")
	header.Disable()

	status = systray.AddMenuItem(formatStatus(models.PresenceChecking), "")
	status.Disable()

	targetItem := systray.AddMenuItem("Target: "+target.Addr(), "")
	targetItem.Disable()

	systray.AddSeparator()
	quitItem = systray.AddMenuItem("Quit", "Stop watching VRChat")

	var ctx context.Context
	ctx, cancel = context.WithCancel(context.Background())
	go watcher.Watch(ctx, cfg.PollInterval(), func(running bool) {
		setPresence(models.PresenceFromRunning(running))
	})

	go func() {
		<-quitItem.ClickedCh
		Quit()
	}()
}

func onQuit() {
	if cancel != nil {
		cancel()
	}
}

func setPresence(state models.PresenceState) {
	status.SetTitle(formatStatus(state))
	systray.SetTooltip(formatTooltip(cfg.Title, state, target))
}

func loadIcon(name string) ([]byte, error) {
	return assets.ReadFile("assets/" + name)
}
