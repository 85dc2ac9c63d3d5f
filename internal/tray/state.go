// Package tray implements the system tray presence indicator.
package tray

import (
	"context"
	"fmt"
	"time"

	"github.com/vrcsend/vrcsend/internal/models"
)

// Watcher reports presence changes until ctx is cancelled.
type Watcher interface {
	Watch(ctx context.Context, interval time.Duration, fn func(running bool))
}

func formatStatus(state models.PresenceState) string {
	switch state {
	case models.PresenceRunning:
		return "VRChat: Running ✓"
	case models.PresenceNotRunning:
		return "VRChat: Not running ✗"
	default:
		return "VRChat: Checking..."
	}
}

func formatTooltip(title string, state models.PresenceState, target models.Target) string {
	return fmt.Sprintf("%s - VRChat %s, target %s", title, state, target.Addr())
}
