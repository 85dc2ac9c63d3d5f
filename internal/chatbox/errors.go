package chatbox

import (
	"fmt"

	"github.com/vrcsend/vrcsend/internal/models"
)

// ConfigurationError reports an invalid host or port. The sender's previous
// target is left untouched when it is returned.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// SendError reports that every payload encoding was rejected. Err is the
// last transport error.
type SendError struct {
	Target   models.Target
	Attempts int
	Err      error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send to %s failed after %d attempts: %v", e.Target, e.Attempts, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// TroubleshootingHints are shown to the user after a SendError.
var TroubleshootingHints = []string{
	"OSC is enabled in VRChat",
	"the IP address and port are correct",
	"the firewall allows the traffic",
}
