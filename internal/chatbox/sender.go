// Package chatbox sends chatbox messages to an OSC receiver over UDP.
package chatbox

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vrcsend/vrcsend/internal/config"
	"github.com/vrcsend/vrcsend/internal/models"
)

var validate = validator.New()

// Sender holds the current target and sends chatbox messages to it.
type Sender struct {
	mu     sync.Mutex
	target models.Target

	address   string
	maxLength int
	encodings []Encoding
	transport Transport
	log       *slog.Logger
}

// NewSender creates a sender aimed at the configured default target.
func NewSender(cfg config.Config, transport Transport, log *slog.Logger) (*Sender, error) {
	s := &Sender{
		address:   cfg.ChatboxAddress,
		maxLength: cfg.MaxLength,
		encodings: DefaultEncodings,
		transport: transport,
		log:       log,
	}
	if err := s.Configure(cfg.Host, cfg.Port); err != nil {
		return nil, err
	}
	return s, nil
}

// Target returns the current target.
func (s *Sender) Target() models.Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// Configure replaces the target. On a validation failure it returns a
// *ConfigurationError and keeps the previous target.
func (s *Sender) Configure(host string, port int) error {
	t := models.Target{Host: strings.TrimSpace(host), Port: port}
	if err := validate.Struct(t); err != nil {
		return toConfigurationError(t, err)
	}

	s.mu.Lock()
	s.target = t
	s.mu.Unlock()

	s.log.Info("Target updated", "target", t.Addr())
	return nil
}

// Send validates text locally, then tries each encoding in order until the
// transport accepts one. Nothing is queued or retried across calls.
func (s *Sender) Send(text string, immediate bool) error {
	msg, err := models.NewOutgoingMessage(text, immediate, s.maxLength)
	if err != nil {
		return err
	}

	target := s.Target()
	log := s.log.With("send_id", uuid.NewString(), "target", target.Addr())

	var lastErr error
	for i, enc := range s.encodings {
		lastErr = s.transport.Send(target, enc.build(s.address, msg))
		if lastErr == nil {
			log.Debug("Chatbox message sent", "encoding", enc.Name, "attempt", i+1)
			return nil
		}
		log.Debug("Encoding rejected", "encoding", enc.Name, "err", lastErr)
	}

	log.Warn("All chatbox encodings rejected", "err", lastErr)
	return &SendError{Target: target, Attempts: len(s.encodings), Err: lastErr}
}

// ParsePort converts form input into a port number.
func ParsePort(s string) (int, error) {
	s = strings.TrimSpace(s)
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ConfigurationError{Field: "port", Value: s, Reason: "not a number"}
	}
	return port, nil
}

func toConfigurationError(t models.Target, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ConfigurationError{Field: "target", Value: t.Addr(), Reason: err.Error()}
	}
	switch verrs[0].Field() {
	case "Host":
		return &ConfigurationError{Field: "host", Value: t.Host, Reason: "host is empty"}
	default:
		return &ConfigurationError{Field: "port", Value: strconv.Itoa(t.Port), Reason: "port must be between 1 and 65535"}
	}
}
