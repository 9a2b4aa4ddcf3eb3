package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender delivers outbound Shift Book email.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams represents a single outbound message.
type SendParams struct {
	To       string `json:"to"`            // Recipient email address
	Subject  string `json:"subject"`       // Subject line
	BodyHTML string `json:"body_html"`     // HTML body
	Tag      string `json:"tag,omitempty"` // Optional category tag; defaults to the destination name
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks the parameters before handing them to a transport.
func (p SendParams) Validate() error {
	if strings.TrimSpace(p.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// NewSender returns the transport selected by cfg.SimulationMode: a
// SimulationSender writing under the destination name when the flag is set,
// otherwise a Postmark-backed sender validated against pm.
func NewSender(cfg Config, pm PostmarkConfig) (Sender, error) {
	if cfg.SimulationMode {
		return NewSimulationSender(cfg.DestinationName), nil
	}
	return NewPostmarkSender(cfg, pm)
}
