package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkConfig holds the Postmark API credentials. Both tokens are optional
// in the environment so simulation-mode deployments can run without them, but
// NewPostmarkSender requires both.
type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
}

type postmarkSender struct {
	client     *postmark.Client
	from       string
	defaultTag string
}

// NewPostmarkSender creates a Postmark-backed Sender. Both tokens and a valid
// from-address are required so broken credentials fail at construction rather
// than on the first send.
func NewPostmarkSender(cfg Config, pm PostmarkConfig) (Sender, error) {
	if pm.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", ErrInvalidConfig)
	}
	if pm.AccountToken == "" {
		return nil, fmt.Errorf("%w: AccountToken is required", ErrInvalidConfig)
	}
	if cfg.FromAddress == "" {
		return nil, fmt.Errorf("%w: FromAddress is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.FromAddress) {
		return nil, fmt.Errorf("%w: FromAddress must be a valid email address", ErrInvalidConfig)
	}

	from := cfg.FromAddress
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}

	return &postmarkSender{
		client:     postmark.NewClient(pm.ServerToken, pm.AccountToken),
		from:       from,
		defaultTag: cfg.DestinationName,
	}, nil
}

// MustNewPostmarkSender creates a Postmark sender that panics on invalid
// configuration. Fails fast during startup rather than letting a broken
// service run.
func MustNewPostmarkSender(cfg Config, pm PostmarkConfig) Sender {
	sender, err := NewPostmarkSender(cfg, pm)
	if err != nil {
		panic(err)
	}
	return sender
}

// Send implements Sender using Postmark's transactional API. Tracking is
// enabled for opens and HTML link clicks. Untagged messages carry the
// destination name as their tag.
func (s *postmarkSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	tag := params.Tag
	if tag == "" {
		tag = s.defaultTag
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.from,
		To:         params.To,
		Subject:    params.Subject,
		Tag:        tag,
		HTMLBody:   params.BodyHTML,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrSendFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
