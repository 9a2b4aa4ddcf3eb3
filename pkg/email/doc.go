// Package email holds the outbound email configuration and transports for
// the Shift Book System.
//
// LoadConfig assembles the email settings from the process environment,
// substituting defaults for unset or empty variables:
//
//	cfg := email.LoadConfig()
//	// cfg.DestinationName, cfg.FromAddress, cfg.FromName, cfg.SimulationMode
//
// The SimulationMode flag selects the transport. NewSender returns a
// SimulationSender that writes messages to disk when the flag is set, and a
// Postmark-backed sender otherwise:
//
//	var pm email.PostmarkConfig
//	config.MustLoad(&pm)
//
//	sender, err := email.NewSender(email.LoadConfig(), pm)
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	err = sender.Send(ctx, email.SendParams{
//	    To:       "worker@example.com",
//	    Subject:  "Shift handover",
//	    BodyHTML: html,
//	})
//
// Errors are sentinel values (ErrInvalidConfig, ErrInvalidParams,
// ErrSendFailed) and can be checked with errors.Is.
package email
