// Package notify is the single entry point for citizen notifications: it
// renders the category-appropriate SMS text and HTML email, fans out to both
// delivery channels, and merges their results into one outcome.
//
// # Dispatch model
//
// Each Send call is a single-shot, stateless operation. The SMS channel is
// always attempted (phone is a required field); the email channel only when
// the request carries a recipient address. One channel's failure never blocks
// the other, and partial delivery counts as overall success because the
// notification's purpose is met if either channel lands.
//
//	dispatcher := notify.NewDispatcher(smsSender, emailSender)
//	outcome := dispatcher.Send(ctx, notify.Request{
//	    Category:         notify.CategoryConfirmation,
//	    RecipientPhone:   "0771234567",
//	    RecipientEmail:   "citizen@example.com",
//	    CitizenName:      "A. Perera",
//	    ServiceName:      "Passport Renewal",
//	    BookingReference: "REF123",
//	    ...
//	})
//	// outcome.OverallSucceeded, outcome.SMS, outcome.Email
//
// Send never returns an error: every failure mode of the two channels is
// already captured as channel result data. Persisting the outcome is the
// caller's responsibility; see the audit package.
package notify
