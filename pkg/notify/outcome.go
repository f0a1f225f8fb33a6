package notify

// ChannelResult is the outcome of one delivery channel attempt, uniform
// across vendors and transports.
type ChannelResult struct {
	Succeeded bool
	// ProviderMessageID is the channel's message identifier, present only
	// on success.
	ProviderMessageID string
	// ErrorDetail describes the failure, present only on failure.
	ErrorDetail string
}

// Outcome merges both channel results for one dispatched notification.
type Outcome struct {
	// OverallSucceeded is true when at least one channel succeeded.
	// Partial delivery counts as success: the citizen was informed.
	OverallSucceeded bool
	SMS              ChannelResult
	// Email is nil when the request carried no recipient email address.
	Email *ChannelResult
	// PrimaryMessageID is the first available message id from either
	// channel (SMS preferred), for audit correlation. Empty when both
	// channels failed.
	PrimaryMessageID string
}
