package sms

// Config selects the active SMS vendor and the sender identity shown to
// recipients. All credentials are optional: absence disables the channel
// rather than failing process startup.
type Config struct {
	// TextLKAPIToken enables the primary vendor (Text.lk) when present.
	TextLKAPIToken string `env:"TEXTLK_API_TOKEN"`
	// NotifyLKUserID and NotifyLKAPIKey together enable the backup vendor
	// (Notify.lk) when the primary is not configured.
	NotifyLKUserID string `env:"NOTIFYLK_USER_ID"`
	NotifyLKAPIKey string `env:"NOTIFYLK_API_KEY"`
	// SenderID is the alphanumeric sender identity registered with the vendor.
	SenderID string `env:"SMS_SENDER_ID" envDefault:"SevaNet"`
}

// primaryConfigured reports whether the Text.lk credentials are present.
func (c Config) primaryConfigured() bool {
	return c.TextLKAPIToken != ""
}

// backupConfigured reports whether both Notify.lk credentials are present.
func (c Config) backupConfigured() bool {
	return c.NotifyLKUserID != "" && c.NotifyLKAPIKey != ""
}
