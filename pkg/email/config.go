package email

// Config holds the SMTP submission settings. Host, user and password are all
// required for the channel to be active; without them the channel is disabled
// rather than failing process startup, which is the expected state in
// development environments.
type Config struct {
	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	// SMTPSecure selects implicit TLS (port 465 style). When false the
	// sender still upgrades opportunistically via STARTTLS.
	SMTPSecure bool   `env:"SMTP_SECURE" envDefault:"false"`
	SMTPUser   string `env:"SMTP_USER"`
	SMTPPass   string `env:"SMTP_PASS"`
	// From is the sender address; FromName is the display name shown in
	// mail clients.
	From     string `env:"SMTP_FROM" envDefault:"noreply@sevanet.gov.lk"`
	FromName string `env:"SMTP_FROM_NAME" envDefault:"SevaNet"`
}

// Configured reports whether the SMTP channel has everything it needs to
// attempt delivery.
func (c Config) Configured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}
