// Package config loads typed configuration structs from environment
// variables.
//
// Struct fields are annotated with `env` tags; a .env file in the working
// directory is loaded once per process, if present, before the environment is
// parsed:
//
//	type SMSConfig struct {
//	    APIToken string `env:"TEXTLK_API_TOKEN"`
//	    SenderID string `env:"SMS_SENDER_ID" envDefault:"SevaNet"`
//	}
//
//	var cfg SMSConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Missing optional values are left at their zero value so that callers can
// disable the corresponding feature instead of crashing the process.
package config
