// Package sms delivers rendered text messages to citizens through one of two
// interchangeable Sri Lankan SMS gateways.
//
// # Provider selection
//
// Exactly one vendor is active per process, resolved once from configuration:
// Text.lk is preferred when its API token is present, Notify.lk is used when
// both of its credentials are present, and with neither the channel is
// disabled. A disabled channel short-circuits every send to a failed result
// without touching the network, which is the expected state in development
// environments.
//
//	var cfg sms.Config
//	config.MustLoad(&cfg)
//	sender := sms.New(cfg)
//	res := sender.Send(ctx, "0771234567", "Your appointment is confirmed")
//	if !res.Succeeded {
//	    // res.ErrorDetail carries the vendor's or transport's failure text
//	}
//
// # Error handling
//
// Send never returns an error. Transport failures, non-2xx responses,
// vendor-reported failures and malformed response bodies are all folded into
// the returned Result so that one channel's failure can never crash a
// dual-channel dispatch.
package sms
