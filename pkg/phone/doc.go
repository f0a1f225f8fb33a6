// Package phone normalizes citizen-entered phone numbers into the canonical
// digit-only dialing format the SMS gateways expect.
//
// Normalization is a pure best-effort transformation: it never fails, because
// blocking a whole notification on an unparseable phone number is worse than
// attempting a send the gateway itself will reject.
package phone
