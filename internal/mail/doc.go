// Package mail sends outbound notification email over SMTP.
//
// The mailer is a stateless pass-through to the configured SMTP relay:
// no queueing, no retries, no delivery tracking. Callers are expected to
// send from a goroutine and log failures — booking flows must never block
// or fail because the relay is slow or down.
package mail
