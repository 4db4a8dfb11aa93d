// Package otp generates the short numeric codes and opaque pairing tokens
// used for email verification.
//
// Codes are random values stored server-side, not TOTP: the code a user
// receives by email is only valid together with the token it was issued with.
package otp
