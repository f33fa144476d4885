package constants

// RFC 3339 date-time format string.
// Use this format for all date-time serialization and communication with external systems.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// ISO8601MillisFormat matches the millisecond UTC instants browsers produce,
// e.g. 2025-01-31T09:15:02.123Z. Values must be converted to UTC first.
const ISO8601MillisFormat = "2006-01-02T15:04:05.000Z07:00"

// UnknownUserAgent is recorded when a submission arrives without a User-Agent header.
const UnknownUserAgent = "Unknown"

// Google service-account endpoints that are the same for every key.
const (
	GoogleAuthURI             = "https://accounts.google.com/o/oauth2/auth"
	GoogleTokenURI            = "https://oauth2.googleapis.com/token"
	GoogleAuthProviderCertURL = "https://www.googleapis.com/oauth2/v1/certs"
)
