package constants

import "time"

// Session
const (
	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName = "bewerbungsportal.sid"

	// SessionTTL is the sliding lifetime of a session.
	SessionTTL = 24 * time.Hour

	// SessionSweepInterval is how often expired sessions are reclaimed.
	SessionSweepInterval = time.Hour

	// ContextKeyIdentity is the gin context key holding the session identity.
	ContextKeyIdentity = "identity"
)

// Validation limits
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

// Bootstrap admin account
const (
	BootstrapAdminUsername = "Admin"
	BootstrapAdminEmail    = "admin@example.com"
)
