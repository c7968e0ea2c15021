package kernel

import "time"

// IdentityProvider issues the identity and creation instant of a newly accepted order.
type IdentityProvider interface {
	NewID() UUID
	Now() time.Time
}

// SystemIdentityProvider generates random v4 identifiers and reads the wall clock in UTC.
type SystemIdentityProvider struct{}

// NewSystemIdentityProvider returns the production IdentityProvider.
func NewSystemIdentityProvider() SystemIdentityProvider {
	return SystemIdentityProvider{}
}

// NewID returns a random v4 UUID.
func (SystemIdentityProvider) NewID() UUID {
	return NewUUID()
}

// Now keeps sub-second precision and strips the monotonic reading so that stored
// values compare equal after a round trip through JSON.
func (SystemIdentityProvider) Now() time.Time {
	return time.Now().UTC().Round(0)
}
