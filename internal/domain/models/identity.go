package models

// Identity is the result of a successful credential verification.
// It lives for the duration of a single request and is never persisted;
// Email is the identity key every ownership decision compares against.
type Identity struct {
	UID   string
	Email string
}
