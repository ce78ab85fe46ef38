package model

import "time"

// Session is the authenticated identity handle issued by the auth provider.
// It is the authority for "is a user signed in"; profile data never implies
// a session on its own.
type Session struct {
	SessionID    string
	EmailOrPhone string
	IssuedAt     time.Time
}

// Identity is the merged view of a Session and its Profile document.
// When the profile document is missing, HasProfile is false and FullName
// stays empty; the session fields are still populated.
type Identity struct {
	SessionID    string
	EmailOrPhone string
	FullName     string
	FirstName    string
	LastName     string
	PhotoURL     string
	HasProfile   bool
}
