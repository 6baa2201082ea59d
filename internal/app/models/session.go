package models

type SessionState int

const (
	SessionUnchecked SessionState = iota
	SessionChecking
	SessionAuthenticated
	SessionUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionUnchecked:
		return "unchecked"
	case SessionChecking:
		return "checking"
	case SessionAuthenticated:
		return "authenticated"
	case SessionUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Session is derived on each controller activation and never persisted.
type Session struct {
	Credential   Credential
	IdentityName string
	Valid        bool
}

// Identity is what the backend reports for an accepted credential.
type Identity struct {
	ID       string
	Username string
	Email    string
}
