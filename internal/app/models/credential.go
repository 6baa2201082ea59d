package models

import "ccsed-client/internal/pkg/constvars"

// Credential is the opaque bearer token issued by the backend. Nothing in
// the client inspects its contents.
type Credential struct {
	Value string
}

func NewCredential(value string) Credential {
	return Credential{Value: value}
}

func (c Credential) IsEmpty() bool {
	return c.Value == ""
}

// BearerValue is what goes into the Authorization header.
func (c Credential) BearerValue() string {
	return constvars.AuthorizationBearerPrefix + c.Value
}

// String keeps the token out of logs and formatted errors.
func (c Credential) String() string {
	if c.Value == "" {
		return "<empty>"
	}
	return "<redacted>"
}
