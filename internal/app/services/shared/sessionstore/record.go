package sessionstore

import (
	"ccsed-client/internal/app/models"
	"time"
)

// credentialRecord is the persisted shape of a credential in every driver.
type credentialRecord struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

func newCredentialRecord(credential models.Credential) credentialRecord {
	return credentialRecord{
		Token:   credential.Value,
		SavedAt: time.Now().UTC(),
	}
}
