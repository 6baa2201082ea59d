package models

import (
	"ccsed-client/internal/pkg/constvars"
	"time"
)

type AttentionType string

const (
	AttentionInPerson AttentionType = constvars.AttentionTypeInPerson
	AttentionVirtual  AttentionType = constvars.AttentionTypeVirtual
)

// Reservation is one patient request for medical attention. The backend owns
// every mutation; the client only replaces it with a fresher copy.
type Reservation struct {
	ID               string
	AttentionType    AttentionType
	PatientName      string
	ContactPhone     string
	Address          string
	CreatedAt        time.Time
	ProviderName     string
	Resolved         bool
	MeetingLink      string
	PrescriptionText string
}

// Sanitize enforces that unresolved reservations carry neither a meeting link
// nor a prescription. It reports whether anything was dropped.
func (r *Reservation) Sanitize() bool {
	if r.Resolved {
		return false
	}
	dropped := r.MeetingLink != "" || r.PrescriptionText != ""
	r.MeetingLink = ""
	r.PrescriptionText = ""
	return dropped
}

func (r Reservation) IsVirtual() bool {
	return r.AttentionType == AttentionVirtual
}

func (r Reservation) HasProvider() bool {
	return r.ProviderName != ""
}

// CanJoinMeeting is true once a virtual request is resolved with a link and
// before a prescription replaces the meeting action.
func (r Reservation) CanJoinMeeting() bool {
	return r.IsVirtual() && r.Resolved && r.MeetingLink != "" && r.PrescriptionText == ""
}

func (r Reservation) HasPrescription() bool {
	return r.Resolved && r.PrescriptionText != ""
}

func (r Reservation) CanNotifyStaff() bool {
	return !r.Resolved
}
