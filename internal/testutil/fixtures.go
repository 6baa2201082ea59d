package testutil

import (
	"ccsed-client/internal/pkg/dto/responses"
	"net/http"
	"strings"
)

// AddAccount registers a user directly and returns its id.
func (b *Backend) AddAccount(username, email, password string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	acc := &account{ID: "u-" + username, Username: username, Email: strings.ToLower(email), Password: password}
	b.accounts[acc.Email] = acc
	return acc.ID
}

func (b *Backend) SetTokenMode(mode TokenMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokenMode = mode
}

// FailEndpoint makes every request to path answer status with message until
// ClearFailure is called.
func (b *Backend) FailEndpoint(path string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[path] = failure{status: status, message: message}
}

func (b *Backend) ClearFailure(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, path)
}

func (b *Backend) CallCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[path]
}

func (b *Backend) LastHeaders(path string) http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastHeaders[path]
}

func (b *Backend) SetReservations(username string, docs ...responses.Reservation) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reservations[username] = append([]responses.Reservation{}, docs...)
}

func (b *Backend) Reservations(username string) []responses.Reservation {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]responses.Reservation{}, b.reservations[username]...)
}

// UpdateReservation applies update to the stored reservation with id.
func (b *Backend) UpdateReservation(username, id string, update func(*responses.Reservation)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	docs := b.reservations[username]
	for i := range docs {
		if docs[i].ID == id {
			update(&docs[i])
			return true
		}
	}
	return false
}

func (b *Backend) SetHospitals(items ...responses.Hospital) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hospitals = items
}

func (b *Backend) SetPharmacies(items ...responses.Pharmacy) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pharmacies = items
}

func (b *Backend) SetLaboratories(items ...responses.Laboratory) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.laboratories = items
}

func (b *Backend) SetPhoneLines(items ...responses.PhoneLine) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.phoneLines = items
}

func (b *Backend) SetDoctors(items ...responses.Doctor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doctors = items
}

func (b *Backend) SetAnnouncements(items ...responses.Announcement) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.announcements = items
}

func PendingReservation(id, attentionType string) responses.Reservation {
	return responses.Reservation{
		ID:            id,
		AttentionType: attentionType,
		PatientName:   "Ana",
		Phone:         "+59170000000",
		Address:       "Av. Ballivián 123",
		CreatedAt:     "2026-03-01T09:30:00Z",
	}
}

func ResolvedReservation(id, attentionType, meetingLink string) responses.Reservation {
	reservation := PendingReservation(id, attentionType)
	reservation.Attended = true
	reservation.DoctorName = "Dr. Quispe"
	reservation.Hour = "10:00"
	reservation.Meet = meetingLink
	return reservation
}
