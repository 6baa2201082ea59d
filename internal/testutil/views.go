package testutil

import (
	"ccsed-client/internal/app/models"
	"sync"
)

// SessionViewRecorder captures the routing decisions of a session controller.
type SessionViewRecorder struct {
	mu          sync.Mutex
	HomeRoutes  []string
	LoginRoutes int
	ErrorsShown []string
}

func (v *SessionViewRecorder) RouteToHome(identityName string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.HomeRoutes = append(v.HomeRoutes, identityName)
}

func (v *SessionViewRecorder) RouteToLogin() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.LoginRoutes++
}

func (v *SessionViewRecorder) ShowError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ErrorsShown = append(v.ErrorsShown, message)
}

type Alert struct {
	Title   string
	Message string
}

// ReservationViewRecorder captures everything a reservation controller shows.
type ReservationViewRecorder struct {
	mu          sync.Mutex
	loadingLog  []bool
	renders     [][]models.Reservation
	errors      []string
	alerts      []Alert
	loginRoutes int
}

func (v *ReservationViewRecorder) ShowLoading(loading bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loadingLog = append(v.loadingLog, loading)
}

func (v *ReservationViewRecorder) ShowReservations(reservations []models.Reservation) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.renders = append(v.renders, append([]models.Reservation{}, reservations...))
}

func (v *ReservationViewRecorder) ShowError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errors = append(v.errors, message)
}

func (v *ReservationViewRecorder) ShowAlert(title, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alerts = append(v.alerts, Alert{Title: title, Message: message})
}

func (v *ReservationViewRecorder) RouteToLogin() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loginRoutes++
}

func (v *ReservationViewRecorder) Renders() [][]models.Reservation {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([][]models.Reservation{}, v.renders...)
}

func (v *ReservationViewRecorder) LastRender() []models.Reservation {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.renders) == 0 {
		return nil
	}
	return v.renders[len(v.renders)-1]
}

func (v *ReservationViewRecorder) Errors() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string{}, v.errors...)
}

func (v *ReservationViewRecorder) Alerts() []Alert {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Alert{}, v.alerts...)
}

func (v *ReservationViewRecorder) LoginRoutes() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loginRoutes
}

func (v *ReservationViewRecorder) LoadingLog() []bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]bool{}, v.loadingLog...)
}
