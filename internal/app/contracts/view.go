package contracts

import "ccsed-client/internal/app/models"

type SessionView interface {
	RouteToHome(identityName string)
	RouteToLogin()
	ShowError(message string)
}

type ReservationView interface {
	ShowLoading(loading bool)
	ShowReservations(reservations []models.Reservation)
	ShowError(message string)
	ShowAlert(title, message string)
	RouteToLogin()
}
