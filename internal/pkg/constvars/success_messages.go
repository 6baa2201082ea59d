package constvars

const (
	// Auth messages
	LoginSuccess          = "successfully logged in"
	LogoutSuccess         = "successfully logged out"
	RegisterSuccess       = "account created, you can login now"
	RegisterLoginSuccess  = "account created and logged in"
	SessionActiveTemplate = "logged in as %s"

	// Reservation messages
	ReservationCreatedSuccess = "your request for attention was registered"
	StaffNotifiedSuccess      = "staff was notified that you are waiting"
	NoReservationsMessage     = "you have no requests for attention yet"
)

// Alerts shown on the reservation list
const (
	AlertAttentionResolvedTitle   = "Notificación de Atención"
	AlertAttentionResolvedMessage = "Genial ya te atendieron"
	AlertStaffNotifiedTitle       = "Atención solicitada"
	AlertPrescriptionTitle        = "Receta"
)
