package constvars

// Backend endpoints consumed by the client.
const (
	EndpointLogin              = "/api/login"
	EndpointRegister           = "/api/register"
	EndpointVerify             = "/api/verify"
	EndpointMyReservations     = "/api/obteneratencionpaciente"
	EndpointCreateReservation  = "/api/registraratencion"
	EndpointHospitals          = "/api/obtenerhospitalespage"
	EndpointPharmacies         = "/api/obtenerfarmaciaspage"
	EndpointLaboratories       = "/api/obtenerlaboratoriospage"
	EndpointPhoneLines         = "/api/obtenertelefonopage"
	EndpointDoctors            = "/api/obtenerdoctores"
	EndpointAnnouncements      = "/api/obtenercomunicadospage"
	EndpointRealtimeSocketPath = "/socket.io/"
)

const (
	ResourceCredential    = "credential"
	ResourceSession       = "session"
	ResourceReservation   = "reservation"
	ResourceReservations  = "reservations"
	ResourceHospitals     = "hospitals"
	ResourcePharmacies    = "pharmacies"
	ResourceLaboratories  = "laboratories"
	ResourcePhoneLines    = "phone lines"
	ResourceDoctors       = "doctors"
	ResourceAnnouncements = "announcements"
)

const (
	MapsQueryUrlFormat = "https://www.google.com/maps?q=%s,%s"
	DialerUrlFormat    = "tel:%s"
)
