package responses

type Reservation struct {
	ID            string `json:"_id"`
	AttentionType string `json:"tipoatencion"`
	DoctorName    string `json:"nombreDoctor,omitempty"`
	Attended      bool   `json:"atendido"`
	CreatedAt     string `json:"createdAt"`
	Hour          string `json:"hora,omitempty"`
	Meet          string `json:"meet,omitempty"`
	PatientName   string `json:"nombrePaciente,omitempty"`
	Phone         string `json:"celular,omitempty"`
	Address       string `json:"domicilio,omitempty"`
	Prescription  string `json:"receta,omitempty"`
}

type ReservationList struct {
	Docs []Reservation `json:"docs"`
}

type CreatedReservation struct {
	ID      string `json:"_id"`
	Message string `json:"message,omitempty"`
}
