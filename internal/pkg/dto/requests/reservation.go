package requests

type CreateReservation struct {
	AttentionType string `json:"tipoatencion" validate:"required,attention_type"`
	Address       string `json:"domicilio" validate:"required,max=200"`
	Phone         string `json:"celular" validate:"required,phone_digits"`
}

// AttentionSignal is the payload of the "atencion" push event.
type AttentionSignal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Phone    string `json:"celular"`
}
