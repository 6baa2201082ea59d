package responses

// ErrorBody is the shape the backend uses for rejected requests.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
