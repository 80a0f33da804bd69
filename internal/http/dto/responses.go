package dto

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
}
