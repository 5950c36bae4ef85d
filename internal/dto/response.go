package dto

type BasicResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func NewBasicResponse(success bool, message string) BasicResponse {
	return BasicResponse{
		Success: success,
		Message: message,
	}
}

// ErrorResponse is the single error shape every failed request gets,
// regardless of which layer produced the error.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Stack   string `json:"stack,omitempty"`
}

type AuthResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	Data         AuthData `json:"data"`
}

type AuthData struct {
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Email        string `json:"email"`
	IsAdmin      bool   `json:"is_admin"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
