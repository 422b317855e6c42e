package web

// ErrorResponse represents a JSON error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// AvatarResponse is returned after a successful avatar upload
type AvatarResponse struct {
	ImageURL string `json:"imageUrl"`
}
