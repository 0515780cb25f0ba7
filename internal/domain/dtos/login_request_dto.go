package dtos

// LoginRequest carries the credentials typed at the login gate.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
