package dto

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and account summary.
type LoginResponse struct {
	Token    string   `json:"token"`
	Type     string   `json:"type"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}
