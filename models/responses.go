package models

// LoginResponse is returned by POST /api/users/login. Token already carries
// the "Bearer " prefix and can be sent as the Authorization header verbatim.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// SuccessResponse acknowledges deletions.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// MessageResponse is returned by the /test routes.
type MessageResponse struct {
	Msg string `json:"msg"`
}
