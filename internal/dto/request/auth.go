package request

// LoginRequest carries no validation tags: an empty credential is a failed
// login (401), not a malformed request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
