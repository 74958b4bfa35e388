package request

// LoginRequest carries the operator credential. The password may be empty
// when the auto-login policy is enabled.
type LoginRequest struct {
	Password string `json:"password"`
}
