package entity

// AuthCredentialsRequest carries the email/password pair for register and
// login. The plaintext password is never persisted.
type AuthCredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PasswordChangeRequest is the payload for replacing the caller's password.
type PasswordChangeRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// LoginResponse is the login success body; the credentials themselves travel
// in cookies.
type LoginResponse struct {
	Success bool `json:"success"`
}
