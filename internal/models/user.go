package models

// User holds a registered account. The password is stored verbatim and
// compared with plain equality on login.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// UserResponse is the public projection of a User, with the password
// stripped. Handlers only ever return this form.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u User) Response() UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}
