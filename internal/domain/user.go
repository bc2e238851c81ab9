package domain

// User is a registered account. Username is the immutable identifier that
// owns tasks; Token holds the single active session, nil when logged out.
type User struct {
	Username string  `json:"username" db:"username"`
	Password string  `json:"-"        db:"password"` // bcrypt hash, never serialized
	Name     string  `json:"name"     db:"name"`
	Token    *string `json:"-"        db:"token"`
}

// HasSession reports whether the user currently holds a login token.
func (u *User) HasSession() bool {
	return u.Token != nil && *u.Token != ""
}
