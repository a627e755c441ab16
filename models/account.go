package models

// Account is a registered identity. Passwords are kept in plaintext; this
// is a demo and reproduces the original app's lack of security.
type Account struct {
	Username string
	Password string
	Bio      string
	Picture  string
}
