package entities

// Credentials authenticate both the tarball downloads and the tree listing
// API. They live for the duration of the process only.
type Credentials struct {
	Username string
	Password string
}

// String never renders the password.
func (c Credentials) String() string {
	return c.Username + ":***"
}
