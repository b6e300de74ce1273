package domain

// User represents a registered user of the task tracker. The username is the
// identity key; it is unique, immutable, and referenced by Task.Owner.
type User struct {
	Username       string `json:"username"`
	HashedPassword string `json:"-"` // Never expose the password digest in JSON
}

// NewUser creates a User from a username and an already-computed password
// digest. Returns an error if the username is empty.
//
// NOTE: The caller is responsible for hashing the password before calling
// this function; plaintext passwords never appear on the User struct.
func NewUser(username, hashedPassword string) (*User, error) {
	user := &User{
		Username:       username,
		HashedPassword: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	return nil
}
