package users

import "context"

// User is a login account row. Passwords are stored as bcrypt hashes.
type User struct {
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password" json:"-"`
	Role         string `db:"role" json:"role"`
}

// Repository is the storage contract for user accounts.
type Repository interface {
	// Upsert inserts the user, leaving an existing row with the same
	// username untouched.
	Upsert(ctx context.Context, u User) error
}
