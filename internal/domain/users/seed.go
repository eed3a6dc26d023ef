package users

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// seedAccounts are the bootstrap logins created on first deployment.
// Existing rows keep whatever password they already have.
var seedAccounts = []struct {
	username string
	password string
	role     string
}{
	{"admin", "admin123", "admin"},
	{"guest", "guest123", "guest"},
}

// Seed hashes and inserts the default accounts. Re-running against a
// populated users table is a no-op.
func Seed(ctx context.Context, repo Repository) error {
	for _, a := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", a.username, err)
		}
		u := User{Username: a.username, PasswordHash: string(hash), Role: a.role}
		if err := repo.Upsert(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
