package ports

// PasswordHasher hashes account passwords and checks them at login.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare returns nil when plain matches hash.
	Compare(hash, plain string) error
}
