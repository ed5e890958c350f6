// Package password hashes and checks account passwords with bcrypt.
//
// Customers and drivers choose a password at registration. The registration handlers
// store only the Hasher's output, and the auth service compares against it at login.
// The administrator's hash is produced offline (for example with htpasswd -bnBC 10)
// and supplied through ADMIN_PASSWORD_HASH.
//
// The length policy is MinLength to MaxLength. The upper bound is bcrypt's own: input
// past 72 bytes would be silently truncated, so it is rejected instead.
package password
