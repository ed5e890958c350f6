package password

import (
	"errors"
	"unicode/utf8"

	"logistics/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinLength = 8
	// MaxLength is the bcrypt input limit in bytes.
	MaxLength = 72
)

// Hasher implements ports.PasswordHasher.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher.
//
// Parameters:
//   - cost: the bcrypt work factor. Values outside bcrypt.MinCost..bcrypt.MaxCost,
//     including 0, select bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash validates plain against the length policy and returns its bcrypt hash.
//
// Returns:
//   - the encoded hash, which carries its own salt and cost
//   - ValueIsRequiredError or ValueIsOutOfRangeError when plain breaks the policy
func (h *Hasher) Hash(plain string) (string, error) {
	if err := Validate(plain); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare returns nil when plain matches hash. Use IsMismatch to tell a wrong password
// from a malformed hash.
func (h *Hasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// Validate checks the password length policy.
func Validate(plain string) error {
	if plain == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if utf8.RuneCountInString(plain) < MinLength || len(plain) > MaxLength {
		return errs.NewValueIsOutOfRangeError("password length", utf8.RuneCountInString(plain), MinLength, MaxLength)
	}
	return nil
}

// IsMismatch reports whether err means a wrong password rather than a broken hash.
func IsMismatch(err error) bool {
	return errors.Is(err, bcrypt.ErrMismatchedHashAndPassword)
}
