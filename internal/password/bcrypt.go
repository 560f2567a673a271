package password

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptMaxLen = 72

// BcryptHasher хэширует пароли bcrypt'ом.
type BcryptHasher struct {
	cost int
}

// NewBcrypt создаёт bcrypt-хэшер; cost вне [MinCost, MaxCost] заменяется на 12.
func NewBcrypt(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 12
	}

	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	const op = "password.bcrypt.Hash"

	if plain == "" {
		return "", fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	if len(plain) > bcryptMaxLen {
		return "", fmt.Errorf("%s: %w", op, ErrPasswordTooLong)
	}

	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(b), nil
}

// Verify использует bcrypt.CompareHashAndPassword, сравнение внутри — constant-time.
func (h *BcryptHasher) Verify(plain, digest string) bool {
	if !isBcrypt(digest) {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

func isBcrypt(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}
