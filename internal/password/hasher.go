// password хэширует и проверяет пароли пользователей.
//
// Хэш самоописывающий: в строке закодированы алгоритм, параметры и соль
// ($2a$... для bcrypt, $argon2id$... для argon2id). Поэтому Verify умеет
// проверять любой поддерживаемый формат независимо от того, какой алгоритм
// сейчас выбран для новых хэшей, и смена алгоритма в конфиге не ломает
// вход существующим пользователям.
package password

import (
	"errors"
	"strings"

	"github.com/pribylovaa/go-tracks-api/internal/config"
)

var (
	// ErrEmptyPassword — пароль пустой.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrPasswordTooLong — пароль длиннее 72 байт (ограничение bcrypt).
	ErrPasswordTooLong = errors.New("password is too long")
)

// Hasher — контракт хэширования паролей.
type Hasher interface {
	// Hash возвращает самоописывающий хэш пароля.
	Hash(plain string) (string, error)
	// Verify сравнивает пароль с хэшем. Некорректный хэш — false, без паники.
	Verify(plain, digest string) bool
}

// New собирает Hasher по конфигурации: новые хэши считаются выбранным
// алгоритмом, проверка выбирает алгоритм по префиксу хэша.
func New(cfg config.PasswordConfig) Hasher {
	bc := NewBcrypt(cfg.BcryptCost)
	ar := NewArgon2(cfg.Argon2Time, cfg.Argon2Memory, cfg.Argon2Threads)

	m := &multiHasher{bcrypt: bc, argon2: ar, primary: bc}
	if cfg.Algorithm == "argon2id" {
		m.primary = ar
	}

	return m
}

type multiHasher struct {
	primary Hasher
	bcrypt  *BcryptHasher
	argon2  *Argon2Hasher
}

func (m *multiHasher) Hash(plain string) (string, error) {
	return m.primary.Hash(plain)
}

func (m *multiHasher) Verify(plain, digest string) bool {
	switch {
	case strings.HasPrefix(digest, argon2Prefix):
		return m.argon2.Verify(plain, digest)
	case isBcrypt(digest):
		return m.bcrypt.Verify(plain, digest)
	default:
		return false
	}
}
