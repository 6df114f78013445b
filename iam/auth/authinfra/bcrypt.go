package authinfra

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/CavidAtamoghlanov/vacancy-management/iam/auth"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
)

// BcryptCredentialStore implements CredentialStore with bcrypt hashing.
type BcryptCredentialStore struct {
	cost int
}

func NewBcryptCredentialStore() auth.CredentialStore {
	return &BcryptCredentialStore{cost: bcrypt.DefaultCost}
}

func (s *BcryptCredentialStore) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}
	return string(hash), nil
}

func (s *BcryptCredentialStore) Verify(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return auth.ErrInvalidCredentials()
	}
	return nil
}
