// Package store holds the in-memory state of the feed: registered
// accounts, the single session slot and the posts. Nothing here is safe for
// concurrent use; callers serialize access.
package store

import (
	"fmt"
	"strings"

	"2witter/models"
)

type AccountStore struct {
	accounts       map[string]models.Account
	defaultPicture string
}

func NewAccountStore(defaultPicture string) *AccountStore {
	if defaultPicture == "" {
		defaultPicture = models.DefaultPicture
	}
	return &AccountStore{
		accounts:       make(map[string]models.Account),
		defaultPicture: defaultPicture,
	}
}

// Register adds a new account. The username is matched exactly, so "bob"
// and "Bob" are distinct. The password is stored as given.
func (s *AccountStore) Register(username, password, bio, picture string) (models.Account, error) {
	if err := checkCredentials(username, password); err != nil {
		return models.Account{}, err
	}
	if _, exists := s.accounts[username]; exists {
		return models.Account{}, fmt.Errorf("register %q: %w", username, ErrDuplicateUsername)
	}

	picture = strings.TrimSpace(picture)
	if picture == "" {
		picture = s.defaultPicture
	}

	account := models.Account{
		Username: username,
		Password: password,
		Bio:      strings.TrimSpace(bio),
		Picture:  picture,
	}
	s.accounts[username] = account
	return account, nil
}

func (s *AccountStore) Authenticate(username, password string) (models.Account, error) {
	if err := checkCredentials(username, password); err != nil {
		return models.Account{}, err
	}
	account, exists := s.accounts[username]
	if !exists || account.Password != password {
		return models.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

func (s *AccountStore) Lookup(username string) (models.Account, bool) {
	account, exists := s.accounts[username]
	return account, exists
}

// Picture returns the avatar URL for username, or the default placeholder
// when no such account exists.
func (s *AccountStore) Picture(username string) string {
	if account, exists := s.accounts[username]; exists {
		return account.Picture
	}
	return s.defaultPicture
}

func (s *AccountStore) Len() int {
	return len(s.accounts)
}

func checkCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrMissingField
	}
	return nil
}
