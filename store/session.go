package store

import "2witter/models"

// Session is the single global login slot.
type Session struct {
	active  bool
	account models.Account
}

func (s *Session) Login(account models.Account) {
	s.account = account
	s.active = true
}

func (s *Session) Logout() {
	s.account = models.Account{}
	s.active = false
}

func (s *Session) Current() (models.Account, bool) {
	return s.account, s.active
}
