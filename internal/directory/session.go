package directory

import (
	"hr-directory/internal/domain"
	"hr-directory/internal/models"
)

// Session is a single authenticated-identity slot. Logging in replaces the
// previous identity; it is never additive. A Session shares the directory
// lock and is safe for concurrent use.
type Session struct {
	d      *Directory
	id     int
	active bool
}

// LogIn authenticates id with password and makes it the session identity.
func (s *Session) LogIn(id int, password string) error {
	unlock := s.d.lock()
	defer unlock()

	if err := validatePassword(password); err != nil {
		return err
	}
	acct, err := s.d.lookup(id)
	if err != nil {
		return err
	}
	if !s.d.hasher.Compare(acct.Digest(), password) {
		s.d.logger.Warn("login failed", "user_id", id)
		return domain.ErrAuthentication("incorrect password for %s (ID: %d)", acct.AccountName(), id)
	}

	s.id = id
	s.active = true
	s.d.audit(intPtr(id), "session", intPtr(id), "login", "")
	s.d.logger.Info("login", "user_id", id, "type", acct.Type())
	return nil
}

// Resume restores an identity that was authenticated earlier, e.g. from a
// signed cookie. instance must be the InstanceID of the directory that
// authenticated it; IDs from another directory name different people. It
// fails when the account no longer exists.
func (s *Session) Resume(instance string, id int) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if instance != s.d.instance {
		return domain.ErrAccessDenied("the session was issued by another directory instance")
	}
	if _, err := s.d.lookup(id); err != nil {
		return err
	}
	s.id = id
	s.active = true
	return nil
}

// LogOut clears the session. Calling it while anonymous is a no-op.
func (s *Session) LogOut() {
	unlock := s.d.lock()
	defer unlock()

	if s.active {
		s.d.audit(intPtr(s.id), "session", intPtr(s.id), "logout", "")
	}
	s.id = 0
	s.active = false
}

// CurrentUser returns a copy of the signed-in account.
func (s *Session) CurrentUser() (models.Account, bool) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	if !s.active {
		return nil, false
	}
	acct, ok := s.d.users[s.id]
	if !ok {
		return nil, false
	}
	return acct.Clone(), true
}

// InstanceID returns the InstanceID of the session's directory.
func (s *Session) InstanceID() string {
	return s.d.instance
}

func (s *Session) actorID() *int {
	if !s.active {
		return nil
	}
	return intPtr(s.id)
}

func (s *Session) logActor() any {
	if !s.active {
		return "anonymous"
	}
	return s.id
}
