package directory

import (
	"hr-directory/internal/domain"
	"hr-directory/internal/models"
)

// Access rules:
//   - administrators may read and write anything
//   - everyone may read their own record
//   - HR employees may read records of employees outside HR
//   - managers may read and write records of their reporting employees
//
// Self access and HR membership never grant write access.

// self returns the signed-in account. Callers hold the lock.
func (s *Session) self() (models.Account, error) {
	if !s.active {
		return nil, domain.ErrAccessDenied("you must log in to perform this action")
	}
	acct, ok := s.d.users[s.id]
	if !ok {
		return nil, domain.ErrAccessDenied("the signed-in account (ID: %d) no longer exists", s.id)
	}
	return acct, nil
}

func denied(self models.Account) error {
	return domain.ErrAccessDenied("the current user (%s) does not have permission to perform this action", self.AccountName())
}

func (s *Session) verifyAdmin() error {
	self, err := s.self()
	if err != nil {
		return err
	}
	if _, ok := self.(*models.Administrator); !ok {
		return denied(self)
	}
	return nil
}

func (s *Session) verifyReadAccess(targetID int, target models.Account) error {
	self, err := s.self()
	if err != nil {
		return err
	}

	switch me := self.(type) {
	case *models.Administrator:
		return nil
	case *models.StandardEmployee:
		if targetID == me.ID {
			return nil
		}
		if me.InHumanResources && !models.InHumanResources(target) {
			return nil
		}
	case *models.Manager:
		if targetID == me.ID {
			return nil
		}
		if me.InHumanResources && !models.InHumanResources(target) {
			return nil
		}
		if me.HasReport(targetID) {
			return nil
		}
	}
	return denied(self)
}

func (s *Session) verifyWriteAccess(targetID int) error {
	self, err := s.self()
	if err != nil {
		return err
	}

	switch me := self.(type) {
	case *models.Administrator:
		return nil
	case *models.Manager:
		if me.HasReport(targetID) {
			return nil
		}
	case *models.StandardEmployee:
	}
	return denied(self)
}

// readable resolves id and checks read access, NotFound first.
func (s *Session) readable(op string, id int) (models.Account, error) {
	acct, err := s.d.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := s.verifyReadAccess(id, acct); err != nil {
		s.d.logger.Warn("access denied", "op", op, "actor", s.logActor(), "target", id)
		return nil, err
	}
	return acct, nil
}

// writable resolves id and checks write access, NotFound first.
func (s *Session) writable(op string, id int) (models.Account, error) {
	acct, err := s.d.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := s.verifyWriteAccess(id); err != nil {
		s.d.logger.Warn("access denied", "op", op, "actor", s.logActor(), "target", id)
		return nil, err
	}
	return acct, nil
}

// admin checks the administrator gate and logs denials.
func (s *Session) admin(op string) error {
	if err := s.verifyAdmin(); err != nil {
		s.d.logger.Warn("access denied", "op", op, "actor", s.logActor())
		return err
	}
	return nil
}

func employeeRecord(acct models.Account) (*models.Employee, error) {
	emp, ok := models.EmployeeOf(acct)
	if !ok {
		return nil, domain.ErrState("%s (ID: %d) is an administrator and has no employee record", acct.AccountName(), acct.AccountID())
	}
	return emp, nil
}

// RequireAdmin fails unless an administrator is signed in.
func (s *Session) RequireAdmin() error {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return s.admin("require_admin")
}
