package directory

import (
	"fmt"

	"hr-directory/internal/domain"
	"hr-directory/internal/models"
)

// NewEmployee describes an employee account to create.
type NewEmployee struct {
	Type             models.UserType
	Name             string
	Password         string
	Salary           float64
	VacationBalance  int
	AnnualBonus      float64
	InHumanResources bool
}

// AddEmployee creates a standard employee or manager. Administrators only.
func (s *Session) AddEmployee(req NewEmployee) (models.Account, error) {
	unlock := s.d.lock()
	defer unlock()

	if err := s.admin("add_employee"); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	if req.Type != models.TypeStandard && req.Type != models.TypeManager {
		return nil, domain.ErrValidation("invalid employee type %q", req.Type)
	}
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if err := models.ValidateAmount("salary", req.Salary); err != nil {
		return nil, err
	}
	if err := models.ValidateVacation(req.VacationBalance); err != nil {
		return nil, err
	}
	if err := models.ValidateAmount("annual bonus", req.AnnualBonus); err != nil {
		return nil, err
	}

	digest, err := s.d.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	acct, err := models.NewEmployee(req.Type, s.d.takeEmployeeID(), req.Name, digest,
		req.Salary, req.VacationBalance, req.AnnualBonus, req.InHumanResources)
	if err != nil {
		return nil, err
	}
	s.d.users[acct.AccountID()] = acct

	s.d.audit(s.actorID(), "user", intPtr(acct.AccountID()), "create", fmt.Sprintf("created %s %s", acct.Type(), acct.AccountName()))
	s.d.logger.Info("employee added", "id", acct.AccountID(), "type", acct.Type())
	return acct.Clone(), nil
}

// AddAdministrator creates an administrator. IDs are taken from the
// descending administrator range so they never collide with employees.
func (s *Session) AddAdministrator(name, password string) (models.Account, error) {
	unlock := s.d.lock()
	defer unlock()

	if err := s.admin("add_administrator"); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	digest, err := s.d.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	admin := &models.Administrator{Identity: models.Identity{
		ID:           s.d.takeAdminID(),
		Name:         name,
		PasswordHash: digest,
	}}
	s.d.users[admin.ID] = admin

	s.d.audit(s.actorID(), "user", intPtr(admin.ID), "create", "created administrator "+name)
	s.d.logger.Info("administrator added", "id", admin.ID)
	return admin.Clone(), nil
}

// RemoveUser deletes an account and every manager link that involves it.
// The signed-in account cannot remove itself.
func (s *Session) RemoveUser(id int) (models.Account, error) {
	unlock := s.d.lock()
	defer unlock()

	if err := s.admin("remove_user"); err != nil {
		return nil, err
	}
	acct, err := s.d.lookup(id)
	if err != nil {
		return nil, err
	}
	if id == s.id {
		return nil, domain.ErrState("can't remove the currently signed in user")
	}

	if emp, ok := models.EmployeeOf(acct); ok {
		s.d.unlink(emp)
	}
	if mgr, ok := acct.(*models.Manager); ok {
		for _, reportID := range mgr.ReportIDs() {
			if report, ok := models.EmployeeOf(s.d.users[reportID]); ok {
				s.d.unlink(report)
			}
		}
	}
	delete(s.d.users, id)

	s.d.audit(s.actorID(), "user", intPtr(id), "delete", "removed "+acct.AccountName())
	s.d.logger.Info("user removed", "id", id, "type", acct.Type())
	return acct.Clone(), nil
}

// PromoteToManager turns a standard employee into a manager with no reports.
func (s *Session) PromoteToManager(id int) error {
	unlock := s.d.lock()
	defer unlock()

	if err := s.admin("promote"); err != nil {
		return err
	}
	acct, err := s.d.lookup(id)
	if err != nil {
		return err
	}

	switch v := acct.(type) {
	case *models.StandardEmployee:
		s.d.users[id] = &models.Manager{Employee: v.Employee, Reports: map[int]struct{}{}}
	case *models.Manager:
		return domain.ErrState("%s (ID: %d) is already a manager", v.Name, id)
	case *models.Administrator:
		return domain.ErrState("administrator %s (ID: %d) cannot be promoted", v.Name, id)
	}

	s.d.audit(s.actorID(), "user", intPtr(id), "promote", "")
	s.d.logger.Info("promoted to manager", "id", id)
	return nil
}

// DemoteToStandard turns a manager back into a standard employee. Managers
// with reporting employees must have them relinked or unlinked first.
func (s *Session) DemoteToStandard(id int) error {
	unlock := s.d.lock()
	defer unlock()

	if err := s.admin("demote"); err != nil {
		return err
	}
	acct, err := s.d.lookup(id)
	if err != nil {
		return err
	}

	switch v := acct.(type) {
	case *models.Manager:
		if len(v.Reports) > 0 {
			return domain.ErrState("%s (ID: %d) still has %d reporting employees", v.Name, id, len(v.Reports))
		}
		s.d.users[id] = &models.StandardEmployee{Employee: v.Employee}
	case *models.StandardEmployee:
		return domain.ErrState("%s (ID: %d) is already a standard employee", v.Name, id)
	case *models.Administrator:
		return domain.ErrState("administrator %s (ID: %d) cannot be demoted", v.Name, id)
	}

	s.d.audit(s.actorID(), "user", intPtr(id), "demote", "")
	s.d.logger.Info("demoted to standard employee", "id", id)
	return nil
}

// ChangeHRStatus sets whether an employee belongs to Human Resources.
func (s *Session) ChangeHRStatus(id int, inHumanResources bool) error {
	unlock := s.d.lock()
	defer unlock()

	if err := s.admin("change_hr_status"); err != nil {
		return err
	}
	acct, err := s.d.lookup(id)
	if err != nil {
		return err
	}
	emp, err := employeeRecord(acct)
	if err != nil {
		return err
	}
	emp.InHumanResources = inHumanResources

	s.d.audit(s.actorID(), "user", intPtr(id), "hr_status", fmt.Sprintf("in_hr=%t", inHumanResources))
	s.d.logger.Info("hr status changed", "id", id, "in_hr", inHumanResources)
	return nil
}

// ListUsers returns copies of every account ordered by ID. Administrators only.
func (s *Session) ListUsers() ([]models.Account, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	if err := s.admin("list_users"); err != nil {
		return nil, err
	}
	return s.d.snapshot(), nil
}
