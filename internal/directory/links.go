package directory

import (
	"fmt"

	"hr-directory/internal/domain"
	"hr-directory/internal/models"
)

// LinkEmployeeAndManager makes employeeID report to managerID, removing any
// previous link first. Administrators only.
func (s *Session) LinkEmployeeAndManager(employeeID, managerID int) error {
	unlock := s.d.lock()
	defer unlock()

	if err := s.admin("link"); err != nil {
		return err
	}
	empAcct, err := s.d.lookup(employeeID)
	if err != nil {
		return err
	}
	mgrAcct, err := s.d.lookup(managerID)
	if err != nil {
		return err
	}
	emp, ok := models.EmployeeOf(empAcct)
	mgr, isManager := mgrAcct.(*models.Manager)
	if !ok || !isManager {
		return domain.ErrState("must provide one employee and one manager")
	}
	if employeeID == managerID {
		return domain.ErrState("%s (ID: %d) cannot report to themselves", emp.Name, employeeID)
	}

	s.d.unlink(emp)
	emp.SetManager(managerID)
	mgr.Reports[employeeID] = struct{}{}

	s.d.audit(s.actorID(), "link", intPtr(employeeID), "link", fmt.Sprintf("manager=%d", managerID))
	s.d.logger.Info("employee linked", "employee", employeeID, "manager", managerID)
	return nil
}

// UnlinkEmployee removes the manager link of employeeID. Administrators only.
func (s *Session) UnlinkEmployee(employeeID int) error {
	unlock := s.d.lock()
	defer unlock()

	if err := s.admin("unlink"); err != nil {
		return err
	}
	acct, err := s.d.lookup(employeeID)
	if err != nil {
		return err
	}
	emp, err := employeeRecord(acct)
	if err != nil {
		return err
	}
	managerID, ok := emp.Manager()
	if !ok {
		return domain.ErrState("%s (ID: %d) has no assigned manager", emp.Name, employeeID)
	}
	s.d.unlink(emp)

	s.d.audit(s.actorID(), "link", intPtr(employeeID), "unlink", fmt.Sprintf("manager=%d", managerID))
	s.d.logger.Info("employee unlinked", "employee", employeeID, "manager", managerID)
	return nil
}

// GetManager returns the ID of the employee's manager.
func (s *Session) GetManager(id int) (int, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	acct, err := s.readable("get_manager", id)
	if err != nil {
		return 0, err
	}
	emp, err := employeeRecord(acct)
	if err != nil {
		return 0, err
	}
	managerID, ok := emp.Manager()
	if !ok {
		return 0, domain.ErrNotFound("%s (ID: %d) has no assigned manager", emp.Name, id)
	}
	return managerID, nil
}

// GetReportingEmployees returns the IDs reporting to managerID, ascending.
func (s *Session) GetReportingEmployees(managerID int) ([]int, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	acct, err := s.readable("get_reports", managerID)
	if err != nil {
		return nil, err
	}
	mgr, ok := acct.(*models.Manager)
	if !ok {
		return nil, domain.ErrState("%s (ID: %d) is not a manager", acct.AccountName(), managerID)
	}
	return mgr.ReportIDs(), nil
}

// unlink clears both sides of emp's manager link, if any. Callers hold the
// write lock.
func (d *Directory) unlink(emp *models.Employee) {
	managerID, ok := emp.Manager()
	if !ok {
		return
	}
	if mgr, ok := d.users[managerID].(*models.Manager); ok {
		delete(mgr.Reports, emp.ID)
	}
	emp.ClearManager()
}
