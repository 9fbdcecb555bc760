package directory

import (
	"fmt"

	"hr-directory/internal/models"
)

// For every accessor an unknown ID is reported before a permission problem.

func (s *Session) readEmployee(op string, id int) (*models.Employee, error) {
	acct, err := s.readable(op, id)
	if err != nil {
		return nil, err
	}
	return employeeRecord(acct)
}

func (s *Session) writeEmployee(op string, id int) (*models.Employee, error) {
	acct, err := s.writable(op, id)
	if err != nil {
		return nil, err
	}
	return employeeRecord(acct)
}

func (s *Session) GetSalary(id int) (float64, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	emp, err := s.readEmployee("get_salary", id)
	if err != nil {
		return 0, err
	}
	return emp.Salary, nil
}

// SetSalary stores a new salary and appends the previous one to the history.
func (s *Session) SetSalary(id int, salary float64) error {
	unlock := s.d.lock()
	defer unlock()

	emp, err := s.writeEmployee("set_salary", id)
	if err != nil {
		return err
	}
	if err := models.ValidateAmount("salary", salary); err != nil {
		return err
	}
	prev := emp.Salary
	emp.SalaryHistory = append(emp.SalaryHistory, prev)
	emp.Salary = salary

	s.d.audit(s.actorID(), "user", intPtr(id), "set_salary", fmt.Sprintf("%g -> %g", prev, salary))
	return nil
}

// GetSalaryHistory returns prior salaries, oldest first.
func (s *Session) GetSalaryHistory(id int) ([]float64, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	emp, err := s.readEmployee("get_salary_history", id)
	if err != nil {
		return nil, err
	}
	return append([]float64{}, emp.SalaryHistory...), nil
}

func (s *Session) GetVacationBalance(id int) (int, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	emp, err := s.readEmployee("get_vacation", id)
	if err != nil {
		return 0, err
	}
	return emp.VacationBalance, nil
}

func (s *Session) SetVacationBalance(id int, balance int) error {
	unlock := s.d.lock()
	defer unlock()

	emp, err := s.writeEmployee("set_vacation", id)
	if err != nil {
		return err
	}
	if err := models.ValidateVacation(balance); err != nil {
		return err
	}
	prev := emp.VacationBalance
	emp.VacationBalance = balance

	s.d.audit(s.actorID(), "user", intPtr(id), "set_vacation", fmt.Sprintf("%d -> %d", prev, balance))
	return nil
}

func (s *Session) GetAnnualBonus(id int) (float64, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	emp, err := s.readEmployee("get_bonus", id)
	if err != nil {
		return 0, err
	}
	return emp.AnnualBonus, nil
}

func (s *Session) SetAnnualBonus(id int, bonus float64) error {
	unlock := s.d.lock()
	defer unlock()

	emp, err := s.writeEmployee("set_bonus", id)
	if err != nil {
		return err
	}
	if err := models.ValidateAmount("annual bonus", bonus); err != nil {
		return err
	}
	prev := emp.AnnualBonus
	emp.AnnualBonus = bonus

	s.d.audit(s.actorID(), "user", intPtr(id), "set_bonus", fmt.Sprintf("%g -> %g", prev, bonus))
	return nil
}

// IsInHumanResources reports the HR flag of an employee.
func (s *Session) IsInHumanResources(id int) (bool, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	emp, err := s.readEmployee("get_hr_status", id)
	if err != nil {
		return false, err
	}
	return emp.InHumanResources, nil
}
