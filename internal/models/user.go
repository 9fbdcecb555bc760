package models

import (
	"math"
	"sort"

	"hr-directory/internal/domain"
)

type UserType string

const (
	TypeAdministrator UserType = "administrator"
	TypeStandard      UserType = "standard_employee"
	TypeManager       UserType = "manager"
)

// ParseEmployeeType accepts the two employee variants an administrator may create.
func ParseEmployeeType(s string) (UserType, error) {
	switch s {
	case string(TypeStandard), "standard", "Standard Employee":
		return TypeStandard, nil
	case string(TypeManager), "Manager":
		return TypeManager, nil
	}
	return "", domain.ErrValidation("invalid employee type %q", s)
}

// Account is the closed set of directory records: *Administrator,
// *StandardEmployee and *Manager.
type Account interface {
	AccountID() int
	AccountName() string
	Digest() string
	Type() UserType
	Clone() Account
	sealed()
}

// Identity is shared by every variant.
type Identity struct {
	ID           int
	Name         string
	PasswordHash string
}

func (i *Identity) AccountID() int      { return i.ID }
func (i *Identity) AccountName() string { return i.Name }
func (i *Identity) Digest() string      { return i.PasswordHash }
func (i *Identity) sealed()             {}

type Administrator struct {
	Identity
}

func (a *Administrator) Type() UserType { return TypeAdministrator }

func (a *Administrator) Clone() Account {
	cp := *a
	return &cp
}

// Employee holds the compensation and HR fields common to both employee variants.
// ManagerID is nil while the employee reports to nobody.
type Employee struct {
	Identity
	Salary           float64
	SalaryHistory    []float64
	VacationBalance  int
	AnnualBonus      float64
	InHumanResources bool
	ManagerID        *int
}

// Manager returns the ID of the employee's manager, if any.
func (e *Employee) Manager() (int, bool) {
	if e.ManagerID == nil {
		return 0, false
	}
	return *e.ManagerID, true
}

func (e *Employee) SetManager(id int) {
	e.ManagerID = &id
}

func (e *Employee) ClearManager() {
	e.ManagerID = nil
}

func (e Employee) copy() Employee {
	cp := e
	cp.SalaryHistory = append([]float64(nil), e.SalaryHistory...)
	if e.ManagerID != nil {
		id := *e.ManagerID
		cp.ManagerID = &id
	}
	return cp
}

type StandardEmployee struct {
	Employee
}

func (s *StandardEmployee) Type() UserType { return TypeStandard }

func (s *StandardEmployee) Clone() Account {
	return &StandardEmployee{Employee: s.Employee.copy()}
}

// Manager is an employee with a set of reporting employee IDs.
type Manager struct {
	Employee
	Reports map[int]struct{}
}

func (m *Manager) Type() UserType { return TypeManager }

func (m *Manager) Clone() Account {
	cp := &Manager{Employee: m.Employee.copy(), Reports: make(map[int]struct{}, len(m.Reports))}
	for id := range m.Reports {
		cp.Reports[id] = struct{}{}
	}
	return cp
}

func (m *Manager) HasReport(id int) bool {
	_, ok := m.Reports[id]
	return ok
}

// ReportIDs returns the reporting employee IDs in ascending order.
func (m *Manager) ReportIDs() []int {
	ids := make([]int, 0, len(m.Reports))
	for id := range m.Reports {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// NewEmployee builds the requested employee variant.
func NewEmployee(t UserType, id int, name, passwordHash string, salary float64, vacation int, bonus float64, inHR bool) (Account, error) {
	emp := Employee{
		Identity:         Identity{ID: id, Name: name, PasswordHash: passwordHash},
		Salary:           salary,
		VacationBalance:  vacation,
		AnnualBonus:      bonus,
		InHumanResources: inHR,
	}
	switch t {
	case TypeStandard:
		return &StandardEmployee{Employee: emp}, nil
	case TypeManager:
		return &Manager{Employee: emp, Reports: map[int]struct{}{}}, nil
	}
	return nil, domain.ErrValidation("invalid employee type %q", t)
}

// EmployeeOf returns the employee part of an account. Administrators have none.
func EmployeeOf(a Account) (*Employee, bool) {
	switch v := a.(type) {
	case *StandardEmployee:
		return &v.Employee, true
	case *Manager:
		return &v.Employee, true
	}
	return nil, false
}

// InHumanResources reports the HR flag; administrators are never in HR.
func InHumanResources(a Account) bool {
	if emp, ok := EmployeeOf(a); ok {
		return emp.InHumanResources
	}
	return false
}

// ValidateAmount rejects negative and non-finite monetary values.
func ValidateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.ErrValidation("%s must be a finite number", field)
	}
	if v < 0 {
		return domain.ErrValidation("%s must be non-negative", field)
	}
	return nil
}

func ValidateVacation(v int) error {
	if v < 0 {
		return domain.ErrValidation("vacation balance must be non-negative")
	}
	return nil
}
