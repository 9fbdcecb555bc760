// Package seed loads a YAML roster of accounts and applies it to a directory
// through an administrator session.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hr-directory/internal/directory"
	"hr-directory/internal/domain"
	"hr-directory/internal/models"
)

type Roster struct {
	Administrators []Administrator `yaml:"administrators"`
	Employees      []Employee      `yaml:"employees"`
}

type Administrator struct {
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

// Employee is one roster entry. Key is the handle other entries use in
// Manager; it defaults to Name.
type Employee struct {
	Key             string  `yaml:"key"`
	Type            string  `yaml:"type"`
	Name            string  `yaml:"name"`
	Password        string  `yaml:"password"`
	Salary          float64 `yaml:"salary"`
	VacationBalance int     `yaml:"vacation_balance"`
	AnnualBonus     float64 `yaml:"annual_bonus"`
	InHR            bool    `yaml:"in_hr"`
	Manager         string  `yaml:"manager"`
}

func (e Employee) key() string {
	if e.Key != "" {
		return e.Key
	}
	return e.Name
}

// Load reads and parses a roster file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return Parse(data)
}

// Parse decodes a roster and checks that keys are unique and every manager
// reference resolves.
func Parse(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	keys := make(map[string]bool, len(r.Employees))
	for _, e := range r.Employees {
		if keys[e.key()] {
			return nil, domain.ErrValidation("duplicate roster key %q", e.key())
		}
		keys[e.key()] = true
	}
	for _, e := range r.Employees {
		if e.Manager != "" && !keys[e.Manager] {
			return nil, domain.ErrValidation("%s: unknown manager %q", e.key(), e.Manager)
		}
	}
	return &r, nil
}

// Apply creates every account in the roster and links managers. It returns
// the directory ID assigned to each employee key.
func Apply(s *directory.Session, r *Roster) (map[string]int, error) {
	for _, a := range r.Administrators {
		if _, err := s.AddAdministrator(a.Name, a.Password); err != nil {
			return nil, fmt.Errorf("administrator %s: %w", a.Name, err)
		}
	}

	ids := make(map[string]int, len(r.Employees))
	for _, e := range r.Employees {
		typ, err := models.ParseEmployeeType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", e.key(), err)
		}
		acct, err := s.AddEmployee(directory.NewEmployee{
			Type:             typ,
			Name:             e.Name,
			Password:         e.Password,
			Salary:           e.Salary,
			VacationBalance:  e.VacationBalance,
			AnnualBonus:      e.AnnualBonus,
			InHumanResources: e.InHR,
		})
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", e.key(), err)
		}
		ids[e.key()] = acct.AccountID()
	}

	for _, e := range r.Employees {
		if e.Manager == "" {
			continue
		}
		if err := s.LinkEmployeeAndManager(ids[e.key()], ids[e.Manager]); err != nil {
			return nil, fmt.Errorf("link %s to %s: %w", e.key(), e.Manager, err)
		}
	}
	return ids, nil
}
