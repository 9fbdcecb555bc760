package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"hr-directory/internal/directory"
	"hr-directory/internal/domain"
	"hr-directory/internal/models"
)

// PasswordReader prompts for a secret without echoing it.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}

type command struct {
	usage string
	min   int
	run   func(args []string) error
}

// Shell is a line-oriented console over a single directory session.
type Shell struct {
	session   *directory.Session
	in        *bufio.Scanner
	out       io.Writer
	passwords PasswordReader
	commands  map[string]command
}

// NewShell returns a shell reading commands from in. When passwords is nil,
// passwords are read as the next input line.
func NewShell(dir *directory.Directory, in io.Reader, out io.Writer, passwords PasswordReader) *Shell {
	sh := &Shell{
		session:   dir.NewSession(),
		in:        bufio.NewScanner(in),
		out:       out,
		passwords: passwords,
	}
	sh.commands = map[string]command{
		"login":          {"login <id>", 1, sh.login},
		"logout":         {"logout", 0, sh.logout},
		"whoami":         {"whoami", 0, sh.whoami},
		"users":          {"users", 0, sh.users},
		"add-employee":   {"add-employee <standard|manager> <salary> <vacation> <bonus> <in_hr> <name...>", 6, sh.addEmployee},
		"add-admin":      {"add-admin <name...>", 1, sh.addAdmin},
		"remove":         {"remove <id>", 1, sh.remove},
		"promote":        {"promote <id>", 1, sh.promote},
		"demote":         {"demote <id>", 1, sh.demote},
		"hr":             {"hr <id> [true|false]", 1, sh.hr},
		"link":           {"link <employee_id> <manager_id>", 2, sh.link},
		"unlink":         {"unlink <employee_id>", 1, sh.unlink},
		"manager":        {"manager <id>", 1, sh.manager},
		"reports":        {"reports <manager_id>", 1, sh.reports},
		"salary":         {"salary <id> [value]", 1, sh.salary},
		"salary-history": {"salary-history <id>", 1, sh.salaryHistory},
		"vacation":       {"vacation <id> [days]", 1, sh.vacation},
		"bonus":          {"bonus <id> [value]", 1, sh.bonus},
	}
	return sh
}

// Run executes commands until quit or end of input. Command failures are
// printed and do not stop the shell.
func (sh *Shell) Run() error {
	defer sh.session.LogOut()

	for {
		fmt.Fprint(sh.out, "> ")
		if !sh.in.Scan() {
			fmt.Fprintln(sh.out)
			return sh.in.Err()
		}
		quit, err := sh.Exec(sh.in.Text())
		if err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line.
func (sh *Shell) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		sh.help()
		return false, nil
	}

	cmd, ok := sh.commands[name]
	if !ok {
		return false, fmt.Errorf("unknown command %q (try help)", name)
	}
	if len(args) < cmd.min {
		return false, fmt.Errorf("usage: %s", cmd.usage)
	}
	return false, cmd.run(args)
}

func (sh *Shell) help() {
	names := make([]string, 0, len(sh.commands))
	for name := range sh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(sh.out, "  %s\n", sh.commands[name].usage)
	}
	fmt.Fprintln(sh.out, "  quit")
}

func (sh *Shell) readPassword(prompt string) (string, error) {
	if sh.passwords != nil {
		return sh.passwords.ReadPassword(prompt)
	}
	fmt.Fprint(sh.out, prompt)
	if !sh.in.Scan() {
		if err := sh.in.Err(); err != nil {
			return "", err
		}
		return "", errors.New("no password given")
	}
	return sh.in.Text(), nil
}

func (sh *Shell) login(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	pw, err := sh.readPassword("password: ")
	if err != nil {
		return err
	}
	if err := sh.session.LogIn(id, pw); err != nil {
		return err
	}
	me, _ := sh.session.CurrentUser()
	fmt.Fprintf(sh.out, "logged in as %s (ID: %d)\n", me.AccountName(), me.AccountID())
	return nil
}

func (sh *Shell) logout([]string) error {
	sh.session.LogOut()
	fmt.Fprintln(sh.out, "logged out")
	return nil
}

func (sh *Shell) whoami([]string) error {
	me, ok := sh.session.CurrentUser()
	if !ok {
		fmt.Fprintln(sh.out, "not logged in")
		return nil
	}
	fmt.Fprintf(sh.out, "%s (ID: %d, %s)\n", me.AccountName(), me.AccountID(), me.Type())
	return nil
}

func (sh *Shell) users([]string) error {
	users, err := sh.session.ListUsers()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(sh.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tMANAGER\tHR")
	for _, u := range users {
		manager, hr := "-", "-"
		if emp, ok := models.EmployeeOf(u); ok {
			if id, ok := emp.Manager(); ok {
				manager = strconv.Itoa(id)
			}
			hr = strconv.FormatBool(emp.InHumanResources)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.AccountID(), u.AccountName(), u.Type(), manager, hr)
	}
	return tw.Flush()
}

func (sh *Shell) addEmployee(args []string) error {
	typ, err := models.ParseEmployeeType(args[0])
	if err != nil {
		return err
	}
	salary, err := parseAmount("salary", args[1])
	if err != nil {
		return err
	}
	vacation, err := strconv.Atoi(args[2])
	if err != nil {
		return domain.ErrValidation("vacation balance must be a whole number, got %q", args[2])
	}
	bonus, err := parseAmount("bonus", args[3])
	if err != nil {
		return err
	}
	inHR, err := strconv.ParseBool(args[4])
	if err != nil {
		return domain.ErrValidation("in_hr must be true or false, got %q", args[4])
	}
	pw, err := sh.readPassword("new password: ")
	if err != nil {
		return err
	}

	acct, err := sh.session.AddEmployee(directory.NewEmployee{
		Type:             typ,
		Name:             strings.Join(args[5:], " "),
		Password:         pw,
		Salary:           salary,
		VacationBalance:  vacation,
		AnnualBonus:      bonus,
		InHumanResources: inHR,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "created %s %s (ID: %d)\n", acct.Type(), acct.AccountName(), acct.AccountID())
	return nil
}

func (sh *Shell) addAdmin(args []string) error {
	pw, err := sh.readPassword("new password: ")
	if err != nil {
		return err
	}
	acct, err := sh.session.AddAdministrator(strings.Join(args, " "), pw)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "created administrator %s (ID: %d)\n", acct.AccountName(), acct.AccountID())
	return nil
}

func (sh *Shell) remove(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	removed, err := sh.session.RemoveUser(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "removed %s (ID: %d)\n", removed.AccountName(), id)
	return nil
}

func (sh *Shell) promote(args []string) error {
	return sh.withID(args[0], sh.session.PromoteToManager, "promoted")
}

func (sh *Shell) demote(args []string) error {
	return sh.withID(args[0], sh.session.DemoteToStandard, "demoted")
}

func (sh *Shell) unlink(args []string) error {
	return sh.withID(args[0], sh.session.UnlinkEmployee, "unlinked")
}

func (sh *Shell) withID(arg string, fn func(int) error, done string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := fn(id); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "%s %d\n", done, id)
	return nil
}

func (sh *Shell) hr(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		inHR, err := sh.session.IsInHumanResources(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(sh.out, inHR)
		return nil
	}
	inHR, err := strconv.ParseBool(args[1])
	if err != nil {
		return domain.ErrValidation("expected true or false, got %q", args[1])
	}
	return sh.session.ChangeHRStatus(id, inHR)
}

func (sh *Shell) link(args []string) error {
	empID, err := parseID(args[0])
	if err != nil {
		return err
	}
	mgrID, err := parseID(args[1])
	if err != nil {
		return err
	}
	if err := sh.session.LinkEmployeeAndManager(empID, mgrID); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "%d now reports to %d\n", empID, mgrID)
	return nil
}

func (sh *Shell) manager(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	managerID, err := sh.session.GetManager(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(sh.out, managerID)
	return nil
}

func (sh *Shell) reports(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ids, err := sh.session.GetReportingEmployees(id)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(sh.out, "no reports")
		return nil
	}
	parts := make([]string, len(ids))
	for i, r := range ids {
		parts[i] = strconv.Itoa(r)
	}
	fmt.Fprintln(sh.out, strings.Join(parts, " "))
	return nil
}

func (sh *Shell) salary(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		v, err := sh.session.GetSalary(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "%g\n", v)
		return nil
	}
	v, err := parseAmount("salary", args[1])
	if err != nil {
		return err
	}
	return sh.session.SetSalary(id, v)
}

func (sh *Shell) salaryHistory(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	history, err := sh.session.GetSalaryHistory(id)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(sh.out, "no previous salaries")
		return nil
	}
	for _, v := range history {
		fmt.Fprintf(sh.out, "%g\n", v)
	}
	return nil
}

func (sh *Shell) vacation(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		v, err := sh.session.GetVacationBalance(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(sh.out, v)
		return nil
	}
	days, err := strconv.Atoi(args[1])
	if err != nil {
		return domain.ErrValidation("vacation balance must be a whole number, got %q", args[1])
	}
	return sh.session.SetVacationBalance(id, days)
}

func (sh *Shell) bonus(args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		v, err := sh.session.GetAnnualBonus(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "%g\n", v)
		return nil
	}
	v, err := parseAmount("bonus", args[1])
	if err != nil {
		return err
	}
	return sh.session.SetAnnualBonus(id, v)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.ErrValidation("invalid user ID %q", s)
	}
	return id, nil
}

func parseAmount(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, domain.ErrValidation("%s must be a number, got %q", field, s)
	}
	return v, nil
}
