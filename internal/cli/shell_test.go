package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hr-directory/internal/auth"
	"hr-directory/internal/directory"
)

func newTestDirectory(t *testing.T) *directory.Directory {
	t.Helper()
	dir, err := directory.New("Root", "P", directory.WithHasher(auth.NewBcryptHasher(bcrypt.MinCost)))
	require.NoError(t, err)
	return dir
}

func runScript(t *testing.T, dir *directory.Directory, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := NewShell(dir, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, nil)
	require.NoError(t, sh.Run())
	return out.String()
}

type fixedPasswords map[string]string

func (f fixedPasswords) ReadPassword(prompt string) (string, error) {
	return f[prompt], nil
}

func TestShell_AdminWorkflow(t *testing.T) {
	dir := newTestDirectory(t)

	out := runScript(t, dir,
		"login 0", "P",
		"add-employee manager 100000 20 5000 false Mia Wong", "mia-pw",
		"add-employee standard 50000 10 0 true Eve", "eve-pw",
		"link 2 1",
		"reports 1",
		"manager 2",
		"salary 2 55000",
		"salary-history 2",
		"users",
		"quit",
	)

	assert.Contains(t, out, "logged in as Root (ID: 0)")
	assert.Contains(t, out, "created manager Mia Wong (ID: 1)")
	assert.Contains(t, out, "created standard_employee Eve (ID: 2)")
	assert.Contains(t, out, "2 now reports to 1")
	assert.Contains(t, out, "> 50000\n")
	assert.Contains(t, out, "Mia Wong")
	assert.NotContains(t, out, "error:")
	assert.Equal(t, 3, dir.Size())
}

func TestShell_ErrorsDoNotStopTheShell(t *testing.T) {
	dir := newTestDirectory(t)

	out := runScript(t, dir,
		"users",
		"frobnicate",
		"salary",
		"login 0", "wrong",
		"whoami",
	)

	assert.Contains(t, out, "error: you must log in to perform this action")
	assert.Contains(t, out, `error: unknown command "frobnicate"`)
	assert.Contains(t, out, "error: usage: salary <id> [value]")
	assert.Contains(t, out, "error: incorrect password")
	assert.Contains(t, out, "not logged in")
}

func TestShell_PermissionsFollowTheSession(t *testing.T) {
	dir := newTestDirectory(t)
	runScript(t, dir,
		"login 0", "P",
		"add-employee standard 50000 10 0 false Eve", "eve-pw",
		"add-employee standard 60000 10 0 false Bob", "bob-pw",
	)

	out := runScript(t, dir,
		"login 1", "eve-pw",
		"vacation 1",
		"vacation 1 30",
		"bonus 2",
		"salary 99",
	)

	assert.Contains(t, out, "> 10\n")
	assert.Contains(t, out, "error: the current user (Eve) does not have permission to perform this action")
	assert.Contains(t, out, "error: no user found with ID 99")
}

func TestShell_UsesPasswordReader(t *testing.T) {
	dir := newTestDirectory(t)
	var out bytes.Buffer
	sh := NewShell(dir, strings.NewReader("login 0\nadd-admin Second Admin\nwhoami\n"), &out,
		fixedPasswords{"password: ": "P", "new password: ": "second-pw"})

	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), "created administrator Second Admin (ID: -1)")
	assert.Contains(t, out.String(), "Root (ID: 0, administrator)")
}

func TestShell_ExecParsesArguments(t *testing.T) {
	sh := NewShell(newTestDirectory(t), strings.NewReader(""), &bytes.Buffer{}, nil)

	quit, err := sh.Exec("   ")
	assert.False(t, quit)
	assert.NoError(t, err)

	quit, err = sh.Exec("exit")
	assert.True(t, quit)
	assert.NoError(t, err)

	_, err = sh.Exec("salary abc")
	assert.EqualError(t, err, `invalid user ID "abc"`)
}
