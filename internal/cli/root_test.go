package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShellCommand(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "P")
	t.Setenv("ADMIN_NAME", "Root")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("SEED_FILE", "")
	t.Setenv("DB_DSN", "")

	out, err := executeRoot(t, "login 0\nP\nwhoami\nquit\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "type help for commands")
	assert.Contains(t, out, "Root (ID: 0, administrator)")
}

func TestShellCommand_MissingAdminPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := executeRoot(t, "", "shell")
	assert.ErrorContains(t, err, "ADMIN_PASSWORD")
}

func TestCheckSeedCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
administrators:
  - name: Second
    password: s-pw
employees:
  - key: m
    type: manager
    name: M
    password: m-pw
  - key: e
    type: standard_employee
    name: E
    password: e-pw
    manager: m
`), 0o600))

	out, err := executeRoot(t, "", "check-seed", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 administrators, 2 employees")
}

func TestCheckSeedCommand_UnknownManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
employees:
  - name: E
    type: standard_employee
    password: e-pw
    manager: nobody
`), 0o600))

	_, err := executeRoot(t, "", "check-seed", path)
	assert.Error(t, err)
}
